package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/Dhivija-tekisho/emaildraft/internal/domain"
)

func TestComposeURL(t *testing.T) {
	svc := &DraftService{}

	got := svc.ComposeURL(ComposeRequest{
		To:      "a@x.com",
		Subject: "Hello World",
		Body:    "<p>Hi there</p>",
	})

	// Параметры сортируются по имени при кодировании
	expected := "https://mail.google.com/mail/?body=Hi+there&fs=1&su=Hello+World&to=a%40x.com&view=cm"
	if got != expected {
		t.Errorf("ComposeURL() = %q, ожидалось %q", got, expected)
	}
}

func TestComposeURLDefaults(t *testing.T) {
	svc := &DraftService{}

	got := svc.ComposeURL(ComposeRequest{})

	// Пустая тема заменяется заглушкой, пустые поля адресатов опускаются
	if !strings.Contains(got, "su=%28no+subject%29") {
		t.Errorf("нет заглушки темы: %q", got)
	}
	for _, absent := range []string{"to=", "cc=", "bcc=", "body="} {
		if strings.Contains(got, absent) {
			t.Errorf("пустой параметр %q попал в ссылку: %q", absent, got)
		}
	}
}

func TestComposeURLHTMLBody(t *testing.T) {
	svc := &DraftService{}

	// HTML-тело преобразуется в текст перед кодированием
	got := svc.ComposeURL(ComposeRequest{Subject: "x", Body: "<p>line one</p><p>line two</p>"})
	if !strings.Contains(got, "body=line+one%0Aline+two") {
		t.Errorf("тело не преобразовано в текст: %q", got)
	}
}

func TestSendNormalizesRecipients(t *testing.T) {
	svc := &DraftService{}

	// Адреса из одних пробелов и разделителей выбрасываются,
	// после чего список получателей пуст
	err := svc.Send(SendRequest{
		To:   []string{"  ", " , ; "},
		Text: "hello",
	})
	if !errors.Is(err, ErrNoRecipients) {
		t.Errorf("ожидалась ErrNoRecipients, получено: %v", err)
	}
}

func TestGenerateUnknownType(t *testing.T) {
	svc := &DraftService{}

	// Тип проверяется до обращения к настройкам
	_, err := svc.Generate("tenant-001", domain.MeetingSummary{}, domain.DefaultInclusions(), "everything")
	if !errors.Is(err, ErrUnknownGenerateType) {
		t.Errorf("ожидалась ErrUnknownGenerateType, получено: %v", err)
	}
}

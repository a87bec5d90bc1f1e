package mailer

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/Dhivija-tekisho/emaildraft/internal/config"
	"github.com/Dhivija-tekisho/emaildraft/internal/domain"
)

func testMailer() *SMTPMailer {
	return New(
		config.SMTPConfig{Host: "localhost", Port: 587},
		config.LimitsConfig{MaxAttachmentSize: 1024, MaxRecipients: 3},
	)
}

// Проверки выполняются до подключения к SMTP-серверу,
// поэтому тесты не требуют сети
func TestSendValidation(t *testing.T) {
	m := testMailer()

	err := m.Send(Message{Text: "hello"})
	if !errors.Is(err, ErrNoRecipients) {
		t.Errorf("без получателей: %v", err)
	}

	err = m.Send(Message{To: []string{"a@x.com"}})
	if !errors.Is(err, ErrEmptyBody) {
		t.Errorf("без тела: %v", err)
	}

	err = m.Send(Message{
		To:   []string{"a@x.com", "b@x.com"},
		CC:   []string{"c@x.com"},
		BCC:  []string{"d@x.com"},
		Text: "hello",
	})
	if !errors.Is(err, ErrTooManyRecipients) {
		t.Errorf("сверх лимита получателей: %v", err)
	}
}

func TestSendBadAttachment(t *testing.T) {
	m := testMailer()

	err := m.Send(Message{
		To:   []string{"a@x.com"},
		Text: "hello",
		Attachments: []domain.EmailAttachment{
			{Name: "broken.png", Data: "data:image/png;base64,@@@not-base64@@@"},
		},
	})
	if !errors.Is(err, ErrBadAttachment) {
		t.Errorf("битое вложение: %v", err)
	}
}

func TestSendAttachmentTooLarge(t *testing.T) {
	m := testMailer()

	big := base64.StdEncoding.EncodeToString(make([]byte, 2048))
	err := m.Send(Message{
		To:   []string{"a@x.com"},
		Text: "hello",
		Attachments: []domain.EmailAttachment{
			{Name: "big.bin", Data: "data:application/octet-stream;base64," + big},
		},
	})
	if !errors.Is(err, ErrAttachmentTooLarge) {
		t.Errorf("вложение сверх лимита: %v", err)
	}
}

func TestDecodeDataURL(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("hello"))

	data, contentType, err := decodeDataURL(domain.EmailAttachment{
		Name: "hello.png",
		Data: "data:image/png;base64," + payload,
	})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello" {
		t.Errorf("содержимое: %q", data)
	}
	if contentType != "image/png" {
		t.Errorf("MIME-тип из data URL: %q", contentType)
	}

	// Чистый base64 без префикса data: тип берётся из поля вложения
	data, contentType, err = decodeDataURL(domain.EmailAttachment{
		Name: "hello.txt",
		Type: "text/plain",
		Data: payload,
	})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello" || contentType != "text/plain" {
		t.Errorf("чистый base64: %q, %q", data, contentType)
	}

	// Без типа подставляется application/octet-stream
	_, contentType, err = decodeDataURL(domain.EmailAttachment{Data: payload})
	if err != nil {
		t.Fatal(err)
	}
	if contentType != "application/octet-stream" {
		t.Errorf("тип по умолчанию: %q", contentType)
	}

	// data URL без запятой — ошибка
	if _, _, err := decodeDataURL(domain.EmailAttachment{Data: "data:image/png;base64"}); err == nil {
		t.Error("ожидалась ошибка для data URL без содержимого")
	}
}

func TestFormatFrom(t *testing.T) {
	if got := formatFrom("j@x.com", "John Doe"); got != "John Doe <j@x.com>" {
		t.Errorf("с именем: %q", got)
	}
	if got := formatFrom("j@x.com", ""); got != "j@x.com" {
		t.Errorf("без имени: %q", got)
	}
	if got := formatFrom("j@x.com", "  "); got != "j@x.com" {
		t.Errorf("имя из пробелов: %q", got)
	}
}

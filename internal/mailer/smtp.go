// Package mailer отправляет готовые письма через внешний SMTP-сервер.
package mailer

import (
	"bytes"
	"crypto/tls"
	"encoding/base64"
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/jordan-wright/email"

	"github.com/Dhivija-tekisho/emaildraft/internal/config"
	"github.com/Dhivija-tekisho/emaildraft/internal/domain"
)

// Ошибки отправки
var (
	ErrNoRecipients       = errors.New("не указан ни один получатель")
	ErrEmptyBody          = errors.New("тело письма пустое")
	ErrTooManyRecipients  = errors.New("слишком много получателей")
	ErrAttachmentTooLarge = errors.New("вложение слишком большое")
	ErrBadAttachment      = errors.New("не удалось разобрать вложение")
)

// Message — готовое к отправке письмо
type Message struct {
	From        string                   // Адрес отправителя
	FromName    string                   // Имя отправителя (необязательно)
	To          []string                 // Получатели
	CC          []string                 // Копия
	BCC         []string                 // Скрытая копия
	Subject     string                   // Тема
	Text        string                   // Текстовая версия
	HTML        string                   // HTML-версия
	Attachments []domain.EmailAttachment // Вложения (base64 data URL)
}

// SMTPMailer — клиент исходящей почты
type SMTPMailer struct {
	cfg    config.SMTPConfig
	limits config.LimitsConfig
}

// New создаёт почтовый клиент
func New(cfg config.SMTPConfig, limits config.LimitsConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, limits: limits}
}

// Send отправляет письмо
// Требуется хотя бы один получатель и хотя бы одна из версий тела
func (m *SMTPMailer) Send(msg Message) error {
	if len(msg.To) == 0 {
		return ErrNoRecipients
	}
	if total := len(msg.To) + len(msg.CC) + len(msg.BCC); total > m.limits.MaxRecipients {
		return ErrTooManyRecipients
	}
	if msg.Text == "" && msg.HTML == "" {
		return ErrEmptyBody
	}

	e := email.NewEmail()
	e.From = formatFrom(msg.From, msg.FromName)
	e.To = msg.To
	if len(msg.CC) > 0 {
		e.Cc = msg.CC
	}
	if len(msg.BCC) > 0 {
		e.Bcc = msg.BCC
	}
	e.Subject = msg.Subject

	if msg.Text != "" {
		e.Text = []byte(msg.Text)
	}
	if msg.HTML != "" {
		e.HTML = []byte(msg.HTML)
	}

	for _, att := range msg.Attachments {
		data, contentType, err := decodeDataURL(att)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrBadAttachment, att.Name)
		}
		if len(data) > m.limits.MaxAttachmentSize {
			return fmt.Errorf("%w: %s", ErrAttachmentTooLarge, att.Name)
		}
		if _, err := e.Attach(bytes.NewReader(data), att.Name, contentType); err != nil {
			return fmt.Errorf("не удалось прикрепить %s: %w", att.Name, err)
		}
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}

	var err error
	switch {
	case m.cfg.Secure && m.cfg.Port == 465:
		// Порт 465 — неявный TLS без STARTTLS
		err = e.SendWithTLS(addr, auth, &tls.Config{ServerName: m.cfg.Host})
	case m.cfg.Secure:
		err = e.SendWithStartTLS(addr, auth, &tls.Config{ServerName: m.cfg.Host})
	default:
		err = e.Send(addr, auth)
	}

	if err != nil {
		return fmt.Errorf("ошибка отправки письма: %w", err)
	}

	return nil
}

// formatFrom формирует заголовок From с именем отправителя, если оно задано
func formatFrom(addr, name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return addr
	}
	return fmt.Sprintf("%s <%s>", name, addr)
}

// decodeDataURL извлекает содержимое вложения из base64 data URL
// Формат: data:image/png;base64,iVBORw0KG...
// Строка без префикса data: считается чистым base64
func decodeDataURL(att domain.EmailAttachment) ([]byte, string, error) {
	encoded := att.Data
	contentType := att.Type

	if strings.HasPrefix(att.Data, "data:") {
		header, rest, found := strings.Cut(att.Data, ",")
		if !found {
			return nil, "", fmt.Errorf("data URL без содержимого")
		}
		encoded = rest

		// Тип берём из заголовка data URL: data:image/png;base64
		meta := strings.TrimPrefix(header, "data:")
		if mime, _, ok := strings.Cut(meta, ";"); ok && mime != "" {
			contentType = mime
		}
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", err
	}

	return data, contentType, nil
}

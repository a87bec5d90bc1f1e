package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/Dhivija-tekisho/emaildraft/internal/config"
	"github.com/Dhivija-tekisho/emaildraft/internal/domain"
	"github.com/Dhivija-tekisho/emaildraft/internal/generator"
	"github.com/Dhivija-tekisho/emaildraft/internal/mailer"
	"github.com/Dhivija-tekisho/emaildraft/internal/repository"
	"github.com/Dhivija-tekisho/emaildraft/internal/template"
)

// Ошибки сервиса
var (
	ErrNoRecipients         = errors.New("не указан ни один получатель")
	ErrEmptyBody            = errors.New("тело письма пустое")
	ErrFromDomainNotAllowed = errors.New("адрес отправителя не разрешён для этого домена")
	ErrUnknownGenerateType  = errors.New("неизвестный тип генерации")
	ErrInvalidAction        = errors.New("недопустимое действие для журнала")
	ErrDraftNotFound        = errors.New("черновик не найден")
)

// Тема по умолчанию для писем без темы
const noSubject = "(no subject)"

// GenerateType — что именно нужно сгенерировать
type GenerateType string

const (
	GenerateSubject GenerateType = "subject" // Только тему
	GenerateBody    GenerateType = "body"    // Только тело
	GenerateAll     GenerateType = "all"     // Тему и тело
)

// GenerateResult — результат генерации черновика
type GenerateResult struct {
	Subject string `json:"subject,omitempty"` // Тема
	HTML    string `json:"html,omitempty"`    // HTML-версия тела
	Text    string `json:"text,omitempty"`    // Текстовая версия тела
}

// SendRequest — запрос на отправку письма
type SendRequest struct {
	To          []string                 `json:"to"`
	CC          []string                 `json:"cc,omitempty"`
	BCC         []string                 `json:"bcc,omitempty"`
	Subject     string                   `json:"subject"`
	Text        string                   `json:"text,omitempty"`
	HTML        string                   `json:"html,omitempty"`
	FromEmail   string                   `json:"from_email,omitempty"`
	FromName    string                   `json:"from_name,omitempty"`
	Attachments []domain.EmailAttachment `json:"attachments,omitempty"`
	MeetingID   string                   `json:"meeting_id,omitempty"` // Для записи в журнал
}

// ComposeRequest — запрос на сборку ссылки Gmail Compose
type ComposeRequest struct {
	To      string `json:"to,omitempty"`
	CC      string `json:"cc,omitempty"`
	BCC     string `json:"bcc,omitempty"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body,omitempty"` // HTML или текст
}

// DraftService — сервис генерации, отправки и учёта черновиков
type DraftService struct {
	settings *SettingsService
	activity *repository.ActivityRepository
	cache    *repository.DraftCache
	mail     *mailer.SMTPMailer
	smtpCfg  config.SMTPConfig
}

// NewDraftService создаёт новый сервис
func NewDraftService(
	settings *SettingsService,
	activity *repository.ActivityRepository,
	cache *repository.DraftCache,
	mail *mailer.SMTPMailer,
	smtpCfg config.SMTPConfig,
) *DraftService {
	return &DraftService{
		settings: settings,
		activity: activity,
		cache:    cache,
		mail:     mail,
		smtpCfg:  smtpCfg,
	}
}

// Generate формирует тему и/или тело письма по данным встречи
// и сохранённым настройкам арендатора. Генерация детерминированная:
// повторный вызов с теми же аргументами даёт тот же результат
func (s *DraftService) Generate(
	tenantID string,
	meeting domain.MeetingSummary,
	inclusions domain.EmailInclusions,
	genType GenerateType,
) (*GenerateResult, error) {
	if genType == "" {
		genType = GenerateAll
	}
	if genType != GenerateSubject && genType != GenerateBody && genType != GenerateAll {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerateType, genType)
	}

	settings, err := s.settings.Get(tenantID)
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{}

	if genType == GenerateSubject || genType == GenerateAll {
		result.Subject = generator.GenerateSubject(meeting, settings.CompanyProfile)
	}

	if genType == GenerateBody || genType == GenerateAll {
		set, err := generator.Assemble(meeting, settings, inclusions)
		if err != nil {
			return nil, err
		}
		result.HTML = template.Render(settings.EmailSettings.EmailBodyTemplate, set, settings.CompanyProfile)
		result.Text = generator.ToPlainText(result.HTML)
	}

	GlobalStats.IncrementGenerated()
	return result, nil
}

// Send отправляет письмо и записывает действие в журнал
func (s *DraftService) Send(req SendRequest) error {
	// Нормализуем списки получателей: обрезаем пробелы, выбрасываем
	// пустые элементы. Фронтенд может прислать адреса с мусором
	req.To = normalizeRecipients(req.To)
	req.CC = normalizeRecipients(req.CC)
	req.BCC = normalizeRecipients(req.BCC)

	if len(req.To) == 0 {
		return ErrNoRecipients
	}
	if req.Text == "" && req.HTML == "" {
		return ErrEmptyBody
	}

	// Ограничение домена отправителя для пользовательского from_email
	if req.FromEmail != "" && s.smtpCfg.AllowedFromDomain != "" {
		suffix := "@" + strings.ToLower(s.smtpCfg.AllowedFromDomain)
		if !strings.HasSuffix(strings.ToLower(req.FromEmail), suffix) {
			return ErrFromDomainNotAllowed
		}
	}

	from := req.FromEmail
	if from == "" {
		from = s.smtpCfg.From
	}

	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = noSubject
	}

	err := s.mail.Send(mailer.Message{
		From:        from,
		FromName:    req.FromName,
		To:          req.To,
		CC:          req.CC,
		BCC:         req.BCC,
		Subject:     subject,
		Text:        req.Text,
		HTML:        req.HTML,
		Attachments: req.Attachments,
	})
	if err != nil {
		GlobalStats.IncrementFailed()
		return err
	}

	GlobalStats.IncrementSent()

	// Журнал не критичен для отправки: ошибку записи не возвращаем
	if req.MeetingID != "" {
		body := req.HTML
		if body == "" {
			body = req.Text
		}
		_ = s.activity.Append(&domain.ActivityEntry{
			MeetingID: req.MeetingID,
			Action:    domain.ActionSent,
			Draft: &domain.EmailDraft{
				To:      strings.Join(req.To, ", "),
				CC:      strings.Join(req.CC, ", "),
				BCC:     strings.Join(req.BCC, ", "),
				Subject: subject,
				Body:    body,
			},
		})
	}

	return nil
}

// normalizeRecipients приводит список адресов к чистому виду
// Каждый элемент может сам содержать несколько адресов через запятую
// или точку с запятой
func normalizeRecipients(raw []string) []string {
	if len(raw) == 0 {
		return nil
	}
	return generator.SplitRecipients(strings.Join(raw, ","))
}

// ComposeURL собирает ссылку на окно создания письма в Gmail
// Тело всегда передаётся текстом: HTML предварительно преобразуется
func (s *DraftService) ComposeURL(req ComposeRequest) string {
	params := url.Values{}
	params.Set("view", "cm")
	params.Set("fs", "1")

	if req.To != "" {
		params.Set("to", req.To)
	}
	if req.CC != "" {
		params.Set("cc", req.CC)
	}
	if req.BCC != "" {
		params.Set("bcc", req.BCC)
	}

	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = noSubject
	}
	params.Set("su", subject)

	if req.Body != "" {
		params.Set("body", generator.ToPlainText(req.Body))
	}

	return "https://mail.google.com/mail/?" + params.Encode()
}

// SaveDraft сохраняет снимок черновика в кэше и отмечает действие в журнале
func (s *DraftService) SaveDraft(ctx context.Context, meetingID string, draft *domain.EmailDraft) error {
	if err := s.cache.Save(ctx, meetingID, draft); err != nil {
		return err
	}

	_ = s.activity.Append(&domain.ActivityEntry{
		MeetingID: meetingID,
		Action:    domain.ActionSaved,
		Draft:     draft,
	})

	return nil
}

// GetDraft возвращает сохранённый черновик встречи
func (s *DraftService) GetDraft(ctx context.Context, meetingID string) (*domain.EmailDraft, error) {
	draft, err := s.cache.Get(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, ErrDraftNotFound
	}

	_ = s.activity.Append(&domain.ActivityEntry{
		MeetingID: meetingID,
		Action:    domain.ActionOpened,
	})

	return draft, nil
}

// RecordActivity добавляет произвольную запись в журнал действий
func (s *DraftService) RecordActivity(meetingID string, action domain.ActivityAction, draft *domain.EmailDraft) error {
	if !domain.ValidAction(action) {
		return fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}

	return s.activity.Append(&domain.ActivityEntry{
		MeetingID: meetingID,
		Action:    action,
		Draft:     draft,
	})
}

// GetActivity возвращает журнал действий для встречи
func (s *DraftService) GetActivity(meetingID string) ([]*domain.ActivityEntry, error) {
	return s.activity.GetByMeetingID(meetingID)
}

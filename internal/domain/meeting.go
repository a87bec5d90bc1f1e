package domain

// MeetingMode — режим проведения встречи
type MeetingMode string

const (
	ModeVirtual  MeetingMode = "Virtual"   // Онлайн-встреча (письмо-приглашение)
	ModeInPerson MeetingMode = "In-Person" // Личная встреча (follow-up письмо)
)

// MeetingSummary — данные встречи, на основе которых генерируется письмо
// Создаётся один раз на сессию и не изменяется генератором
type MeetingSummary struct {
	ID               string      `json:"id"`                         // Уникальный идентификатор
	LeadID           string      `json:"leadId,omitempty"`           // ID лида (клиента)
	RecipientName    string      `json:"recipientName"`              // Имя получателя
	RecipientEmail   string      `json:"recipientEmail"`             // Email получателя
	AdditionalEmails []string    `json:"additionalEmails,omitempty"` // Дополнительные получатели
	MeetingDate      string      `json:"meetingDate"`                // Дата прошедшей встречи
	MeetingTime      string      `json:"meetingTime"`                // Время прошедшей встречи
	Summary          string      `json:"summary"`                    // Свободный текст с итогами
	ActionItems      []string    `json:"actionItems"`                // Список задач (порядок важен)
	KeyDecisions     []string    `json:"keyDecisions"`               // Список принятых решений
	Mode             MeetingMode `json:"mode,omitempty"`             // Virtual или In-Person
	MOM              string      `json:"mom,omitempty"`              // Minutes of Meeting — протокол встречи

	// Поля для писем-приглашений (Virtual)
	Platform      string `json:"platform,omitempty"`      // Zoom, Teams и т.д.
	ScheduledDate string `json:"scheduledDate,omitempty"` // Дата предстоящей встречи
	ScheduledTime string `json:"scheduledTime,omitempty"` // Время предстоящей встречи
	MeetingLink   string `json:"meetingLink,omitempty"`   // Ссылка на встречу
	CompanyName   string `json:"companyName,omitempty"`   // Компания получателя
}

// IsVirtual проверяет, является ли встреча онлайн-встречей
// Для таких встреч генерируется приглашение, а не follow-up
func (m *MeetingSummary) IsVirtual() bool {
	return m.Mode == ModeVirtual
}

// EmailAttachment — вложение к письму
// Данные передаются как base64 data URL (data:image/png;base64,...)
type EmailAttachment struct {
	ID   string `json:"id,omitempty"`   // Идентификатор на стороне клиента
	Name string `json:"name"`           // Имя файла
	Type string `json:"type"`           // MIME-тип
	Size int64  `json:"size,omitempty"` // Размер в байтах
	Data string `json:"data"`           // base64 data URL
}

// EmailInclusions — переключатели блоков содержимого письма
type EmailInclusions struct {
	MeetingSummary   bool     `json:"meetingSummary"`   // Включать итоги встречи
	ActionItems      bool     `json:"actionItems"`      // Включать список задач
	UserProfile      bool     `json:"userProfile"`      // Включать профиль отправителя
	CompanyProfile   bool     `json:"companyProfile"`   // Включать блок о компании
	SelectedServices []string `json:"selectedServices"` // ID выбранных услуг
}

// DefaultInclusions возвращает настройки включения по умолчанию:
// все блоки включены, услуги не выбраны
func DefaultInclusions() EmailInclusions {
	return EmailInclusions{
		MeetingSummary: true,
		ActionItems:    true,
		UserProfile:    true,
		CompanyProfile: true,
	}
}

// EmailDraft — черновик письма, редактируемый пользователем
// Получатели хранятся как свободный текст через запятую или точку с запятой
type EmailDraft struct {
	To             string            `json:"to"`                  // Получатели
	CC             string            `json:"cc"`                  // Копия
	BCC            string            `json:"bcc"`                 // Скрытая копия
	Subject        string            `json:"subject"`             // Тема
	Body           string            `json:"body"`                // Тело (HTML или текст)
	Inclusions     EmailInclusions   `json:"inclusions"`          // Снимок переключателей
	Attachments    []EmailAttachment `json:"attachments"`         // Вложения
	SelfieAttached bool              `json:"selfieAttached"`      // Прикреплено ли селфи
	SelfieURL      string            `json:"selfieUrl,omitempty"` // Ссылка на селфи
}

package domain

// UserProfile — профиль отправителя письма
type UserProfile struct {
	Name     string `json:"name"`               // Имя и фамилия
	JobTitle string `json:"jobTitle"`           // Должность
	Phone    string `json:"phone"`              // Телефон
	Email    string `json:"email"`              // Email
	WhatsApp string `json:"whatsapp,omitempty"` // WhatsApp (необязательно)
	Location string `json:"location,omitempty"` // Город (необязательно)
}

// CompanyProfile — профиль компании отправителя
type CompanyProfile struct {
	CompanyName  string `json:"companyName"`            // Название компании
	Website      string `json:"website"`                // Сайт (может быть без схемы)
	Address      string `json:"address"`                // Адрес
	Tagline      string `json:"tagline"`                // Слоган
	LegalName    string `json:"legalName,omitempty"`    // Юридическое название
	SupportEmail string `json:"supportEmail,omitempty"` // Email поддержки
	LogoURL      string `json:"logoUrl,omitempty"`      // Логотип: абсолютный URL или путь относительно сайта
}

// ServiceItem — услуга компании
// Для конкретного письма выбирается подмножество включённых услуг по списку ID
type ServiceItem struct {
	ID          string `json:"id"`          // Уникальный идентификатор
	Name        string `json:"name"`        // Название услуги
	Description string `json:"description"` // Краткое описание
	Enabled     bool   `json:"enabled"`     // Доступна ли услуга для выбора
}

// Tone — тон письма
type Tone string

const (
	ToneProfessional Tone = "professional" // Формальный деловой тон
	ToneFriendly     Tone = "friendly"     // Дружелюбный тон
)

// Length — желаемая длина письма
// Информационное поле: на детерминированную генерацию не влияет
type Length string

const (
	LengthShort    Length = "short"
	LengthDetailed Length = "detailed"
)

// CTAStyle — стиль призыва к действию
// Каждому значению соответствует фиксированное предложение в генераторе
type CTAStyle string

const (
	CTAScheduleCall        CTAStyle = "schedule_call"
	CTARequestConfirmation CTAStyle = "request_confirmation"
	CTAShareBrochure       CTAStyle = "share_brochure"
	CTASendProposal        CTAStyle = "send_proposal"
)

// BodyTemplate — визуальный шаблон письма
type BodyTemplate string

const (
	TemplateClassic  BodyTemplate = "classic"
	TemplateModern   BodyTemplate = "modern"
	TemplateMinimal  BodyTemplate = "minimal"
	TemplateColorful BodyTemplate = "colorful"
	TemplateElegant  BodyTemplate = "elegant"
)

// EmailSettings — настройки генерации писем
type EmailSettings struct {
	Tone                Tone         `json:"tone"`                // Тон письма
	Length              Length       `json:"length"`              // Длина (информационно)
	CTAStyle            CTAStyle     `json:"ctaStyle"`            // Стиль призыва к действию
	IncludeCompliance   bool         `json:"includeCompliance"`   // Добавлять юридический текст
	ComplianceText      string       `json:"complianceText"`      // Юридический текст
	SignatureTemplate   string       `json:"signatureTemplate"`   // HTML-шаблон подписи с {{переменными}}
	AutoAppendSignature bool         `json:"autoAppendSignature"` // Добавлять подпись автоматически
	EmailBodyTemplate   BodyTemplate `json:"emailBodyTemplate"`   // Выбранный визуальный шаблон
	SystemPrompt        string       `json:"systemPrompt"`        // Промпт для AI-бэкенда (генератором не используется)
}

// AppSettings — полный объект настроек приложения
// Передаётся в генератор как неизменяемое значение на каждый вызов
type AppSettings struct {
	UserProfile    UserProfile    `json:"userProfile"`
	CompanyProfile CompanyProfile `json:"companyProfile"`
	Services       []ServiceItem  `json:"services"`
	EmailSettings  EmailSettings  `json:"emailSettings"`
}

// DefaultSettings возвращает настройки по умолчанию
// Используются, пока пользователь не сохранил свои
func DefaultSettings() AppSettings {
	return AppSettings{
		UserProfile: UserProfile{
			Name:     "John Doe",
			JobTitle: "Business Development Manager",
			Phone:    "+1 (555) 123-4567",
			Email:    "john.doe@company.com",
			WhatsApp: "+1 (555) 123-4567",
			Location: "New York, NY",
		},
		CompanyProfile: CompanyProfile{
			CompanyName:  "TechVentures Inc.",
			Website:      "www.techventures.com",
			Address:      "123 Innovation Drive, Suite 400, New York, NY 10001",
			Tagline:      "Transforming Ideas into Digital Reality",
			LegalName:    "TechVentures International Inc.",
			SupportEmail: "support@techventures.com",
		},
		Services: []ServiceItem{
			{ID: "1", Name: "Custom Software Development", Description: "End-to-end software solutions", Enabled: true},
			{ID: "2", Name: "Cloud Migration Services", Description: "Seamless cloud transformation", Enabled: true},
			{ID: "3", Name: "AI & Machine Learning", Description: "Intelligent automation solutions", Enabled: false},
			{ID: "4", Name: "Digital Transformation", Description: "Business process optimization", Enabled: false},
		},
		EmailSettings: EmailSettings{
			Tone:              ToneProfessional,
			Length:            LengthDetailed,
			CTAStyle:          CTAScheduleCall,
			IncludeCompliance: false,
			ComplianceText:    "This email is intended for the addressed recipient only. If you have received this in error, please delete it.",
			SignatureTemplate: `<div style="font-family: Arial, sans-serif; margin-top: 20px; padding-top: 15px; border-top: 1px solid #e0e0e0;">
  <p style="margin: 0; font-weight: bold; color: #1a365d;">{{name}}</p>
  <p style="margin: 2px 0; color: #4a5568;">{{jobTitle}}</p>
  <p style="margin: 2px 0; color: #4a5568;">{{companyName}}</p>
  <p style="margin: 8px 0 2px 0; color: #718096; font-size: 13px;">{{phone}} | {{email}}</p>
  <p style="margin: 2px 0; color: #718096; font-size: 13px;">{{website}}</p>
</div>`,
			AutoAppendSignature: true,
			EmailBodyTemplate:   TemplateClassic,
			SystemPrompt:        "You are a professional email drafting assistant. Generate follow-up emails based on meeting summaries.",
		},
	}
}

package generator

import (
	"errors"
	"fmt"

	"github.com/Dhivija-tekisho/emaildraft/internal/domain"
)

// Ошибки генератора
var (
	// ErrUnknownCTAStyle — стиль призыва к действию не найден в таблице
	// Это ошибка конфигурации: молча подставлять пустую строку нельзя,
	// текст призыва виден получателю
	ErrUnknownCTAStyle = errors.New("неизвестный стиль призыва к действию")
)

// BlockKind — тип смыслового блока письма
type BlockKind int

const (
	BlockGreeting       BlockKind = iota // Приветствие
	BlockIntro                           // Вступительный абзац
	BlockMeetingDetails                  // Детали предстоящей встречи (только приглашения)
	BlockMeetingSummary                  // Итоги прошедшей встречи
	BlockActionItems                     // Список задач
	BlockKeyDecisions                    // Принятые решения
	BlockCompanyProfile                  // О компании
	BlockServices                        // Услуги
	BlockCTA                             // Призыв к действию
	BlockClosing                         // Завершающая фраза
	BlockCompliance                      // Юридический текст
	BlockSignature                       // Подпись
)

// Заголовки блоков
// Единые для всех визуальных шаблонов: после удаления разметки
// содержимое письма не должно зависеть от выбранного шаблона
const (
	TitleMeetingSummary = "Meeting Summary"
	TitleActionItems    = "Action Items & Next Steps"
	TitleKeyDecisions   = "Key Decisions"
	TitleServices       = "Our Services"
	TitleMeetingDetails = "Meeting Details"
)

// MeetingDetails — данные блока деталей предстоящей встречи
// Пустые необязательные поля уже заменены заглушками
type MeetingDetails struct {
	Date     string // Дата встречи
	Time     string // Время встречи
	Platform string // Платформа (по умолчанию "TBD")
	Link     string // Ссылка (по умолчанию "To be confirmed")
}

// Block — один смысловой блок письма
// Заполнены только поля, относящиеся к типу блока
type Block struct {
	Kind         BlockKind            // Тип блока
	Title        string               // Заголовок секции (если есть)
	Text         string               // Текст абзаца
	Items        []string             // Элементы списка
	Ordered      bool                 // Нумерованный ли список
	Services     []domain.ServiceItem // Услуги (для BlockServices)
	Details      *MeetingDetails      // Детали встречи (для BlockMeetingDetails)
	WebsiteURL   string               // Ссылка на сайт (для BlockCompanyProfile)
	WebsiteLabel string               // Текст ссылки на сайт
	HTML         string               // Готовый HTML (для BlockSignature)
}

// BlockSet — упорядоченный набор блоков письма
// Порядок блоков фиксирован и не зависит от визуального шаблона
type BlockSet struct {
	Blocks []Block
}

// Таблица призывов к действию
var ctaMessages = map[domain.CTAStyle]string{
	domain.CTAScheduleCall:        "Would you be available for a follow-up call this week? Let me know your preferred time.",
	domain.CTARequestConfirmation: "Could you please confirm receipt of this email and let me know your thoughts?",
	domain.CTAShareBrochure:       "I'd be happy to share our detailed brochure. Would you like me to send it over?",
	domain.CTASendProposal:        "I'll prepare a detailed proposal based on our discussion. Expect it within the next few days.",
}

// Assemble собирает упорядоченный набор блоков письма
// Чистая функция: результат полностью определяется аргументами
//
// Порядок блоков: приветствие → вступление → [детали встречи] →
// [итоги] → [задачи] → [решения] → [о компании] → [услуги] →
// призыв к действию → завершение → [юридический текст] → [подпись]
func Assemble(
	meeting domain.MeetingSummary,
	settings domain.AppSettings,
	inclusions domain.EmailInclusions,
) (BlockSet, error) {
	es := settings.EmailSettings
	company := settings.CompanyProfile
	isVirtual := meeting.IsVirtual()

	cta, ok := ctaMessages[es.CTAStyle]
	if !ok {
		return BlockSet{}, fmt.Errorf("%w: %q", ErrUnknownCTAStyle, es.CTAStyle)
	}

	var blocks []Block

	// Приветствие и вступление зависят от тона и типа письма
	blocks = append(blocks, Block{Kind: BlockGreeting, Text: greeting(meeting, es.Tone)})
	blocks = append(blocks, Block{Kind: BlockIntro, Text: intro(meeting, company, es.Tone, isVirtual)})

	// Детали предстоящей встречи — только для приглашений
	// и только если заданы дата и время
	if isVirtual && meeting.ScheduledDate != "" && meeting.ScheduledTime != "" {
		blocks = append(blocks, Block{
			Kind:    BlockMeetingDetails,
			Title:   TitleMeetingDetails,
			Details: meetingDetails(meeting),
		})
	}

	// Итоги встречи: в приглашениях не показываются независимо от флага —
	// встреча ещё не состоялась
	if inclusions.MeetingSummary && !isVirtual {
		blocks = append(blocks, Block{
			Kind:  BlockMeetingSummary,
			Title: TitleMeetingSummary,
			Text:  meeting.Summary,
		})
	}

	if inclusions.ActionItems && len(meeting.ActionItems) > 0 {
		blocks = append(blocks, Block{
			Kind:    BlockActionItems,
			Title:   TitleActionItems,
			Items:   meeting.ActionItems,
			Ordered: true,
		})
	}

	// Решения не управляются флагом — показываются всегда, когда они есть
	if len(meeting.KeyDecisions) > 0 {
		blocks = append(blocks, Block{
			Kind:  BlockKeyDecisions,
			Title: TitleKeyDecisions,
			Items: meeting.KeyDecisions,
		})
	}

	if inclusions.CompanyProfile {
		blocks = append(blocks, Block{
			Kind:         BlockCompanyProfile,
			Title:        fmt.Sprintf("About %s", company.CompanyName),
			Text:         company.Tagline,
			WebsiteURL:   WebsiteHref(company.Website),
			WebsiteLabel: company.Website,
		})
	}

	if selected := selectedServices(settings.Services, inclusions.SelectedServices); len(selected) > 0 {
		blocks = append(blocks, Block{
			Kind:     BlockServices,
			Title:    TitleServices,
			Services: selected,
		})
	}

	blocks = append(blocks, Block{Kind: BlockCTA, Text: cta})
	blocks = append(blocks, Block{Kind: BlockClosing, Text: closing(es.Tone)})

	if es.IncludeCompliance && es.ComplianceText != "" {
		blocks = append(blocks, Block{Kind: BlockCompliance, Text: es.ComplianceText})
	}

	if es.AutoAppendSignature && es.SignatureTemplate != "" {
		blocks = append(blocks, Block{
			Kind: BlockSignature,
			HTML: RenderSignature(es.SignatureTemplate, settings.UserProfile, company),
		})
	}

	return BlockSet{Blocks: blocks}, nil
}

// greeting возвращает приветствие в зависимости от тона
func greeting(meeting domain.MeetingSummary, tone domain.Tone) string {
	if tone == domain.ToneProfessional {
		return fmt.Sprintf("Dear %s,", meeting.RecipientName)
	}
	return fmt.Sprintf("Hi %s,", meeting.RecipientName)
}

// intro возвращает вступительный абзац
// Четыре варианта: {приглашение, follow-up} x {формальный, дружелюбный}
func intro(meeting domain.MeetingSummary, company domain.CompanyProfile, tone domain.Tone, isVirtual bool) string {
	if isVirtual {
		if tone == domain.ToneProfessional {
			return fmt.Sprintf("You are invited to a meeting with %s.", company.CompanyName)
		}
		return "You're invited to join our meeting!"
	}
	if tone == domain.ToneProfessional {
		return fmt.Sprintf(
			"Thank you for taking the time to meet with me on %s at %s. It was a pleasure discussing with you.",
			meeting.MeetingDate, meeting.MeetingTime,
		)
	}
	return fmt.Sprintf("Great catching up with you on %s! Really enjoyed our conversation.", meeting.MeetingDate)
}

// closing возвращает завершающую фразу
func closing(tone domain.Tone) string {
	if tone == domain.ToneProfessional {
		return "Best regards,"
	}
	return "Looking forward to hearing from you!"
}

// meetingDetails собирает детали встречи с заглушками для пустых полей
func meetingDetails(meeting domain.MeetingSummary) *MeetingDetails {
	d := &MeetingDetails{
		Date:     meeting.ScheduledDate,
		Time:     meeting.ScheduledTime,
		Platform: meeting.Platform,
		Link:     meeting.MeetingLink,
	}
	if d.Platform == "" {
		d.Platform = "TBD"
	}
	if d.Link == "" {
		d.Link = "To be confirmed"
	}
	return d
}

// selectedServices возвращает выбранные услуги в порядке их объявления
// Учитываются только включённые услуги: отключённая услуга не попадёт
// в письмо, даже если её ID есть в списке выбранных
func selectedServices(services []domain.ServiceItem, selectedIDs []string) []domain.ServiceItem {
	if len(selectedIDs) == 0 {
		return nil
	}
	ids := make(map[string]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		ids[id] = true
	}

	var result []domain.ServiceItem
	for _, s := range services {
		if s.Enabled && ids[s.ID] {
			result = append(result, s)
		}
	}
	return result
}

// WebsiteHref превращает сохранённый адрес сайта в ссылку
// Если схема не указана — подставляется https://
func WebsiteHref(website string) string {
	if hasHTTPScheme(website) {
		return website
	}
	return "https://" + website
}

// hasHTTPScheme проверяет наличие http/https в начале адреса
func hasHTTPScheme(url string) bool {
	return len(url) >= 4 && url[:4] == "http"
}

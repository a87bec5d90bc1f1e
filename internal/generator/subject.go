package generator

import (
	"fmt"
	"strings"

	"github.com/Dhivija-tekisho/emaildraft/internal/domain"
)

// Максимальная длина темы, извлекаемой из протокола встречи
const subjectTopicLimit = 30

// GenerateSubject формирует тему письма из данных встречи
//
// Формат: "{Invitation|Follow-up}: {тема} | {компания отправителя}"
// Тема берётся из первой фразы протокола встречи (mom), при его отсутствии —
// из названия компании получателя, иначе подставляется "Project Discussion"
func GenerateSubject(meeting domain.MeetingSummary, company domain.CompanyProfile) string {
	emailType := "Follow-up"
	if meeting.IsVirtual() {
		emailType = "Invitation"
	}

	topic := meeting.CompanyName
	if topic == "" {
		topic = "Project Discussion"
	}

	if meeting.MOM != "" {
		if phrase := firstPhrase(meeting.MOM); phrase != "" {
			topic = truncate(phrase, subjectTopicLimit)
		}
	}

	return fmt.Sprintf("%s: %s | %s", emailType, topic, company.CompanyName)
}

// firstPhrase возвращает первую непустую фразу текста
// Фразы разделяются запятыми и точками
func firstPhrase(text string) string {
	phrases := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '.'
	})
	for _, p := range phrases {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// truncate обрезает строку до limit символов, добавляя многоточие
// Считаем руны, а не байты: тема может содержать не-ASCII символы
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

package domain

import "time"

// ActivityAction — тип действия над черновиком
type ActivityAction string

const (
	ActionSaved  ActivityAction = "saved"  // Черновик сохранён
	ActionOpened ActivityAction = "opened" // Черновик открыт
	ActionSent   ActivityAction = "sent"   // Письмо отправлено
	ActionCopied ActivityAction = "copied" // Текст скопирован
)

// ValidAction проверяет, допустимо ли действие для журнала
func ValidAction(a ActivityAction) bool {
	switch a {
	case ActionSaved, ActionOpened, ActionSent, ActionCopied:
		return true
	}
	return false
}

// ActivityEntry — запись журнала действий над черновиком
// Журнал append-only: записи никогда не изменяются и не удаляются
type ActivityEntry struct {
	ID        string         `json:"id"`              // Уникальный идентификатор (UUID)
	MeetingID string         `json:"meeting_id"`      // ID встречи
	Action    ActivityAction `json:"action"`          // Тип действия
	Draft     *EmailDraft    `json:"draft,omitempty"` // Снимок черновика на момент действия
	CreatedAt time.Time      `json:"created_at"`      // Время действия
}

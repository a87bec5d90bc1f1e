package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/Dhivija-tekisho/emaildraft/internal/domain"
)

// ActivityRepository — журнал действий над черновиками
// Журнал append-only: записи только добавляются
type ActivityRepository struct {
	db *sql.DB
}

// NewActivityRepository создаёт новый репозиторий
func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Append добавляет запись в журнал
func (r *ActivityRepository) Append(entry *domain.ActivityEntry) error {
	// Генерируем ID, если не задан
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	// Снимок черновика сериализуется в JSONB; записи без снимка допустимы
	var draft []byte
	if entry.Draft != nil {
		var err error
		draft, err = json.Marshal(entry.Draft)
		if err != nil {
			return err
		}
	}

	query := `
        INSERT INTO draft_activity (id, meeting_id, action, draft, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `

	_, err := r.db.Exec(query,
		entry.ID,
		entry.MeetingID,
		string(entry.Action),
		draft,
		entry.CreatedAt,
	)

	return err
}

// GetByMeetingID возвращает записи журнала для встречи, новые первыми
func (r *ActivityRepository) GetByMeetingID(meetingID string) ([]*domain.ActivityEntry, error) {
	query := `
        SELECT id, meeting_id, action, draft, created_at
        FROM draft_activity
        WHERE meeting_id = $1
        ORDER BY created_at DESC
    `

	rows, err := r.db.Query(query, meetingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.ActivityEntry
	for rows.Next() {
		entry := &domain.ActivityEntry{}
		var action string
		var draft []byte

		err := rows.Scan(&entry.ID, &entry.MeetingID, &action, &draft, &entry.CreatedAt)
		if err != nil {
			return nil, err
		}

		entry.Action = domain.ActivityAction(action)
		if len(draft) > 0 {
			entry.Draft = &domain.EmailDraft{}
			if err := json.Unmarshal(draft, entry.Draft); err != nil {
				return nil, err
			}
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

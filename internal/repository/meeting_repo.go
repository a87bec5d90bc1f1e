package repository

import (
	"database/sql"

	"github.com/lib/pq"

	"github.com/Dhivija-tekisho/emaildraft/internal/domain"
)

// MeetingRepository — репозиторий лидов и итогов встреч
// Данные пишутся внешним CRM-пайплайном, здесь только чтение
type MeetingRepository struct {
	db *sql.DB
}

// NewMeetingRepository создаёт новый репозиторий
func NewMeetingRepository(db *sql.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

// GetLeads возвращает всех лидов
func (r *MeetingRepository) GetLeads() ([]*domain.Lead, error) {
	query := `
        SELECT id, first_name, last_name, email, phone_number, company_name, job_title, location
        FROM leads
        ORDER BY last_name, first_name
    `

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*domain.Lead
	for rows.Next() {
		lead := &domain.Lead{}
		err := rows.Scan(
			&lead.ID,
			&lead.FirstName,
			&lead.LastName,
			&lead.Email,
			&lead.PhoneNumber,
			&lead.CompanyName,
			&lead.JobTitle,
			&lead.Location,
		)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return leads, nil
}

// GetLeadByID находит лида по ID
// Возвращает nil без ошибки, если лид не найден
func (r *MeetingRepository) GetLeadByID(id string) (*domain.Lead, error) {
	query := `
        SELECT id, first_name, last_name, email, phone_number, company_name, job_title, location
        FROM leads
        WHERE id = $1
    `

	lead := &domain.Lead{}
	err := r.db.QueryRow(query, id).Scan(
		&lead.ID,
		&lead.FirstName,
		&lead.LastName,
		&lead.Email,
		&lead.PhoneNumber,
		&lead.CompanyName,
		&lead.JobTitle,
		&lead.Location,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return lead, nil
}

// Колонки встречи в порядке, который ожидает scanMeeting
const meetingColumns = `
        id, lead_id, recipient_name, recipient_email, additional_emails,
        meeting_date, meeting_time, summary, action_items, key_decisions,
        mode, mom, platform, scheduled_date, scheduled_time, meeting_link, company_name
`

// GetMeetingsByLeadID возвращает встречи лида
func (r *MeetingRepository) GetMeetingsByLeadID(leadID string) ([]*domain.MeetingSummary, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE lead_id = $1 ORDER BY meeting_date DESC`

	rows, err := r.db.Query(query, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meetings []*domain.MeetingSummary
	for rows.Next() {
		meeting, err := scanMeeting(rows.Scan)
		if err != nil {
			return nil, err
		}
		meetings = append(meetings, meeting)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return meetings, nil
}

// GetMeetingByID находит встречу по ID
// Возвращает nil без ошибки, если встреча не найдена
func (r *MeetingRepository) GetMeetingByID(id string) (*domain.MeetingSummary, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE id = $1`

	meeting, err := scanMeeting(r.db.QueryRow(query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return meeting, nil
}

// scanMeeting читает одну строку результата в структуру встречи
func scanMeeting(scan func(dest ...interface{}) error) (*domain.MeetingSummary, error) {
	m := &domain.MeetingSummary{}
	var additionalEmails, actionItems, keyDecisions pq.StringArray
	var mode string

	err := scan(
		&m.ID,
		&m.LeadID,
		&m.RecipientName,
		&m.RecipientEmail,
		&additionalEmails,
		&m.MeetingDate,
		&m.MeetingTime,
		&m.Summary,
		&actionItems,
		&keyDecisions,
		&mode,
		&m.MOM,
		&m.Platform,
		&m.ScheduledDate,
		&m.ScheduledTime,
		&m.MeetingLink,
		&m.CompanyName,
	)
	if err != nil {
		return nil, err
	}

	m.AdditionalEmails = additionalEmails
	m.ActionItems = actionItems
	m.KeyDecisions = keyDecisions
	m.Mode = domain.MeetingMode(mode)

	return m, nil
}

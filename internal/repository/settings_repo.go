package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Dhivija-tekisho/emaildraft/internal/domain"
)

// SettingsRepository — репозиторий настроек приложения
// Настройки хранятся одним JSONB-документом на арендатора
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository создаёт новый репозиторий
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get возвращает настройки арендатора
// Если настройки ещё не сохранялись — возвращает nil без ошибки
func (r *SettingsRepository) Get(tenantID string) (*domain.AppSettings, error) {
	query := `SELECT payload FROM settings WHERE tenant_id = $1`

	var payload []byte
	err := r.db.QueryRow(query, tenantID).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var settings domain.AppSettings
	if err := json.Unmarshal(payload, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// Save сохраняет настройки арендатора, перезаписывая предыдущие
func (r *SettingsRepository) Save(tenantID string, settings *domain.AppSettings) error {
	payload, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	query := `
        INSERT INTO settings (tenant_id, payload, updated_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (tenant_id) DO UPDATE SET payload = $2, updated_at = $3
    `

	_, err = r.db.Exec(query, tenantID, payload, time.Now())
	return err
}

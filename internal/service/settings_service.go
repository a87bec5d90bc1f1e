package service

import (
	"github.com/Dhivija-tekisho/emaildraft/internal/domain"
	"github.com/Dhivija-tekisho/emaildraft/internal/repository"
)

// SettingsService — сервис настроек приложения
type SettingsService struct {
	repo *repository.SettingsRepository
}

// NewSettingsService создаёт новый сервис
func NewSettingsService(repo *repository.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// Get возвращает настройки арендатора
// Пока пользователь ничего не сохранил, действуют настройки по умолчанию
func (s *SettingsService) Get(tenantID string) (domain.AppSettings, error) {
	settings, err := s.repo.Get(tenantID)
	if err != nil {
		return domain.AppSettings{}, err
	}
	if settings == nil {
		return domain.DefaultSettings(), nil
	}
	return *settings, nil
}

// Update сохраняет настройки арендатора
// Пустые перечислимые поля заменяются значениями по умолчанию,
// чтобы генератор всегда получал валидную конфигурацию
func (s *SettingsService) Update(tenantID string, settings domain.AppSettings) error {
	if settings.EmailSettings.Tone == "" {
		settings.EmailSettings.Tone = domain.ToneProfessional
	}
	if settings.EmailSettings.Length == "" {
		settings.EmailSettings.Length = domain.LengthDetailed
	}
	if settings.EmailSettings.CTAStyle == "" {
		settings.EmailSettings.CTAStyle = domain.CTAScheduleCall
	}
	if settings.EmailSettings.EmailBodyTemplate == "" {
		settings.EmailSettings.EmailBodyTemplate = domain.TemplateClassic
	}

	return s.repo.Save(tenantID, &settings)
}

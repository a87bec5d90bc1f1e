package service

import (
	"errors"

	"github.com/Dhivija-tekisho/emaildraft/internal/domain"
	"github.com/Dhivija-tekisho/emaildraft/internal/repository"
)

// Ошибки сервиса
var (
	ErrLeadNotFound    = errors.New("лид не найден")
	ErrMeetingNotFound = errors.New("встреча не найдена")
)

// MeetingService — сервис лидов и итогов встреч
type MeetingService struct {
	repo *repository.MeetingRepository
}

// NewMeetingService создаёт новый сервис
func NewMeetingService(repo *repository.MeetingRepository) *MeetingService {
	return &MeetingService{repo: repo}
}

// GetLeads возвращает всех лидов
func (s *MeetingService) GetLeads() ([]*domain.Lead, error) {
	return s.repo.GetLeads()
}

// GetLeadByID возвращает лида по ID
func (s *MeetingService) GetLeadByID(id string) (*domain.Lead, error) {
	lead, err := s.repo.GetLeadByID(id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrLeadNotFound
	}
	return lead, nil
}

// GetMeetingsByLeadID возвращает встречи лида
func (s *MeetingService) GetMeetingsByLeadID(leadID string) ([]*domain.MeetingSummary, error) {
	// Проверяем существование лида
	lead, err := s.repo.GetLeadByID(leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrLeadNotFound
	}

	return s.repo.GetMeetingsByLeadID(leadID)
}

// GetMeetingByID возвращает встречу по ID
func (s *MeetingService) GetMeetingByID(id string) (*domain.MeetingSummary, error) {
	meeting, err := s.repo.GetMeetingByID(id)
	if err != nil {
		return nil, err
	}
	if meeting == nil {
		return nil, ErrMeetingNotFound
	}
	return meeting, nil
}

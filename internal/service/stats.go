package service

import (
	"sync"
	"time"
)

// Stats хранит статистику работы сервиса
type Stats struct {
	mu              sync.RWMutex // Мьютекс для безопасного доступа
	draftsGenerated int64
	emailsSent      int64
	sendFailures    int64
	lastSentAt      time.Time
}

// StatsSnapshot — копия статистики на момент запроса
type StatsSnapshot struct {
	DraftsGenerated int64     // Всего сгенерировано черновиков
	EmailsSent      int64     // Всего отправлено писем
	SendFailures    int64     // Неудачных отправок
	LastSentAt      time.Time // Время последней отправки
}

// GlobalStats — глобальная статистика
var GlobalStats = &Stats{}

// IncrementGenerated увеличивает счётчик сгенерированных черновиков
func (s *Stats) IncrementGenerated() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draftsGenerated++
}

// IncrementSent увеличивает счётчик отправленных писем
func (s *Stats) IncrementSent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emailsSent++
	s.lastSentAt = time.Now()
}

// IncrementFailed увеличивает счётчик неудачных отправок
func (s *Stats) IncrementFailed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sendFailures++
}

// GetStats возвращает копию статистики
func (s *Stats) GetStats() StatsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return StatsSnapshot{
		DraftsGenerated: s.draftsGenerated,
		EmailsSent:      s.emailsSent,
		SendFailures:    s.sendFailures,
		LastSentAt:      s.lastSentAt,
	}
}

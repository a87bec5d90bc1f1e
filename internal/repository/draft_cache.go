package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Dhivija-tekisho/emaildraft/internal/config"
	"github.com/Dhivija-tekisho/emaildraft/internal/domain"
)

// DraftCache — кэш снимков черновиков в Redis
// Позволяет вернуться к редактированию черновика в течение TTL;
// постоянная история остаётся в журнале draft_activity
type DraftCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDraftCache создаёт кэш и проверяет соединение с Redis
func NewDraftCache(cfg config.RedisConfig, ttl time.Duration) (*DraftCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("ошибка подключения к Redis: %w", err)
	}

	return &DraftCache{client: client, ttl: ttl}, nil
}

// draftKey формирует ключ черновика
func draftKey(meetingID string) string {
	return "draft:" + meetingID
}

// Save сохраняет снимок черновика для встречи
func (c *DraftCache) Save(ctx context.Context, meetingID string, draft *domain.EmailDraft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, draftKey(meetingID), payload, c.ttl).Err()
}

// Get возвращает снимок черновика для встречи
// Если черновика нет или срок истёк — возвращает nil без ошибки
func (c *DraftCache) Get(ctx context.Context, meetingID string) (*domain.EmailDraft, error) {
	payload, err := c.client.Get(ctx, draftKey(meetingID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	draft := &domain.EmailDraft{}
	if err := json.Unmarshal(payload, draft); err != nil {
		return nil, err
	}

	return draft, nil
}

// Close закрывает соединение с Redis
func (c *DraftCache) Close() error {
	return c.client.Close()
}

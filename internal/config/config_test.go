package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("SMTP_USER", "placeholder")
	t.Setenv("SMTP_FROM", "placeholder")
	os.Unsetenv("SMTP_USER")
	os.Unsetenv("SMTP_FROM")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() вернул ошибку: %v", err)
	}

	if cfg.Server.HTTPPort != 8080 {
		t.Errorf("HTTPPort = %d", cfg.Server.HTTPPort)
	}
	if cfg.Database.Name != "emaildraft" {
		t.Errorf("Database.Name = %q", cfg.Database.Name)
	}
	if cfg.Database.Password != "secret" {
		t.Errorf("Database.Password = %q", cfg.Database.Password)
	}
	if cfg.Redis.Port != 6379 {
		t.Errorf("Redis.Port = %d", cfg.Redis.Port)
	}
	if cfg.Limits.MaxAttachmentSize != 5242880 {
		t.Errorf("MaxAttachmentSize = %d", cfg.Limits.MaxAttachmentSize)
	}
	if cfg.Limits.MaxRecipients != 50 {
		t.Errorf("MaxRecipients = %d", cfg.Limits.MaxRecipients)
	}
	if cfg.Limits.DraftTTLHours != 24 {
		t.Errorf("DraftTTLHours = %d", cfg.Limits.DraftTTLHours)
	}

	// Без SMTP_USER и SMTP_FROM подставляется заглушка отправителя
	if cfg.SMTP.From != "no-reply@example.com" {
		t.Errorf("SMTP.From = %q", cfg.SMTP.From)
	}
}

func TestLoadFromFallsBackToUser(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("SMTP_USER", "sender@company.com")
	t.Setenv("SMTP_FROM", "")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SMTP.From != "sender@company.com" {
		t.Errorf("SMTP.From = %q, ожидался логин SMTP", cfg.SMTP.From)
	}
}

func TestLoadRequiresDBPassword(t *testing.T) {
	// t.Setenv регистрирует восстановление исходного значения,
	// затем переменная убирается полностью: envconfig считает
	// установленную пустую строку заданным значением
	t.Setenv("DB_PASSWORD", "placeholder")
	os.Unsetenv("DB_PASSWORD")

	if _, err := Load(); err == nil {
		t.Error("ожидалась ошибка без DB_PASSWORD")
	}
}

package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config — главная структура конфигурации приложения
// Все поля заполняются из переменных окружения
type Config struct {
	Server   ServerConfig   // Настройки HTTP-сервера
	Database DatabaseConfig // Настройки базы данных
	Redis    RedisConfig    // Настройки Redis
	SMTP     SMTPConfig     // Настройки отправки почты
	Limits   LimitsConfig   // Лимиты
}

// ServerConfig — настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort       int    `envconfig:"HTTP_PORT" default:"8080"`                        // Порт HTTP сервера
	AllowedOrigins string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:8080"` // CORS: разрешённые origin через запятую
}

// DatabaseConfig — настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`  // Адрес сервера БД
	Port     int    `envconfig:"DB_PORT" default:"5432"`       // Порт БД
	Name     string `envconfig:"DB_NAME" default:"emaildraft"` // Имя базы данных
	User     string `envconfig:"DB_USER" default:"postgres"`   // Пользователь БД
	Password string `envconfig:"DB_PASSWORD" required:"true"`  // Пароль БД (обязательный)
}

// RedisConfig — настройки подключения к Redis
// Redis хранит снимки черновиков между сессиями редактирования
type RedisConfig struct {
	Host string `envconfig:"REDIS_HOST" default:"localhost"` // Адрес Redis
	Port int    `envconfig:"REDIS_PORT" default:"6379"`      // Порт Redis
}

// SMTPConfig — настройки исходящей почты
type SMTPConfig struct {
	Host              string `envconfig:"SMTP_HOST" default:"localhost"` // Адрес SMTP-сервера
	Port              int    `envconfig:"SMTP_PORT" default:"587"`       // Порт SMTP
	User              string `envconfig:"SMTP_USER"`                     // Логин
	Password          string `envconfig:"SMTP_PASS"`                     // Пароль
	From              string `envconfig:"SMTP_FROM"`                     // Адрес отправителя по умолчанию
	Secure            bool   `envconfig:"SMTP_SECURE" default:"true"`    // Использовать TLS
	AllowedFromDomain string `envconfig:"ALLOWED_FROM_DOMAIN"`           // Если задан — from_email разрешён только из этого домена
}

// LimitsConfig — лимиты и ограничения
type LimitsConfig struct {
	MaxAttachmentSize int `envconfig:"MAX_ATTACHMENT_SIZE" default:"5242880"` // Макс. размер вложения (5 MB)
	MaxRecipients     int `envconfig:"MAX_RECIPIENTS" default:"50"`           // Макс. получателей в одном письме
	DraftTTLHours     int `envconfig:"DRAFT_TTL_HOURS" default:"24"`          // Время жизни черновика в кэше
}

// Load загружает конфигурацию из переменных окружения
// Сначала пытается прочитать файл .env, затем читает переменные окружения
func Load() (*Config, error) {
	// Если .env файла нет — не страшно, читаем из системных переменных
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}

	// Отправитель по умолчанию: логин SMTP, иначе заглушка
	if cfg.SMTP.From == "" {
		if cfg.SMTP.User != "" {
			cfg.SMTP.From = cfg.SMTP.User
		} else {
			cfg.SMTP.From = "no-reply@example.com"
		}
	}

	return &cfg, nil
}

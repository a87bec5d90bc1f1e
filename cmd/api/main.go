package main

// @title EmailDraft API
// @version 1.0
// @description Сервис генерации и отправки писем по итогам встреч
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@emaildraft.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @schemes http https

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Dhivija-tekisho/emaildraft/internal/config"
	"github.com/Dhivija-tekisho/emaildraft/internal/handler"
	"github.com/Dhivija-tekisho/emaildraft/internal/mailer"
	"github.com/Dhivija-tekisho/emaildraft/internal/repository"
	"github.com/Dhivija-tekisho/emaildraft/internal/service"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Ошибка загрузки конфигурации:", err)
	}

	fmt.Println("=== EmailDraft Server ===")

	// Подключаемся к базе данных
	fmt.Println("Подключение к PostgreSQL...")
	db, err := repository.NewPostgresDB(cfg.Database)
	if err != nil {
		log.Fatal("Ошибка подключения к БД:", err)
	}
	defer db.Close()
	fmt.Println("Подключение успешно!")

	// Подключаемся к Redis
	fmt.Println("Подключение к Redis...")
	ttl := time.Duration(cfg.Limits.DraftTTLHours) * time.Hour
	cache, err := repository.NewDraftCache(cfg.Redis, ttl)
	if err != nil {
		log.Fatal("Ошибка подключения к Redis:", err)
	}
	defer cache.Close()
	fmt.Println("Подключение успешно!")

	// Создаём репозитории
	settingsRepo := repository.NewSettingsRepository(db.DB)
	meetingRepo := repository.NewMeetingRepository(db.DB)
	activityRepo := repository.NewActivityRepository(db.DB)

	// Создаём почтовый клиент
	mail := mailer.New(cfg.SMTP, cfg.Limits)

	// Создаём сервисы
	settingsService := service.NewSettingsService(settingsRepo)
	meetingService := service.NewMeetingService(meetingRepo)
	draftService := service.NewDraftService(settingsService, activityRepo, cache, mail, cfg.SMTP)

	// Создаём обработчики
	emailHandler := handler.NewEmailHandler(draftService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	meetingHandler := handler.NewMeetingHandler(meetingService)
	draftHandler := handler.NewDraftHandler(draftService)

	// Создаём Fiber-приложение
	app := fiber.New(fiber.Config{
		AppName: "EmailDraft API",
	})

	// Настраиваем маршруты
	handler.SetupRoutes(app, cfg.Server.AllowedOrigins, emailHandler, settingsHandler, meetingHandler, draftHandler)

	// Запускаем HTTP-сервер в отдельной горутине
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
		if err := app.Listen(addr); err != nil {
			log.Printf("HTTP-сервер остановлен: %v", err)
		}
	}()

	fmt.Printf("\nHTTP API: http://localhost:%d\n", cfg.Server.HTTPPort)
	fmt.Println("\nНажмите Ctrl+C для остановки")

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nОстановка сервера...")
	app.Shutdown()
}

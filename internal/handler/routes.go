package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	"github.com/Dhivija-tekisho/emaildraft/internal/service"
)

// SetupRoutes настраивает все маршруты приложения
func SetupRoutes(
	app *fiber.App,
	allowedOrigins string,
	emailHandler *EmailHandler,
	settingsHandler *SettingsHandler,
	meetingHandler *MeetingHandler,
	draftHandler *DraftHandler,
) {
	// Middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type,Authorization,X-Tenant-ID",
	}))

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Проверка живости
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// API v1
	api := app.Group("/api/v1")

	// Статистика сервиса
	api.Get("/stats", func(c *fiber.Ctx) error {
		stats := service.GlobalStats.GetStats()
		return c.JSON(fiber.Map{
			"drafts_generated": stats.DraftsGenerated,
			"emails_sent":      stats.EmailsSent,
			"send_failures":    stats.SendFailures,
			"last_sent_at":     stats.LastSentAt.Format(time.RFC3339),
		})
	})

	// Email routes
	email := api.Group("/email")
	email.Post("/generate", emailHandler.Generate)
	email.Post("/send", emailHandler.Send)
	email.Post("/compose-url", emailHandler.ComposeURL)

	// Settings routes
	api.Get("/settings", settingsHandler.Get)
	api.Put("/settings", settingsHandler.Update)

	// Lead routes
	leads := api.Group("/leads")
	leads.Get("/", meetingHandler.GetLeads)
	leads.Get("/:id", meetingHandler.GetLead)
	leads.Get("/:id/meetings", meetingHandler.GetLeadMeetings)

	// Meeting routes
	meetings := api.Group("/meetings")
	meetings.Get("/:id", meetingHandler.GetMeeting)
	meetings.Get("/:id/activity", draftHandler.GetActivity)
	meetings.Post("/:id/activity", draftHandler.RecordActivity)

	// Draft routes
	drafts := api.Group("/drafts")
	drafts.Get("/:meetingID", draftHandler.GetDraft)
	drafts.Put("/:meetingID", draftHandler.SaveDraft)
}

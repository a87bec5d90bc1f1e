package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Dhivija-tekisho/emaildraft/internal/domain"
	"github.com/Dhivija-tekisho/emaildraft/internal/generator"
	"github.com/Dhivija-tekisho/emaildraft/internal/mailer"
	"github.com/Dhivija-tekisho/emaildraft/internal/service"
)

// EmailHandler — обработчик запросов генерации и отправки писем
type EmailHandler struct {
	service *service.DraftService
}

// NewEmailHandler создаёт новый обработчик
func NewEmailHandler(svc *service.DraftService) *EmailHandler {
	return &EmailHandler{service: svc}
}

// GenerateRequest — структура запроса на генерацию
type GenerateRequest struct {
	Meeting    domain.MeetingSummary   `json:"meeting"`              // Данные встречи
	Inclusions *domain.EmailInclusions `json:"inclusions,omitempty"` // Переключатели блоков (по умолчанию все включены)
	Type       service.GenerateType    `json:"type,omitempty"`       // subject | body | all
}

// ComposeURLResponse — ответ с собранной ссылкой
type ComposeURLResponse struct {
	URL string `json:"url"`
}

// SendResponse — ответ на успешную отправку
type SendResponse struct {
	Status string `json:"status"`
}

// Generate генерирует тему и/или тело письма
// @Summary Сгенерировать черновик письма
// @Description Детерминированно генерирует тему и/или тело письма по данным встречи и сохранённым настройкам
// @Tags email
// @Accept json
// @Produce json
// @Param request body GenerateRequest true "Данные встречи и параметры генерации"
// @Success 200 {object} service.GenerateResult "Сгенерированный черновик"
// @Failure 400 {object} ErrorResponse "Неверные параметры запроса"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /email/generate [post]
func (h *EmailHandler) Generate(c *fiber.Ctx) error {
	var req GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Неверный формат запроса",
		})
	}

	// Если переключатели не переданы — включаем все блоки
	inclusions := domain.DefaultInclusions()
	if req.Inclusions != nil {
		inclusions = *req.Inclusions
	}

	result, err := h.service.Generate(tenantID(c), req.Meeting, inclusions, req.Type)
	if err != nil {
		if errors.Is(err, generator.ErrUnknownCTAStyle) || errors.Is(err, service.ErrUnknownGenerateType) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error:   "Неверная конфигурация генерации",
				Details: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Внутренняя ошибка сервера",
		})
	}

	return c.JSON(result)
}

// Send отправляет письмо через SMTP
// @Summary Отправить письмо
// @Description Отправляет письмо с HTML и/или текстовой версией и вложениями
// @Tags email
// @Accept json
// @Produce json
// @Param request body service.SendRequest true "Письмо для отправки"
// @Success 200 {object} SendResponse "Письмо отправлено"
// @Failure 400 {object} ErrorResponse "Неверные параметры запроса"
// @Failure 500 {object} ErrorResponse "Ошибка отправки"
// @Router /email/send [post]
func (h *EmailHandler) Send(c *fiber.Ctx) error {
	var req service.SendRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Неверный формат запроса",
		})
	}

	if err := h.service.Send(req); err != nil {
		switch {
		case errors.Is(err, service.ErrNoRecipients):
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "Укажите хотя бы одного получателя",
			})
		case errors.Is(err, service.ErrEmptyBody):
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "Тело письма не может быть пустым",
			})
		case errors.Is(err, service.ErrFromDomainNotAllowed):
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "Адрес отправителя не разрешён для этого домена",
			})
		case errors.Is(err, mailer.ErrTooManyRecipients),
			errors.Is(err, mailer.ErrAttachmentTooLarge),
			errors.Is(err, mailer.ErrBadAttachment):
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error:   "Письмо не прошло проверку",
				Details: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "Не удалось отправить письмо",
			Details: err.Error(),
		})
	}

	return c.JSON(SendResponse{Status: "sent"})
}

// ComposeURL собирает ссылку Gmail Compose
// @Summary Получить ссылку Gmail Compose
// @Description Собирает ссылку на окно создания письма в Gmail с предзаполненными полями
// @Tags email
// @Accept json
// @Produce json
// @Param request body service.ComposeRequest true "Поля письма"
// @Success 200 {object} ComposeURLResponse "Ссылка собрана"
// @Failure 400 {object} ErrorResponse "Неверные параметры запроса"
// @Router /email/compose-url [post]
func (h *EmailHandler) ComposeURL(c *fiber.Ctx) error {
	var req service.ComposeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Неверный формат запроса",
		})
	}

	return c.JSON(ComposeURLResponse{URL: h.service.ComposeURL(req)})
}

// tenantID возвращает идентификатор арендатора из заголовка запроса
// Авторизации нет: арендатора определяет фронтенд
func tenantID(c *fiber.Ctx) string {
	if id := c.Get("X-Tenant-ID"); id != "" {
		return id
	}
	return "tenant-001"
}

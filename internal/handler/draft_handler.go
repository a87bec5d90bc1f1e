package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Dhivija-tekisho/emaildraft/internal/domain"
	"github.com/Dhivija-tekisho/emaildraft/internal/service"
)

// DraftHandler — обработчик запросов черновиков и журнала действий
type DraftHandler struct {
	service *service.DraftService
}

// NewDraftHandler создаёт новый обработчик
func NewDraftHandler(svc *service.DraftService) *DraftHandler {
	return &DraftHandler{service: svc}
}

// ActivityRequest — структура запроса на запись в журнал
type ActivityRequest struct {
	Action domain.ActivityAction `json:"action"`          // saved | opened | sent | copied
	Draft  *domain.EmailDraft    `json:"draft,omitempty"` // Снимок черновика (необязательно)
}

// SaveDraft сохраняет черновик встречи
// @Summary Сохранить черновик
// @Description Сохраняет снимок черновика в кэше, чтобы к нему можно было вернуться
// @Tags drafts
// @Accept json
// @Produce json
// @Param meetingID path string true "ID встречи"
// @Param request body domain.EmailDraft true "Черновик"
// @Success 200 {object} domain.EmailDraft "Сохранённый черновик"
// @Failure 400 {object} ErrorResponse "Неверные параметры запроса"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /drafts/{meetingID} [put]
func (h *DraftHandler) SaveDraft(c *fiber.Ctx) error {
	var draft domain.EmailDraft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Неверный формат запроса",
		})
	}

	if err := h.service.SaveDraft(c.Context(), c.Params("meetingID"), &draft); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Не удалось сохранить черновик",
		})
	}

	return c.JSON(draft)
}

// GetDraft возвращает сохранённый черновик встречи
// @Summary Получить черновик
// @Tags drafts
// @Produce json
// @Param meetingID path string true "ID встречи"
// @Success 200 {object} domain.EmailDraft "Черновик"
// @Failure 404 {object} ErrorResponse "Черновик не найден"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /drafts/{meetingID} [get]
func (h *DraftHandler) GetDraft(c *fiber.Ctx) error {
	draft, err := h.service.GetDraft(c.Context(), c.Params("meetingID"))
	if err != nil {
		if errors.Is(err, service.ErrDraftNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: "Черновик не найден",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Внутренняя ошибка сервера",
		})
	}

	return c.JSON(draft)
}

// RecordActivity добавляет запись в журнал действий
// @Summary Записать действие
// @Description Добавляет запись о действии над черновиком в append-only журнал
// @Tags activity
// @Accept json
// @Produce json
// @Param id path string true "ID встречи"
// @Param request body ActivityRequest true "Действие и снимок черновика"
// @Success 201 "Запись добавлена"
// @Failure 400 {object} ErrorResponse "Недопустимое действие"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /meetings/{id}/activity [post]
func (h *DraftHandler) RecordActivity(c *fiber.Ctx) error {
	var req ActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Неверный формат запроса",
		})
	}

	if err := h.service.RecordActivity(c.Params("id"), req.Action, req.Draft); err != nil {
		if errors.Is(err, service.ErrInvalidAction) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "Недопустимое действие. Допустимые: saved, opened, sent, copied",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Внутренняя ошибка сервера",
		})
	}

	return c.SendStatus(fiber.StatusCreated)
}

// GetActivity возвращает журнал действий для встречи
// @Summary Журнал действий
// @Tags activity
// @Produce json
// @Param id path string true "ID встречи"
// @Success 200 {array} domain.ActivityEntry "Записи журнала, новые первыми"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /meetings/{id}/activity [get]
func (h *DraftHandler) GetActivity(c *fiber.Ctx) error {
	entries, err := h.service.GetActivity(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Внутренняя ошибка сервера",
		})
	}

	return c.JSON(entries)
}

package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Dhivija-tekisho/emaildraft/internal/service"
)

// MeetingHandler — обработчик запросов лидов и встреч
type MeetingHandler struct {
	service *service.MeetingService
}

// NewMeetingHandler создаёт новый обработчик
func NewMeetingHandler(svc *service.MeetingService) *MeetingHandler {
	return &MeetingHandler{service: svc}
}

// GetLeads возвращает всех лидов
// @Summary Список лидов
// @Tags leads
// @Produce json
// @Success 200 {array} domain.Lead "Лиды"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /leads [get]
func (h *MeetingHandler) GetLeads(c *fiber.Ctx) error {
	leads, err := h.service.GetLeads()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Внутренняя ошибка сервера",
		})
	}

	return c.JSON(fiber.Map{"data": leads})
}

// GetLead возвращает лида по ID
// @Summary Получить лида
// @Tags leads
// @Produce json
// @Param id path string true "ID лида"
// @Success 200 {object} domain.Lead "Лид"
// @Failure 404 {object} ErrorResponse "Лид не найден"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /leads/{id} [get]
func (h *MeetingHandler) GetLead(c *fiber.Ctx) error {
	lead, err := h.service.GetLeadByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrLeadNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: "Лид не найден",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Внутренняя ошибка сервера",
		})
	}

	return c.JSON(fiber.Map{"data": lead})
}

// GetLeadMeetings возвращает встречи лида
// @Summary Встречи лида
// @Tags leads
// @Produce json
// @Param id path string true "ID лида"
// @Success 200 {array} domain.MeetingSummary "Встречи"
// @Failure 404 {object} ErrorResponse "Лид не найден"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /leads/{id}/meetings [get]
func (h *MeetingHandler) GetLeadMeetings(c *fiber.Ctx) error {
	meetings, err := h.service.GetMeetingsByLeadID(c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrLeadNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: "Лид не найден",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Внутренняя ошибка сервера",
		})
	}

	return c.JSON(meetings)
}

// GetMeeting возвращает встречу по ID
// @Summary Получить встречу
// @Tags meetings
// @Produce json
// @Param id path string true "ID встречи"
// @Success 200 {object} domain.MeetingSummary "Встреча"
// @Failure 404 {object} ErrorResponse "Встреча не найдена"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /meetings/{id} [get]
func (h *MeetingHandler) GetMeeting(c *fiber.Ctx) error {
	meeting, err := h.service.GetMeetingByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrMeetingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: "Встреча не найдена",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Внутренняя ошибка сервера",
		})
	}

	return c.JSON(meeting)
}

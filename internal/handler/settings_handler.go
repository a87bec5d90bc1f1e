package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Dhivija-tekisho/emaildraft/internal/domain"
	"github.com/Dhivija-tekisho/emaildraft/internal/service"
)

// SettingsHandler — обработчик запросов настроек
type SettingsHandler struct {
	service *service.SettingsService
}

// NewSettingsHandler создаёт новый обработчик
func NewSettingsHandler(svc *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: svc}
}

// Get возвращает настройки приложения
// @Summary Получить настройки
// @Description Возвращает профили, услуги и настройки генерации. Пока ничего не сохранено — настройки по умолчанию
// @Tags settings
// @Produce json
// @Success 200 {object} domain.AppSettings "Настройки"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	settings, err := h.service.Get(tenantID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Внутренняя ошибка сервера",
		})
	}

	return c.JSON(settings)
}

// Update сохраняет настройки приложения
// @Summary Сохранить настройки
// @Description Полностью перезаписывает настройки арендатора
// @Tags settings
// @Accept json
// @Produce json
// @Param request body domain.AppSettings true "Новые настройки"
// @Success 200 {object} domain.AppSettings "Сохранённые настройки"
// @Failure 400 {object} ErrorResponse "Неверные параметры запроса"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /settings [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var settings domain.AppSettings
	if err := c.BodyParser(&settings); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Неверный формат запроса",
		})
	}

	if err := h.service.Update(tenantID(c), settings); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Внутренняя ошибка сервера",
		})
	}

	// Возвращаем сохранённые настройки с подставленными значениями по умолчанию
	saved, err := h.service.Get(tenantID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Внутренняя ошибка сервера",
		})
	}

	return c.JSON(saved)
}

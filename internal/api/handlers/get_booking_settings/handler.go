package get_booking_settings

import (
	"net/http"

	"github.com/kairodigital/KD-BookingService/internal/api/handlers"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking/settings
// Публичный эндпоинт: фронтенд использует настройки для отображения календаря
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.service.Get(r.Context())

	h.logger.Info("GET /booking/settings - Settings retrieved successfully")
	handlers.RespondJSON(w, http.StatusOK, result)
}

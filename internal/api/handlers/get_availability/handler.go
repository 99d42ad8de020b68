package get_availability

import (
	"net/http"

	"github.com/kairodigital/KD-BookingService/internal/api/handlers"
)

const (
	msgMissingDate = "дата обязательна"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking/availability
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /booking/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Одиночный запрос строгий: невалидная дата приводит к 400,
	// в отличие от батч-запроса, где такие даты молча пропускаются
	useCaseReq, err := ToUseCaseRequest(dateStr)
	if err != nil {
		h.logger.Warn("GET /booking/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Валидность даты уже гарантирована ToUseCaseRequest,
	// поэтому ошибка use case здесь всегда внутренняя
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.logger.Error("GET /booking/availability - Failed to get availability: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /booking/availability - Availability retrieved successfully: date=%s, available=%d/%d",
		dateStr, len(result.AvailableSlots), result.TotalSlots)
	handlers.RespondJSON(w, http.StatusOK, response)
}

package check_availability_batch

import (
	"errors"
	"net/http"

	"github.com/kairodigital/KD-BookingService/internal/api/handlers"
	checkAvailabilityBatch "github.com/kairodigital/KD-BookingService/internal/usecase/check_availability_batch"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingDates       = "список дат обязателен"
)

type Handler struct {
	useCase CheckAvailabilityBatchUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityBatchUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking/availability
// Body: {"dates": ["2025-06-11", ...]}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, checkAvailabilityBatch.ErrInvalidInput):
			h.logger.Warn("POST /booking/availability - Missing dates list")
			handlers.RespondBadRequest(w, msgMissingDates)

		default:
			h.logger.Error("POST /booking/availability - Failed to check availability: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /booking/availability - Batch availability retrieved: requested=%d, resolved=%d",
		len(req.Dates), len(result.Results))
	handlers.RespondJSON(w, http.StatusOK, response)
}

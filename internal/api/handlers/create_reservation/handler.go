package create_reservation

import (
	"errors"
	"net/http"

	"github.com/kairodigital/KD-BookingService/internal/api/handlers"
	createReservation "github.com/kairodigital/KD-BookingService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные заявки"
	msgInvalidTimeRange   = "некорректный временной интервал"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking/reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidTimeRange):
			h.logger.Warn("POST /booking/reservations - Invalid time range: email=%s", req.ClientEmail)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /booking/reservations - Invalid input: email=%s, error=%v", req.ClientEmail, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /booking/reservations - Failed to create reservation: email=%s, error=%v",
				req.ClientEmail, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /booking/reservations - Reservation created successfully: id=%d, code=%s",
		result.ID, result.Code)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

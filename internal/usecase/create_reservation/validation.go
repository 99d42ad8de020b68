package create_reservation

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/kairodigital/KD-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}

	if _, err := mail.ParseAddress(req.ClientEmail); err != nil {
		return fmt.Errorf("%w: invalid clientEmail: %v", ErrInvalidInput, err)
	}

	if strings.TrimSpace(req.ProjectDescription) == "" {
		return fmt.Errorf("%w: projectDescription is required", ErrInvalidInput)
	}

	if !domain.CommunicationMethod(req.CommunicationMethod).IsValid() {
		return fmt.Errorf("%w: unknown communicationMethod %q", ErrInvalidInput, req.CommunicationMethod)
	}

	if !domain.ReservationType(req.ReservationType).IsValid() {
		return fmt.Errorf("%w: unknown reservationType %q", ErrInvalidInput, req.ReservationType)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if !req.EndTime.After(req.StartTime) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidTimeRange)
	}

	return nil
}

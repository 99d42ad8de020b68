package check_availability_batch

import (
	"context"

	getAvailability "github.com/kairodigital/KD-BookingService/internal/usecase/get_availability"
)

// AvailabilityProvider интерфейс вычисления доступности на одну дату
type AvailabilityProvider interface {
	Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package jobs

import (
	"context"
	"time"

	"github.com/kairodigital/KD-BookingService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	DeletePendingCreatedBefore(ctx context.Context, before time.Time) (int64, error)
}

// Notifier интерфейс для отправки email напоминаний
type Notifier interface {
	SendReservationReminder(reservation *domain.Reservation) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

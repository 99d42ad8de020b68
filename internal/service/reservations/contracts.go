package reservations

import (
	"context"
	"time"

	"github.com/kairodigital/KD-BookingService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus, adminNotes *string) error
	Reschedule(ctx context.Context, id int64, startTime, endTime time.Time) error
	Delete(ctx context.Context, id int64) error
}

// Notifier интерфейс для отправки email уведомлений клиентам
type Notifier interface {
	SendReservationStatusChanged(reservation *domain.Reservation) error
	SendReservationRescheduled(reservation *domain.Reservation) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

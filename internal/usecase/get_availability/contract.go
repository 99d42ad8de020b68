package get_availability

import (
	"context"
	"time"

	"github.com/kairodigital/KD-BookingService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// GetByDate получает все бронирования, начинающиеся в указанную календарную дату
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
}

// SettingsProvider интерфейс источника настроек бронирования
type SettingsProvider interface {
	GetBookingSettings(ctx context.Context) (domain.BookingSettings, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

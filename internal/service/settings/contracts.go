package settings

import (
	"context"

	"github.com/kairodigital/KD-BookingService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек бронирования
type SettingsRepository interface {
	GetBookingSettings(ctx context.Context) (domain.BookingSettings, error)
	UpsertBookingSettings(ctx context.Context, settings domain.BookingSettings) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

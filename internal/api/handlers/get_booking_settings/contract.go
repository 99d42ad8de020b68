package get_booking_settings

import (
	"context"

	"github.com/kairodigital/KD-BookingService/internal/service/settings/models"
)

type SettingsService interface {
	Get(ctx context.Context) *models.SettingsResponse
}

type Logger interface {
	Info(format string, v ...interface{})
}

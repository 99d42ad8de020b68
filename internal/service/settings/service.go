package settings

import (
	"context"
	"fmt"

	"github.com/kairodigital/KD-BookingService/internal/domain"
	"github.com/kairodigital/KD-BookingService/internal/service/settings/models"
)

// Service сервис для работы с настройками бронирования
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get возвращает действующие настройки бронирования
// При ошибке чтения или некорректных сохраненных значениях возвращает
// дефолтную конфигурацию, чтобы публичные эндпоинты продолжали работать
func (s *Service) Get(ctx context.Context) *models.SettingsResponse {
	settings, err := s.settingsRepo.GetBookingSettings(ctx)
	if err != nil {
		s.logger.Warn("Get: failed to load booking settings, using defaults: %v", err)
		return models.FromDomainSettings(domain.DefaultBookingSettings())
	}

	if err := settings.Validate(); err != nil {
		s.logger.Warn("Get: stored booking settings are invalid, using defaults: %v", err)
		return models.FromDomainSettings(domain.DefaultBookingSettings())
	}

	return models.FromDomainSettings(settings)
}

// Update сохраняет новые настройки бронирования
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating booking settings: notice=%dh, advance=%dd, weekends=%t, slot=%dmin",
		req.MinimumNoticeHours, req.MaxAdvanceBookingDays, req.AllowWeekendBookings, req.SlotDurationMinutes)

	settings := req.ToDomainSettings()
	if err := settings.Validate(); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.settingsRepo.UpsertBookingSettings(ctx, settings); err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated booking settings")
	return models.FromDomainSettings(settings), nil
}

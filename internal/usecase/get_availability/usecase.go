package get_availability

import (
	"context"
	"fmt"

	"github.com/kairodigital/KD-BookingService/internal/domain"
)

// UseCase use case для получения доступности слотов на дату
type UseCase struct {
	reservationRepo  ReservationRepository
	settingsProvider SettingsProvider
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	settingsProvider SettingsProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo:  reservationRepo,
		settingsProvider: settingsProvider,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailability: date=%s", req.Date.Format(domain.DateFormat))

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем настройки бронирования
	// Недоступность или некорректность настроек никогда не валит запрос:
	// в этом случае используются безопасные дефолтные значения
	settings := uc.loadSettings(ctx)

	// 4. Генерируем все возможные слоты на дату
	candidates := generateSlots(req.Date, settings, now)

	// 5. Получаем бронирования на эту дату
	reservations, err := uc.reservationRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get reservations for date=%s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 6. Отбираем бронирования по локальной календарной дате
	reservationsForDate := filterReservationsForDate(reservations, req.Date)

	// 7. Разбиваем слоты на свободные и занятые
	available, occupied := resolveAvailability(candidates, reservationsForDate)

	uc.logger.Info("GetAvailability: date=%s, total=%d, available=%d, occupied=%d",
		req.Date.Format(domain.DateFormat), len(candidates), len(available), len(occupied))

	return &Response{
		Date:           req.Date,
		TotalSlots:     len(candidates),
		AvailableSlots: available,
		OccupiedSlots:  occupied,
	}, nil
}

// loadSettings получает настройки бронирования с фолбэком на дефолтные
func (uc *UseCase) loadSettings(ctx context.Context) domain.BookingSettings {
	settings, err := uc.settingsProvider.GetBookingSettings(ctx)
	if err != nil {
		uc.logger.Warn("GetAvailability: failed to load booking settings, using defaults: %v", err)
		return domain.DefaultBookingSettings()
	}

	if err := settings.Validate(); err != nil {
		uc.logger.Warn("GetAvailability: invalid booking settings, using defaults: %v", err)
		return domain.DefaultBookingSettings()
	}

	return settings
}

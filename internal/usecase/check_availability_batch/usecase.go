package check_availability_batch

import (
	"context"
	"fmt"
	"time"

	"github.com/kairodigital/KD-BookingService/internal/domain"
	getAvailability "github.com/kairodigital/KD-BookingService/internal/usecase/get_availability"
)

// UseCase use case для проверки доступности сразу на несколько дат
// Используется календарем бронирования для подсветки дней с доступными слотами
type UseCase struct {
	availability AvailabilityProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availability AvailabilityProvider, logger Logger) *UseCase {
	return &UseCase{
		availability: availability,
		logger:       logger,
	}
}

// Execute выполняет use case пакетной проверки доступности
// В отличие от одиночного запроса, невалидная дата не является ошибкой:
// она молча пропускается, а остальные даты обрабатываются как обычно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Dates == nil {
		uc.logger.Warn("CheckAvailabilityBatch: dates list is required")
		return nil, fmt.Errorf("%w: dates list is required", ErrInvalidInput)
	}

	uc.logger.Info("CheckAvailabilityBatch: checking %d date(s)", len(req.Dates))

	results := make(map[string]DateSummary, len(req.Dates))

	for _, dateStr := range req.Dates {
		date, err := time.ParseInLocation(domain.DateFormat, dateStr, time.Local)
		if err != nil {
			// Невалидные даты пропускаем
			uc.logger.Warn("CheckAvailabilityBatch: skipping unparsable date %q", dateStr)
			continue
		}

		dayResult, err := uc.availability.Execute(ctx, &getAvailability.Request{Date: date})
		if err != nil {
			uc.logger.Error("CheckAvailabilityBatch: failed to resolve availability for date=%s: %v", dateStr, err)
			return nil, fmt.Errorf("%w: failed to resolve availability for %s: %v", ErrInternal, dateStr, err)
		}

		results[dateStr] = DateSummary{
			TotalSlots:      dayResult.TotalSlots,
			AvailableSlots:  len(dayResult.AvailableSlots),
			HasAvailability: dayResult.HasAvailability(),
		}
	}

	uc.logger.Info("CheckAvailabilityBatch: resolved %d of %d date(s)", len(results), len(req.Dates))

	return &Response{Results: results}, nil
}

package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/kairodigital/KD-BookingService/internal/domain"
	"github.com/kairodigital/KD-BookingService/pkg/ptr"
)

// Service фоновые задачи обслуживания бронирований
type Service struct {
	reservationRepo ReservationRepository
	notifier        Notifier
	timeProvider    TimeProvider
	logger          Logger

	purgePendingAfterDays int
}

// NewService создает новый экземпляр сервиса фоновых задач
func NewService(
	reservationRepo ReservationRepository,
	notifier Notifier,
	timeProvider TimeProvider,
	logger Logger,
	purgePendingAfterDays int,
) *Service {
	return &Service{
		reservationRepo:       reservationRepo,
		notifier:              notifier,
		timeProvider:          timeProvider,
		logger:                logger,
		purgePendingAfterDays: purgePendingAfterDays,
	}
}

// PurgeStalePending удаляет неподтвержденные заявки, созданные раньше
// настроенного порога. Заявки в статусе PENDING, которые администратор
// так и не обработал, не должны блокировать слоты бесконечно
func (s *Service) PurgeStalePending(ctx context.Context) error {
	before := s.timeProvider.Now().AddDate(0, 0, -s.purgePendingAfterDays)
	s.logger.Info("PurgeStalePending: purging pending reservations created before %s",
		before.Format("2006-01-02 15:04"))

	deleted, err := s.reservationRepo.DeletePendingCreatedBefore(ctx, before)
	if err != nil {
		s.logger.Error("PurgeStalePending: repository error: %v", err)
		return fmt.Errorf("PurgeStalePending: %w", err)
	}

	if deleted > 0 {
		s.logger.Info("PurgeStalePending: purged %d stale pending reservations", deleted)
	}
	return nil
}

// SendUpcomingReminders отправляет напоминания по подтвержденным
// консультациям, назначенным на завтра (локальные сутки)
func (s *Service) SendUpcomingReminders(ctx context.Context) error {
	now := s.timeProvider.Now()
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)

	s.logger.Info("SendUpcomingReminders: looking for confirmed reservations on %s",
		tomorrow.Format(domain.DateFormat))

	filter := domain.ReservationsFilter{
		Status:    ptr.Ptr(domain.StatusConfirmed),
		StartDate: &tomorrow,
		EndDate:   &tomorrow,
	}

	reservations, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("SendUpcomingReminders: repository error: %v", err)
		return fmt.Errorf("SendUpcomingReminders: %w", err)
	}

	sent := 0
	for _, reservation := range reservations {
		if err := s.notifier.SendReservationReminder(reservation); err != nil {
			s.logger.Warn("SendUpcomingReminders: failed to send reminder for reservation id=%d: %v",
				reservation.ID, err)
			continue
		}
		sent++
	}

	s.logger.Info("SendUpcomingReminders: sent %d of %d reminders", sent, len(reservations))
	return nil
}

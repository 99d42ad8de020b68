package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/kairodigital/KD-BookingService/internal/domain"
	reservationRepo "github.com/kairodigital/KD-BookingService/internal/infra/storage/reservation"
	"github.com/kairodigital/KD-BookingService/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями консультаций
type Service struct {
	reservationRepo ReservationRepository
	notifier        Notifier
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// List получает список бронирований с фильтрацией по статусу и периоду
// Отмененные бронирования по умолчанию не возвращаются
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	logMsg := "List: fetching reservations"
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s",
			req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.IncludeCancelled {
		logMsg += ", includeCancelled=true"
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// UpdateStatus обновляет статус бронирования
// Подтвердить можно только заявку в статусе PENDING, отменить - PENDING или CONFIRMED
// При успешном изменении клиенту асинхронно отправляется письмо
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.ReservationResponse, error) {
	s.logger.Info("UpdateStatus: updating reservation id=%d to status=%s", id, req.Status)

	newStatus, err := models.ToDomainReservationStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidStatus)
	}

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateStatus: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Проверяем допустимость перехода
	switch newStatus {
	case domain.StatusConfirmed:
		if !reservation.CanBeConfirmed() {
			s.logger.Warn("UpdateStatus: reservation id=%d cannot be confirmed, status=%s", id, reservation.Status)
			return nil, ErrInvalidTransition
		}
	case domain.StatusCancelled:
		if !reservation.CanBeCancelled() {
			s.logger.Warn("UpdateStatus: reservation id=%d cannot be cancelled, status=%s", id, reservation.Status)
			return nil, ErrInvalidTransition
		}
	default:
		s.logger.Warn("UpdateStatus: transition to status=%s is not allowed for reservation id=%d", newStatus, id)
		return nil, ErrInvalidTransition
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, newStatus, req.AdminNotes); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateStatus: reservation id=%d not found during update", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	reservation.Status = newStatus
	if req.AdminNotes != nil {
		reservation.AdminNotes = req.AdminNotes
	}

	// Уведомляем клиента асинхронно: ошибка отправки не влияет на ответ API
	go func(r domain.Reservation) {
		if err := s.notifier.SendReservationStatusChanged(&r); err != nil {
			s.logger.Warn("UpdateStatus: failed to send status email for reservation id=%d: %v", r.ID, err)
		}
	}(*reservation)

	s.logger.Info("UpdateStatus: successfully updated reservation id=%d to status=%s", id, newStatus)
	return models.FromDomainReservation(reservation), nil
}

// Reschedule переносит бронирование на новый временной интервал
// Перенести можно только заявку в статусе PENDING или CONFIRMED
func (s *Service) Reschedule(ctx context.Context, id int64, req *models.RescheduleRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Reschedule: moving reservation id=%d to %s", id, req.StartTime.Format("2006-01-02 15:04"))

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		s.logger.Warn("Reschedule: missing start or end time for reservation id=%d", id)
		return nil, fmt.Errorf("%w: start and end time are required", ErrInvalidInput)
	}

	if !req.EndTime.After(req.StartTime) {
		s.logger.Warn("Reschedule: end time is not after start time for reservation id=%d", id)
		return nil, ErrInvalidTimeRange
	}

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Reschedule: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Reschedule: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Reschedule - repository error: %v", ErrInternal, err)
	}

	if !reservation.CanBeRescheduled() {
		s.logger.Warn("Reschedule: reservation id=%d cannot be rescheduled, status=%s", id, reservation.Status)
		return nil, ErrCannotReschedule
	}

	if err := s.reservationRepo.Reschedule(ctx, id, req.StartTime, req.EndTime); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Reschedule: reservation id=%d not found during update", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Reschedule: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Reschedule - repository error: %v", ErrInternal, err)
	}

	reservation.StartTime = req.StartTime
	reservation.EndTime = req.EndTime

	go func(r domain.Reservation) {
		if err := s.notifier.SendReservationRescheduled(&r); err != nil {
			s.logger.Warn("Reschedule: failed to send reschedule email for reservation id=%d: %v", r.ID, err)
		}
	}(*reservation)

	s.logger.Info("Reschedule: successfully moved reservation id=%d", id)
	return models.FromDomainReservation(reservation), nil
}

// Delete удаляет бронирование
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting reservation id=%d", id)

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted reservation id=%d", id)
	return nil
}

package create_reservation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kairodigital/KD-BookingService/internal/domain"
)

// UseCase use case для создания бронирования консультации
//
// Намеренно не проверяет доступность слота: между чтением доступности
// клиентом и созданием бронирования нет блокировки (last write wins).
// Конфликтующие заявки разрешает администратор при подтверждении
type UseCase struct {
	reservationRepo ReservationRepository
	notifier        Notifier
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		notifier:        notifier,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: client=%s, type=%s, start=%s",
		req.ClientEmail, req.ReservationType, req.StartTime.Format("2006-01-02 15:04"))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Собираем бронирование: новая заявка всегда в статусе PENDING
	reservation := &domain.Reservation{
		Code:                uuid.NewString(),
		ClientName:          req.ClientName,
		ClientEmail:         req.ClientEmail,
		ClientPhone:         req.ClientPhone,
		ProjectDescription:  req.ProjectDescription,
		CommunicationMethod: domain.CommunicationMethod(req.CommunicationMethod),
		ReservationType:     domain.ReservationType(req.ReservationType),
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		Status:              domain.StatusPending,
	}

	// 3. Сохраняем бронирование
	created, err := uc.reservationRepo.Create(ctx, reservation)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d, code=%s",
		created.ID, created.Code)

	// 4. Отправляем письма клиенту и администратору асинхронно:
	// сбой почты не должен ломать уже созданное бронирование
	go func(r domain.Reservation) {
		if err := uc.notifier.SendReservationCreated(&r); err != nil {
			uc.logger.Warn("CreateReservation: failed to send notification for code=%s: %v", r.Code, err)
		}
	}(*created)

	return fromDomainReservation(created), nil
}

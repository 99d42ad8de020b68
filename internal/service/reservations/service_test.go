package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kairodigital/KD-BookingService/internal/domain"
	reservationRepo "github.com/kairodigital/KD-BookingService/internal/infra/storage/reservation"
	"github.com/kairodigital/KD-BookingService/internal/service/reservations/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	reservation *domain.Reservation
	listResult  []*domain.Reservation

	getErr    error
	updateErr error

	updatedStatus *domain.ReservationStatus
	rescheduled   bool
	deleted       bool
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.reservation, nil
}

func (f *fakeRepo) List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	return f.listResult, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus, adminNotes *string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedStatus = &status
	return nil
}

func (f *fakeRepo) Reschedule(ctx context.Context, id int64, startTime, endTime time.Time) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.rescheduled = true
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.deleted = true
	return nil
}

type fakeNotifier struct {
	statusChanged chan *domain.Reservation
	rescheduled   chan *domain.Reservation
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{
		statusChanged: make(chan *domain.Reservation, 1),
		rescheduled:   make(chan *domain.Reservation, 1),
	}
}

func (f *fakeNotifier) SendReservationStatusChanged(reservation *domain.Reservation) error {
	f.statusChanged <- reservation
	return nil
}

func (f *fakeNotifier) SendReservationRescheduled(reservation *domain.Reservation) error {
	f.rescheduled <- reservation
	return nil
}

func pendingReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:          1,
		Code:        "7f9c2d6a-code",
		ClientName:  "Marie Dupont",
		ClientEmail: "marie.dupont@example.com",
		Status:      domain.StatusPending,
		StartTime:   time.Date(2025, 6, 11, 10, 0, 0, 0, time.Local),
		EndTime:     time.Date(2025, 6, 11, 11, 0, 0, 0, time.Local),
	}
}

func TestGetByIDNotFound(t *testing.T) {
	repo := &fakeRepo{getErr: reservationRepo.ErrReservationNotFound}
	svc := NewService(repo, newFakeNotifier(), nopLogger{})

	_, err := svc.GetByID(context.Background(), 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestUpdateStatusConfirmPending(t *testing.T) {
	repo := &fakeRepo{reservation: pendingReservation()}
	notifier := newFakeNotifier()
	svc := NewService(repo, notifier, nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "CONFIRMED"})

	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", resp.Status)
	require.NotNil(t, repo.updatedStatus)
	assert.Equal(t, domain.StatusConfirmed, *repo.updatedStatus)

	select {
	case sent := <-notifier.statusChanged:
		assert.Equal(t, domain.StatusConfirmed, sent.Status)
	case <-time.After(time.Second):
		t.Fatal("status change email was not sent")
	}
}

func TestUpdateStatusCancelConfirmed(t *testing.T) {
	reservation := pendingReservation()
	reservation.Status = domain.StatusConfirmed
	repo := &fakeRepo{reservation: reservation}
	svc := NewService(repo, newFakeNotifier(), nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "CANCELLED"})

	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", resp.Status)
}

func TestUpdateStatusInvalidTransitions(t *testing.T) {
	tests := []struct {
		name      string
		current   domain.ReservationStatus
		requested string
	}{
		{"confirm already confirmed", domain.StatusConfirmed, "CONFIRMED"},
		{"confirm cancelled", domain.StatusCancelled, "CONFIRMED"},
		{"cancel cancelled", domain.StatusCancelled, "CANCELLED"},
		{"demote to pending", domain.StatusConfirmed, "PENDING"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reservation := pendingReservation()
			reservation.Status = tt.current
			repo := &fakeRepo{reservation: reservation}
			svc := NewService(repo, newFakeNotifier(), nopLogger{})

			_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: tt.requested})

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Nil(t, repo.updatedStatus)
		})
	}
}

func TestUpdateStatusUnknownStatus(t *testing.T) {
	repo := &fakeRepo{reservation: pendingReservation()}
	svc := NewService(repo, newFakeNotifier(), nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "DONE"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestRescheduleConfirmedReservation(t *testing.T) {
	reservation := pendingReservation()
	reservation.Status = domain.StatusConfirmed
	repo := &fakeRepo{reservation: reservation}
	notifier := newFakeNotifier()
	svc := NewService(repo, notifier, nopLogger{})

	newStart := time.Date(2025, 6, 12, 14, 0, 0, 0, time.Local)
	resp, err := svc.Reschedule(context.Background(), 1, &models.RescheduleRequest{
		StartTime: newStart,
		EndTime:   newStart.Add(time.Hour),
	})

	require.NoError(t, err)
	assert.True(t, repo.rescheduled)
	assert.Equal(t, newStart, resp.StartTime)

	select {
	case <-notifier.rescheduled:
	case <-time.After(time.Second):
		t.Fatal("reschedule email was not sent")
	}
}

func TestRescheduleCancelledReservation(t *testing.T) {
	reservation := pendingReservation()
	reservation.Status = domain.StatusCancelled
	repo := &fakeRepo{reservation: reservation}
	svc := NewService(repo, newFakeNotifier(), nopLogger{})

	newStart := time.Date(2025, 6, 12, 14, 0, 0, 0, time.Local)
	_, err := svc.Reschedule(context.Background(), 1, &models.RescheduleRequest{
		StartTime: newStart,
		EndTime:   newStart.Add(time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCannotReschedule)
	assert.False(t, repo.rescheduled)
}

func TestRescheduleInvalidTimeRange(t *testing.T) {
	repo := &fakeRepo{reservation: pendingReservation()}
	svc := NewService(repo, newFakeNotifier(), nopLogger{})

	start := time.Date(2025, 6, 12, 14, 0, 0, 0, time.Local)
	_, err := svc.Reschedule(context.Background(), 1, &models.RescheduleRequest{
		StartTime: start,
		EndTime:   start,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestDeleteNotFound(t *testing.T) {
	repo := &fakeRepo{updateErr: reservationRepo.ErrReservationNotFound}
	svc := NewService(repo, newFakeNotifier(), nopLogger{})

	err := svc.Delete(context.Background(), 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestListPassesFilter(t *testing.T) {
	repo := &fakeRepo{listResult: []*domain.Reservation{pendingReservation()}}
	svc := NewService(repo, newFakeNotifier(), nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListReservationsRequest{})

	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, "PENDING", resp.Reservations[0].Status)
}

func TestListInvalidStatusFilter(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, newFakeNotifier(), nopLogger{})

	status := "DONE"
	_, err := svc.List(context.Background(), &models.ListReservationsRequest{Status: &status})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kairodigital/KD-BookingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type fakeRepo struct {
	listResult []*domain.Reservation
	listFilter *domain.ReservationsFilter
	listErr    error

	deletedBefore *time.Time
	deleteCount   int64
	deleteErr     error
}

func (f *fakeRepo) List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	f.listFilter = &filter
	return f.listResult, f.listErr
}

func (f *fakeRepo) DeletePendingCreatedBefore(ctx context.Context, before time.Time) (int64, error) {
	f.deletedBefore = &before
	return f.deleteCount, f.deleteErr
}

type fakeNotifier struct {
	sent    []*domain.Reservation
	failFor int64
}

func (f *fakeNotifier) SendReservationReminder(reservation *domain.Reservation) error {
	if reservation.ID == f.failFor {
		return errors.New("smtp unavailable")
	}
	f.sent = append(f.sent, reservation)
	return nil
}

func TestPurgeStalePending(t *testing.T) {
	now := time.Date(2025, 6, 20, 10, 0, 0, 0, time.Local)
	repo := &fakeRepo{deleteCount: 3}
	svc := NewService(repo, &fakeNotifier{}, &fixedTimeProvider{now: now}, nopLogger{}, 14)

	err := svc.PurgeStalePending(context.Background())

	require.NoError(t, err)
	require.NotNil(t, repo.deletedBefore)
	assert.Equal(t, now.AddDate(0, 0, -14), *repo.deletedBefore)
}

func TestPurgeStalePendingRepositoryError(t *testing.T) {
	repo := &fakeRepo{deleteErr: errors.New("connection refused")}
	svc := NewService(repo, &fakeNotifier{}, &fixedTimeProvider{now: time.Now()}, nopLogger{}, 14)

	err := svc.PurgeStalePending(context.Background())

	require.Error(t, err)
}

func TestSendUpcomingRemindersTargetsTomorrowConfirmed(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.Local)
	repo := &fakeRepo{
		listResult: []*domain.Reservation{
			{ID: 1, Status: domain.StatusConfirmed},
			{ID: 2, Status: domain.StatusConfirmed},
		},
	}
	notifier := &fakeNotifier{}
	svc := NewService(repo, notifier, &fixedTimeProvider{now: now}, nopLogger{}, 14)

	err := svc.SendUpcomingReminders(context.Background())

	require.NoError(t, err)
	assert.Len(t, notifier.sent, 2)

	require.NotNil(t, repo.listFilter)
	require.NotNil(t, repo.listFilter.Status)
	assert.Equal(t, domain.StatusConfirmed, *repo.listFilter.Status)

	tomorrow := time.Date(2025, 6, 11, 0, 0, 0, 0, time.Local)
	require.NotNil(t, repo.listFilter.StartDate)
	assert.Equal(t, tomorrow, *repo.listFilter.StartDate)
	require.NotNil(t, repo.listFilter.EndDate)
	assert.Equal(t, tomorrow, *repo.listFilter.EndDate)
}

func TestSendUpcomingRemindersContinuesAfterFailure(t *testing.T) {
	repo := &fakeRepo{
		listResult: []*domain.Reservation{
			{ID: 1, Status: domain.StatusConfirmed},
			{ID: 2, Status: domain.StatusConfirmed},
			{ID: 3, Status: domain.StatusConfirmed},
		},
	}
	notifier := &fakeNotifier{failFor: 2}
	svc := NewService(repo, notifier, &fixedTimeProvider{now: time.Now()}, nopLogger{}, 14)

	err := svc.SendUpcomingReminders(context.Background())

	// Сбой по одному письму не прерывает рассылку
	require.NoError(t, err)
	assert.Len(t, notifier.sent, 2)
}

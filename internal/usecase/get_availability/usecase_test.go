package get_availability

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

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (f *fakeReservationRepo) GetByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	return f.reservations, f.err
}

type fakeSettingsProvider struct {
	settings domain.BookingSettings
	err      error
}

func (f *fakeSettingsProvider) GetBookingSettings(ctx context.Context) (domain.BookingSettings, error) {
	return f.settings, f.err
}

func newTestUseCase(repo *fakeReservationRepo, provider *fakeSettingsProvider, now time.Time) *UseCase {
	return &UseCase{
		reservationRepo:  repo,
		settingsProvider: provider,
		timeProvider:     &fixedTimeProvider{now: now},
		logger:           nopLogger{},
	}
}

func TestExecuteHappyPath(t *testing.T) {
	now := mustTime(t, "2025-06-10 08:00")
	date := mustTime(t, "2025-06-11 00:00")

	repo := &fakeReservationRepo{
		reservations: []*domain.Reservation{
			{
				ID:        1,
				Status:    domain.StatusConfirmed,
				StartTime: mustTime(t, "2025-06-11 11:00"),
				EndTime:   mustTime(t, "2025-06-11 12:00"),
			},
		},
	}
	provider := &fakeSettingsProvider{settings: domain.DefaultBookingSettings()}

	uc := newTestUseCase(repo, provider, now)
	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	assert.Equal(t, 9, resp.TotalSlots)
	assert.Len(t, resp.AvailableSlots, 8)
	assert.Len(t, resp.OccupiedSlots, 1)
	assert.True(t, resp.HasAvailability())
}

func TestExecuteZeroDate(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeSettingsProvider{}, mustTime(t, "2025-06-10 08:00"))

	_, err := uc.Execute(context.Background(), &Request{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteSettingsErrorFallsBackToDefaults(t *testing.T) {
	now := mustTime(t, "2025-06-10 08:00")
	date := mustTime(t, "2025-06-11 00:00")

	repo := &fakeReservationRepo{}
	provider := &fakeSettingsProvider{err: errors.New("db is down")}

	uc := newTestUseCase(repo, provider, now)
	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	// Запрос не падает: используются дефолтные настройки
	require.NoError(t, err)
	assert.Equal(t, 9, resp.TotalSlots)
	assert.Len(t, resp.AvailableSlots, 9)
}

func TestExecuteInvalidStoredSettingsFallBackToDefaults(t *testing.T) {
	now := mustTime(t, "2025-06-10 08:00")
	date := mustTime(t, "2025-06-11 00:00")

	repo := &fakeReservationRepo{}
	provider := &fakeSettingsProvider{
		settings: domain.BookingSettings{MinimumNoticeHours: -5, MaxAdvanceBookingDays: 30, SlotDurationMinutes: 60},
	}

	uc := newTestUseCase(repo, provider, now)
	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	assert.Equal(t, 9, resp.TotalSlots)
}

func TestExecuteRepositoryError(t *testing.T) {
	now := mustTime(t, "2025-06-10 08:00")
	date := mustTime(t, "2025-06-11 00:00")

	repo := &fakeReservationRepo{err: errors.New("connection refused")}
	provider := &fakeSettingsProvider{settings: domain.DefaultBookingSettings()}

	uc := newTestUseCase(repo, provider, now)
	_, err := uc.Execute(context.Background(), &Request{Date: date})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecuteIgnoresReservationsFromOtherDates(t *testing.T) {
	now := mustTime(t, "2025-06-10 08:00")
	date := mustTime(t, "2025-06-11 00:00")

	// Репозиторий вернул лишнее бронирование с другой даты:
	// фильтрация по локальной календарной дате должна его отбросить
	repo := &fakeReservationRepo{
		reservations: []*domain.Reservation{
			{
				ID:        1,
				Status:    domain.StatusConfirmed,
				StartTime: mustTime(t, "2025-06-12 11:00"),
				EndTime:   mustTime(t, "2025-06-12 12:00"),
			},
		},
	}
	provider := &fakeSettingsProvider{settings: domain.DefaultBookingSettings()}

	uc := newTestUseCase(repo, provider, now)
	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	assert.Empty(t, resp.OccupiedSlots)
	assert.Len(t, resp.AvailableSlots, 9)
}

package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kairodigital/KD-BookingService/internal/domain"
	"github.com/kairodigital/KD-BookingService/internal/service/settings/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeSettingsRepo struct {
	settings  domain.BookingSettings
	getErr    error
	upsertErr error

	upserted *domain.BookingSettings
}

func (f *fakeSettingsRepo) GetBookingSettings(ctx context.Context) (domain.BookingSettings, error) {
	return f.settings, f.getErr
}

func (f *fakeSettingsRepo) UpsertBookingSettings(ctx context.Context, settings domain.BookingSettings) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserted = &settings
	return nil
}

func TestGetReturnsStoredSettings(t *testing.T) {
	repo := &fakeSettingsRepo{
		settings: domain.BookingSettings{
			MinimumNoticeHours:    48,
			MaxAdvanceBookingDays: 60,
			AllowWeekendBookings:  false,
			SlotDurationMinutes:   30,
		},
	}
	svc := NewService(repo, nopLogger{})

	resp := svc.Get(context.Background())

	assert.Equal(t, 48, resp.MinimumNoticeHours)
	assert.Equal(t, 60, resp.MaxAdvanceBookingDays)
	assert.False(t, resp.AllowWeekendBookings)
	assert.Equal(t, 30, resp.SlotDurationMinutes)
}

func TestGetFallsBackToDefaultsOnError(t *testing.T) {
	repo := &fakeSettingsRepo{getErr: errors.New("db is down")}
	svc := NewService(repo, nopLogger{})

	resp := svc.Get(context.Background())

	assert.Equal(t, 24, resp.MinimumNoticeHours)
	assert.Equal(t, 30, resp.MaxAdvanceBookingDays)
	assert.True(t, resp.AllowWeekendBookings)
	assert.Equal(t, 60, resp.SlotDurationMinutes)
}

func TestGetFallsBackToDefaultsOnInvalidStoredValues(t *testing.T) {
	repo := &fakeSettingsRepo{
		settings: domain.BookingSettings{MinimumNoticeHours: -1, MaxAdvanceBookingDays: 30, SlotDurationMinutes: 60},
	}
	svc := NewService(repo, nopLogger{})

	resp := svc.Get(context.Background())

	assert.Equal(t, 24, resp.MinimumNoticeHours)
}

func TestUpdatePersistsSettings(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		MinimumNoticeHours:    12,
		MaxAdvanceBookingDays: 45,
		AllowWeekendBookings:  false,
		SlotDurationMinutes:   90,
	})

	require.NoError(t, err)
	require.NotNil(t, repo.upserted)
	assert.Equal(t, 12, repo.upserted.MinimumNoticeHours)
	assert.Equal(t, 45, resp.MaxAdvanceBookingDays)
}

func TestUpdateRejectsInvalidSettings(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		MinimumNoticeHours:    24,
		MaxAdvanceBookingDays: 0,
		SlotDurationMinutes:   60,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, repo.upserted)
}

func TestUpdateRepositoryError(t *testing.T) {
	repo := &fakeSettingsRepo{upsertErr: errors.New("connection refused")}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		MinimumNoticeHours:    24,
		MaxAdvanceBookingDays: 30,
		SlotDurationMinutes:   60,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}

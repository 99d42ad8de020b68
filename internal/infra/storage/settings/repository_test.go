package settings

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kairodigital/KD-BookingService/internal/domain"
)

func newRepoMock(t *testing.T) (*Repository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewRepository(db), mock, func() { db.Close() }
}

func TestGetBookingSettings(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"key", "value"}).
		AddRow("minimumNoticeHours", "48").
		AddRow("maxAdvanceBookingDays", "60").
		AddRow("allowWeekendBookings", "false").
		AddRow("slotDurationMinutes", "30")

	mock.ExpectQuery("SELECT key, value FROM site_settings").
		WithArgs(bookingCategory).
		WillReturnRows(rows)

	settings, err := repo.GetBookingSettings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 48, settings.MinimumNoticeHours)
	assert.Equal(t, 60, settings.MaxAdvanceBookingDays)
	assert.False(t, settings.AllowWeekendBookings)
	assert.Equal(t, 30, settings.SlotDurationMinutes)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBookingSettingsMissingKeysUseDefaults(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	// В базе есть только один ключ: остальные добираются из дефолтов
	rows := sqlmock.NewRows([]string{"key", "value"}).
		AddRow("minimumNoticeHours", "12")

	mock.ExpectQuery("SELECT key, value FROM site_settings").
		WithArgs(bookingCategory).
		WillReturnRows(rows)

	settings, err := repo.GetBookingSettings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 12, settings.MinimumNoticeHours)
	assert.Equal(t, 30, settings.MaxAdvanceBookingDays)
	assert.True(t, settings.AllowWeekendBookings)
	assert.Equal(t, 60, settings.SlotDurationMinutes)
}

func TestGetBookingSettingsIgnoresUnknownKeys(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"key", "value"}).
		AddRow("legacyThemeColor", "#3b82f6").
		AddRow("slotDurationMinutes", "45")

	mock.ExpectQuery("SELECT key, value FROM site_settings").
		WithArgs(bookingCategory).
		WillReturnRows(rows)

	settings, err := repo.GetBookingSettings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 45, settings.SlotDurationMinutes)
}

func TestGetBookingSettingsInvalidValue(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"key", "value"}).
		AddRow("minimumNoticeHours", "twenty-four")

	mock.ExpectQuery("SELECT key, value FROM site_settings").
		WithArgs(bookingCategory).
		WillReturnRows(rows)

	_, err := repo.GetBookingSettings(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestUpsertBookingSettings(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	// Ключи пишутся по одному, порядок обхода map не определен
	mock.MatchExpectationsInOrder(false)
	for i := 0; i < 4; i++ {
		mock.ExpectExec("INSERT INTO site_settings").
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	err := repo.UpsertBookingSettings(context.Background(), domain.BookingSettings{
		MinimumNoticeHours:    12,
		MaxAdvanceBookingDays: 45,
		AllowWeekendBookings:  false,
		SlotDurationMinutes:   90,
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

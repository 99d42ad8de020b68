package settings

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Masterminds/squirrel"

	"github.com/kairodigital/KD-BookingService/internal/domain"
	"github.com/kairodigital/KD-BookingService/pkg/dbmetrics"
	"github.com/kairodigital/KD-BookingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейс исполнителя из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Настройки хранятся в таблице site_settings по одной строке на ключ
const bookingCategory = "booking"

const (
	keyMinimumNoticeHours    = "minimumNoticeHours"
	keyMaxAdvanceBookingDays = "maxAdvanceBookingDays"
	keyAllowWeekendBookings  = "allowWeekendBookings"
	keySlotDurationMinutes   = "slotDurationMinutes"
)

// Repository репозиторий настроек бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBookingSettings читает настройки бронирования
// Отсутствующие ключи заполняются дефолтными значениями; некорректное
// значение любого ключа считается ошибкой — вызывающая сторона в этом
// случае откатывается на дефолтную конфигурацию целиком
func (r *Repository) GetBookingSettings(ctx context.Context) (domain.BookingSettings, error) {
	settings := domain.DefaultBookingSettings()

	query, args, err := psqlbuilder.Select("key", "value").
		From("site_settings").
		Where(squirrel.Eq{"category": bookingCategory}).
		ToSql()

	if err != nil {
		return settings, fmt.Errorf("%w: GetBookingSettings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return settings, fmt.Errorf("%w: GetBookingSettings - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return settings, fmt.Errorf("%w: GetBookingSettings - scan row: %v", ErrScanRow, err)
		}

		if err := applySetting(&settings, key, value); err != nil {
			return settings, err
		}
	}

	if err := rows.Err(); err != nil {
		return settings, fmt.Errorf("%w: GetBookingSettings - iterate rows: %v", ErrExecQuery, err)
	}

	return settings, nil
}

// UpsertBookingSettings сохраняет настройки бронирования
func (r *Repository) UpsertBookingSettings(ctx context.Context, settings domain.BookingSettings) error {
	values := map[string]string{
		keyMinimumNoticeHours:    strconv.Itoa(settings.MinimumNoticeHours),
		keyMaxAdvanceBookingDays: strconv.Itoa(settings.MaxAdvanceBookingDays),
		keyAllowWeekendBookings:  strconv.FormatBool(settings.AllowWeekendBookings),
		keySlotDurationMinutes:   strconv.Itoa(settings.SlotDurationMinutes),
	}

	// Ключи пишутся по одному: настроек всего четыре, а отдельные UPSERT
	// проще диагностировать по метрикам запросов
	for key, value := range values {
		query, args, err := psqlbuilder.Insert("site_settings").
			Columns("category", "key", "value").
			Values(bookingCategory, key, value).
			Suffix("ON CONFLICT (category, key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
			ToSql()

		if err != nil {
			return fmt.Errorf("%w: UpsertBookingSettings - build upsert query for %s: %v", ErrBuildQuery, key, err)
		}

		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: UpsertBookingSettings - execute upsert for %s: %v", ErrExecQuery, key, err)
		}
	}

	return nil
}

// applySetting применяет одно значение из site_settings к настройкам
// Неизвестные ключи категории игнорируются
func applySetting(settings *domain.BookingSettings, key, value string) error {
	switch key {
	case keyMinimumNoticeHours:
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, value)
		}
		settings.MinimumNoticeHours = parsed

	case keyMaxAdvanceBookingDays:
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, value)
		}
		settings.MaxAdvanceBookingDays = parsed

	case keyAllowWeekendBookings:
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, value)
		}
		settings.AllowWeekendBookings = parsed

	case keySlotDurationMinutes:
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, value)
		}
		settings.SlotDurationMinutes = parsed
	}

	return nil
}

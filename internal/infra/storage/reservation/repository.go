package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/kairodigital/KD-BookingService/internal/domain"
	"github.com/kairodigital/KD-BookingService/pkg/psqlbuilder"
)

// reservationColumns список колонок таблицы reservations в порядке сканирования
var reservationColumns = []string{
	"id",
	"code",
	"client_name",
	"client_email",
	"client_phone",
	"project_description",
	"communication_method",
	"reservation_type",
	"start_time",
	"end_time",
	"status",
	"admin_notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"code",
			"client_name",
			"client_email",
			"client_phone",
			"project_description",
			"communication_method",
			"reservation_type",
			"start_time",
			"end_time",
			"status",
			"admin_notes",
		).
		Values(
			reservation.Code,
			reservation.ClientName,
			reservation.ClientEmail,
			reservation.ClientPhone,
			reservation.ProjectDescription,
			reservation.CommunicationMethod,
			reservation.ReservationType,
			reservation.StartTime,
			reservation.EndTime,
			reservation.Status,
			reservation.AdminNotes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return reservation, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan row: %v", ErrScanRow, err)
	}

	return reservation, nil
}

// GetByDate получает все бронирования, начинающиеся в указанную календарную
// дату (локальные сутки [00:00, 24:00) даты). Возвращает бронирования во всех
// статусах: фильтрация отмененных выполняется на уровне usecase
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.GtOrEq{"start_time": dayStart}).
		Where(squirrel.Lt{"start_time": dayEnd}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryReservations(ctx, "GetByDate", query, args)
}

// List получает бронирования с фильтрацией по статусу и периоду
// Отмененные бронирования по умолчанию не возвращаются
func (r *Repository) List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	builder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		OrderBy("start_time ASC")

	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeCancelled {
		builder = builder.Where(squirrel.NotEq{"status": domain.StatusCancelled})
	}

	if filter.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"start_time": *filter.StartDate})
	}

	if filter.EndDate != nil {
		builder = builder.Where(squirrel.Lt{"start_time": filter.EndDate.AddDate(0, 0, 1)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryReservations(ctx, "List", query, args)
}

// UpdateStatus обновляет статус бронирования
// Опционально обновляет заметки администратора
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus, adminNotes *string) error {
	builder := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if adminNotes != nil {
		builder = builder.Set("admin_notes", *adminNotes)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, "UpdateStatus", query, args)
}

// Reschedule переносит бронирование на новый временной интервал
func (r *Repository) Reschedule(ctx context.Context, id int64, startTime, endTime time.Time) error {
	query, args, err := psqlbuilder.Update("reservations").
		Set("start_time", startTime).
		Set("end_time", endTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Reschedule - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, "Reschedule", query, args)
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, "Delete", query, args)
}

// DeletePendingCreatedBefore удаляет неподтвержденные заявки, созданные
// раньше указанного момента. Возвращает количество удаленных строк
func (r *Repository) DeletePendingCreatedBefore(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"status": domain.StatusPending}).
		Where(squirrel.Lt{"created_at": before}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeletePendingCreatedBefore - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeletePendingCreatedBefore - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeletePendingCreatedBefore - rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

// queryReservations выполняет запрос и сканирует все строки
func (r *Repository) queryReservations(ctx context.Context, op, query string, args []interface{}) ([]*domain.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %v", ErrExecQuery, op, err)
	}

	return reservations, nil
}

// execExpectingRow выполняет запрос, который должен затронуть ровно одну строку
func (r *Repository) execExpectingRow(ctx context.Context, op, query string, args []interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, op, err)
	}

	if affected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanReservation сканирует строку результата в domain модель
func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var reservation domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&reservation.ID,
		&reservation.Code,
		&reservation.ClientName,
		&reservation.ClientEmail,
		&reservation.ClientPhone,
		&reservation.ProjectDescription,
		&reservation.CommunicationMethod,
		&reservation.ReservationType,
		&reservation.StartTime,
		&reservation.EndTime,
		&reservation.Status,
		&reservation.AdminNotes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return &reservation, nil
}

package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/pkg/psqlbuilder"
)

// Repository репозиторий записей в гараж. Реализует источник и приёмник бронирований календаря.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FetchBookings получает занятые часы по дням в диапазоне [from, to] включительно
func (r *Repository) FetchBookings(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	query, args, err := psqlbuilder.Select("appointment_date", "hour").
		From("appointments").
		Where(squirrel.GtOrEq{"appointment_date": domain.DateKey(from)}).
		Where(squirrel.LtOrEq{"appointment_date": domain.DateKey(to)}).
		OrderBy("appointment_date ASC", "hour ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FetchBookings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FetchBookings - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	// Строки отсортированы по дате, поэтому часы одного дня идут подряд
	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var date time.Time
		var hour int

		if err := rows.Scan(&date, &hour); err != nil {
			return nil, fmt.Errorf("%w: FetchBookings - scan row: %v", ErrScanRow, err)
		}

		key := domain.DateKey(date)
		if n := len(bookings); n > 0 && bookings[n-1].DateKey == key {
			bookings[n-1].BookedHours = append(bookings[n-1].BookedHours, hour)
			continue
		}
		bookings = append(bookings, domain.Booking{DateKey: key, BookedHours: []int{hour}})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FetchBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// SubmitBooking создает запись. Уникальный индекс (appointment_date, hour) защищает
// от двойной записи: если слот уже занят, возвращается ErrSlotTaken.
func (r *Repository) SubmitBooking(ctx context.Context, req domain.BookingRequest) error {
	if !domain.IsServiceHour(req.Hour) {
		return fmt.Errorf("%w: hour %d is outside working hours", ErrInvalidRequest, req.Hour)
	}

	accountID := sql.NullInt64{Int64: req.AccountID, Valid: req.AccountID != 0}

	query, args, err := psqlbuilder.Insert("appointments").
		Columns("account_id", "appointment_date", "hour").
		Values(accountID, domain.DateKey(req.Date), req.Hour).
		Suffix("ON CONFLICT (appointment_date, hour) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SubmitBooking - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SubmitBooking - execute insert: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SubmitBooking - rows affected: %v", ErrExecQuery, err)
	}

	if affected == 0 {
		return ErrSlotTaken
	}

	return nil
}

package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/avdko/salon-booking-service/internal/domain"
	"github.com/avdko/salon-booking-service/pkg/dbmetrics"
	"github.com/avdko/salon-booking-service/pkg/psqlbuilder"
	"github.com/avdko/salon-booking-service/pkg/timeutil"
)

// Repository репозиторий для работы с бронированиями и их услугами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование вместе со всеми его услугами.
// Если в контексте передана активная транзакция, использует её; создание
// бронирования с проверкой доступности должно выполняться в транзакции,
// чтобы закрыть окно между чтением календаря и вставкой.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"reference",
			"customer_id",
			"booking_date",
			"start_minute",
			"total_duration_minutes",
			"status",
			"customer_name",
			"customer_email",
			"notes",
		).
		Values(
			booking.Reference,
			booking.CustomerID,
			booking.BookingDate,
			int(booking.StartMinute),
			booking.TotalDurationMinutes,
			booking.Status,
			booking.CustomerName,
			booking.CustomerEmail,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	for i := range booking.Items {
		item := &booking.Items[i]
		item.BookingID = booking.ID

		itemQuery, itemArgs, err := psqlbuilder.Insert("booking_items").
			Columns(
				"booking_id",
				"service_id",
				"staff_id",
				"start_minute",
				"end_minute",
				"service_name",
				"service_price",
			).
			Values(
				item.BookingID,
				item.ServiceID,
				item.StaffID,
				int(item.StartMinute),
				int(item.EndMinute),
				item.ServiceName,
				item.ServicePrice,
			).
			Suffix("RETURNING id").
			ToSql()

		if err != nil {
			return nil, fmt.Errorf("%w: Create - build item insert: %v", ErrBuildQuery, err)
		}

		if err := executor.QueryRowContext(ctx, itemQuery, itemArgs...).Scan(&item.ID); err != nil {
			return nil, fmt.Errorf("%w: Create - execute item insert: %v", ErrExecQuery, err)
		}
	}

	return booking, nil
}

// GetByID получает бронирование со всеми услугами по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := bookingSelect().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	booking, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	items, err := r.getItems(ctx, executor, []int64{booking.ID})
	if err != nil {
		return nil, err
	}
	booking.Items = items[booking.ID]

	return booking, nil
}

// GetByCustomerWithFilter получает историю бронирований клиента.
// По умолчанию отмененные и no-show бронирования исключаются.
func (r *Repository) GetByCustomerWithFilter(ctx context.Context, filter domain.CustomerBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := bookingSelect().
		Where(squirrel.Eq{"customer_id": filter.CustomerID}).
		OrderBy("booking_date DESC, start_minute DESC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactive})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, err
	}

	if err := r.attachItems(ctx, executor, bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

// GetStaffDayIntervals возвращает занятые интервалы всех мастеров на дату:
// услуги бронирований в блокирующих статусах (pending, confirmed,
// in_progress). Это снимок календаря для ядра доступности.
//
// Внутри транзакции строки бронирований блокируются (FOR UPDATE), чтобы
// конкурентное создание бронирования на ту же дату сериализовалось.
func (r *Repository) GetStaffDayIntervals(ctx context.Context, date time.Time) (map[int64][]timeutil.Interval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	blocking := make([]string, len(domain.BlockingStatuses))
	for i, s := range domain.BlockingStatuses {
		blocking[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(
		"bi.staff_id",
		"bi.start_minute",
		"bi.end_minute",
	).
		From("booking_items bi").
		Join("bookings b ON b.id = bi.booking_id").
		Where(squirrel.Eq{"b.booking_date": date}).
		Where(squirrel.Eq{"b.status": blocking}).
		OrderBy("bi.staff_id ASC, bi.start_minute ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF b")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffDayIntervals - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffDayIntervals - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	intervals := make(map[int64][]timeutil.Interval)
	for rows.Next() {
		var staffID int64
		var startMinute, endMinute int
		if err := rows.Scan(&staffID, &startMinute, &endMinute); err != nil {
			return nil, fmt.Errorf("%w: GetStaffDayIntervals - scan row: %v", ErrScanRow, err)
		}
		intervals[staffID] = append(intervals[staffID], timeutil.Interval{
			Start: timeutil.Minutes(startMinute),
			End:   timeutil.Minutes(endMinute),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetStaffDayIntervals - rows error: %v", ErrScanRow, err)
	}

	return intervals, nil
}

// GetStaffDaySchedule возвращает дневное расписание одного мастера
func (r *Repository) GetStaffDaySchedule(ctx context.Context, staffID int64, date time.Time) ([]*domain.StaffScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	blocking := make([]string, len(domain.BlockingStatuses))
	for i, s := range domain.BlockingStatuses {
		blocking[i] = string(s)
	}

	query, args, err := psqlbuilder.Select(
		"b.id",
		"b.reference",
		"bi.service_id",
		"bi.service_name",
		"bi.start_minute",
		"bi.end_minute",
		"b.status",
		"b.customer_name",
	).
		From("booking_items bi").
		Join("bookings b ON b.id = bi.booking_id").
		Where(squirrel.Eq{"bi.staff_id": staffID}).
		Where(squirrel.Eq{"b.booking_date": date}).
		Where(squirrel.Eq{"b.status": blocking}).
		OrderBy("bi.start_minute ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffDaySchedule - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffDaySchedule - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.StaffScheduleEntry, 0)
	for rows.Next() {
		var entry domain.StaffScheduleEntry
		var startMinute, endMinute int
		err := rows.Scan(
			&entry.BookingID,
			&entry.BookingReference,
			&entry.ServiceID,
			&entry.ServiceName,
			&startMinute,
			&endMinute,
			&entry.Status,
			&entry.CustomerName,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetStaffDaySchedule - scan row: %v", ErrScanRow, err)
		}
		entry.StartMinute = timeutil.Minutes(startMinute)
		entry.EndMinute = timeutil.Minutes(endMinute)
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetStaffDaySchedule - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// attachItems загружает услуги для списка бронирований одним запросом
func (r *Repository) attachItems(ctx context.Context, executor DBExecutor, bookings []*domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	ids := make([]int64, len(bookings))
	byID := make(map[int64]*domain.Booking, len(bookings))
	for i, b := range bookings {
		ids[i] = b.ID
		byID[b.ID] = b
	}

	items, err := r.getItems(ctx, executor, ids)
	if err != nil {
		return err
	}

	for id, bookingItems := range items {
		byID[id].Items = bookingItems
	}

	return nil
}

func (r *Repository) getItems(ctx context.Context, executor DBExecutor, bookingIDs []int64) (map[int64][]domain.BookingItem, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"booking_id",
		"service_id",
		"staff_id",
		"start_minute",
		"end_minute",
		"service_name",
		"service_price",
	).
		From("booking_items").
		Where(squirrel.Eq{"booking_id": bookingIDs}).
		OrderBy("booking_id ASC, start_minute ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getItems - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getItems - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make(map[int64][]domain.BookingItem)
	for rows.Next() {
		var item domain.BookingItem
		var startMinute, endMinute int
		err := rows.Scan(
			&item.ID,
			&item.BookingID,
			&item.ServiceID,
			&item.StaffID,
			&startMinute,
			&endMinute,
			&item.ServiceName,
			&item.ServicePrice,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: getItems - scan row: %v", ErrScanRow, err)
		}
		item.StartMinute = timeutil.Minutes(startMinute)
		item.EndMinute = timeutil.Minutes(endMinute)
		items[item.BookingID] = append(items[item.BookingID], item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getItems - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

func bookingSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"reference",
		"customer_id",
		"booking_date",
		"start_minute",
		"total_duration_minutes",
		"status",
		"customer_name",
		"customer_email",
		"notes",
		"cancellation_reason",
		"cancelled_at",
		"created_at",
		"updated_at",
	).From("bookings")
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var startMinute int
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.Reference,
		&booking.CustomerID,
		&booking.BookingDate,
		&startMinute,
		&booking.TotalDurationMinutes,
		&booking.Status,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.Notes,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.StartMinute = timeutil.Minutes(startMinute)
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

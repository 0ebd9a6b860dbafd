package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avdko/salon-booking-service/internal/domain"
	"github.com/avdko/salon-booking-service/pkg/dbmetrics"
	"github.com/avdko/salon-booking-service/pkg/psqlbuilder"
	"github.com/avdko/salon-booking-service/pkg/timeutil"
)

// Repository репозиторий конфигурации расписания салона
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetForWeekday возвращает конфигурацию с учетом иерархии приоритетов:
// сначала строка конкретного дня недели, затем строка по умолчанию
// (weekday IS NULL). Если нет ни той, ни другой — ErrConfigNotFound.
func (r *Repository) GetForWeekday(ctx context.Context, weekday int) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := configSelect().
		Where(squirrel.Or{
			squirrel.Eq{"weekday": weekday},
			squirrel.Eq{"weekday": nil},
		}).
		OrderBy("weekday ASC NULLS LAST").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForWeekday - build select query: %v", ErrBuildQuery, err)
	}

	config, err := scanConfig(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetForWeekday - scan config: %v", ErrScanRow, err)
	}

	return config, nil
}

// List возвращает все строки конфигурации (дефолтную и по дням недели)
func (r *Repository) List(ctx context.Context) ([]*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := configSelect().
		OrderBy("weekday ASC NULLS FIRST").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	configs := make([]*domain.ScheduleConfig, 0)
	for rows.Next() {
		config, err := scanConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		configs = append(configs, config)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return configs, nil
}

// Upsert создает или обновляет конфигурацию для дня недели
// (или дефолтную, если weekday = NULL)
func (r *Repository) Upsert(ctx context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedule_config").
		Columns(
			"weekday",
			"closed",
			"open_minute",
			"close_minute",
			"slot_granularity_minutes",
			"advance_booking_days",
			"min_booking_notice_minutes",
		).
		Values(
			config.Weekday,
			config.Closed,
			int(config.OpenMinute),
			int(config.CloseMinute),
			config.SlotGranularityMinutes,
			config.AdvanceBookingDays,
			config.MinBookingNoticeMinutes,
		).
		Suffix(`ON CONFLICT ((COALESCE(weekday, -1))) DO UPDATE SET
			closed = EXCLUDED.closed,
			open_minute = EXCLUDED.open_minute,
			close_minute = EXCLUDED.close_minute,
			slot_granularity_minutes = EXCLUDED.slot_granularity_minutes,
			advance_booking_days = EXCLUDED.advance_booking_days,
			min_booking_notice_minutes = EXCLUDED.min_booking_notice_minutes,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&config.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

func configSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"weekday",
		"closed",
		"open_minute",
		"close_minute",
		"slot_granularity_minutes",
		"advance_booking_days",
		"min_booking_notice_minutes",
		"created_at",
		"updated_at",
	).From("schedule_config")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanConfig(row rowScanner) (*domain.ScheduleConfig, error) {
	var config domain.ScheduleConfig
	var weekday sql.NullInt64
	var openMinute, closeMinute int
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&config.ID,
		&weekday,
		&config.Closed,
		&openMinute,
		&closeMinute,
		&config.SlotGranularityMinutes,
		&config.AdvanceBookingDays,
		&config.MinBookingNoticeMinutes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if weekday.Valid {
		wd := int(weekday.Int64)
		config.Weekday = &wd
	}
	config.OpenMinute = timeutil.Minutes(openMinute)
	config.CloseMinute = timeutil.Minutes(closeMinute)
	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}

package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avdko/salon-booking-service/internal/domain"
	"github.com/avdko/salon-booking-service/pkg/dbmetrics"
	"github.com/avdko/salon-booking-service/pkg/psqlbuilder"
)

// Repository репозиторий каталога услуг
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByIDs возвращает услуги по списку ID, индексированные по ID.
// Отсутствующая или неактивная услуга в результат не попадает — это
// зона ответственности вызывающего кода решить, ошибка это или нет.
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) (map[int64]domain.SalonService, error) {
	if len(ids) == 0 {
		return map[int64]domain.SalonService{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := serviceSelect().
		Where(squirrel.Eq{"id": ids}).
		Where(squirrel.Eq{"active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make(map[int64]domain.SalonService, len(ids))
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services[svc.ID] = svc
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetByID возвращает услугу по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.SalonService, error) {
	services, err := r.GetByIDs(ctx, []int64{id})
	if err != nil {
		return nil, err
	}

	svc, ok := services[id]
	if !ok {
		return nil, ErrServiceNotFound
	}

	return &svc, nil
}

func serviceSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"name",
		"duration_minutes",
		"buffer_minutes",
		"price",
		"active",
	).From("services")
}

func scanService(rows *sql.Rows) (domain.SalonService, error) {
	var svc domain.SalonService
	err := rows.Scan(
		&svc.ID,
		&svc.Name,
		&svc.DurationMinutes,
		&svc.BufferMinutes,
		&svc.Price,
		&svc.Active,
	)
	if err != nil {
		return domain.SalonService{}, fmt.Errorf("%w: scanService - scan row: %v", ErrScanRow, err)
	}
	return svc, nil
}

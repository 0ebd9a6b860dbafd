package staff

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avdko/salon-booking-service/internal/domain"
	"github.com/avdko/salon-booking-service/pkg/dbmetrics"
	"github.com/avdko/salon-booking-service/pkg/psqlbuilder"
)

// Repository репозиторий каталога мастеров
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория мастеров
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActive возвращает всех активных мастеров вместе с их квалификациями.
// Порядок стабильный (по ID) — fallback-назначение берет первого мастера
// именно из этого списка.
func (r *Repository) GetActive(ctx context.Context) ([]domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "email", "name", "active").
		From("staff").
		Where(squirrel.Eq{"active": true}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	staff, err := scanStaff(rows)
	if err != nil {
		return nil, err
	}

	if err := r.attachQualifications(ctx, executor, staff); err != nil {
		return nil, err
	}

	return staff, nil
}

// GetByID возвращает мастера по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "email", "name", "active").
		From("staff").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Staff
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.Email, &s.Name, &s.Active)
	if err == sql.ErrNoRows {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan staff: %v", ErrScanRow, err)
	}

	members := []domain.Staff{s}
	if err := r.attachQualifications(ctx, executor, members); err != nil {
		return nil, err
	}

	return &members[0], nil
}

// attachQualifications загружает квалификации для списка мастеров.
// Отсутствие строк для мастера означает квалификацию на все услуги.
func (r *Repository) attachQualifications(ctx context.Context, executor dbmetrics.DBExecutor, staff []domain.Staff) error {
	if len(staff) == 0 {
		return nil
	}

	ids := make([]int64, len(staff))
	index := make(map[int64]int, len(staff))
	for i, s := range staff {
		ids[i] = s.ID
		index[s.ID] = i
	}

	query, args, err := psqlbuilder.Select("staff_id", "service_id").
		From("staff_services").
		Where(squirrel.Eq{"staff_id": ids}).
		OrderBy("staff_id ASC, service_id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: attachQualifications - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachQualifications - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var staffID, serviceID int64
		if err := rows.Scan(&staffID, &serviceID); err != nil {
			return fmt.Errorf("%w: attachQualifications - scan row: %v", ErrScanRow, err)
		}
		i := index[staffID]
		staff[i].QualifiedServiceIDs = append(staff[i].QualifiedServiceIDs, serviceID)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachQualifications - rows error: %v", ErrScanRow, err)
	}

	return nil
}

func scanStaff(rows *sql.Rows) ([]domain.Staff, error) {
	staff := make([]domain.Staff, 0)

	for rows.Next() {
		var s domain.Staff
		if err := rows.Scan(&s.ID, &s.Email, &s.Name, &s.Active); err != nil {
			return nil, fmt.Errorf("%w: scanStaff - scan row: %v", ErrScanRow, err)
		}
		staff = append(staff, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanStaff - rows error: %v", ErrScanRow, err)
	}

	return staff, nil
}

package get_available_staff

import (
	"context"
	"time"

	"github.com/avdko/salon-booking-service/internal/domain"
	"github.com/avdko/salon-booking-service/pkg/timeutil"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetStaffDayIntervals(ctx context.Context, date time.Time) (map[int64][]timeutil.Interval, error)
}

// StaffRepository интерфейс каталога мастеров
type StaffRepository interface {
	GetActive(ctx context.Context) ([]domain.Staff, error)
}

// CatalogRepository интерфейс каталога услуг
type CatalogRepository interface {
	GetByIDs(ctx context.Context, ids []int64) (map[int64]domain.SalonService, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

package get_available_slots

import (
	"context"
	"time"

	"github.com/avdko/salon-booking-service/internal/domain"
	"github.com/avdko/salon-booking-service/pkg/timeutil"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetStaffDayIntervals получает занятые интервалы всех мастеров на дату
	GetStaffDayIntervals(ctx context.Context, date time.Time) (map[int64][]timeutil.Interval, error)
}

// StaffRepository интерфейс каталога мастеров
type StaffRepository interface {
	GetActive(ctx context.Context) ([]domain.Staff, error)
}

// ScheduleRepository интерфейс репозитория конфигурации расписания
type ScheduleRepository interface {
	// GetForWeekday получает конфигурацию с учетом иерархии приоритетов
	GetForWeekday(ctx context.Context, weekday int) (*domain.ScheduleConfig, error)
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

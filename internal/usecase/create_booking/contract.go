package create_booking

import (
	"context"
	"time"

	"github.com/avdko/salon-booking-service/internal/domain"
	"github.com/avdko/salon-booking-service/internal/integrations/customerservice"
	"github.com/avdko/salon-booking-service/pkg/timeutil"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetStaffDayIntervals получает занятые интервалы всех мастеров на дату;
	// внутри транзакции блокирует строки бронирований (FOR UPDATE)
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

// ScheduleRepository интерфейс репозитория конфигурации расписания
type ScheduleRepository interface {
	GetForWeekday(ctx context.Context, weekday int) (*domain.ScheduleConfig, error)
}

// CustomerServiceClient интерфейс клиента для CustomerService
type CustomerServiceClient interface {
	GetCustomerWithGracefulDegradation(ctx context.Context, customerID int64) (*customerservice.Customer, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder интерфейс для учета бизнес-метрик (может быть nil)
type MetricsRecorder interface {
	IncBookingsCreated()
	IncFallbackAssignments()
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

package bookings

import (
	"context"
	"time"

	"github.com/avdko/salon-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByCustomerWithFilter(ctx context.Context, filter domain.CustomerBookingsFilter) ([]*domain.Booking, error)
	GetStaffDaySchedule(ctx context.Context, staffID int64, date time.Time) ([]*domain.StaffScheduleEntry, error)
	Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// StaffRepository интерфейс каталога мастеров
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
}

// MetricsRecorder интерфейс для учета бизнес-метрик (может быть nil)
type MetricsRecorder interface {
	IncBookingsCancelled(status string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

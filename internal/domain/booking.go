package domain

import (
	"time"

	"github.com/avdko/salon-booking-service/pkg/timeutil"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending             BookingStatus = "pending"
	StatusConfirmed           BookingStatus = "confirmed"
	StatusInProgress          BookingStatus = "in_progress"
	StatusCompleted           BookingStatus = "completed"
	StatusCancelledByCustomer BookingStatus = "cancelled_by_customer"
	StatusCancelledBySalon    BookingStatus = "cancelled_by_salon"
	StatusNoShow              BookingStatus = "no_show"
)

// Booking represents a (possibly multi-service) salon visit
type Booking struct {
	ID         int64
	Reference  string // Публичный код бронирования (uuid)
	CustomerID int64

	BookingDate          time.Time
	StartMinute          timeutil.Minutes
	TotalDurationMinutes int
	Status               BookingStatus

	// Денормализованные данные клиента для истории
	CustomerName  *string
	CustomerEmail *string

	Notes *string

	CancellationReason *string
	CancelledAt        *time.Time

	Items []BookingItem

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingItem is one service of a booking assigned to one staff member.
// Items of a booking are sequential: item i+1 starts exactly at item i's
// EndMinute (the window already includes the service's cleanup buffer).
type BookingItem struct {
	ID        int64
	BookingID int64
	ServiceID int64
	StaffID   int64

	StartMinute timeutil.Minutes
	EndMinute   timeutil.Minutes

	// Денормализованные данные услуги для истории
	ServiceName  string
	ServicePrice float64
}

// Window returns the item's time window as a half-open interval
func (i *BookingItem) Window() timeutil.Interval {
	return timeutil.Interval{Start: i.StartMinute, End: i.EndMinute}
}

// IsActive returns true if the booking is in an active state
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByCustomer &&
		b.Status != StatusCancelledBySalon &&
		b.Status != StatusNoShow
}

// Blocks returns true if the booking occupies staff calendars.
// Cancelled, no-show and completed bookings do not block availability.
func (b *Booking) Blocks() bool {
	return b.Status == StatusPending ||
		b.Status == StatusConfirmed ||
		b.Status == StatusInProgress
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByCustomer || b.Status == StatusCancelledBySalon
}

// CustomerBookingsFilter фильтр для получения истории бронирований клиента
type CustomerBookingsFilter struct {
	CustomerID      int64
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отмененные и no-show
}

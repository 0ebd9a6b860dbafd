package domain

import "github.com/avdko/salon-booking-service/pkg/timeutil"

// Default schedule configuration values
const (
	DefaultSlotGranularityMinutes  = 30
	DefaultOpenMinute              = timeutil.Minutes(9 * 60)  // 09:00
	DefaultCloseMinute             = timeutil.Minutes(19 * 60) // 19:00
	DefaultAdvanceBookingDays      = 0                         // 0 = unlimited
	DefaultMinBookingNoticeMinutes = 60
)

// Business validation constants
const (
	MinSlotGranularityMinutes   = 5
	MaxSlotGranularityMinutes   = 240
	MinAdvanceBookingDays       = 0
	MaxAdvanceBookingDays       = 365
	MinBookingNoticeMinutes     = 0
	MaxBookingNoticeMinutes     = 10080 // Неделя
	MaxServicesPerBooking       = 5
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы, исключаемые из истории по умолчанию
var InactiveStatuses = []BookingStatus{
	StatusCancelledByCustomer,
	StatusCancelledBySalon,
	StatusNoShow,
}

// BlockingStatuses статусы, при которых бронирование занимает календарь
// мастера. Завершенные визиты календарь не блокируют.
var BlockingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
}

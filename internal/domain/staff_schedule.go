package domain

import "github.com/avdko/salon-booking-service/pkg/timeutil"

// StaffScheduleEntry одна запись дневного расписания мастера:
// услуга бронирования вместе с контекстом самого бронирования
type StaffScheduleEntry struct {
	BookingID        int64
	BookingReference string
	ServiceID        int64
	ServiceName      string
	StartMinute      timeutil.Minutes
	EndMinute        timeutil.Minutes
	Status           BookingStatus
	CustomerName     *string
}

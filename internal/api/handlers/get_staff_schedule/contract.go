package get_staff_schedule

import (
	"context"

	"github.com/avdko/salon-booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetStaffDaySchedule(ctx context.Context, req *models.GetStaffScheduleRequest) (*models.StaffScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package create_booking

import (
	"fmt"
	"time"

	"github.com/avdko/salon-booking-service/internal/domain"
	"github.com/avdko/salon-booking-service/pkg/timeutil"
)

// validateRequest проверяет структурную корректность запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customer_id must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.StartTime.Valid() {
		return fmt.Errorf("%w: start_time is out of range", ErrInvalidInput)
	}

	if len(req.Services) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}

	if len(req.Services) > domain.MaxServicesPerBooking {
		return fmt.Errorf("%w: at most %d services per booking", ErrInvalidInput, domain.MaxServicesPerBooking)
	}

	for i, svc := range req.Services {
		if svc.ServiceID <= 0 {
			return fmt.Errorf("%w: services[%d].service_id must be positive", ErrInvalidInput, i)
		}
		if svc.PreferredStaffID != nil && *svc.PreferredStaffID <= 0 {
			return fmt.Errorf("%w: services[%d].preferred_staff_id must be positive", ErrInvalidInput, i)
		}
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом и попадает в окно записи
func validateDate(date time.Time, now time.Time, config *domain.ScheduleConfig) error {
	if isDateInPast(date, now) {
		return fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}

	if config.HasAdvanceBookingLimit() {
		limit := now.AddDate(0, 0, config.AdvanceBookingDays)
		if date.After(limit) {
			return fmt.Errorf("%w: booking window is %d days", ErrDateTooFarInFuture, config.AdvanceBookingDays)
		}
	}

	return nil
}

// validateBusinessHours проверяет рабочие часы и выравнивание по сетке слотов
func validateBusinessHours(start timeutil.Minutes, totalMinutes int, config *domain.ScheduleConfig) error {
	hours := config.BusinessHours()

	if start < hours.Start || start.Add(totalMinutes) > hours.End {
		return fmt.Errorf("%w: working hours are %s-%s", ErrOutsideBusinessHours, hours.Start, hours.End)
	}

	granularity := config.SlotGranularityMinutes
	if granularity <= 0 {
		granularity = domain.DefaultSlotGranularityMinutes
	}
	if int(start-hours.Start)%granularity != 0 {
		return fmt.Errorf("%w: slot grid step is %d minutes", ErrInvalidTimeSlot, granularity)
	}

	return nil
}

// validateBookingNotice проверяет минимальный интервал до начала для записи на сегодня
func validateBookingNotice(date time.Time, start timeutil.Minutes, now time.Time, config *domain.ScheduleConfig) error {
	if !isSameDay(date, now) {
		return nil
	}

	earliest := timeutil.FromTime(now).Add(config.MinBookingNoticeMinutes)
	if start < earliest {
		return fmt.Errorf("%w: minimum notice is %d minutes", ErrTooLateToBook, config.MinBookingNoticeMinutes)
	}

	return nil
}

func isDateInPast(date time.Time, now time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}

func isSameDay(a time.Time, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

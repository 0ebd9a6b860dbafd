package domain

import (
	"time"

	"github.com/avdko/salon-booking-service/pkg/timeutil"
)

// ScheduleConfig represents the salon working-day configuration.
// Supports hierarchical configuration:
// 1. Weekday-specific (weekday set)
// 2. Salon-wide default (weekday NULL)
type ScheduleConfig struct {
	ID      int64
	Weekday *int // NULL = конфигурация по умолчанию для всех дней
	Closed  bool

	OpenMinute  timeutil.Minutes
	CloseMinute timeutil.Minutes

	SlotGranularityMinutes  int
	AdvanceBookingDays      int // 0 = unlimited
	MinBookingNoticeMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDefault returns true if this is the salon-wide default configuration
func (c *ScheduleConfig) IsDefault() bool {
	return c.Weekday == nil
}

// BusinessHours returns the working window of the day
func (c *ScheduleConfig) BusinessHours() timeutil.Interval {
	return timeutil.Interval{Start: c.OpenMinute, End: c.CloseMinute}
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance bookings can be made
func (c *ScheduleConfig) HasAdvanceBookingLimit() bool {
	return c.AdvanceBookingDays > 0
}

// DefaultScheduleConfig returns the configuration used when no rows exist in the database
func DefaultScheduleConfig() *ScheduleConfig {
	return &ScheduleConfig{
		OpenMinute:              DefaultOpenMinute,
		CloseMinute:             DefaultCloseMinute,
		SlotGranularityMinutes:  DefaultSlotGranularityMinutes,
		AdvanceBookingDays:      DefaultAdvanceBookingDays,
		MinBookingNoticeMinutes: DefaultMinBookingNoticeMinutes,
	}
}

package domain

import "github.com/avdko/salon-booking-service/pkg/timeutil"

// AvailableSlot represents one slot of the business day with staffing load
type AvailableSlot struct {
	StartTime       timeutil.Minutes
	DurationMinutes int
	FreeStaff       int // Мастера, свободные на момент начала слота
	TotalStaff      int
}

// IsDisabled returns true if no staff member is free at the slot start
func (s *AvailableSlot) IsDisabled() bool {
	return s.FreeStaff <= 0
}

// IsPartiallyAvailable returns true if some but not all staff are free
func (s *AvailableSlot) IsPartiallyAvailable() bool {
	return s.FreeStaff > 0 && s.FreeStaff < s.TotalStaff
}

// OccupancyRate returns the staff occupancy rate as a percentage (0-100)
func (s *AvailableSlot) OccupancyRate() float64 {
	if s.TotalStaff == 0 {
		return 0
	}
	busy := s.TotalStaff - s.FreeStaff
	return float64(busy) / float64(s.TotalStaff) * 100
}

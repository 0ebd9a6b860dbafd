package domain

// SalonService represents a bookable salon service
type SalonService struct {
	ID              int64
	Name            string
	DurationMinutes int // Длительность самой услуги
	BufferMinutes   int // Уборка/подготовка после услуги
	Price           float64
	Active          bool
}

// TotalMinutes returns the full time the service blocks on a staff calendar:
// the service itself plus its cleanup buffer. The next service of a
// multi-service booking starts exactly when this window ends.
func (s *SalonService) TotalMinutes() int {
	return s.DurationMinutes + s.BufferMinutes
}

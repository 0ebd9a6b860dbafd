package get_available_staff

import (
	"time"

	"github.com/avdko/salon-booking-service/pkg/timeutil"
)

// Request модель запроса свободных мастеров на время
type Request struct {
	Date       time.Time        // Дата визита (без времени)
	StartTime  timeutil.Minutes // Желаемое время начала
	ServiceIDs []int64          // Услуги визита в порядке выполнения
}

// Response модель ответа со свободными мастерами
type Response struct {
	Date                 time.Time
	StartTime            timeutil.Minutes
	TotalDurationMinutes int // Суммарная длительность блока услуг (включая буферы)
	Staff                []StaffMember
}

// StaffMember свободный мастер
type StaffMember struct {
	ID    int64
	Name  string
	Email string
}

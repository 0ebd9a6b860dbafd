package create_booking

import (
	"time"

	"github.com/avdko/salon-booking-service/pkg/timeutil"
)

// ServiceSelection одна услуга в составе бронирования
type ServiceSelection struct {
	ServiceID        int64  `json:"service_id"`
	PreferredStaffID *int64 `json:"preferred_staff_id,omitempty"`
}

// Request запрос на создание бронирования
type Request struct {
	CustomerID int64              `json:"customer_id"`
	Date       time.Time          `json:"date"`
	StartTime  timeutil.Minutes   `json:"start_time"`
	Services   []ServiceSelection `json:"services"`
	Notes      *string            `json:"notes,omitempty"`
}

// ItemResponse одна позиция созданного бронирования
type ItemResponse struct {
	ServiceID    int64            `json:"service_id"`
	ServiceName  string           `json:"service_name"`
	ServicePrice float64          `json:"service_price"`
	StaffID      int64            `json:"staff_id"`
	StartTime    timeutil.Minutes `json:"start_time"`
	EndTime      timeutil.Minutes `json:"end_time"`
}

// Response ответ на создание бронирования
type Response struct {
	ID                   int64            `json:"id"`
	Reference            string           `json:"reference"`
	CustomerID           int64            `json:"customer_id"`
	Date                 time.Time        `json:"date"`
	StartTime            timeutil.Minutes `json:"start_time"`
	TotalDurationMinutes int              `json:"total_duration_minutes"`
	Status               string           `json:"status"`
	Notes                *string          `json:"notes,omitempty"`
	Items                []ItemResponse   `json:"items"`
	CreatedAt            time.Time        `json:"created_at"`
}

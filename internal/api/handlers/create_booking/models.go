package create_booking

import (
	"time"

	"github.com/avdko/salon-booking-service/internal/domain"
	createBooking "github.com/avdko/salon-booking-service/internal/usecase/create_booking"
	"github.com/avdko/salon-booking-service/pkg/timeutil"
)

// ServiceSelectionRequest одна услуга в запросе на бронирование
type ServiceSelectionRequest struct {
	ServiceID        int64  `json:"service_id"`
	PreferredStaffID *int64 `json:"preferred_staff_id,omitempty"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	BookingDate string                    `json:"booking_date"` // "2026-09-15"
	StartTime   string                    `json:"start_time"`   // "10:00"
	Services    []ServiceSelectionRequest `json:"services"`
	Notes       *string                   `json:"notes,omitempty"`
}

// BookingItemResponse одна позиция созданного бронирования
type BookingItemResponse struct {
	ServiceID    int64   `json:"service_id"`
	ServiceName  string  `json:"service_name"`
	ServicePrice float64 `json:"service_price"`
	StaffID      int64   `json:"staff_id"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                   int64                 `json:"id"`
	Reference            string                `json:"reference"`
	CustomerID           int64                 `json:"customer_id"`
	BookingDate          string                `json:"booking_date"`
	StartTime            string                `json:"start_time"`
	TotalDurationMinutes int                   `json:"total_duration_minutes"`
	Status               string                `json:"status"`
	Items                []BookingItemResponse `json:"items"`
	Notes                *string               `json:"notes,omitempty"`
	CreatedAt            string                `json:"created_at"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(customerID int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := timeutil.ParseClock(r.StartTime)
	if err != nil {
		return nil, err
	}

	services := make([]createBooking.ServiceSelection, 0, len(r.Services))
	for _, svc := range r.Services {
		services = append(services, createBooking.ServiceSelection{
			ServiceID:        svc.ServiceID,
			PreferredStaffID: svc.PreferredStaffID,
		})
	}

	return &createBooking.Request{
		CustomerID: customerID,
		Date:       bookingDate,
		StartTime:  startTime,
		Services:   services,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	out := &BookingResponse{
		ID:                   resp.ID,
		Reference:            resp.Reference,
		CustomerID:           resp.CustomerID,
		BookingDate:          resp.Date.Format(domain.DateFormat),
		StartTime:            resp.StartTime.String(),
		TotalDurationMinutes: resp.TotalDurationMinutes,
		Status:               resp.Status,
		Items:                []BookingItemResponse{},
		Notes:                resp.Notes,
		CreatedAt:            resp.CreatedAt.Format(time.RFC3339),
	}

	for _, item := range resp.Items {
		out.Items = append(out.Items, BookingItemResponse{
			ServiceID:    item.ServiceID,
			ServiceName:  item.ServiceName,
			ServicePrice: item.ServicePrice,
			StaffID:      item.StaffID,
			StartTime:    item.StartTime.String(),
			EndTime:      item.EndTime.String(),
		})
	}

	return out
}

package models

import (
	"errors"
	"time"

	"github.com/avdko/salon-booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования клиентом
type CancelBookingRequest struct {
	CustomerID         int64  `json:"customer_id"`
	CancellationReason string `json:"cancellation_reason"`
}

// GetCustomerBookingsRequest запрос на получение истории бронирований клиента
type GetCustomerBookingsRequest struct {
	CustomerID      int64   `json:"customer_id"`
	Status          *string `json:"status,omitempty"`
	IncludeInactive bool    `json:"include_inactive,omitempty"`
}

// GetStaffScheduleRequest запрос дневного расписания мастера
type GetStaffScheduleRequest struct {
	StaffID int64     `json:"staff_id"`
	Date    time.Time `json:"date"`
}

// Response модели

// BookingItemResponse одна позиция бронирования
type BookingItemResponse struct {
	ServiceID    int64   `json:"service_id"`
	ServiceName  string  `json:"service_name"`
	ServicePrice float64 `json:"service_price"`
	StaffID      int64   `json:"staff_id"`
	StartTime    string  `json:"start_time"` // "10:00"
	EndTime      string  `json:"end_time"`   // "11:15"
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID                   int64  `json:"id"`
	Reference            string `json:"reference"`
	CustomerID           int64  `json:"customer_id"`
	BookingDate          string `json:"booking_date"` // "2026-09-15"
	StartTime            string `json:"start_time"`   // "10:00"
	TotalDurationMinutes int    `json:"total_duration_minutes"`
	Status               string `json:"status"`

	Items []BookingItemResponse `json:"items"`

	// Денормализованные данные клиента
	CustomerName  *string `json:"customer_name,omitempty"`
	CustomerEmail *string `json:"customer_email,omitempty"`
	Notes         *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellation_reason,omitempty"`
	CancelledAt        *string `json:"cancelled_at,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// StaffScheduleEntryResponse одна запись дневного расписания мастера
type StaffScheduleEntryResponse struct {
	BookingID        int64   `json:"booking_id"`
	BookingReference string  `json:"booking_reference"`
	ServiceID        int64   `json:"service_id"`
	ServiceName      string  `json:"service_name"`
	StartTime        string  `json:"start_time"`
	EndTime          string  `json:"end_time"`
	Status           string  `json:"status"`
	CustomerName     *string `json:"customer_name,omitempty"`
}

// StaffScheduleResponse дневное расписание мастера
type StaffScheduleResponse struct {
	StaffID   int64                        `json:"staff_id"`
	StaffName string                       `json:"staff_name"`
	Date      string                       `json:"date"`
	Entries   []StaffScheduleEntryResponse `json:"entries"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                   b.ID,
		Reference:            b.Reference,
		CustomerID:           b.CustomerID,
		BookingDate:          b.BookingDate.Format(domain.DateFormat),
		StartTime:            b.StartMinute.String(),
		TotalDurationMinutes: b.TotalDurationMinutes,
		Status:               string(b.Status),
		CustomerName:         b.CustomerName,
		CustomerEmail:        b.CustomerEmail,
		Notes:                b.Notes,
		CancellationReason:   b.CancellationReason,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}

	for _, item := range b.Items {
		resp.Items = append(resp.Items, BookingItemResponse{
			ServiceID:    item.ServiceID,
			ServiceName:  item.ServiceName,
			ServicePrice: item.ServicePrice,
			StaffID:      item.StaffID,
			StartTime:    item.StartMinute.String(),
			EndTime:      item.EndMinute.String(),
		})
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: []BookingResponse{},
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromDomainStaffSchedule конвертирует дневное расписание мастера в DTO
func FromDomainStaffSchedule(staff *domain.Staff, date time.Time, entries []*domain.StaffScheduleEntry) *StaffScheduleResponse {
	resp := &StaffScheduleResponse{
		StaffID:   staff.ID,
		StaffName: staff.Name,
		Date:      date.Format(domain.DateFormat),
		Entries:   []StaffScheduleEntryResponse{},
	}

	for _, entry := range entries {
		resp.Entries = append(resp.Entries, StaffScheduleEntryResponse{
			BookingID:        entry.BookingID,
			BookingReference: entry.BookingReference,
			ServiceID:        entry.ServiceID,
			ServiceName:      entry.ServiceName,
			StartTime:        entry.StartMinute.String(),
			EndTime:          entry.EndMinute.String(),
			Status:           string(entry.Status),
			CustomerName:     entry.CustomerName,
		})
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusInProgress,
		domain.StatusCompleted,
		domain.StatusCancelledByCustomer,
		domain.StatusCancelledBySalon,
		domain.StatusNoShow,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}

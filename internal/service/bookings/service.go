package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdko/salon-booking-service/internal/domain"
	bookingRepo "github.com/avdko/salon-booking-service/internal/infra/storage/booking"
	staffRepo "github.com/avdko/salon-booking-service/internal/infra/storage/staff"
	"github.com/avdko/salon-booking-service/internal/service/bookings/models"
)

// Service сервис для работы с существующими бронированиями
type Service struct {
	bookingRepo BookingRepository
	staffRepo   StaffRepository
	metrics     MetricsRecorder
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	staffRepo StaffRepository,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		staffRepo:   staffRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Клиент может видеть только собственное бронирование
func (s *Service) GetByID(ctx context.Context, id int64, customerID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for customer=%d", id, customerID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if booking.CustomerID != customerID {
		s.logger.Warn("GetByID: access denied for customer=%d to booking id=%d", customerID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetCustomerBookings получает историю бронирований клиента
// Опционально фильтрует по статусу; по умолчанию отмененные и no-show скрыты
func (s *Service) GetCustomerBookings(ctx context.Context, req *models.GetCustomerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetCustomerBookings: fetching bookings for customer=%d, status=%v", req.CustomerID, req.Status)

	filter := domain.CustomerBookingsFilter{
		CustomerID:      req.CustomerID,
		IncludeInactive: req.IncludeInactive,
	}

	// Конвертируем статус из строки в domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetCustomerBookings: invalid status=%s for customer=%d", *req.Status, req.CustomerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	bookings, err := s.bookingRepo.GetByCustomerWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerBookings: successfully fetched %d bookings for customer=%d", len(bookings), req.CustomerID)
	return models.FromDomainBookingList(bookings), nil
}

// GetStaffDaySchedule получает дневное расписание мастера:
// все услуги блокирующих бронирований, назначенные на него в эту дату
func (s *Service) GetStaffDaySchedule(ctx context.Context, req *models.GetStaffScheduleRequest) (*models.StaffScheduleResponse, error) {
	s.logger.Info("GetStaffDaySchedule: fetching schedule for staff=%d, date=%s",
		req.StaffID, req.Date.Format(domain.DateFormat))

	staff, err := s.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("GetStaffDaySchedule: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("GetStaffDaySchedule: repository error for staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: GetStaffDaySchedule - repository error: %v", ErrInternal, err)
	}

	entries, err := s.bookingRepo.GetStaffDaySchedule(ctx, req.StaffID, req.Date)
	if err != nil {
		s.logger.Error("GetStaffDaySchedule: repository error for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: GetStaffDaySchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetStaffDaySchedule: fetched %d entries for staff=%d", len(entries), req.StaffID)
	return models.FromDomainStaffSchedule(staff, req.Date, entries), nil
}

// Cancel отменяет бронирование
// Клиент может отменить только собственное бронирование в статусе pending/confirmed
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by customer=%d", bookingID, req.CustomerID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if booking.CustomerID != req.CustomerID {
		s.logger.Warn("Cancel: access denied for customer=%d to booking id=%d", req.CustomerID, bookingID)
		return ErrAccessDenied
	}

	// Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	cancelStatus := domain.StatusCancelledByCustomer

	if err := s.bookingRepo.Cancel(ctx, bookingID, cancelStatus, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if s.metrics != nil {
		s.metrics.IncBookingsCancelled(string(cancelStatus))
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d with status=%s", bookingID, cancelStatus)
	return nil
}

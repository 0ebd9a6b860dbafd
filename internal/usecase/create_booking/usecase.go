package create_booking

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/avdko/salon-booking-service/internal/domain"
	scheduleRepo "github.com/avdko/salon-booking-service/internal/infra/storage/schedule"
	"github.com/avdko/salon-booking-service/internal/integrations/customerservice"
	"github.com/avdko/salon-booking-service/internal/scheduling"
)

// UseCase создание бронирования с подбором мастеров
type UseCase struct {
	bookingRepo  BookingRepository
	staffRepo    StaffRepository
	catalogRepo  CatalogRepository
	scheduleRepo ScheduleRepository
	customers    CustomerServiceClient
	txManager    TransactionManager
	assigner     *scheduling.Assigner
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр UseCase
func NewUseCase(
	bookingRepo BookingRepository,
	staffRepo StaffRepository,
	catalogRepo CatalogRepository,
	scheduleRepo ScheduleRepository,
	customers CustomerServiceClient,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &UseCase{
		bookingRepo:  bookingRepo,
		staffRepo:    staffRepo,
		catalogRepo:  catalogRepo,
		scheduleRepo: scheduleRepo,
		customers:    customers,
		txManager:    txManager,
		assigner:     scheduling.NewAssigner(rng, logger),
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute создает бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UseCase CreateBooking: начало создания бронирования: customer_id=%d, date=%s, start=%s",
		req.CustomerID, req.Date.Format(domain.DateFormat), req.StartTime)

	// Шаг 1: Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UseCase CreateBooking: ошибка валидации: %v", err)
		return nil, err
	}

	// Шаг 2: Проверка существования клиента (с graceful degradation)
	customer, err := uc.customers.GetCustomerWithGracefulDegradation(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, customerservice.ErrCustomerNotFound) {
			uc.logger.Warn("UseCase CreateBooking: клиент не найден: customer_id=%d", req.CustomerID)
			return nil, fmt.Errorf("%w: customer_id=%d", ErrCustomerNotFound, req.CustomerID)
		}
		// При деградации CustomerService продолжаем без профиля клиента
		uc.logger.Warn("UseCase CreateBooking: CustomerService недоступен, продолжаем без профиля: %v", err)
		customer = nil
	}

	var created *domain.Booking
	var fallbackCount int

	// Шаг 3: Создание бронирования в serializable транзакции,
	// чтобы закрыть гонку между чтением занятости и записью
	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		now := uc.timeProvider.Now()

		config, err := uc.scheduleRepo.GetForWeekday(txCtx, int(req.Date.Weekday()))
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrConfigNotFound) {
				config = domain.DefaultScheduleConfig()
			} else {
				uc.logger.Error("UseCase CreateBooking: ошибка получения расписания: %v", err)
				return fmt.Errorf("%w: failed to get schedule config: %v", ErrInternal, err)
			}
		}

		if err := validateDate(req.Date, now, config); err != nil {
			return err
		}

		if config.Closed {
			return fmt.Errorf("%w: %s", ErrSalonClosed, req.Date.Format(domain.DateFormat))
		}

		// Разрешаем услуги и считаем суммарную длительность цепочки
		ids := make([]int64, 0, len(req.Services))
		for _, svc := range req.Services {
			ids = append(ids, svc.ServiceID)
		}
		services, err := uc.catalogRepo.GetByIDs(txCtx, ids)
		if err != nil {
			uc.logger.Error("UseCase CreateBooking: ошибка получения услуг: %v", err)
			return fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
		}

		requests := make([]scheduling.ServiceRequest, 0, len(req.Services))
		totalMinutes := 0
		for _, sel := range req.Services {
			service, ok := services[sel.ServiceID]
			if !ok {
				return fmt.Errorf("%w: id=%d", ErrServiceNotFound, sel.ServiceID)
			}
			requests = append(requests, scheduling.ServiceRequest{
				Service:          service,
				PreferredStaffID: sel.PreferredStaffID,
			})
			totalMinutes += service.TotalMinutes()
		}

		if err := validateBusinessHours(req.StartTime, totalMinutes, config); err != nil {
			return err
		}

		if err := validateBookingNotice(req.Date, req.StartTime, now, config); err != nil {
			return err
		}

		staffPool, err := uc.staffRepo.GetActive(txCtx)
		if err != nil {
			uc.logger.Error("UseCase CreateBooking: ошибка получения мастеров: %v", err)
			return fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}
		if len(staffPool) == 0 {
			return ErrNoActiveStaff
		}

		if err := validatePreferredStaff(req.Services, staffPool); err != nil {
			return err
		}

		// Снимок занятости читается под FOR UPDATE внутри транзакции
		busy, err := uc.bookingRepo.GetStaffDayIntervals(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("UseCase CreateBooking: ошибка получения занятости: %v", err)
			return fmt.Errorf("%w: failed to get staff intervals: %v", ErrInternal, err)
		}

		assignments, err := uc.assigner.Assign(req.StartTime, requests, staffPool, scheduling.StaffCalendar(busy))
		if err != nil {
			if errors.Is(err, scheduling.ErrNoActiveStaff) {
				return ErrNoActiveStaff
			}
			uc.logger.Error("UseCase CreateBooking: ошибка подбора мастеров: %v", err)
			return fmt.Errorf("%w: staff assignment failed: %v", ErrInternal, err)
		}

		booking := buildBooking(req, customer, requests, assignments, totalMinutes)

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("UseCase CreateBooking: ошибка сохранения бронирования: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		fallbackCount = 0
		for _, a := range assignments {
			if a.Fallback {
				fallbackCount++
			}
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if uc.metrics != nil {
		uc.metrics.IncBookingsCreated()
		for i := 0; i < fallbackCount; i++ {
			uc.metrics.IncFallbackAssignments()
		}
	}

	uc.logger.Info("UseCase CreateBooking: бронирование создано: id=%d, reference=%s, fallback_assignments=%d",
		created.ID, created.Reference, fallbackCount)

	return buildResponse(created), nil
}

// validatePreferredStaff проверяет, что предпочитаемые мастера есть среди активных
func validatePreferredStaff(selections []ServiceSelection, pool []domain.Staff) error {
	active := make(map[int64]struct{}, len(pool))
	for _, s := range pool {
		active[s.ID] = struct{}{}
	}
	for _, sel := range selections {
		if sel.PreferredStaffID == nil {
			continue
		}
		if _, ok := active[*sel.PreferredStaffID]; !ok {
			return fmt.Errorf("%w: id=%d", ErrStaffNotFound, *sel.PreferredStaffID)
		}
	}
	return nil
}

// buildBooking собирает доменную модель бронирования из результатов подбора
func buildBooking(
	req *Request,
	customer *customerservice.Customer,
	requests []scheduling.ServiceRequest,
	assignments []scheduling.Assignment,
	totalMinutes int,
) *domain.Booking {
	booking := &domain.Booking{
		Reference:            uuid.NewString(),
		CustomerID:           req.CustomerID,
		BookingDate:          req.Date,
		StartMinute:          req.StartTime,
		TotalDurationMinutes: totalMinutes,
		Status:               domain.StatusConfirmed,
		Notes:                req.Notes,
	}

	if customer != nil {
		booking.CustomerName = &customer.Name
		booking.CustomerEmail = &customer.Email
	}

	byID := make(map[int64]domain.SalonService, len(requests))
	for _, r := range requests {
		byID[r.Service.ID] = r.Service
	}

	for _, a := range assignments {
		service := byID[a.ServiceID]
		booking.Items = append(booking.Items, domain.BookingItem{
			ServiceID:    a.ServiceID,
			StaffID:      a.StaffID,
			StartMinute:  a.Window.Start,
			EndMinute:    a.Window.End,
			ServiceName:  service.Name,
			ServicePrice: service.Price,
		})
	}

	return booking
}

func buildResponse(booking *domain.Booking) *Response {
	resp := &Response{
		ID:                   booking.ID,
		Reference:            booking.Reference,
		CustomerID:           booking.CustomerID,
		Date:                 booking.BookingDate,
		StartTime:            booking.StartMinute,
		TotalDurationMinutes: booking.TotalDurationMinutes,
		Status:               string(booking.Status),
		Notes:                booking.Notes,
		CreatedAt:            booking.CreatedAt,
	}
	for _, item := range booking.Items {
		resp.Items = append(resp.Items, ItemResponse{
			ServiceID:    item.ServiceID,
			ServiceName:  item.ServiceName,
			ServicePrice: item.ServicePrice,
			StaffID:      item.StaffID,
			StartTime:    item.StartMinute,
			EndTime:      item.EndMinute,
		})
	}
	return resp
}

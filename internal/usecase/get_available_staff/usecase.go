package get_available_staff

import (
	"context"
	"fmt"

	"github.com/avdko/salon-booking-service/internal/domain"
	"github.com/avdko/salon-booking-service/internal/scheduling"
)

// UseCase use case для получения мастеров, свободных на запрошенное время
type UseCase struct {
	bookingRepo BookingRepository
	staffRepo   StaffRepository
	catalogRepo CatalogRepository
	checker     scheduling.Checker
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	staffRepo StaffRepository,
	catalogRepo CatalogRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		staffRepo:   staffRepo,
		catalogRepo: catalogRepo,
		checker:     scheduling.NewChecker(),
		logger:      logger,
	}
}

// Execute выполняет use case получения свободных мастеров.
// Мастер свободен, если блок [start, start+total) не пересекается ни с
// одним из его существующих интервалов на эту дату.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableStaff: date=%s, start=%s, services=%v",
		req.Date.Format(domain.DateFormat), req.StartTime, req.ServiceIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableStaff: validation failed: %v", err)
		return nil, err
	}

	// 2. Резолвим услуги и считаем суммарную длительность блока
	services, err := uc.catalogRepo.GetByIDs(ctx, req.ServiceIDs)
	if err != nil {
		uc.logger.Error("GetAvailableStaff: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	totalDuration := 0
	for _, id := range req.ServiceIDs {
		svc, ok := services[id]
		if !ok {
			uc.logger.Warn("GetAvailableStaff: service id=%d not found", id)
			return nil, fmt.Errorf("%w: id=%d", ErrServiceNotFound, id)
		}
		totalDuration += svc.TotalMinutes()
	}

	if totalDuration <= 0 {
		return nil, ErrInvalidDuration
	}

	// 3. Получаем пул активных мастеров и их занятость
	staffPool, err := uc.staffRepo.GetActive(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableStaff: failed to get staff: %v", err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	busy, err := uc.bookingRepo.GetStaffDayIntervals(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableStaff: failed to get staff intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to get staff intervals: %v", ErrInternal, err)
	}

	// 4. Отбираем свободных
	free, err := uc.checker.AvailableStaff(req.StartTime, totalDuration, staffPool, scheduling.StaffCalendar(busy))
	if err != nil {
		uc.logger.Warn("GetAvailableStaff: availability check failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	members := make([]StaffMember, len(free))
	for i, s := range free {
		members[i] = StaffMember{ID: s.ID, Name: s.Name, Email: s.Email}
	}

	uc.logger.Info("GetAvailableStaff: %d of %d staff free for date=%s start=%s duration=%d",
		len(members), len(staffPool), req.Date.Format(domain.DateFormat), req.StartTime, totalDuration)

	return &Response{
		Date:                 req.Date,
		StartTime:            req.StartTime,
		TotalDurationMinutes: totalDuration,
		Staff:                members,
	}, nil
}

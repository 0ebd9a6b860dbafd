package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdko/salon-booking-service/internal/domain"
	scheduleRepo "github.com/avdko/salon-booking-service/internal/infra/storage/schedule"
	"github.com/avdko/salon-booking-service/internal/scheduling"
)

// UseCase use case для получения слотов рабочего дня с загрузкой мастеров
type UseCase struct {
	bookingRepo  BookingRepository
	staffRepo    StaffRepository
	scheduleRepo ScheduleRepository
	checker      scheduling.Checker
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	staffRepo StaffRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		staffRepo:    staffRepo,
		scheduleRepo: scheduleRepo,
		checker:      scheduling.NewChecker(),
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов рабочего дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем конфигурацию расписания на этот день недели
	config, err := uc.scheduleRepo.GetForWeekday(ctx, int(req.Date.Weekday()))
	if err != nil && !errors.Is(err, scheduleRepo.ErrConfigNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get schedule config: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule config: %v", ErrInternal, err)
	}

	// Если конфигурация не найдена, используем дефолтные значения
	if config == nil {
		config = domain.DefaultScheduleConfig()
		uc.logger.Info("GetAvailableSlots: using default schedule config")
	}

	// 4. Валидация даты с учетом конфигурации
	if err := validateDate(req.Date, now, config.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 5. Салон закрыт в этот день - слотов нет
	if config.Closed {
		uc.logger.Info("GetAvailableSlots: salon is closed on %s", req.Date.Format(domain.DateFormat))
		return &Response{Date: req.Date, Slots: []Slot{}}, nil
	}

	// 6. Получаем пул активных мастеров
	staffPool, err := uc.staffRepo.GetActive(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get staff: %v", err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	// 7. Получаем занятые интервалы мастеров на эту дату
	busy, err := uc.bookingRepo.GetStaffDayIntervals(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get staff intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to get staff intervals: %v", ErrInternal, err)
	}

	// 8. Сканируем слоты рабочего дня
	loads := uc.checker.ScanSlots(
		staffPool,
		busy,
		config.SlotGranularityMinutes,
		config.OpenMinute,
		config.CloseMinute,
	)

	slots := make([]Slot, len(loads))
	for i, load := range loads {
		slot := domain.AvailableSlot{
			StartTime:       load.Start,
			DurationMinutes: config.SlotGranularityMinutes,
			FreeStaff:       len(staffPool) - load.BusyStaff,
			TotalStaff:      len(staffPool),
		}
		slots[i] = Slot{
			StartTime:       slot.StartTime,
			DurationMinutes: slot.DurationMinutes,
			FreeStaff:       slot.FreeStaff,
			TotalStaff:      slot.TotalStaff,
			Disabled:        slot.IsDisabled(),
		}
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for date=%s, staff=%d",
		len(slots), req.Date.Format(domain.DateFormat), len(staffPool))

	return &Response{Date: req.Date, Slots: slots}, nil
}

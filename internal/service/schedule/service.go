package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdko/salon-booking-service/internal/domain"
	"github.com/avdko/salon-booking-service/internal/service/schedule/models"
	"github.com/avdko/salon-booking-service/pkg/timeutil"
)

// Service сервис для управления конфигурацией расписания салона
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// List возвращает все конфигурации расписания: дефолтную и по дням недели
func (s *Service) List(ctx context.Context) (*models.ConfigListResponse, error) {
	s.logger.Info("List: fetching schedule configs")

	configs, err := s.scheduleRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d schedule configs", len(configs))
	return models.FromDomainConfigList(configs), nil
}

// Upsert создает или обновляет конфигурацию расписания.
// Конфигурация с weekday=nil задает дефолт для всех дней недели.
func (s *Service) Upsert(ctx context.Context, req *models.UpsertConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Upsert: upserting schedule config, weekday=%v, closed=%v", req.Weekday, req.Closed)

	config, err := req.ToDomain()
	if err != nil {
		if errors.Is(err, timeutil.ErrInvalidClock) {
			s.logger.Warn("Upsert: invalid time format: %v", err)
			return nil, fmt.Errorf("%w: time must be in HH:MM format", ErrInvalidInput)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := validateConfig(config); err != nil {
		s.logger.Warn("Upsert: validation failed: %v", err)
		return nil, err
	}

	saved, err := s.scheduleRepo.Upsert(ctx, config)
	if err != nil {
		s.logger.Error("Upsert: repository error: %v", err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: saved schedule config id=%d", saved.ID)
	return models.FromDomainConfig(saved), nil
}

// validateConfig проверяет бизнес-ограничения конфигурации
func validateConfig(config *domain.ScheduleConfig) error {
	if config.Weekday != nil && (*config.Weekday < 0 || *config.Weekday > 6) {
		return fmt.Errorf("%w: weekday must be in range 0-6", ErrInvalidInput)
	}

	// Для закрытого дня часы работы не проверяем
	if config.Closed {
		return nil
	}

	if !config.OpenMinute.Valid() || !config.CloseMinute.Valid() {
		return fmt.Errorf("%w: time is out of range", ErrInvalidInput)
	}

	if config.OpenMinute >= config.CloseMinute {
		return fmt.Errorf("%w: open time must be before close time", ErrInvalidTimeRange)
	}

	if config.SlotGranularityMinutes < domain.MinSlotGranularityMinutes ||
		config.SlotGranularityMinutes > domain.MaxSlotGranularityMinutes {
		return fmt.Errorf("%w: slot granularity must be %d-%d minutes",
			ErrInvalidInput, domain.MinSlotGranularityMinutes, domain.MaxSlotGranularityMinutes)
	}

	if config.AdvanceBookingDays < domain.MinAdvanceBookingDays ||
		config.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advance booking days must be %d-%d",
			ErrInvalidInput, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
	}

	if config.MinBookingNoticeMinutes < domain.MinBookingNoticeMinutes ||
		config.MinBookingNoticeMinutes > domain.MaxBookingNoticeMinutes {
		return fmt.Errorf("%w: booking notice must be %d-%d minutes",
			ErrInvalidInput, domain.MinBookingNoticeMinutes, domain.MaxBookingNoticeMinutes)
	}

	return nil
}

package schedule

import (
	"context"

	"github.com/avdko/salon-booking-service/internal/domain"
)

// ScheduleRepository интерфейс репозитория конфигурации расписания
type ScheduleRepository interface {
	List(ctx context.Context) ([]*domain.ScheduleConfig, error)
	Upsert(ctx context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_schedule_config

import (
	"context"

	"github.com/avdko/salon-booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	List(ctx context.Context) (*models.ConfigListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

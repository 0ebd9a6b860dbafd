package update_schedule_config

import (
	"context"

	"github.com/avdko/salon-booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	Upsert(ctx context.Context, req *models.UpsertConfigRequest) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

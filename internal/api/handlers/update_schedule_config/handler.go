package update_schedule_config

import (
	"errors"
	"net/http"

	"github.com/avdko/salon-booking-service/internal/api/handlers"
	"github.com/avdko/salon-booking-service/internal/service/schedule"
	"github.com/avdko/salon-booking-service/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTimeRange   = "время открытия должно быть раньше времени закрытия"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/schedule/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule/config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Upsert(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidTimeRange):
			h.logger.Warn("PUT /schedule/config - Invalid time range: open=%s, close=%s", req.OpenTime, req.CloseTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /schedule/config - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /schedule/config - Failed to upsert config: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule/config - Config saved: id=%d, weekday=%v", result.ID, result.Weekday)
	handlers.RespondJSON(w, http.StatusOK, result)
}

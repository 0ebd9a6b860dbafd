package get_schedule_config

import (
	"net/http"

	"github.com/avdko/salon-booking-service/internal/api/handlers"
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

// Handle GET /api/v1/schedule/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /schedule/config - Failed to list configs: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule/config - Returned %d configs", len(result.Configs))
	handlers.RespondJSON(w, http.StatusOK, result)
}

package get_staff_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/avdko/salon-booking-service/internal/api/handlers"
	"github.com/avdko/salon-booking-service/internal/domain"
	"github.com/avdko/salon-booking-service/internal/service/bookings"
	"github.com/avdko/salon-booking-service/internal/service/bookings/models"
)

const (
	msgInvalidStaffID = "некорректный ID мастера"
	msgMissingDate    = "отсутствует параметр date"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgStaffNotFound  = "мастер не найден"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/{staffId}/schedule?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffIDStr := vars["staffId"]

	staffID, err := strconv.ParseInt(staffIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/schedule - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /staff/{id}/schedule - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/schedule - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetStaffDaySchedule(r.Context(), &models.GetStaffScheduleRequest{
		StaffID: staffID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrStaffNotFound):
			h.logger.Warn("GET /staff/{id}/schedule - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		default:
			h.logger.Error("GET /staff/{id}/schedule - Failed to get schedule: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /staff/{id}/schedule - Returned %d entries for staff_id=%d, date=%s",
		len(result.Entries), staffID, dateStr)
	handlers.RespondJSON(w, http.StatusOK, result)
}

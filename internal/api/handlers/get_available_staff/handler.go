package get_available_staff

import (
	"errors"
	"net/http"

	"github.com/avdko/salon-booking-service/internal/api/handlers"
	getAvailableStaff "github.com/avdko/salon-booking-service/internal/usecase/get_available_staff"
)

const (
	msgMissingParams    = "требуются параметры date, time и services"
	msgInvalidParams    = "некорректные параметры запроса, ожидается date=YYYY-MM-DD, time=HH:MM, services=1,2"
	msgServiceNotFound  = "услуга не найдена"
	msgInvalidDuration  = "некорректная суммарная длительность услуг"
	msgInvalidInput     = "некорректные входные данные"
)

type Handler struct {
	useCase GetAvailableStaffUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableStaffUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/staff?date=YYYY-MM-DD&time=HH:MM&services=1,2
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	dateStr := query.Get("date")
	timeStr := query.Get("time")
	servicesStr := query.Get("services")

	if dateStr == "" || timeStr == "" || servicesStr == "" {
		h.logger.Warn("GET /availability/staff - Missing query parameters")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	req, err := parseQuery(dateStr, timeStr, servicesStr)
	if err != nil {
		h.logger.Warn("GET /availability/staff - Failed to parse query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableStaff.ErrServiceNotFound):
			h.logger.Warn("GET /availability/staff - Service not found: services=%s", servicesStr)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableStaff.ErrInvalidDuration):
			h.logger.Warn("GET /availability/staff - Invalid duration: services=%s", servicesStr)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, getAvailableStaff.ErrInvalidInput):
			h.logger.Warn("GET /availability/staff - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /availability/staff - Failed to get staff: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/staff - Returned %d staff for date=%s, time=%s",
		len(result.Staff), dateStr, timeStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

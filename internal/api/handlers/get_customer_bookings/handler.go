package get_customer_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avdko/salon-booking-service/internal/api/handlers"
	"github.com/avdko/salon-booking-service/internal/api/middleware"
	"github.com/avdko/salon-booking-service/internal/service/bookings"
	"github.com/avdko/salon-booking-service/internal/service/bookings/models"
)

const (
	msgInvalidCustomerID = "некорректный ID клиента"
	msgMissingCustomerID = "отсутствует ID клиента"
	msgForbidden         = "доступ запрещен"
	msgInvalidStatus     = "некорректный статус бронирования"
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

// Handle GET /api/v1/customers/{customerId}/bookings?status=confirmed&include_inactive=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	customerIDStr := vars["customerId"]

	customerID, err := strconv.ParseInt(customerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /customers/{id}/bookings - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	authCustomerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("GET /customers/{id}/bookings - Missing customer ID")
		handlers.RespondUnauthorized(w, msgMissingCustomerID)
		return
	}

	// Клиент может смотреть только собственную историю
	if authCustomerID != customerID {
		h.logger.Warn("GET /customers/{id}/bookings - Access denied: customer_id=%d, auth_customer_id=%d",
			customerID, authCustomerID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	req := &models.GetCustomerBookingsRequest{
		CustomerID: customerID,
	}

	query := r.URL.Query()
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if query.Get("include_inactive") == "true" {
		req.IncludeInactive = true
	}

	result, err := h.service.GetCustomerBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /customers/{id}/bookings - Invalid status: customer_id=%d", customerID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /customers/{id}/bookings - Failed to get bookings: customer_id=%d, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /customers/{id}/bookings - Returned %d bookings for customer_id=%d",
		len(result.Bookings), customerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/avdko/salon-booking-service/internal/api/handlers"
)

type ctxKey int

const customerIDKey ctxKey = iota

const customerIDHeader = "X-Customer-ID"

// Auth middleware извлекает ID клиента из заголовка X-Customer-ID
// и помещает его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(customerIDHeader)
		if header == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-Customer-ID")
			return
		}

		customerID, err := strconv.ParseInt(header, 10, 64)
		if err != nil || customerID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-Customer-ID")
			return
		}

		ctx := context.WithValue(r.Context(), customerIDKey, customerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetCustomerID возвращает ID клиента из контекста запроса
func GetCustomerID(ctx context.Context) (int64, bool) {
	customerID, ok := ctx.Value(customerIDKey).(int64)
	return customerID, ok
}

// Package metrics содержит prometheus-коллекторы сервиса
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-коллекторов сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec

	dbOpenConnections  prometheus.Gauge
	dbInUseConnections prometheus.Gauge
	dbIdleConnections  prometheus.Gauge

	bookingsCreatedTotal      prometheus.Counter
	fallbackAssignmentsTotal  prometheus.Counter
	bookingsCancelledTotal    *prometheus.CounterVec
	rateLimitRejectionsTotal  prometheus.Counter
}

// New создает и регистрирует коллекторы с меткой сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),

		dbOpenConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of open database connections",
			ConstLabels: constLabels,
		}),

		dbInUseConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of database connections currently in use",
			ConstLabels: constLabels,
		}),

		dbIdleConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}),

		bookingsCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of bookings created",
			ConstLabels: constLabels,
		}),

		fallbackAssignmentsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "booking_fallback_assignments_total",
			Help:        "Total number of staff assignments that used the overbooked fallback",
			ConstLabels: constLabels,
		}),

		bookingsCancelledTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_cancelled_total",
			Help:        "Total number of cancelled bookings",
			ConstLabels: constLabels,
		}, []string{"status"}),

		rateLimitRejectionsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "ratelimit_rejections_total",
			Help:        "Total number of requests rejected by the rate limiter",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTPRequest учитывает один обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveDBQuery учитывает длительность одного SQL запроса
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetDBPoolStats обновляет gauge-метрики connection pool
func (m *Metrics) SetDBPoolStats(open, inUse, idle int) {
	m.dbOpenConnections.Set(float64(open))
	m.dbInUseConnections.Set(float64(inUse))
	m.dbIdleConnections.Set(float64(idle))
}

// IncBookingsCreated учитывает созданное бронирование
func (m *Metrics) IncBookingsCreated() {
	m.bookingsCreatedTotal.Inc()
}

// IncFallbackAssignments учитывает назначение мастера через overbooked fallback
func (m *Metrics) IncFallbackAssignments() {
	m.fallbackAssignmentsTotal.Inc()
}

// IncBookingsCancelled учитывает отмену бронирования
func (m *Metrics) IncBookingsCancelled(status string) {
	m.bookingsCancelledTotal.WithLabelValues(status).Inc()
}

// IncRateLimitRejections учитывает отклонение запроса rate limiter'ом
func (m *Metrics) IncRateLimitRejections() {
	m.rateLimitRejectionsTotal.Inc()
}

package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/avdko/salon-booking-service/internal/api/handlers"
	"github.com/avdko/salon-booking-service/pkg/metrics"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// visitor лимитер одного клиента с отметкой последней активности
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничивает частоту запросов per-IP (token bucket)
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor

	rps     rate.Limit
	burst   int
	metrics *metrics.Metrics
	logger  Logger
}

// NewRateLimiter создает новый rate limiter.
// metrics может быть nil, если сбор метрик отключен.
func NewRateLimiter(rps float64, burst int, m *metrics.Metrics, logger Logger) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
		metrics:  m,
		logger:   logger,
	}

	// Периодически выкидываем неактивных клиентов
	go rl.cleanup()

	return rl
}

// Middleware возвращает mux middleware, ограничивающий частоту запросов
func (rl *RateLimiter) Middleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			if !rl.allow(ip) {
				rl.logger.Warn("RateLimit: rejected request from %s to %s", ip, r.URL.Path)
				if rl.metrics != nil {
					rl.metrics.IncRateLimitRejections()
				}
				handlers.RespondError(w, http.StatusTooManyRequests, "слишком много запросов, попробуйте позже")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = time.Now()

	return v.limiter.Allow()
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		for ip, v := range rl.visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// clientIP извлекает IP клиента из запроса с учетом reverse proxy
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

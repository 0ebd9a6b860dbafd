package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/avdko/salon-booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/avdko/salon-booking-service/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/avdko/salon-booking-service/internal/api/handlers/get_available_slots"
	getAvailableStaffHandler "github.com/avdko/salon-booking-service/internal/api/handlers/get_available_staff"
	getBookingHandler "github.com/avdko/salon-booking-service/internal/api/handlers/get_booking"
	getCustomerBookingsHandler "github.com/avdko/salon-booking-service/internal/api/handlers/get_customer_bookings"
	getScheduleConfigHandler "github.com/avdko/salon-booking-service/internal/api/handlers/get_schedule_config"
	getStaffScheduleHandler "github.com/avdko/salon-booking-service/internal/api/handlers/get_staff_schedule"
	updateScheduleConfigHandler "github.com/avdko/salon-booking-service/internal/api/handlers/update_schedule_config"
	"github.com/avdko/salon-booking-service/internal/api/middleware"
	"github.com/avdko/salon-booking-service/internal/config"
	bookingRepo "github.com/avdko/salon-booking-service/internal/infra/storage/booking"
	catalogRepo "github.com/avdko/salon-booking-service/internal/infra/storage/catalog"
	scheduleRepo "github.com/avdko/salon-booking-service/internal/infra/storage/schedule"
	staffRepo "github.com/avdko/salon-booking-service/internal/infra/storage/staff"
	customerServiceClient "github.com/avdko/salon-booking-service/internal/integrations/customerservice"
	bookingsService "github.com/avdko/salon-booking-service/internal/service/bookings"
	scheduleService "github.com/avdko/salon-booking-service/internal/service/schedule"
	createBookingUC "github.com/avdko/salon-booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/avdko/salon-booking-service/internal/usecase/get_available_slots"
	getAvailableStaffUC "github.com/avdko/salon-booking-service/internal/usecase/get_available_staff"
	"github.com/avdko/salon-booking-service/pkg/dbmetrics"
	"github.com/avdko/salon-booking-service/pkg/logger"
	"github.com/avdko/salon-booking-service/pkg/metrics"
	"github.com/avdko/salon-booking-service/pkg/simpletxmanager"
	"github.com/avdko/salon-booking-service/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting salon-booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционного клиента
	customerClient := customerServiceClient.NewClient(
		cfg.CustomerService.URL,
		time.Duration(cfg.CustomerService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (CustomerService=%s timeout=%ds)",
		cfg.CustomerService.URL, cfg.CustomerService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		staffRepository    *staffRepo.Repository
		catalogRepository  *catalogRepo.Repository
		scheduleRepository *scheduleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		staffRepository = staffRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		staffRepository = staffRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Метрики бизнес-событий передаются только когда сбор включен
	var bookingMetrics createBookingUC.MetricsRecorder
	var cancelMetrics bookingsService.MetricsRecorder
	if cfg.Metrics.Enabled {
		bookingMetrics = metricsCollector
		cancelMetrics = metricsCollector
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		staffRepository,
		cancelMetrics,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		staffRepository,
		catalogRepository,
		scheduleRepository,
		customerClient,
		txMgr,
		bookingMetrics,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		staffRepository,
		scheduleRepository,
		log,
	)

	getAvailableStaffUseCase := getAvailableStaffUC.NewUseCase(
		bookingRepository,
		staffRepository,
		catalogRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAvailableStaff := getAvailableStaffHandler.NewHandler(getAvailableStaffUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)
	getStaffSchedule := getStaffScheduleHandler.NewHandler(bookingSvc, log)
	getScheduleConfig := getScheduleConfigHandler.NewHandler(scheduleSvc, log)
	updateScheduleConfig := updateScheduleConfigHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации, с ограничением частоты)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, metricsCollector, log)
		public.Use(limiter.Middleware())
		log.Info("Rate limiting enabled for public routes (rps=%.1f, burst=%d)",
			cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// Слоты рабочего дня с признаком disabled
	public.HandleFunc("/availability/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Свободные мастера на время для набора услуг
	public.HandleFunc("/availability/staff", getAvailableStaff.Handle).Methods(http.MethodGet)

	// Конфигурация расписания салона
	public.HandleFunc("/schedule/config", getScheduleConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Customer-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования с автоматическим подбором мастеров
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований клиента
	protected.HandleFunc("/customers/{customerId}/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)

	// --- Администрирование ---
	// Дневное расписание мастера
	protected.HandleFunc("/staff/{staffId}/schedule", getStaffSchedule.Handle).Methods(http.MethodGet)

	// Обновление конфигурации расписания
	protected.HandleFunc("/schedule/config", updateScheduleConfig.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

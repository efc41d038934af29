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

	analyticsHandler "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/api/handlers/analytics"
	calculateQuoteHandler "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/api/handlers/calculate_quote"
	cancelBookingHandler "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/api/handlers/create_booking"
	exportCSVHandler "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/api/handlers/export_csv"
	getBookingHandler "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/api/handlers/get_bookings"
	getCustomersHandler "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/api/handlers/get_customers"
	getPaymentsHandler "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/api/handlers/get_payments"
	getRoomAvailabilityHandler "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/api/handlers/get_room_availability"
	getRoomsHandler "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/api/handlers/get_rooms"
	getTransactionsHandler "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/api/handlers/get_transactions"
	payBookingHandler "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/api/handlers/pay_booking"
	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/api/middleware"
	"github.com/ifeodosidi-create/FIT-Capstone-Project/internal/config"
	analyticsRepo "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/infra/storage/analytics"
	bookingRepo "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/infra/storage/booking"
	customerRepo "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/infra/storage/customer"
	paymentRepo "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/infra/storage/payment"
	roomRepo "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/infra/storage/room"
	transactionRepo "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/infra/storage/transaction"
	acquiringClient "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/integrations/acquiring"
	analyticsService "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/service/analytics"
	bookingsService "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/service/bookings"
	customersService "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/service/customers"
	exportsService "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/service/exports"
	paymentsService "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/service/payments"
	roomsService "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/service/rooms"
	calculateQuoteUC "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/usecase/calculate_quote"
	cancelBookingUC "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/usecase/cancel_booking"
	createBookingUC "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/usecase/create_booking"
	payBookingUC "github.com/ifeodosidi-create/FIT-Capstone-Project/internal/usecase/pay_booking"
	"github.com/ifeodosidi-create/FIT-Capstone-Project/pkg/dbmetrics"
	"github.com/ifeodosidi-create/FIT-Capstone-Project/pkg/logger"
	"github.com/ifeodosidi-create/FIT-Capstone-Project/pkg/metrics"
	"github.com/ifeodosidi-create/FIT-Capstone-Project/pkg/simpletxmanager"
	"github.com/ifeodosidi-create/FIT-Capstone-Project/pkg/txmanager"
)

// txManager объединяет реализации из txmanager и simpletxmanager.
type txManagerI interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

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

	log.Info("Starting hotel booking service...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем клиента эквайринга
	acquiring := acquiringClient.NewClient(
		cfg.Acquiring.URL,
		time.Duration(cfg.Acquiring.Timeout)*time.Second,
		log,
	)
	if cfg.Acquiring.URL == "" {
		log.Info("Acquiring gateway not configured, running in offline payments mode")
	} else {
		log.Info("Acquiring client initialized (url=%s, timeout=%ds)", cfg.Acquiring.URL, cfg.Acquiring.Timeout)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository     *bookingRepo.Repository
		roomRepository        *roomRepo.Repository
		customerRepository    *customerRepo.Repository
		paymentRepository     *paymentRepo.Repository
		transactionRepository *transactionRepo.Repository
		analyticsRepository   *analyticsRepo.Repository
		txMgr                 txManagerI
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		transactionRepository = transactionRepo.NewRepository(wrappedDB)
		analyticsRepository = analyticsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		transactionRepository = transactionRepo.NewRepository(db)
		analyticsRepository = analyticsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	pricingRules := cfg.PricingRules()

	// Инициализируем сервисы
	roomsSvc := roomsService.NewService(roomRepository, bookingRepository, log)
	customersSvc := customersService.NewService(customerRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, paymentRepository, log)
	paymentsSvc := paymentsService.NewService(paymentRepository, transactionRepository, log)
	analyticsSvc := analyticsService.NewService(analyticsRepository, txMgr, log)
	exportsSvc := exportsService.NewService(
		bookingRepository,
		roomRepository,
		customerRepository,
		paymentRepository,
		transactionRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		roomRepository,
		bookingRepository,
		customersSvc,
		txMgr,
		pricingRules,
		log,
	)
	calculateQuoteUseCase := calculateQuoteUC.NewUseCase(
		roomRepository,
		bookingRepository,
		pricingRules,
		log,
	)
	payBookingUseCase := payBookingUC.NewUseCase(
		bookingRepository,
		paymentRepository,
		transactionRepository,
		acquiring,
		txMgr,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		paymentRepository,
		transactionRepository,
		txMgr,
		cfg.Cancellation.NoticeHours,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	calculateQuote := calculateQuoteHandler.NewHandler(calculateQuoteUseCase, log)
	payBooking := payBookingHandler.NewHandler(payBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingsSvc, log)
	getRooms := getRoomsHandler.NewHandler(roomsSvc, log)
	getRoomAvailability := getRoomAvailabilityHandler.NewHandler(roomsSvc, log)
	getCustomers := getCustomersHandler.NewHandler(customersSvc, log)
	getPayments := getPaymentsHandler.NewHandler(paymentsSvc, log)
	getTransactions := getTransactionsHandler.NewHandler(paymentsSvc, log)
	exportCSV := exportCSVHandler.NewHandler(exportsSvc, log)
	analytics := analyticsHandler.NewHandler(analyticsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Гостевой контур (без аутентификации)
	api.HandleFunc("/rooms", getRooms.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}", getRooms.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/availability", getRoomAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/quote", calculateQuote.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/pay", payBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Служебный контур (требуется заголовок X-Staff-ID)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/customers", getCustomers.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/payments", getPayments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/transactions", getTransactions.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/exports/{entity}.csv", exportCSV.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/analytics/revenue-by-category", analytics.HandleRevenueByCategory).Methods(http.MethodGet)
	protected.HandleFunc("/analytics/guests-by-month", analytics.HandleGuestsByMonth).Methods(http.MethodGet)
	protected.HandleFunc("/analytics/top-rooms", analytics.HandleTopRooms).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
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

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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"

	checkAvailabilityBatchHandler "github.com/kairodigital/KD-BookingService/internal/api/handlers/check_availability_batch"
	createReservationHandler "github.com/kairodigital/KD-BookingService/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/kairodigital/KD-BookingService/internal/api/handlers/delete_reservation"
	getAvailabilityHandler "github.com/kairodigital/KD-BookingService/internal/api/handlers/get_availability"
	getBookingSettingsHandler "github.com/kairodigital/KD-BookingService/internal/api/handlers/get_booking_settings"
	getReservationHandler "github.com/kairodigital/KD-BookingService/internal/api/handlers/get_reservation"
	listReservationsHandler "github.com/kairodigital/KD-BookingService/internal/api/handlers/list_reservations"
	rescheduleReservationHandler "github.com/kairodigital/KD-BookingService/internal/api/handlers/reschedule_reservation"
	updateBookingSettingsHandler "github.com/kairodigital/KD-BookingService/internal/api/handlers/update_booking_settings"
	updateReservationStatusHandler "github.com/kairodigital/KD-BookingService/internal/api/handlers/update_reservation_status"
	"github.com/kairodigital/KD-BookingService/internal/api/middleware"
	"github.com/kairodigital/KD-BookingService/internal/config"
	reservationRepo "github.com/kairodigital/KD-BookingService/internal/infra/storage/reservation"
	settingsRepo "github.com/kairodigital/KD-BookingService/internal/infra/storage/settings"
	"github.com/kairodigital/KD-BookingService/internal/integrations/mailer"
	jobsService "github.com/kairodigital/KD-BookingService/internal/service/jobs"
	reservationsService "github.com/kairodigital/KD-BookingService/internal/service/reservations"
	settingsService "github.com/kairodigital/KD-BookingService/internal/service/settings"
	checkAvailabilityBatchUC "github.com/kairodigital/KD-BookingService/internal/usecase/check_availability_batch"
	createReservationUC "github.com/kairodigital/KD-BookingService/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/kairodigital/KD-BookingService/internal/usecase/get_availability"
	"github.com/kairodigital/KD-BookingService/pkg/dbmetrics"
	"github.com/kairodigital/KD-BookingService/pkg/logger"
	"github.com/kairodigital/KD-BookingService/pkg/metrics"
)

func main() {
	// Загружаем .env (если есть): секреты не хранятся в config.toml
	_ = godotenv.Load()

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

	log.Info("Starting KD-BookingService...")
	log.Info("Configuration loaded from config.toml")

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

	// Инициализируем почтовый клиент
	// При выключенной почте ключ остается пустым: отправка тихо
	// завершается ErrNotConfigured и логируется предупреждением
	sendgridAPIKey := ""
	if cfg.Mail.Enabled {
		sendgridAPIKey = os.Getenv("SENDGRID_API_KEY")
		if sendgridAPIKey == "" {
			log.Warn("Mail is enabled but SENDGRID_API_KEY is not set, emails will not be sent")
		}
	}
	mailClient := mailer.NewClient(sendgridAPIKey, cfg.Mail.FromEmail, cfg.Mail.FromName, cfg.Mail.AdminEmail, log)
	log.Info("Mail client initialized (enabled=%t, from=%s, admin=%s)",
		cfg.Mail.Enabled, cfg.Mail.FromEmail, cfg.Mail.AdminEmail)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		settingsRepository    *settingsRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
	}

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		mailClient,
		log,
	)
	settingsSvc := settingsService.NewService(
		settingsRepository,
		log,
	)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		reservationRepository,
		settingsRepository,
		log,
	)

	checkAvailabilityBatchUseCase := checkAvailabilityBatchUC.NewUseCase(
		getAvailabilityUseCase,
		log,
	)

	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		mailClient,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	checkAvailabilityBatch := checkAvailabilityBatchHandler.NewHandler(checkAvailabilityBatchUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationsSvc, log)
	rescheduleReservation := rescheduleReservationHandler.NewHandler(reservationsSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)
	getBookingSettings := getBookingSettingsHandler.NewHandler(settingsSvc, log)
	updateBookingSettings := updateBookingSettingsHandler.NewHandler(settingsSvc, log)

	// Запускаем фоновые задачи (если включены)
	var jobsScheduler *cron.Cron
	if cfg.Jobs.Enabled {
		jobsSvc := jobsService.NewService(
			reservationRepository,
			mailClient,
			&getAvailabilityUC.RealTimeProvider{},
			log,
			cfg.Jobs.PurgePendingAfterDays,
		)

		jobsScheduler = cron.New()

		if _, err := jobsScheduler.AddFunc(cfg.Jobs.PurgeSchedule, func() {
			if err := jobsSvc.PurgeStalePending(context.Background()); err != nil {
				log.Error("Jobs: purge stale pending failed: %v", err)
			}
		}); err != nil {
			log.Fatal("Failed to schedule purge job: %v", err)
		}

		if _, err := jobsScheduler.AddFunc(cfg.Jobs.ReminderSchedule, func() {
			if err := jobsSvc.SendUpcomingReminders(context.Background()); err != nil {
				log.Error("Jobs: send upcoming reminders failed: %v", err)
			}
		}); err != nil {
			log.Fatal("Failed to schedule reminder job: %v", err)
		}

		jobsScheduler.Start()
		log.Info("Background jobs started (purge=%q, reminders=%q)",
			cfg.Jobs.PurgeSchedule, cfg.Jobs.ReminderSchedule)
	}

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступность слотов на одну дату
	api.HandleFunc("/booking/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Сводка доступности на несколько дат (календарь)
	api.HandleFunc("/booking/availability", checkAvailabilityBatch.Handle).Methods(http.MethodPost)

	// Создание заявки на консультацию
	api.HandleFunc("/booking/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Настройки бронирования для фронтенда
	api.HandleFunc("/booking/settings", getBookingSettings.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.RequireUser(log))

	// --- Администрирование бронирований ---
	protected.HandleFunc("/booking/reservations", listReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/booking/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/booking/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/booking/reservations/{reservationId}/reschedule", rescheduleReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/booking/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)

	// --- Настройки бронирования ---
	protected.HandleFunc("/booking/settings", updateBookingSettings.Handle).Methods(http.MethodPut)

	// CORS для фронтенда
	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.CORS.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete,
		}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "X-User-ID"}),
	)(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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

	// Останавливаем планировщик фоновых задач
	if jobsScheduler != nil {
		cronCtx := jobsScheduler.Stop()
		<-cronCtx.Done()
		log.Info("Background jobs stopped")
	}

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

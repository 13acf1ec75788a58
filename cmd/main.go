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

	cancelAppointmentHandler "github.com/m04kA/SPS-SchedulingService/internal/api/handlers/cancel_appointment"
	checkBlockConflictHandler "github.com/m04kA/SPS-SchedulingService/internal/api/handlers/check_block_conflict"
	createAppointmentHandler "github.com/m04kA/SPS-SchedulingService/internal/api/handlers/create_appointment"
	createBlockHandler "github.com/m04kA/SPS-SchedulingService/internal/api/handlers/create_block"
	deleteBlockHandler "github.com/m04kA/SPS-SchedulingService/internal/api/handlers/delete_block"
	getAvailableSlotsHandler "github.com/m04kA/SPS-SchedulingService/internal/api/handlers/get_available_slots"
	getCalendarHandler "github.com/m04kA/SPS-SchedulingService/internal/api/handlers/get_calendar"
	getDayAppointmentsHandler "github.com/m04kA/SPS-SchedulingService/internal/api/handlers/get_day_appointments"
	getAppointmentHandler "github.com/m04kA/SPS-SchedulingService/internal/api/handlers/get_appointment"
	getScheduleOverridesHandler "github.com/m04kA/SPS-SchedulingService/internal/api/handlers/get_schedule_overrides"
	getStaffBlocksHandler "github.com/m04kA/SPS-SchedulingService/internal/api/handlers/get_staff_blocks"
	getStaffScheduleHandler "github.com/m04kA/SPS-SchedulingService/internal/api/handlers/get_staff_schedule"
	updateStaffScheduleHandler "github.com/m04kA/SPS-SchedulingService/internal/api/handlers/update_staff_schedule"
	upsertScheduleOverrideHandler "github.com/m04kA/SPS-SchedulingService/internal/api/handlers/upsert_schedule_override"
	"github.com/m04kA/SPS-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SPS-SchedulingService/internal/config"
	appointmentRepo "github.com/m04kA/SPS-SchedulingService/internal/infra/storage/appointment"
	blockRepo "github.com/m04kA/SPS-SchedulingService/internal/infra/storage/block"
	settingsRepo "github.com/m04kA/SPS-SchedulingService/internal/infra/storage/settings"
	staffRepo "github.com/m04kA/SPS-SchedulingService/internal/infra/storage/staff"
	appointmentsService "github.com/m04kA/SPS-SchedulingService/internal/service/appointments"
	blocksService "github.com/m04kA/SPS-SchedulingService/internal/service/blocks"
	scheduleService "github.com/m04kA/SPS-SchedulingService/internal/service/schedule"
	checkBlockConflictUC "github.com/m04kA/SPS-SchedulingService/internal/usecase/check_block_conflict"
	createAppointmentUC "github.com/m04kA/SPS-SchedulingService/internal/usecase/create_appointment"
	createBlockUC "github.com/m04kA/SPS-SchedulingService/internal/usecase/create_block"
	getAvailableSlotsUC "github.com/m04kA/SPS-SchedulingService/internal/usecase/get_available_slots"
	getCalendarUC "github.com/m04kA/SPS-SchedulingService/internal/usecase/get_calendar"
	"github.com/m04kA/SPS-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SPS-SchedulingService/pkg/logger"
	"github.com/m04kA/SPS-SchedulingService/pkg/metrics"
	"github.com/m04kA/SPS-SchedulingService/pkg/simpletxmanager"
	"github.com/m04kA/SPS-SchedulingService/pkg/txmanager"
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

	log.Info("Starting SPS-SchedulingService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		staffRepository       *staffRepo.Repository
		appointmentRepository *appointmentRepo.Repository
		blockRepository       *blockRepo.Repository
		settingsRepository    *settingsRepo.Repository
	)

	// Интерфейс для transaction manager (используется в create_appointment)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		staffRepository = staffRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		blockRepository = blockRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		staffRepository = staffRepo.NewRepository(db)
		appointmentRepository = appointmentRepo.NewRepository(db)
		blockRepository = blockRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	scheduleSvc := scheduleService.NewService(staffRepository, log)
	blocksSvc := blocksService.NewService(blockRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		staffRepository,
		appointmentRepository,
		blockRepository,
		settingsRepository,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		staffRepository,
		appointmentRepository,
		blockRepository,
		settingsRepository,
		txMgr,
		log,
	)
	checkBlockConflictUseCase := checkBlockConflictUC.NewUseCase(appointmentRepository, log)
	createBlockUseCase := createBlockUC.NewUseCase(
		staffRepository,
		appointmentRepository,
		blockRepository,
		log,
	)
	getCalendarUseCase := getCalendarUC.NewUseCase(appointmentRepository, blockRepository, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getDayAppointments := getDayAppointmentsHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	checkBlockConflict := checkBlockConflictHandler.NewHandler(checkBlockConflictUseCase, log)
	createBlock := createBlockHandler.NewHandler(createBlockUseCase, log)
	getStaffBlocks := getStaffBlocksHandler.NewHandler(blocksSvc, log)
	deleteBlock := deleteBlockHandler.NewHandler(blocksSvc, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getStaffSchedule := getStaffScheduleHandler.NewHandler(scheduleSvc, log)
	updateStaffSchedule := updateStaffScheduleHandler.NewHandler(scheduleSvc, log)
	getScheduleOverrides := getScheduleOverridesHandler.NewHandler(scheduleSvc, log)
	upsertScheduleOverride := upsertScheduleOverrideHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
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
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные времена начала для услуги заданной длительности
	api.HandleFunc("/staff/{staffId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Недельный шаблон мастера
	api.HandleFunc("/staff/{staffId}/schedule",
		getStaffSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Записи на дату
	protected.HandleFunc("/appointments", getDayAppointments.Handle).Methods(http.MethodGet)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// --- Блокировки времени ---
	// Предварительная проверка пересечений кандидата-блока
	protected.HandleFunc("/staff/{staffId}/block-conflicts", checkBlockConflict.Handle).Methods(http.MethodGet)

	// Создание блока
	protected.HandleFunc("/staff/{staffId}/blocks", createBlock.Handle).Methods(http.MethodPost)

	// Блоки мастера на дату
	protected.HandleFunc("/staff/{staffId}/blocks", getStaffBlocks.Handle).Methods(http.MethodGet)

	// Удаление блока
	protected.HandleFunc("/blocks/{blockId}", deleteBlock.Handle).Methods(http.MethodDelete)

	// --- Календарь ---
	// События дня с раскладкой по колонкам
	protected.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// --- Расписания ---
	// Обновление недельного шаблона
	protected.HandleFunc("/staff/{staffId}/schedule", updateStaffSchedule.Handle).Methods(http.MethodPut)

	// Исключения из расписания на конкретные даты
	protected.HandleFunc("/staff/{staffId}/schedule-overrides", getScheduleOverrides.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/staff/{staffId}/schedule-overrides", upsertScheduleOverride.Handle).Methods(http.MethodPut)

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

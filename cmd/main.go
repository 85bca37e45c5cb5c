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

	cancelMissionHandler "github.com/m04kA/AFC-ReservationService/internal/api/handlers/cancel_mission"
	cancelPreReservationHandler "github.com/m04kA/AFC-ReservationService/internal/api/handlers/cancel_prereservation"
	checkConflictsHandler "github.com/m04kA/AFC-ReservationService/internal/api/handlers/check_conflicts"
	confirmPreReservationHandler "github.com/m04kA/AFC-ReservationService/internal/api/handlers/confirm_prereservation"
	createPreReservationHandler "github.com/m04kA/AFC-ReservationService/internal/api/handlers/create_prereservation"
	getAvailableSlotsHandler "github.com/m04kA/AFC-ReservationService/internal/api/handlers/get_available_slots"
	getMemberMissionsHandler "github.com/m04kA/AFC-ReservationService/internal/api/handlers/get_member_missions"
	getMemberPreReservationsHandler "github.com/m04kA/AFC-ReservationService/internal/api/handlers/get_member_prereservations"
	getMissionHandler "github.com/m04kA/AFC-ReservationService/internal/api/handlers/get_mission"
	getPrioritiesHandler "github.com/m04kA/AFC-ReservationService/internal/api/handlers/get_priorities"
	overridePriorityHandler "github.com/m04kA/AFC-ReservationService/internal/api/handlers/override_priority"
	quoteItineraryHandler "github.com/m04kA/AFC-ReservationService/internal/api/handlers/quote_itinerary"
	rotatePrioritiesHandler "github.com/m04kA/AFC-ReservationService/internal/api/handlers/rotate_priorities"
	"github.com/m04kA/AFC-ReservationService/internal/api/middleware"
	"github.com/m04kA/AFC-ReservationService/internal/config"
	blockRepo "github.com/m04kA/AFC-ReservationService/internal/infra/storage/block"
	missionRepo "github.com/m04kA/AFC-ReservationService/internal/infra/storage/mission"
	preReservationRepo "github.com/m04kA/AFC-ReservationService/internal/infra/storage/prereservation"
	priorityRepo "github.com/m04kA/AFC-ReservationService/internal/infra/storage/priority"
	memberServiceClient "github.com/m04kA/AFC-ReservationService/internal/integrations/memberservice"
	missionsService "github.com/m04kA/AFC-ReservationService/internal/service/missions"
	priorityQueueService "github.com/m04kA/AFC-ReservationService/internal/service/priorityqueue"
	cancelPreReservationUC "github.com/m04kA/AFC-ReservationService/internal/usecase/cancel_prereservation"
	checkConflictsUC "github.com/m04kA/AFC-ReservationService/internal/usecase/check_conflicts"
	confirmPreReservationUC "github.com/m04kA/AFC-ReservationService/internal/usecase/confirm_prereservation"
	createPreReservationUC "github.com/m04kA/AFC-ReservationService/internal/usecase/create_prereservation"
	getAvailableSlotsUC "github.com/m04kA/AFC-ReservationService/internal/usecase/get_available_slots"
	quoteItineraryUC "github.com/m04kA/AFC-ReservationService/internal/usecase/quote_itinerary"
	resolveHoldsUC "github.com/m04kA/AFC-ReservationService/internal/usecase/resolve_holds"
	"github.com/m04kA/AFC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/AFC-ReservationService/pkg/events"
	"github.com/m04kA/AFC-ReservationService/pkg/logger"
	"github.com/m04kA/AFC-ReservationService/pkg/metrics"
	"github.com/m04kA/AFC-ReservationService/pkg/simpletxmanager"
	"github.com/m04kA/AFC-ReservationService/pkg/txmanager"
)

// nopSweepMetrics используется, когда сбор метрик выключен
type nopSweepMetrics struct{}

func (nopSweepMetrics) ObserveSweepOutcome(string) {}

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

	log.Info("Starting AFC-ReservationService...")
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

	// Инициализируем клиента сервиса участников
	memberClient := memberServiceClient.NewClient(
		cfg.MemberService.URL,
		time.Duration(cfg.MemberService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (MemberService=%s timeout=%ds)",
		cfg.MemberService.URL, cfg.MemberService.Timeout)

	// Инициализируем публикацию событий (Kafka или заглушка)
	var publisher events.Publisher = events.NopPublisher{}
	var producer *events.Producer
	if cfg.Events.Enabled {
		producer, err = events.NewProducer(cfg.Events.Brokers, cfg.Events.Topic)
		if err != nil {
			log.Fatal("Failed to initialize event producer: %v", err)
		}
		publisher = producer
		log.Info("Event producer initialized (brokers=%v, topic=%s)", cfg.Events.Brokers, cfg.Events.Topic)
	} else {
		log.Info("Event publishing disabled")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		missionRepository        *missionRepo.Repository
		blockRepository          *blockRepo.Repository
		preReservationRepository *preReservationRepo.Repository
		priorityRepository       *priorityRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		missionRepository = missionRepo.NewRepository(wrappedDB)
		blockRepository = blockRepo.NewRepository(wrappedDB)
		preReservationRepository = preReservationRepo.NewRepository(wrappedDB)
		priorityRepository = priorityRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		missionRepository = missionRepo.NewRepository(db)
		blockRepository = blockRepo.NewRepository(db)
		preReservationRepository = preReservationRepo.NewRepository(db)
		priorityRepository = priorityRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Параметры движка расписания
	preparationBuffer := time.Duration(cfg.Scheduling.PreparationBufferHours) * time.Hour
	closureBuffer := time.Duration(cfg.Scheduling.ClosureBufferHours) * time.Hour
	holdDuration := time.Duration(cfg.Scheduling.HoldHours) * time.Hour
	granularity := time.Duration(cfg.Scheduling.SlotGranularityMinutes) * time.Minute
	log.Info("Scheduling params: preparation=%dh, closure=%dh, hold=%dh, granularity=%dm",
		cfg.Scheduling.PreparationBufferHours, cfg.Scheduling.ClosureBufferHours,
		cfg.Scheduling.HoldHours, cfg.Scheduling.SlotGranularityMinutes)

	// Инициализируем сервисы
	missionSvc := missionsService.NewService(
		missionRepository,
		publisher,
		log,
	)
	prioritySvc := priorityQueueService.NewService(
		priorityRepository,
		publisher,
		txMgr,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		missionRepository,
		blockRepository,
		getAvailableSlotsUC.SchedulingParams{
			PreparationBuffer:  preparationBuffer,
			ClosureBuffer:      closureBuffer,
			DefaultGranularity: granularity,
		},
		log,
	)

	checkConflictsUseCase := checkConflictsUC.NewUseCase(
		missionRepository,
		blockRepository,
		checkConflictsUC.SchedulingParams{
			PreparationBuffer: preparationBuffer,
			ClosureBuffer:     closureBuffer,
		},
		log,
	)

	createPreReservationUseCase := createPreReservationUC.NewUseCase(
		preReservationRepository,
		missionRepository,
		blockRepository,
		priorityRepository,
		memberClient,
		publisher,
		txMgr,
		createPreReservationUC.SchedulingParams{
			PreparationBuffer: preparationBuffer,
			ClosureBuffer:     closureBuffer,
			HoldDuration:      holdDuration,
		},
		log,
	)

	confirmPreReservationUseCase := confirmPreReservationUC.NewUseCase(
		preReservationRepository,
		missionRepository,
		blockRepository,
		memberClient,
		publisher,
		txMgr,
		confirmPreReservationUC.SchedulingParams{
			PreparationBuffer: preparationBuffer,
			ClosureBuffer:     closureBuffer,
		},
		log,
	)

	cancelPreReservationUseCase := cancelPreReservationUC.NewUseCase(
		preReservationRepository,
		publisher,
		txMgr,
		log,
	)

	var sweepMetrics resolveHoldsUC.SweepMetrics = nopSweepMetrics{}
	if cfg.Metrics.Enabled {
		sweepMetrics = metricsCollector
	}
	resolveHoldsUseCase := resolveHoldsUC.NewUseCase(
		preReservationRepository,
		missionRepository,
		blockRepository,
		memberClient,
		publisher,
		txMgr,
		sweepMetrics,
		resolveHoldsUC.SchedulingParams{
			PreparationBuffer: preparationBuffer,
			ClosureBuffer:     closureBuffer,
		},
		log,
	)

	quoteItineraryUseCase := quoteItineraryUC.NewUseCase(log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	checkConflicts := checkConflictsHandler.NewHandler(checkConflictsUseCase, log)
	createPreReservation := createPreReservationHandler.NewHandler(createPreReservationUseCase, log)
	confirmPreReservation := confirmPreReservationHandler.NewHandler(confirmPreReservationUseCase, log)
	cancelPreReservation := cancelPreReservationHandler.NewHandler(cancelPreReservationUseCase, log)
	getMemberPreReservations := getMemberPreReservationsHandler.NewHandler(preReservationRepository, log)
	getMission := getMissionHandler.NewHandler(missionSvc, log)
	getMemberMissions := getMemberMissionsHandler.NewHandler(missionSvc, log)
	cancelMission := cancelMissionHandler.NewHandler(missionSvc, log)
	quoteItinerary := quoteItineraryHandler.NewHandler(quoteItineraryUseCase, log)
	getPriorities := getPrioritiesHandler.NewHandler(prioritySvc, log)
	rotatePriorities := rotatePrioritiesHandler.NewHandler(prioritySvc, log)
	overridePriority := overridePriorityHandler.NewHandler(prioritySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
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

	// Календарь доступности воздушного судна
	api.HandleFunc("/aircraft/{aircraftId}/slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Проверка предлагаемого интервала на конфликты
	api.HandleFunc("/conflicts/check",
		checkConflicts.Handle).Methods(http.MethodPost)

	// Предварительный расчет стоимости маршрута
	api.HandleFunc("/quotes",
		quoteItinerary.Handle).Methods(http.MethodPost)

	// Текущая очередь приоритетов
	api.HandleFunc("/priorities",
		getPriorities.Handle).Methods(http.MethodGet)

	// --- Управление очередью ---
	// Вызываются планировщиком и администраторами, права проверяет API-шлюз
	api.HandleFunc("/priorities/rotate",
		rotatePriorities.Handle).Methods(http.MethodPost)
	api.HandleFunc("/priorities/{memberId}",
		overridePriority.Handle).Methods(http.MethodPut)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Member-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Пре-резервирования ---
	// Создание пре-резервирования (удержание окна)
	protected.HandleFunc("/prereservations", createPreReservation.Handle).Methods(http.MethodPost)

	// Пре-резервирования участника
	protected.HandleFunc("/prereservations", getMemberPreReservations.Handle).Methods(http.MethodGet)

	// Подтверждение пре-резервирования (создает миссию)
	protected.HandleFunc("/prereservations/{id}/confirm", confirmPreReservation.Handle).Methods(http.MethodPost)

	// Отмена ожидающего пре-резервирования
	protected.HandleFunc("/prereservations/{id}/cancel", cancelPreReservation.Handle).Methods(http.MethodPatch)

	// --- Миссии ---
	// Миссии участника
	protected.HandleFunc("/missions", getMemberMissions.Handle).Methods(http.MethodGet)

	// Получение миссии по ID
	protected.HandleFunc("/missions/{id}", getMission.Handle).Methods(http.MethodGet)

	// Отмена миссии
	protected.HandleFunc("/missions/{id}/cancel", cancelMission.Handle).Methods(http.MethodPatch)

	// Запускаем фоновую развертку просроченных удержаний
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	go func() {
		interval := time.Duration(cfg.Scheduling.SweepIntervalMinutes) * time.Minute
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		log.Info("Hold sweep started (interval=%dm)", cfg.Scheduling.SweepIntervalMinutes)
		for {
			select {
			case <-sweepCtx.Done():
				return
			case <-ticker.C:
				summary, err := resolveHoldsUseCase.Execute(sweepCtx)
				if err != nil {
					log.Error("Hold sweep failed: %v", err)
					continue
				}
				if summary.Processed > 0 {
					log.Info("Hold sweep: processed=%d, confirmed=%d, expired=%d, errors=%d",
						summary.Processed, summary.Confirmed, summary.Expired, summary.Errors)
				}
			}
		}
	}()

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

	// Останавливаем фоновую развертку
	stopSweep()

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	// Закрываем продюсера событий
	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Error("Failed to close event producer: %v", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited properly")
}

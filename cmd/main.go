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

	cancelOrderHandler "github.com/m04kA/BKR-PickupService/internal/api/handlers/cancel_order"
	createOrderHandler "github.com/m04kA/BKR-PickupService/internal/api/handlers/create_order"
	getAvailabilityHandler "github.com/m04kA/BKR-PickupService/internal/api/handlers/get_availability"
	getOrderHandler "github.com/m04kA/BKR-PickupService/internal/api/handlers/get_order"
	getSlotSettingsHandler "github.com/m04kA/BKR-PickupService/internal/api/handlers/get_slot_settings"
	getSlotsHandler "github.com/m04kA/BKR-PickupService/internal/api/handlers/get_slots"
	listOrdersHandler "github.com/m04kA/BKR-PickupService/internal/api/handlers/list_orders"
	updateOrderStatusHandler "github.com/m04kA/BKR-PickupService/internal/api/handlers/update_order_status"
	updateSlotSettingsHandler "github.com/m04kA/BKR-PickupService/internal/api/handlers/update_slot_settings"
	"github.com/m04kA/BKR-PickupService/internal/api/middleware"
	"github.com/m04kA/BKR-PickupService/internal/config"
	"github.com/m04kA/BKR-PickupService/internal/domain"
	"github.com/m04kA/BKR-PickupService/internal/infra/cache"
	orderRepo "github.com/m04kA/BKR-PickupService/internal/infra/storage/order"
	settingsRepo "github.com/m04kA/BKR-PickupService/internal/infra/storage/slotsettings"
	ordersService "github.com/m04kA/BKR-PickupService/internal/service/orders"
	slotSettingsService "github.com/m04kA/BKR-PickupService/internal/service/slotsettings"
	createOrderUC "github.com/m04kA/BKR-PickupService/internal/usecase/create_order"
	getAvailabilityUC "github.com/m04kA/BKR-PickupService/internal/usecase/get_availability"
	getSlotsUC "github.com/m04kA/BKR-PickupService/internal/usecase/get_slots"
	"github.com/m04kA/BKR-PickupService/pkg/dbmetrics"
	"github.com/m04kA/BKR-PickupService/pkg/logger"
	"github.com/m04kA/BKR-PickupService/pkg/metrics"
	"github.com/m04kA/BKR-PickupService/pkg/types"
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

	log.Info("Starting BKR-PickupService...")
	log.Info("Configuration loaded from config.toml")

	// Дефолтные настройки расписания из конфигурации
	slotDefaults, err := slotDefaultsFromConfig(cfg.Slots)
	if err != nil {
		log.Fatal("Invalid slot defaults in config: %v", err)
	}

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
		orderRepository    *orderRepo.Repository
		settingsRepository *settingsRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		orderRepository = orderRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
	} else {
		orderRepository = orderRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
	}

	// Кеш календаря слотов (опционально)
	var calendarCache getSlotsUC.CalendarCache
	var slotsCache *cache.SlotsCache

	if cfg.Redis.Enabled {
		slotsCache, err = cache.New(cfg.Redis.Addr, time.Duration(cfg.Redis.CacheTTLSeconds)*time.Second)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer slotsCache.Close()

		calendarCache = slotsCache
		log.Info("Slot calendar cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.CacheTTLSeconds)
	}

	// Инициализируем сервисы
	orderSvc := ordersService.NewService(orderRepository, log)
	settingsSvc := slotSettingsService.NewService(settingsRepository, slotDefaults, log)

	// Инициализируем use cases
	getSlotsUseCase := getSlotsUC.NewUseCase(
		orderRepository,
		settingsRepository,
		calendarCache,
		slotDefaults,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(orderRepository, log)
	createOrderUseCase := createOrderUC.NewUseCase(
		orderRepository,
		settingsRepository,
		slotDefaults,
		log,
	)

	// Инициализируем handlers
	getSlots := getSlotsHandler.NewHandler(getSlotsUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createOrder := createOrderHandler.NewHandler(createOrderUseCase, log)
	getOrder := getOrderHandler.NewHandler(orderSvc, log)
	listOrders := listOrdersHandler.NewHandler(orderSvc, log)
	cancelOrder := cancelOrderHandler.NewHandler(orderSvc, log)
	updateOrderStatus := updateOrderStatusHandler.NewHandler(orderSvc, log)
	getSlotSettings := getSlotSettingsHandler.NewHandler(settingsSvc, log)
	updateSlotSettings := updateSlotSettingsHandler.NewHandler(settingsSvc, log)

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
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Календарь слотов самовывоза на ближайшие дни
	api.HandleFunc("/slots", getSlots.Handle).Methods(http.MethodGet)

	// Доступность слотов на конкретную дату
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Заказы ---
	// Создание заказа самовывоза
	protected.HandleFunc("/orders", createOrder.Handle).Methods(http.MethodPost)

	// Список заказов с фильтрацией (админская часть витрины)
	protected.HandleFunc("/orders", listOrders.Handle).Methods(http.MethodGet)

	// Получение заказа по ID
	protected.HandleFunc("/orders/{orderId}", getOrder.Handle).Methods(http.MethodGet)

	// Отмена заказа клиентом
	protected.HandleFunc("/orders/{orderId}/cancel", cancelOrder.Handle).Methods(http.MethodPatch)

	// Перевод заказа в новый статус (для персонала магазина)
	protected.HandleFunc("/orders/{orderId}/status", updateOrderStatus.Handle).Methods(http.MethodPatch)

	// --- Настройки расписания ---
	protected.HandleFunc("/slot-settings", getSlotSettings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/slot-settings", updateSlotSettings.Handle).Methods(http.MethodPut)

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

	log.Info("Server stopped")
}

// slotDefaultsFromConfig собирает дефолтные настройки расписания из
// секции [slots] конфигурации
func slotDefaultsFromConfig(cfg config.SlotsConfig) (domain.SlotSettings, error) {
	openTime, err := types.NewTimeStringFromString(cfg.OpenTime)
	if err != nil {
		return domain.SlotSettings{}, fmt.Errorf("open_time: %w", err)
	}

	closeTime, err := types.NewTimeStringFromString(cfg.CloseTime)
	if err != nil {
		return domain.SlotSettings{}, fmt.Errorf("close_time: %w", err)
	}

	var cutoff types.TimeString
	if cfg.SameDayCutoff != "" {
		cutoff, err = types.NewTimeStringFromString(cfg.SameDayCutoff)
		if err != nil {
			return domain.SlotSettings{}, fmt.Errorf("same_day_cutoff: %w", err)
		}
	}

	weekdays := make([]time.Weekday, 0, len(cfg.ExcludedWeekdays))
	for _, name := range cfg.ExcludedWeekdays {
		wd, err := domain.ParseWeekday(name)
		if err != nil {
			return domain.SlotSettings{}, fmt.Errorf("excluded_weekdays: %w", err)
		}
		weekdays = append(weekdays, wd)
	}

	settings := domain.SlotSettings{
		DaysAhead:          cfg.DaysAhead,
		OpenTime:           openTime,
		CloseTime:          closeTime,
		GranularityMinutes: cfg.GranularityMinutes,
		SameDayCutoff:      cutoff,
		MaxPerSlot:         cfg.MaxPerSlot,
		ExcludedWeekdays:   weekdays,
	}

	// Проверка собираемости: некорректный конфиг должен валить сервис
	// на старте, а не первый запрос
	if _, err := settings.ToSlotConfig(); err != nil {
		return domain.SlotSettings{}, err
	}

	return settings, nil
}

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

	bookSlotHandler "github.com/ctcplatform/CTC-VoiceService/internal/api/handlers/book_slot"
	centerStatusHandler "github.com/ctcplatform/CTC-VoiceService/internal/api/handlers/center_status"
	getSlotsHandler "github.com/ctcplatform/CTC-VoiceService/internal/api/handlers/get_slots"
	manageAgentHandler "github.com/ctcplatform/CTC-VoiceService/internal/api/handlers/manage_agent"
	"github.com/ctcplatform/CTC-VoiceService/internal/api/middleware"
	"github.com/ctcplatform/CTC-VoiceService/internal/config"
	bookingStorage "github.com/ctcplatform/CTC-VoiceService/internal/infra/storage/booking"
	centerStorage "github.com/ctcplatform/CTC-VoiceService/internal/infra/storage/center"
	elevenLabsClient "github.com/ctcplatform/CTC-VoiceService/internal/integrations/elevenlabs"
	simplautoClient "github.com/ctcplatform/CTC-VoiceService/internal/integrations/simplauto"
	agentsService "github.com/ctcplatform/CTC-VoiceService/internal/service/agents"
	promptService "github.com/ctcplatform/CTC-VoiceService/internal/service/prompt"
	bookSlotUC "github.com/ctcplatform/CTC-VoiceService/internal/usecase/book_slot"
	getSlotsUC "github.com/ctcplatform/CTC-VoiceService/internal/usecase/get_slots"
	"github.com/ctcplatform/CTC-VoiceService/pkg/dbmetrics"
	"github.com/ctcplatform/CTC-VoiceService/pkg/logger"
	"github.com/ctcplatform/CTC-VoiceService/pkg/metrics"
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

	log.Info("Starting CTC-VoiceService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилища: PostgreSQL или in-memory заглушки
	var (
		bookingStore bookSlotUC.BookingStore
		centerStore  agentsService.CenterStore
	)

	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
			bookingStore = bookingStorage.NewRepository(wrappedDB)
			centerStore = centerStorage.NewRepository(wrappedDB)
			log.Info("Database metrics collection started")
		} else {
			bookingStore = bookingStorage.NewRepository(db)
			centerStore = centerStorage.NewRepository(db)
		}
	} else {
		bookingStore = bookingStorage.NewMemoryStore()
		centerStore = centerStorage.NewMemoryStore(centerStorage.DefaultDemoCenter(cfg.Centers.DemoID))
		log.Info("Database disabled, using in-memory stores (demo center_id=%s)", cfg.Centers.DemoID)
	}

	// Инициализируем интеграционных клиентов
	simplauto := simplautoClient.NewClient(
		cfg.Simplauto.URL,
		cfg.Simplauto.Token,
		time.Duration(cfg.Simplauto.Timeout)*time.Second,
		metricsCollector,
		log,
	)
	elevenLabs := elevenLabsClient.NewClient(
		cfg.ElevenLabs.URL,
		cfg.ElevenLabs.APIKey,
		time.Duration(cfg.ElevenLabs.Timeout)*time.Second,
		metricsCollector,
		log,
	)
	log.Info("Integration clients initialized (Simplauto=%s timeout=%ds, ElevenLabs=%s timeout=%ds)",
		cfg.Simplauto.URL, cfg.Simplauto.Timeout, cfg.ElevenLabs.URL, cfg.ElevenLabs.Timeout)

	// Инициализируем сервисы
	prompts := promptService.NewService()
	agents := agentsService.NewService(
		centerStore,
		elevenLabs,
		prompts,
		cfg.ElevenLabs.VoiceID,
		cfg.Webhook.BaseURL,
		log,
	)

	// Инициализируем use cases
	getSlotsUseCase := getSlotsUC.NewUseCase(simplauto, cfg.Slots.RespectClientRange, log)
	bookSlotUseCase := bookSlotUC.NewUseCase(bookingStore, log)

	// Инициализируем handlers
	getSlots := getSlotsHandler.NewHandler(getSlotsUseCase, log)
	bookSlot := bookSlotHandler.NewHandler(bookSlotUseCase, log)
	manageAgent := manageAgentHandler.NewHandler(agents, log)
	centerStatus := centerStatusHandler.NewHandler(agents, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// WEBHOOK ROUTES (вызываются голосовой платформой)
	// ============================================================

	webhook := r.PathPrefix("/webhook/elevenlabs").Subrouter()

	// Поиск доступных слотов
	webhook.HandleFunc("/{centerId}/get_slots", getSlots.Handle).Methods(http.MethodPost)

	// Бронирование слота
	webhook.HandleFunc("/{centerId}/book", bookSlot.Handle).Methods(http.MethodPost)

	// ============================================================
	// MANAGEMENT ROUTES (требуют X-Service-Token header)
	// ============================================================

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.ServiceAuth(cfg.Webhook.ServiceToken, log))

	// --- Агенты центров ---
	api.HandleFunc("/centers/{centerId}/agent", manageAgent.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/centers/{centerId}/agent", manageAgent.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/centers/{centerId}/agent", manageAgent.HandleUpdate).Methods(http.MethodPut)
	api.HandleFunc("/centers/{centerId}/agent", manageAgent.HandleDelete).Methods(http.MethodDelete)

	// --- Состояние центра ---
	api.HandleFunc("/centers/{centerId}/status", centerStatus.Handle).Methods(http.MethodGet)

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

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shaiso/Memora/internal/api"
	"github.com/shaiso/Memora/internal/config"
	"github.com/shaiso/Memora/internal/repo"
	"github.com/shaiso/Memora/internal/telemetry"
)

var (
	startTime    = time.Now()
	healthzTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "memora_api_healthz_requests_total",
		Help: "Total health check requests handled by memora_api",
	})
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}

	// Инициализируем structured logging
	logger := telemetry.SetupLogger(cfg.LogLevel, cfg.LogFormat)
	logger.Info("starting memora-api")

	// Подключаемся к базе данных. Соединение ленивое: недоступная база
	// не мешает старту, CRUD-запросы будут отвечать 500, а /test —
	// показывать причину.
	db, err := repo.Connect(context.Background(), cfg.DBURL, cfg.DBName)
	if err != nil {
		logger.Error("failed to configure database client", "error", err)
		os.Exit(1)
	}
	defer db.Close(context.Background())

	if err := db.Ping(context.Background()); err != nil {
		logger.Warn("database unreachable at startup", "error", err)
	} else {
		logger.Info("connected to database", "db", db.Name())
	}

	// Создаём репозиторий
	cardRepo := repo.NewFlashcardRepo(db)

	// Создаём API handler
	handler := api.NewHandler(api.Config{
		Cards:  cardRepo,
		Diag:   db,
		Logger: logger,
	})

	mux := http.NewServeMux()

	// Health и metrics
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		healthzTotal.Inc()
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "ok %s", time.Since(startTime))
	})
	mux.Handle("/metrics", promhttp.Handler())

	// Регистрируем API маршруты
	handler.RegisterRoutes(mux)

	// CORS оборачивает mux целиком: preflight OPTIONS должен
	// обрабатываться до сопоставления метода маршрута.
	root := api.CORS(cfg.CORSOriginList())(mux)

	// Создаём HTTP сервер с возможностью graceful shutdown
	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: root,
	}

	// Запускаем сервер в горутине
	go func() {
		logger.Info("listening", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Ожидаем сигнал завершения
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	<-ctx.Done()
	logger.Info("shutting down")

	// Graceful shutdown с таймаутом из конфигурации
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.ShutdownTimeout)*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	logger.Info("stopped")
}

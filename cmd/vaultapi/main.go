package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/papervault/papervault/internal/chain"
	"github.com/papervault/papervault/internal/common"
	"github.com/papervault/papervault/internal/ingest"
	"github.com/papervault/papervault/internal/notify"
	"github.com/papervault/papervault/internal/observability/logging"
	"github.com/papervault/papervault/internal/observability/metrics"
	"github.com/papervault/papervault/internal/repository"
	"github.com/papervault/papervault/internal/server"
	"github.com/papervault/papervault/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg := common.LoadConfig()
	logger := logging.NewJSONLogger("vaultapi", os.Getenv("LOG_LEVEL"))
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)
	if err := repository.HealthCheck(ctx, pool, 3*time.Second); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	store, err := storage.NewMinioStore(storage.Config{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		UseSSL:    cfg.Storage.UseSSL,
	}, logger)
	if err != nil {
		logger.Error("object store init failed", "error", err)
		os.Exit(1)
	}
	if err := store.EnsureBucket(ctx); err != nil {
		logger.Error("object store bucket check failed", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Metadata.Addr,
		Password: cfg.Metadata.Password,
		DB:       cfg.Metadata.DB,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Error("redis ping failed", "error", err)
		os.Exit(1)
	}

	conn, err := amqp.Dial(cfg.Queue.URL)
	if err != nil {
		logger.Error("queue connection failed", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	queue, err := chain.NewRabbitQueue(conn, cfg.Queue.Exchange, chain.DefaultRoutingKey)
	if err != nil {
		logger.Error("queue setup failed", "error", err)
		os.Exit(1)
	}

	m := metrics.NewPipelineMetrics()

	files := repository.NewUploadedFileRepository(entc, logger)
	entities := repository.NewEntityRepository(entc, logger)
	analyses := repository.NewAnalysisRepository(entc, logger)

	notifier := notify.NewLogNotifier(logger)

	// the gateway never executes stages; it only dispatches, restarts and
	// reads progress, so the orchestrator runs with an empty stage set
	orch := chain.NewOrchestrator(
		nil,
		chain.NewRedisMetadataStore(redisClient, cfg.Metadata.TTL),
		queue,
		files,
		notifier,
		nil,
		m,
		chain.Policy{
			MaxAttempts:  cfg.Pipeline.MaxAttempts,
			RetryBackoff: cfg.Pipeline.RetryBackoff,
			StageTimeout: cfg.Pipeline.StageTimeout,
			StaleFileAge: cfg.Pipeline.StaleFileAge,
		},
		logger,
	)

	svc := ingest.NewService(files, entities, store, orch, notifier, logger)
	router := server.NewRouter(server.NewHandler(svc, orch, files, analyses, m, logger))

	srv := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("gateway listening", "addr", cfg.Server.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server failed", "error", err)
			stop()
		}
	}()

	metricsSrv := &http.Server{Addr: cfg.Server.MetricsAddr, Handler: m.Handler()}
	go func() {
		logger.Info("metrics listening", "addr", cfg.Server.MetricsAddr)
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
	_ = metricsSrv.Shutdown(shutdownCtx)
	logger.Info("gateway stopped")
}

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

	"github.com/papervault/papervault/internal/ai"
	"github.com/papervault/papervault/internal/chain"
	"github.com/papervault/papervault/internal/classify"
	"github.com/papervault/papervault/internal/common"
	"github.com/papervault/papervault/internal/dedupe"
	"github.com/papervault/papervault/internal/extract"
	"github.com/papervault/papervault/internal/notify"
	"github.com/papervault/papervault/internal/observability/logging"
	"github.com/papervault/papervault/internal/observability/metrics"
	"github.com/papervault/papervault/internal/pipeline"
	"github.com/papervault/papervault/internal/repository"
	"github.com/papervault/papervault/internal/storage"
	"github.com/papervault/papervault/internal/workfile"
)

func main() {
	_ = godotenv.Load()

	cfg := common.LoadConfig()
	logger := logging.NewJSONLogger("vaultd", os.Getenv("LOG_LEVEL"))
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

	provider := ai.NewClient(ai.Config{
		BaseURL:       cfg.Provider.BaseURL,
		APIKey:        cfg.Provider.APIKey,
		Model:         cfg.Provider.Model,
		UploadTimeout: cfg.Provider.UploadTimeout,
		CallTimeout:   cfg.Provider.CallTimeout,
	}, ai.NewBreaker(ai.DefaultBreakerConfig()), m, logger)

	registry, err := extract.DefaultRegistry()
	if err != nil {
		logger.Error("extractor registry invalid", "error", err)
		os.Exit(1)
	}

	files := repository.NewUploadedFileRepository(entc, logger)
	entities := repository.NewEntityRepository(entc, logger)
	analyses := repository.NewAnalysisRepository(entc, logger)
	workfiles := workfile.NewManager(store, cfg.Pipeline.WorkDir, logger)

	stages := []chain.Stage{
		pipeline.NewClassifyStage(
			workfiles, provider,
			classify.NewClassifier(provider, logger),
			files, analyses, cfg.Pipeline.MinConfidence, logger,
		),
		pipeline.NewExtractStage(
			workfiles, provider,
			extract.NewRunner(provider, registry, logger),
			analyses, logger,
		),
		pipeline.NewFinalizeStage(entities, files, store, provider, workfiles, logger),
	}

	orch := chain.NewOrchestrator(
		stages,
		chain.NewRedisMetadataStore(redisClient, cfg.Metadata.TTL),
		queue,
		files,
		notify.NewLogNotifier(logger),
		workfiles,
		m,
		chain.Policy{
			MaxAttempts:  cfg.Pipeline.MaxAttempts,
			RetryBackoff: cfg.Pipeline.RetryBackoff,
			StageTimeout: cfg.Pipeline.StageTimeout,
			StaleFileAge: cfg.Pipeline.StaleFileAge,
		},
		logger,
	)

	consumer, err := chain.NewStageConsumer(
		conn, cfg.Queue.Exchange, chain.DefaultRoutingKey, cfg.Queue.Queue,
		orch.HandleMessage, logger,
	)
	if err != nil {
		logger.Error("consumer setup failed", "error", err)
		os.Exit(1)
	}

	// periodic housekeeping alongside the consumer: duplicate cleanup plus
	// a sweep of working copies orphaned by crashes
	cleaner := dedupe.NewCleaner(entities, logger)
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if kept, deleted, err := cleaner.Run(ctx); err != nil {
					logger.Error("duplicate cleanup failed", "error", err)
				} else if deleted > 0 {
					logger.Info("duplicate cleanup finished", "kept", kept, "deleted", deleted)
				}
				workfiles.SweepStale(cfg.Pipeline.StaleFileAge)
			}
		}
	}()

	metricsSrv := &http.Server{Addr: cfg.Server.MetricsAddr, Handler: m.Handler()}
	go func() {
		logger.Info("metrics listening", "addr", cfg.Server.MetricsAddr)
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server failed", "error", err)
		}
	}()

	logger.Info("worker started", "queue", cfg.Queue.Queue)
	if err := consumer.Start(ctx); err != nil {
		logger.Error("consumer stopped with error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = metricsSrv.Shutdown(shutdownCtx)
	logger.Info("worker stopped")
}

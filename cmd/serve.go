package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"finsage/config"
	httpLayer "finsage/http"
	"finsage/llm"
	"finsage/repository"
	"finsage/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(cfg.LogLevel)

	var closers []func() error
	defer func() {
		for _, c := range closers {
			if err := c(); err != nil {
				logger.WithError(err).Warn("failed to close resource")
			}
		}
	}()

	var redisClient *redis.Client
	if cfg.StoreDriver == config.DriverRedis || cfg.CacheDriver == config.DriverRedis {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		closers = append(closers, redisClient.Close)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(ctx).Err()
		cancel()
		if err != nil {
			return fmt.Errorf("connect to redis at %s: %w", cfg.RedisAddr, err)
		}
	}

	var profileRepo repository.ProfileRepository
	switch cfg.StoreDriver {
	case config.DriverRedis:
		profileRepo = repository.NewRedisProfileRepository(redisClient)
	case config.DriverPostgres:
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		closers = append(closers, db.Close)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("ping database: %w", err)
		}

		pg := repository.NewPostgresProfileRepository(db, logger)
		if err := pg.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("prepare schema: %w", err)
		}
		profileRepo = pg
	default:
		profileRepo = repository.NewProfileRepositoryMemory()
	}

	var (
		cache       repository.CacheRepository
		memoryCache *repository.MemoryCache
	)
	if cfg.CacheDriver == config.DriverRedis {
		cache = repository.NewRedisCache(redisClient, logger)
	} else {
		memoryCache = repository.NewMemoryCache()
		cache = memoryCache
	}

	gen, err := llm.New(llm.Config{
		Provider: cfg.LLMProvider,
		APIKey:   cfg.LLMAPIKey(),
		Model:    cfg.LLMModel,
		Timeout:  cfg.LLMTimeout.Duration,
	})
	switch {
	case errors.Is(err, llm.ErrNoAPIKey):
		logger.WithField("provider", cfg.LLMProvider).Warn("no API key configured, advisor answers with fallback text")
	case err != nil:
		return fmt.Errorf("configure text generation: %w", err)
	}

	profileService := service.NewProfileService(profileRepo, logger)
	summaryService := service.NewSummaryService(profileService)
	authService := service.NewAuthService(cfg.JWTSecret, logger)
	advisorService := service.NewAdvisorService(gen, cache, profileService, logger, cfg.AdviceCacheTTL.Duration)

	handlers := httpLayer.Handlers{
		Calc:      httpLayer.NewCalcHandler(logger),
		Loan:      httpLayer.NewLoanHandler(service.NewLoanService(logger), logger),
		Analytics: httpLayer.NewAnalyticsHandler(service.NewAnalyticsService(), logger),
		Profile:   httpLayer.NewProfileHandler(profileService, summaryService, logger),
		Scenario:  httpLayer.NewScenarioHandler(service.NewScenarioService(profileService), logger),
		Advisor:   httpLayer.NewAdvisorHandler(advisorService, logger),
	}

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow.Duration)
	router := httpLayer.NewRouter(handlers, authService, rateLimiter, advisorService.Enabled(), logger)

	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.CleanupSchedule, func() {
		fields := logrus.Fields{"rate_limit_buckets": rateLimiter.Cleanup()}
		if memoryCache != nil {
			fields["cache_entries"] = memoryCache.Sweep()
		}
		logger.WithFields(fields).Debug("expired entries removed")
	})
	if err != nil {
		return fmt.Errorf("invalid CLEANUP_SCHEDULE %q: %w", cfg.CleanupSchedule, err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.LLMTimeout.Duration + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.WithFields(logrus.Fields{
			"port":  cfg.Port,
			"store": cfg.StoreDriver,
			"cache": cfg.CacheDriver,
		}).Info("API listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("start server: %w", err)
	case <-quit:
		logger.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("error during server shutdown")
	}

	logger.Info("server exited")
	return nil
}

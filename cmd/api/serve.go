package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/api/handler"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/api/middleware"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/api/routes"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/metrics"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/ratelimit"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	var skipMigrations bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, skipMigrations)
		},
	}

	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "start without migrating the schema")

	return cmd
}

func serve(ctx context.Context, skipMigrations bool) error {
	app, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer app.close()

	if !skipMigrations {
		if err := app.db.Migrate(ctx); err != nil {
			app.logger.Error("Failed to run migrations", map[string]any{
				"error": err.Error(),
			})
			return err
		}
	}

	if app.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	var (
		recorder      coreport.MetricsRecorder = metrics.NoopRecorder{}
		httpObserver  middleware.HTTPObserver
		limitObserver middleware.RateLimitObserver
		opts          routes.Options
	)
	if app.cfg.Metrics.Enabled {
		promRecorder := metrics.NewRecorder()
		if sqlDB, err := app.db.SQLDB(); err == nil {
			if err := promRecorder.RegisterDBStats(sqlDB, app.cfg.Database.Database); err != nil {
				app.logger.Warn("Failed to register connection pool metrics", map[string]any{
					"error": err.Error(),
				})
			}
		}
		recorder = promRecorder
		httpObserver = promRecorder
		limitObserver = promRecorder
		opts.Metrics = promRecorder.Handler()
		opts.MetricsPath = app.cfg.Metrics.Path
	}

	services, err := app.buildUseCases(recorder)
	if err != nil {
		return err
	}

	opts.Auth = middleware.Auth(services.tokens)

	if app.cfg.RateLimit.Enabled {
		redisClient := ratelimit.NewRedisClient(app.cfg.RateLimit.Redis)
		defer func() { _ = redisClient.Close() }()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			app.logger.Warn("Redis unreachable, requests will not be rate limited until it recovers", map[string]any{
				"addr":  app.cfg.RateLimit.Redis.Addr,
				"error": err.Error(),
			})
		}

		limiter := ratelimit.NewFixedWindowLimiter(redisClient, app.cfg.RateLimit.Limit, app.cfg.RateLimit.Window, app.cfg.RateLimit.KeyPrefix)
		opts.RateLimit = middleware.RateLimit(limiter, limitObserver, app.logger)
	}

	router := gin.New()
	// Rate limit keys come from ClientIP, which only reads forwarding
	// headers when the peer is a listed proxy.
	if err := router.SetTrustedProxies(app.cfg.Server.TrustedProxies); err != nil {
		app.logger.Error("Invalid trusted proxy list", map[string]any{
			"trustedProxies": app.cfg.Server.TrustedProxies,
			"error":          err.Error(),
		})
		return fmt.Errorf("server.trustedProxies: %w", err)
	}
	routes.SetupMiddlewares(router, app.logger, app.clock, httpObserver, app.cfg.Server.AllowedOrigins)
	routes.SetupRoutes(router, routes.Handlers{
		Account:     handler.NewAccountHandler(services.accounts, app.logger),
		Wallet:      handler.NewWalletHandler(services.transactions, services.ledger, app.logger),
		Transaction: handler.NewTransactionHandler(services.ledger, app.logger),
		Health:      handler.NewHealthHandler(app.db, app.logger),
	}, opts)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", app.cfg.Server.Host, app.cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       app.cfg.Server.ReadTimeout,
		WriteTimeout:      app.cfg.Server.WriteTimeout,
		ReadHeaderTimeout: app.cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       app.cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		app.logger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  app.cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			app.logger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			return err
		}
	case <-ctx.Done():
	}

	app.logger.Info("Shutting down server", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	app.logger.Info("Server exited gracefully", nil)
	return nil
}

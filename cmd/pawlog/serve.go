package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/JonnyWalker81/pawlog/backend/internal/config"
	"github.com/JonnyWalker81/pawlog/backend/internal/handlers"
	"github.com/JonnyWalker81/pawlog/backend/internal/logger"
	"github.com/JonnyWalker81/pawlog/backend/internal/metrics"
	"github.com/JonnyWalker81/pawlog/backend/internal/middleware"
	"github.com/JonnyWalker81/pawlog/backend/internal/service"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("starting pawlog API server",
		logger.String("env", cfg.Server.Env),
		logger.Store(cfg.Storage.Driver),
	)

	st, err := openStore(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.close()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, cleanup := newRouter(cfg, st, service.SystemClock(loc), metrics.New(), log)
	defer cleanup()

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", logger.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// newRouter wires services, handlers and middleware over st. The returned
// func releases background resources.
func newRouter(cfg *config.Config, st *store, clock service.Clock, m *metrics.Metrics, log logger.Logger) (*gin.Engine, func()) {
	behaviorService := service.NewBehaviorService(st.events, clock, log, m)
	catalogService := service.NewCatalogService(st.catalog, log)
	analyticsService := service.NewAnalyticsService(st.events, st.catalog, clock, service.AnalyticsOptions{
		DefaultWindowDays: cfg.Analytics.DefaultWindowDays,
		QuickAddLimit:     cfg.Analytics.QuickAddLimit,
	}, log, m)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID(log))
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics(m))
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))

	router.GET("/health", handlers.Health(cfg.Server.Env, cfg.Storage.Driver))
	router.GET("/metrics", gin.WrapH(m.Handler()))

	cleanup := func() {}
	v1 := router.Group("/api/v1")
	if cfg.Server.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.Server.RateLimit, middleware.DefaultIdleTTL, "api")
		v1.Use(middleware.RateLimit(limiter))
		cleanup = limiter.Stop
	}

	handlers.RegisterRoutes(v1,
		handlers.NewBehaviorHandler(behaviorService),
		handlers.NewCatalogHandler(catalogService),
		handlers.NewAnalyticsHandler(analyticsService),
	)

	return router, cleanup
}

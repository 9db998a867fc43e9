package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mysage/portal/internal/config"
	"github.com/mysage/portal/internal/domain/dashboard"
	"github.com/mysage/portal/internal/domain/priorauth"
	"github.com/mysage/portal/internal/domain/queue"
	"github.com/mysage/portal/internal/domain/report"
	"github.com/mysage/portal/internal/domain/visit"
	"github.com/mysage/portal/internal/platform/auth"
	"github.com/mysage/portal/internal/platform/middleware"
	"github.com/mysage/portal/internal/platform/session"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "portal-server",
		Short: "mySage clinic operations portal API server",
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Print the demo data the server boots with",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printSeedInventory(cmd.OutOrStdout())
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	rootCmd.AddCommand(serveCmd, seedCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServer() error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.IsDev() {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, "X-Request-ID"},
	}))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.BodyLimit("1M"))
	e.Use(middleware.RequestTimeout(30 * time.Second))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "version": version})
	})

	// Auth wiring. The session file carries a login across restarts.
	tokens := auth.NewTokenIssuer(cfg.AuthSecret, cfg.TokenTTL())
	authSvc := auth.NewService(tokens, cfg.LoginDelay(), logger)
	sessions := session.NewStore(cfg.SessionFile, logger)
	authHandler := auth.NewHandler(authSvc, sessions, logger)

	if actor, ok := sessions.Load(); ok {
		logger.Info().Str("username", actor.Username).Str("role", actor.Role).Msg("resuming saved session")
	}

	// Domain wiring, all backed by the seeded in-memory stores.
	queueSvc := queue.NewService(queue.NewMemoryRepository(queue.SeedTasks()))
	paSvc := priorauth.NewService(priorauth.NewMemoryRepository(priorauth.SeedRequests()))
	visitSvc := visit.NewService(visit.NewMemoryRepository(visit.SeedVisits()))
	dashSvc := dashboard.NewService(queueSvc, paSvc, visitSvc)

	// Pending report runs are abandoned when this context is cancelled
	// during shutdown.
	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()
	reportSvc := report.NewService(schedulerCtx, report.NewStore(report.SeedReports()), cfg.ReportDelay(), logger)

	rateCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateCfg.RequestsPerSecond <= 0 {
		rateCfg = middleware.DefaultRateLimitConfig()
	}

	apiV1 := e.Group("/api/v1")

	// Login is unauthenticated, so its limiter buckets by client IP. The
	// protected limiter sits after the bearer middleware and buckets by
	// session username.
	public := apiV1.Group("", middleware.RateLimit(rateCfg))
	authHandler.RegisterPublicRoutes(public)

	protected := apiV1.Group("", auth.Middleware(tokens), middleware.RateLimit(rateCfg), middleware.Audit(logger))
	authHandler.RegisterRoutes(protected)

	// Every portal screen is available to any clinic role; System Admin
	// passes RequireRole unconditionally.
	screens := protected.Group("", auth.RequireRole(auth.RoleStaff, auth.RoleAdmin))
	queue.NewHandler(queueSvc).RegisterRoutes(screens)
	priorauth.NewHandler(paSvc).RegisterRoutes(screens)
	visit.NewHandler(visitSvc).RegisterRoutes(screens)
	dashboard.NewHandler(dashSvc).RegisterRoutes(screens)
	report.NewHandler(reportSvc).RegisterRoutes(screens)

	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	stopScheduler()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// printSeedInventory lists the fixture records and demo logins so anyone
// running the server locally knows what to expect.
func printSeedInventory(w io.Writer) error {
	fmt.Fprintf(w, "queue tasks:       %d\n", len(queue.SeedTasks()))
	fmt.Fprintf(w, "pa requests:       %d\n", len(priorauth.SeedRequests()))
	fmt.Fprintf(w, "visits:            %d\n", len(visit.SeedVisits()))
	fmt.Fprintf(w, "reports:           %d\n", len(report.SeedReports()))
	fmt.Fprintf(w, "report templates:  %d\n", len(report.Catalog()))
	fmt.Fprintf(w, "activity entries:  %d\n", len(dashboard.SeedActivity()))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "demo logins (password: password123):")
	for _, u := range auth.DemoUsers() {
		fmt.Fprintf(w, "  %-22s %s\n", u.Username, u.Role)
	}
	return nil
}

package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/broadvale/registry/internal/registry/http"
	"github.com/broadvale/registry/internal/registry/service"
	"github.com/broadvale/registry/internal/registry/store"
	"github.com/broadvale/registry/internal/registry/store/drivers/sqlite"
	"github.com/broadvale/registry/pkg/jwtx"
	"github.com/broadvale/registry/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the registry service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db store.Store

	// Services
	authService           *service.AuthService
	membershipService     *service.MembershipService
	maintainershipService *service.MaintainershipService
	listingService        *service.ListingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "registry",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("registry starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down registry...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("registry stopped")
	return nil
}

// initDatabase initializes the database and applies migrations.
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes all business logic services.
func (app *Application) initServices() error {
	verifier, err := app.loadVerifier()
	if err != nil {
		return err
	}

	guard := &service.GuardService{Store: app.db}

	app.authService = &service.AuthService{Store: app.db, Verifier: verifier}
	app.membershipService = &service.MembershipService{Store: app.db, Guard: guard}
	app.maintainershipService = &service.MaintainershipService{Store: app.db, Guard: guard}
	app.listingService = &service.ListingService{Store: app.db}

	return nil
}

// loadVerifier reads the identity service's public key. Without one the
// registry still runs; only opaque CLI tokens authenticate.
func (app *Application) loadVerifier() (jwtx.Verifier, error) {
	if app.cfg.TokenPublicKeyFile == "" {
		app.logger.Warn("no token public key configured, JWT authentication disabled")
		return nil, nil
	}

	pemBytes, err := os.ReadFile(app.cfg.TokenPublicKeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read token public key: %w", err)
	}

	verifier, err := jwtx.NewEd25519VerifierFromPEM(pemBytes, app.cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token public key: %w", err)
	}
	return verifier, nil
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)

	// Wire services to router
	router.AuthService = app.authService
	router.MembershipService = app.membershipService
	router.MaintainershipService = app.maintainershipService
	router.ListingService = app.listingService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

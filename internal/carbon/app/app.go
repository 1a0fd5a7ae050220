package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/carbon/internal/carbon/http"
	"github.com/aussiebroadwan/carbon/internal/carbon/metrics"
	"github.com/aussiebroadwan/carbon/internal/carbon/service"
	"github.com/aussiebroadwan/carbon/internal/carbon/store"
	"github.com/aussiebroadwan/carbon/internal/carbon/upstream"
	"github.com/aussiebroadwan/carbon/pkg/cryptox"
	"github.com/aussiebroadwan/carbon/pkg/slogx"
)

// BuildVersion is overridden at build time with -ldflags "-X ...".
var BuildVersion = "v0.1.0"

// Application wires the carbon API together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db      store.Store
	metrics *metrics.Metrics

	tokenService    *service.TokenService
	userService     *service.UserService
	emissionService *service.EmissionService

	chat upstream.ChatClient
	news upstream.NewsClient

	server *http.Server
	router *httpapi.Router
}

// New validates cfg and builds every dependency. The store is connected
// and migrated before New returns.
func New(ctx context.Context, cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "carbon-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
		metrics: metrics.New(),
	}

	if cfg.generatedSecret {
		app.logger.Warn("JWT_SECRET not set, using a random secret; tokens will not survive a restart")
	}

	db, err := OpenStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	app.db = db
	app.logger.Info("store ready", "driver", driverFor(cfg.DatabaseURL))

	if err := app.initServices(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := app.initUpstreams(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("carbon api starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
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

// Shutdown drains in-flight requests, then releases upstream clients and the store.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down carbon api...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if c, ok := app.chat.(interface{ Close() error }); ok {
		if err := c.Close(); err != nil {
			app.logger.Error("error closing chat client", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("carbon api stopped")
	return nil
}

func (app *Application) initServices() error {
	tokens, err := service.NewTokenService([]byte(app.cfg.JWTSecret), app.cfg.JWTIssuer)
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}
	app.tokenService = tokens

	app.userService = &service.UserService{
		Store:  app.db,
		Hasher: cryptox.NewHasher(app.cfg.PasswordHashCost),
		Tokens: tokens,
	}
	app.emissionService = &service.EmissionService{
		Store:    app.db,
		Recorder: app.metrics,
	}
	return nil
}

func (app *Application) initUpstreams(ctx context.Context) error {
	app.news = upstream.NewNewsAPI(app.cfg.NewsAPIURL, app.cfg.NewsAPIKey, app.cfg.UpstreamTimeout)
	if app.cfg.NewsAPIKey == "" {
		app.logger.Warn("NEWS_API_KEY not set; /news will fail upstream")
	}

	chat, err := upstream.NewDialogflow(ctx, upstream.DialogflowConfig{
		ProjectID: app.cfg.DialogflowProjectID,
		KeyFile:   app.cfg.DialogflowKeyFile,
		Language:  app.cfg.DialogflowLanguage,
	})
	switch {
	case errors.Is(err, upstream.ErrChatDisabled):
		app.logger.Info("DIALOGFLOW_PROJECT_ID not set; chat replies with the fallback message")
		app.chat = upstream.DisabledChat{}
	case err != nil:
		return fmt.Errorf("failed to initialize chat client: %w", err)
	default:
		app.chat = chat
	}
	return nil
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.metrics, app.logger)

	router.TokenService = app.tokenService
	router.UserService = app.userService
	router.EmissionService = app.emissionService
	router.Chat = app.chat
	router.News = app.news
	router.NewsQuery = app.cfg.NewsQuery
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

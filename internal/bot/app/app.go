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

	"github.com/bwmarrin/discordgo"

	"github.com/feroxapp/ferox/internal/bot/bridge"
	"github.com/feroxapp/ferox/pkg/feroxsdk"
	"github.com/feroxapp/ferox/pkg/httpx"
	"github.com/feroxapp/ferox/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the Discord bridge: a gateway session handling the
// /link command and a small HTTP server the API calls for recovery DMs.
type Application struct {
	cfg    Config
	logger *slog.Logger

	session *discordgo.Session
	api     *feroxsdk.Client

	linkHandler     *bridge.LinkHandler
	recoveryHandler *bridge.RecoveryHandler

	server *http.Server
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("DISCORD_BOT_TOKEN is required")
	}
	if cfg.AppID == "" {
		return nil, fmt.Errorf("DISCORD_APP_ID is required")
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "ferox-bot",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
		api: feroxsdk.NewClient(cfg.APIBaseURL),
	}

	session, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	// Slash commands only, no message content needed
	session.Identify.Intents = discordgo.IntentsGuilds
	app.session = session

	app.linkHandler = &bridge.LinkHandler{API: app.api, Logger: app.logger}
	app.recoveryHandler = &bridge.RecoveryHandler{Discord: session, Logger: app.logger}

	session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		app.logger.Info("discord gateway connected", "username", r.User.Username)
	})
	session.AddHandler(app.linkHandler.Handle)

	app.initHTTP()

	return app, nil
}

// Run connects to Discord, registers the slash command, starts the bridge
// server, and blocks until shutdown is requested.
func (app *Application) Run() error {
	if err := app.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord gateway: %w", err)
	}

	// Guild-scoped registration propagates instantly, global takes up to an
	// hour. GuildID is empty in production for global registration.
	_, err := app.session.ApplicationCommandCreate(app.cfg.AppID, app.cfg.GuildID, bridge.LinkCommand)
	if err != nil {
		_ = app.session.Close()
		return fmt.Errorf("failed to register /link command: %w", err)
	}

	app.logger.Info("bot service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			_ = app.session.Close()
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

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down bot service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.session.Close(); err != nil {
		app.logger.Error("error closing discord session", "error", err)
		return err
	}

	app.logger.Info("bot service stopped")
	return nil
}

// initHTTP initializes the bridge HTTP server
func (app *Application) initHTTP() {
	mux := http.NewServeMux()
	mux.Handle("POST /send-recovery-code",
		httpx.Chain(http.HandlerFunc(app.recoveryHandler.HandleSendRecoveryCode),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	mux.HandleFunc("GET /livez", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, feroxsdk.HealthResponse{
			Status:  "ok",
			Version: BuildVersion,
		})
	})

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           httpx.Chain(mux, slogx.HTTPMiddleware(app.logger)),
		ReadHeaderTimeout: 3 * time.Second,
	}
}

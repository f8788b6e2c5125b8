package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketplace/cmd"
	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres"

	gommonlog "github.com/labstack/gommon/log"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("marketplace stopped")
	}
}

func run() error {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		return err
	}
	setupLogging(configs)
	if err = configs.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err = postgres.Migrate(configs.DatabaseDSN()); err != nil {
		return err
	}
	gormDB, err := postgres.Open(configs.DatabaseDSN())
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	carts, closeCarts, err := cmd.NewCartStore(ctx, configs)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeCarts(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close cart store")
		}
	}()

	app := cmd.NewCompositionRoot(configs, gormDB, carts, cmd.NewNotifier(configs))
	return startWebServer(ctx, app, configs)
}

func setupLogging(configs cmd.Config) {
	level := zerolog.DebugLevel
	if configs.IsProduction() {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Str("service", "marketplace").Logger()
	zerolog.DefaultContextLogger = &log.Logger
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, configs cmd.Config) error {
	e, err := httpin.NewRouter(app.CreateServer())
	if err != nil {
		return err
	}
	if configs.IsProduction() {
		e.Logger.SetLevel(gommonlog.WARN)
	} else {
		e.Logger.SetLevel(gommonlog.DEBUG)
	}

	addr := fmt.Sprintf("0.0.0.0:%d", configs.HTTPPort)
	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Str("env", configs.Env).Msg("http server listening")
		if startErr := e.Start(addr); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			serveErr <- startErr
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

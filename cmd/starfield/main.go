package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/genricoloni/starfield/internal/config"
	"github.com/genricoloni/starfield/internal/display"
	"github.com/genricoloni/starfield/internal/domain"
	"github.com/genricoloni/starfield/internal/engine"
	"github.com/genricoloni/starfield/internal/executor"
	"github.com/genricoloni/starfield/internal/exporter"
	"github.com/genricoloni/starfield/internal/monitor"
	"github.com/genricoloni/starfield/internal/random"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// AppOptions is the dependency graph shared by main and the tests
var AppOptions = fx.Options(
	fx.Provide(
		newLogger,
		fx.Annotate(config.NewAppConfig, fx.As(new(domain.Config))),
		monitor.NewScreenGeometry,
		fx.Annotate(random.NewSource, fx.As(new(domain.Random))),
		engine.NewEngine,
		engine.NewClock,
		fx.Annotate(exporter.NewPNGExporter, fx.As(new(domain.Exporter))),
		fx.Annotate(executor.NewExecutor, fx.As(new(domain.Executor))),
		display.NewWindow,
		engine.NewStill,
		newPresenter,
	),

	// Lifecycle hooks
	fx.Invoke(registerHooks),
)

func main() {
	var (
		presenter domain.Presenter
		logger    *zap.Logger
	)

	app := fx.New(
		// Logger configuration
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		AppOptions,
		fx.Populate(&presenter, &logger),
	)

	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Start the application
	if err := app.Start(ctx); err != nil {
		panic(err)
	}

	// The presenter owns the main goroutine until an exit is requested
	runErr := presenter.Run(ctx)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		logger.Error("Presenter failed", zap.Error(runErr))
	}

	// Stop the application gracefully
	if err := app.Stop(context.Background()); err != nil {
		panic(err)
	}

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		os.Exit(1)
	}
}

// newLogger creates a new zap logger instance
func newLogger() (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return logger, nil
}

// newPresenter selects how frames are delivered based on the configured mode
func newPresenter(cfg domain.Config, win *display.Window, still *engine.Still) domain.Presenter {
	if cfg.GetMode() == domain.ModeWallpaper {
		return still
	}
	return win
}

// registerHooks sets up application lifecycle hooks
func registerHooks(lc fx.Lifecycle, logger *zap.Logger, cfg domain.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Starfield Started", zap.String("mode", string(cfg.GetMode())))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down")
			_ = logger.Sync()
			return nil
		},
	})
}

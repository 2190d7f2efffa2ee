package engine

import (
	"context"
	"fmt"

	"github.com/genricoloni/starfield/internal/domain"
	"go.uber.org/zap"
)

// stillStep is the fixed frame delta used while warming up a still frame
const stillStep = 1.0 / 60.0

// Still renders a single warmed-up frame and installs it as the desktop wallpaper
type Still struct {
	logger   *zap.Logger
	cfg      domain.Config
	engine   *Engine
	exporter domain.Exporter
	executor domain.Executor
}

// NewStill creates the wallpaper presenter
func NewStill(
	logger *zap.Logger,
	cfg domain.Config,
	eng *Engine,
	exp domain.Exporter,
	exec domain.Executor,
) *Still {
	return &Still{
		logger:   logger,
		cfg:      cfg,
		engine:   eng,
		exporter: exp,
		executor: exec,
	}
}

// Run simulates the warm-up period, exports the last frame and sets it as wallpaper
func (s *Still) Run(ctx context.Context) error {
	warmup := s.cfg.GetWarmupSeconds()
	frames := int(warmup / stillStep)
	if frames < 1 {
		frames = 1
	}

	s.logger.Info("Rendering still frame",
		zap.Float64("warmup", warmup),
		zap.Int("frames", frames))

	var pix []byte
	for i := 1; i <= frames; i++ {
		// Exit requests are honored between frames only
		if err := ctx.Err(); err != nil {
			return err
		}
		pix = s.engine.RenderFrame(stillStep, float64(i)*stillStep)
	}

	path, err := s.exporter.Export(ctx, pix, s.engine.Screen())
	if err != nil {
		return fmt.Errorf("failed to export frame: %w", err)
	}

	if err := s.executor.SetWallpaper(ctx, path); err != nil {
		return fmt.Errorf("failed to set wallpaper: %w", err)
	}

	_, live, spawned := s.engine.Stats()
	s.logger.Info("Wallpaper updated successfully",
		zap.String("path", path),
		zap.Int("shootingStars", live),
		zap.Int("spawned", spawned))

	return nil
}

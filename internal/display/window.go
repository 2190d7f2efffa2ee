// Package display presents rendered frames in a fullscreen ebiten window.
package display

import (
	"context"
	"fmt"

	"github.com/genricoloni/starfield/internal/engine"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

const (
	windowTitle   = "starfield"
	statsInterval = 600 // frames between debug stats lines
)

// Window drives the simulation from the ebiten game loop.
// Each Draw renders exactly one frame and uploads the buffer to the screen.
type Window struct {
	logger *zap.Logger
	engine *engine.Engine
	clock  *engine.Clock
	ctx    context.Context
	frames int
}

// NewWindow creates the fullscreen presenter
func NewWindow(logger *zap.Logger, eng *engine.Engine, clock *engine.Clock) *Window {
	return &Window{
		logger: logger,
		engine: eng,
		clock:  clock,
		ctx:    context.Background(),
	}
}

// Run opens the window and blocks until Escape is pressed or ctx is cancelled.
// It must be called from the main goroutine.
func (w *Window) Run(ctx context.Context) error {
	w.ctx = ctx

	screen := w.engine.Screen()
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowSize(screen.Width, screen.Height)
	ebiten.SetFullscreen(true)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	w.logger.Info("Opening window",
		zap.Int("width", screen.Width),
		zap.Int("height", screen.Height))

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}

	w.logger.Info("Window closed", zap.Int("frames", w.frames))
	return nil
}

// Update polls for the exit request; the simulation itself advances in Draw
func (w *Window) Update() error {
	if w.shouldExit(inpututil.IsKeyJustPressed(ebiten.KeyEscape)) {
		return ebiten.Termination
	}
	return nil
}

// Draw renders one frame and presents it
func (w *Window) Draw(screen *ebiten.Image) {
	screen.WritePixels(w.renderFrame())
}

// Layout pins the logical screen to the probed display geometry
func (w *Window) Layout(_, _ int) (int, int) {
	s := w.engine.Screen()
	return s.Width, s.Height
}

// shouldExit reports whether the loop stops after the current frame
func (w *Window) shouldExit(escapePressed bool) bool {
	if escapePressed {
		w.logger.Info("Exit requested")
		return true
	}
	if err := w.ctx.Err(); err != nil {
		w.logger.Info("Run context done, closing window", zap.Error(err))
		return true
	}
	return false
}

func (w *Window) renderFrame() []byte {
	dt, elapsed := w.clock.Tick()
	pix := w.engine.RenderFrame(dt, elapsed)

	w.frames++
	if w.frames%statsInterval == 0 {
		stars, live, spawned := w.engine.Stats()
		w.logger.Debug("Frame stats",
			zap.Int("frames", w.frames),
			zap.Float64("fps", ebiten.ActualFPS()),
			zap.Int("stars", stars),
			zap.Int("shootingStars", live),
			zap.Int("spawned", spawned))
	}
	return pix
}

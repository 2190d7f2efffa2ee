package engine

import (
	"github.com/genricoloni/starfield/internal/compositor"
	"github.com/genricoloni/starfield/internal/domain"
	"github.com/genricoloni/starfield/internal/sky"
	"go.uber.org/zap"
)

const (
	spawnRate     = 0.3  // expected shooting stars per second
	spawnOffsetX  = 50.0 // spawn distance past the right edge
	spawnMinY     = 50.0
	spawnMaxYFrac = 0.4
	spawnMinVX    = 200.0
	spawnMaxVX    = 400.0
	spawnMinVY    = 10.0
	spawnMaxVY    = 50.0
)

// Engine orchestrates the simulation.
// It owns the frame buffer, a fixed population of stars and the live shooting stars.
// It is not safe for concurrent use; one frame is rendered at a time.
type Engine struct {
	logger        *zap.Logger
	screen        domain.ScreenGeometry
	rng           domain.Random
	frame         *compositor.Frame
	stars         []*sky.Star
	shootingStars []*sky.ShootingStar
	spawned       int
}

// NewEngine creates a new simulation with sky.StarCount stars
func NewEngine(logger *zap.Logger, screen *domain.ScreenGeometry, rng domain.Random) *Engine {
	return newEngine(logger, *screen, rng, sky.StarCount)
}

func newEngine(logger *zap.Logger, screen domain.ScreenGeometry, rng domain.Random, starCount int) *Engine {
	stars := make([]*sky.Star, starCount)
	for i := range stars {
		stars[i] = sky.NewStar(rng, screen)
	}

	logger.Info("Simulation initialized",
		zap.Int("width", screen.Width),
		zap.Int("height", screen.Height),
		zap.Int("stars", starCount))

	return &Engine{
		logger: logger,
		screen: screen,
		rng:    rng,
		frame:  compositor.NewFrame(screen),
		stars:  stars,
	}
}

// RenderFrame advances the simulation by dt seconds and returns the finished RGBA buffer.
// The returned slice is reused by the next call.
func (e *Engine) RenderFrame(dt, elapsed float64) []byte {
	// 1. Start from opaque black
	e.frame.Clear()

	// 2. Background stars never leave the collection
	for _, s := range e.stars {
		s.Update(dt, elapsed, e.rng, e.screen)
		s.UpdateTwinkle(elapsed)
		s.Draw(e.frame)
	}

	// 3. Spawn policy, frame-rate independent in expectation
	if e.rng.Bool(dt * spawnRate) {
		e.spawnShootingStar()
	}

	// 4. Shooting stars composite over the background
	e.shootingStars = sky.UpdateAndDraw(e.shootingStars, dt, elapsed, e.frame, e.rng, e.screen)

	return e.frame.Pix
}

// spawnShootingStar launches a new shooting star just past the right edge
func (e *Engine) spawnShootingStar() {
	x := float64(e.screen.Width) + spawnOffsetX
	y := e.rng.Float64Range(spawnMinY, float64(e.screen.Height)*spawnMaxYFrac)
	vx := -e.rng.Float64Range(spawnMinVX, spawnMaxVX)
	vy := e.rng.Float64Range(spawnMinVY, spawnMaxVY)

	e.shootingStars = append(e.shootingStars, sky.NewShootingStar(x, y, vx, vy))
	e.spawned++

	e.logger.Debug("Shooting star spawned",
		zap.Float64("y", y),
		zap.Float64("vx", vx),
		zap.Float64("vy", vy),
		zap.Int("live", len(e.shootingStars)))
}

// Screen returns the geometry the simulation renders at
func (e *Engine) Screen() domain.ScreenGeometry {
	return e.screen
}

// Stats reports the current population
func (e *Engine) Stats() (stars, shootingStars, spawned int) {
	return len(e.stars), len(e.shootingStars), e.spawned
}

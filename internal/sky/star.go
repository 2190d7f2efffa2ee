package sky

import (
	"math"

	"github.com/genricoloni/starfield/internal/compositor"
	"github.com/genricoloni/starfield/internal/domain"
)

const (
	twinkleChance   = 0.15
	minTwinkleSpeed = 0.5
	maxTwinkleSpeed = 3.14 // at most one blink every 2 seconds
	maxLuminance    = 200.0

	// Damping is calibrated against a 60Hz reference frame
	speedDamping    = 0.999
	referenceFPS    = 60.0
	minDepth        = 0.5
	maxSpawnDepth   = 4.0
	maxRecycleDepth = 2.0
)

// starPalette holds the base colors a star can be born with
var starPalette = [...]compositor.RGB{
	{R: 180, G: 200, B: 255}, // blue
	{R: 255, G: 255, B: 255}, // white
	{R: 255, G: 255, B: 200}, // yellow
	{R: 255, G: 220, B: 180}, // orange
	{R: 255, G: 180, B: 180}, // red
}

// Star is a long-lived background point light.
// Stars drift leftwards and are recycled at the right edge instead of being destroyed.
type Star struct {
	X, Y         float64
	Speed        float64 // pixels per second before depth scaling
	Depth        float64 // parallax multiplier, larger drifts faster
	TwinklePhase float64 // radians
	TwinkleSpeed float64 // radians per second
	CanTwinkle   bool
	Color        compositor.RGB
	Size         int
}

// NewStar creates a star at a uniform random position over the full screen
func NewStar(rng domain.Random, screen domain.ScreenGeometry) *Star {
	return &Star{
		X:            rng.Float64Range(0, float64(screen.Width)),
		Y:            rng.Float64Range(0, float64(screen.Height)),
		Speed:        rng.Float64Range(StarMinSpeed, StarMaxSpeed),
		CanTwinkle:   rng.Bool(twinkleChance),
		TwinklePhase: rng.Float64Range(0, 2*math.Pi),
		TwinkleSpeed: rng.Float64Range(minTwinkleSpeed, maxTwinkleSpeed),
		Depth:        rng.Float64Range(minDepth, maxSpawnDepth),
		Color:        starPalette[rng.IntRange(0, len(starPalette))],
		Size:         rng.IntRange(StarMinSize, StarMaxSize+1),
	}
}

// Update applies speed damping and leftward drift, recycling the star past the left edge
func (s *Star) Update(dt, _ float64, rng domain.Random, screen domain.ScreenGeometry) {
	s.Speed *= math.Pow(speedDamping, dt*referenceFPS)
	s.X -= s.Speed * s.Depth * dt

	if s.X < 0 {
		s.recycle(rng, screen)
	}
}

// recycle respawns the star at the right edge with fresh attributes.
// Color and the ability to twinkle are kept for the lifetime of the star.
func (s *Star) recycle(rng domain.Random, screen domain.ScreenGeometry) {
	s.X = float64(screen.Width)
	s.Y = rng.Float64Range(0, float64(screen.Height))
	s.Depth = rng.Float64Range(minDepth, maxRecycleDepth)
	s.TwinklePhase = rng.Float64Range(0, 2*math.Pi)
	s.TwinkleSpeed = rng.Float64Range(minTwinkleSpeed, maxTwinkleSpeed)
	s.Speed = rng.Float64Range(StarMinSpeed, StarMaxSpeed)
	s.Size = rng.IntRange(StarMinSize, StarMaxSize+1)
}

// UpdateTwinkle advances the twinkle phase from the total elapsed time.
// The phase accumulates additively on every call, so it must run exactly once per frame.
func (s *Star) UpdateTwinkle(elapsed float64) {
	if s.CanTwinkle {
		s.TwinklePhase = elapsed*s.TwinkleSpeed + s.TwinklePhase
	}
}

// Luminance returns the brightness of the star for its current phase and depth
func (s *Star) Luminance() uint8 {
	twinkle := math.Sin(s.TwinklePhase)*0.5 + 0.5
	return uint8(math.Min(twinkle*255/s.Depth, maxLuminance))
}

// Shade returns the palette color scaled by the current luminance
func (s *Star) Shade() compositor.RGB {
	k := float64(s.Luminance()) / 255
	return compositor.RGB{
		R: scaleChannel(s.Color.R, k),
		G: scaleChannel(s.Color.G, k),
		B: scaleChannel(s.Color.B, k),
	}
}

// Draw paints an opaque square anchored at the star position
func (s *Star) Draw(frame *compositor.Frame) {
	frame.FillSquare(int(math.Floor(s.X)), int(math.Floor(s.Y)), s.Size, s.Shade())
}

// Alive is always true; stars wrap around instead of expiring
func (s *Star) Alive(domain.ScreenGeometry) bool {
	return true
}

func scaleChannel(c uint8, k float64) uint8 {
	return uint8(math.Min(float64(c)*k, 255))
}

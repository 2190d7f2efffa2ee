package sky

import (
	"math"

	"github.com/genricoloni/starfield/internal/compositor"
	"github.com/genricoloni/starfield/internal/domain"
)

const (
	minVisibleAlpha = 0.01
	headSize        = 6
)

var headColor = compositor.RGB{R: 255, G: 255, B: 220}

// Point is a position sample in screen space
type Point struct {
	X, Y float64
}

// ShootingStar is a short-lived streak pulled down by gravity.
// It remembers its recent positions to draw a fading trail.
type ShootingStar struct {
	X, Y    float64
	VX, VY  float64
	Life    float64 // seconds since spawn
	MaxLife float64
	Trail   []Point // oldest first
}

// NewShootingStar creates a shooting star at the given position and velocity
func NewShootingStar(x, y, vx, vy float64) *ShootingStar {
	return &ShootingStar{
		X:       x,
		Y:       y,
		VX:      vx,
		VY:      vy,
		MaxLife: ShootingStarMaxLife,
		Trail:   make([]Point, 0, ShootingStarTrailLen+1),
	}
}

// Update records the current position in the trail and integrates motion
func (s *ShootingStar) Update(dt, _ float64, _ domain.Random, _ domain.ScreenGeometry) {
	s.Trail = append(s.Trail, Point{s.X, s.Y})
	if len(s.Trail) > ShootingStarTrailLen {
		n := copy(s.Trail, s.Trail[1:])
		s.Trail = s.Trail[:n]
	}

	s.X += s.VX * dt
	s.VY += ShootingStarGravity * dt
	s.Y += s.VY * dt
	s.Life += dt
}

// Alpha returns the global fade factor in [0, 1]
func (s *ShootingStar) Alpha() float64 {
	a := 1 - s.Life/s.MaxLife
	return math.Max(0, math.Min(1, a))
}

// Draw renders the trail from tail to head, then the bright head
func (s *ShootingStar) Draw(frame *compositor.Frame) {
	alpha := s.Alpha()
	n := float64(len(s.Trail))

	for i, p := range s.Trail {
		progress := float64(i) / n
		trailAlpha := alpha * progress * progress
		if trailAlpha < minVisibleAlpha {
			continue
		}

		width := int(1 + 3*progress)
		frame.SoftPoint(pixel(p.X), pixel(p.Y), width, trailColor(progress), trailAlpha)
	}

	if alpha > minVisibleAlpha {
		frame.SoftPoint(pixel(s.X), pixel(s.Y), headSize, headColor, alpha)
	}
}

// Alive reports false once the star burned out or left the extended screen
func (s *ShootingStar) Alive(screen domain.ScreenGeometry) bool {
	return s.Life < s.MaxLife &&
		s.X > -ShootingStarMargin &&
		s.X < float64(screen.Width)+ShootingStarMargin &&
		s.Y > -ShootingStarMargin &&
		s.Y < float64(screen.Height)+ShootingStarMargin
}

// trailColor fades from yellow-white at the head towards the tail
func trailColor(progress float64) compositor.RGB {
	return compositor.RGB{
		R: uint8(255 * (0.8 + 0.2*progress)),
		G: uint8(255 * (0.6 + 0.4*progress)),
		B: uint8(100 + 155*(1-progress)),
	}
}

// pixel truncates toward zero; shooting stars may sit left of or above the screen
func pixel(v float64) int {
	return int(v)
}

// Package sky models the animated celestial objects of the starfield.
package sky

import (
	"github.com/genricoloni/starfield/internal/compositor"
	"github.com/genricoloni/starfield/internal/domain"
)

const (
	// FallbackWidth is the canvas width used when display probing fails
	FallbackWidth = 1920
	// FallbackHeight is the canvas height used when display probing fails
	FallbackHeight = 1080

	StarCount    = 5000
	StarMinSize  = 1
	StarMaxSize  = 4
	StarMinSpeed = 5.0
	StarMaxSpeed = 25.0

	ShootingStarGravity  = 30.0
	ShootingStarMaxLife  = 3.0
	ShootingStarTrailLen = 80
	// ShootingStarMargin is how far past the screen edge a shooting star may travel
	ShootingStarMargin = 200.0
)

// Object is the capability set shared by every animated celestial object
type Object interface {
	// Update advances the object by one frame.
	// dt is the wall-clock delta since the previous frame, elapsed the time since start.
	Update(dt, elapsed float64, rng domain.Random, screen domain.ScreenGeometry)

	// Draw rasterizes the current state; it must not mutate the object
	Draw(frame *compositor.Frame)

	// Alive reports whether the object stays in the live collection
	Alive(screen domain.ScreenGeometry) bool
}

// UpdateAndDraw updates and draws every object, then keeps only the living ones.
// Survivors are compacted in place with their relative order preserved.
func UpdateAndDraw[T Object](objs []T, dt, elapsed float64, frame *compositor.Frame, rng domain.Random, screen domain.ScreenGeometry) []T {
	kept := 0
	for _, obj := range objs {
		obj.Update(dt, elapsed, rng, screen)
		obj.Draw(frame)
		if obj.Alive(screen) {
			objs[kept] = obj
			kept++
		}
	}

	// Release dropped objects to the GC
	var zero T
	for i := kept; i < len(objs); i++ {
		objs[i] = zero
	}
	return objs[:kept]
}

package domain

import "context"

// Random is a uniform random-number stream.
// It is passed explicitly into every update and spawn operation so that
// simulations can be driven by mocks or fixed sequences in tests.
//
//go:generate mockgen -destination=mocks/random_mock.go -package=mocks github.com/genricoloni/starfield/internal/domain Random
type Random interface {
	// Float64Range returns a uniform float in [lo, hi)
	Float64Range(lo, hi float64) float64

	// IntRange returns a uniform integer in [lo, hi)
	IntRange(lo, hi int) int

	// Bool returns true with probability p.
	// p >= 1 always yields true, p <= 0 always yields false.
	Bool(p float64) bool
}

// Presenter drives the frame loop and shows finished buffers.
// Run blocks until an exit is requested or ctx is cancelled.
type Presenter interface {
	Run(ctx context.Context) error
}

// Exporter defines the interface for persisting a finished frame
//
//go:generate mockgen -destination=mocks/exporter_mock.go -package=mocks github.com/genricoloni/starfield/internal/domain Exporter
type Exporter interface {
	// Export writes an RGBA8 buffer of the given geometry to an image file
	// Returns the absolute path of the written file
	Export(ctx context.Context, pix []byte, screen ScreenGeometry) (string, error)
}

// Executor defines the interface for executing system commands
//
//go:generate mockgen -destination=mocks/executor_mock.go -package=mocks github.com/genricoloni/starfield/internal/domain Executor
type Executor interface {
	// SetWallpaper sets the desktop wallpaper to the specified image path
	SetWallpaper(ctx context.Context, imagePath string) error
}

// Config defines the interface for application configuration
type Config interface {
	// GetMode returns the selected delivery mode
	GetMode() Mode

	// GetOutputDir returns the directory for exported frames
	GetOutputDir() string

	// GetWarmupSeconds returns how long the simulation runs before a still frame is taken
	GetWarmupSeconds() float64
}

package domain

// Mode selects how the daemon delivers rendered frames
type Mode string

const (
	// ModeWindow animates the starfield in a fullscreen window
	ModeWindow Mode = "window"
	// ModeWallpaper renders a single still frame and installs it as the desktop wallpaper
	ModeWallpaper Mode = "wallpaper"
)

// ScreenGeometry holds the display dimensions.
// It is probed once at startup and never mutated afterwards.
// Callers guarantee Width > 0 and Height > 0.
type ScreenGeometry struct {
	Width  int
	Height int
}

// FrameSize returns the byte length of an RGBA8 buffer covering the screen
func (s ScreenGeometry) FrameSize() int {
	return s.Width * s.Height * 4
}

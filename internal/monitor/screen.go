package monitor

import (
	"github.com/genricoloni/starfield/internal/domain"
	"github.com/genricoloni/starfield/internal/sky"
	"github.com/kbinani/screenshot"
	"go.uber.org/zap"
)

// DisplayProbe reports the bounds of the active displays
type DisplayProbe interface {
	NumActiveDisplays() int
	DisplaySize(index int) (width, height int)
}

// screenshotProbe reads display bounds through kbinani/screenshot
type screenshotProbe struct{}

func (screenshotProbe) NumActiveDisplays() int {
	return screenshot.NumActiveDisplays()
}

func (screenshotProbe) DisplaySize(index int) (int, int) {
	bounds := screenshot.GetDisplayBounds(index)
	return bounds.Dx(), bounds.Dy()
}

// NewScreenGeometry detects the primary screen resolution at startup
func NewScreenGeometry(logger *zap.Logger) *domain.ScreenGeometry {
	return probeScreenGeometry(logger, screenshotProbe{})
}

func probeScreenGeometry(logger *zap.Logger, probe DisplayProbe) *domain.ScreenGeometry {
	fallback := &domain.ScreenGeometry{Width: sky.FallbackWidth, Height: sky.FallbackHeight}

	n := probe.NumActiveDisplays()
	if n <= 0 {
		logger.Warn("No active displays detected, falling back to default resolution",
			zap.Int("width", fallback.Width),
			zap.Int("height", fallback.Height))
		return fallback
	}

	// Use primary monitor (index 0)
	w, h := probe.DisplaySize(0)
	if w <= 0 || h <= 0 {
		logger.Warn("Primary display reported an empty size, falling back to default resolution",
			zap.Int("reportedWidth", w),
			zap.Int("reportedHeight", h))
		return fallback
	}

	res := &domain.ScreenGeometry{Width: w, Height: h}

	logger.Info("Screen resolution detected",
		zap.Int("displays", n),
		zap.Int("width", res.Width),
		zap.Int("height", res.Height))

	return res
}

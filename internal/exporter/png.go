package exporter

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/genricoloni/starfield/internal/domain"
	"go.uber.org/zap"
)

const frameFilename = "starfield.png"

// PNGExporter writes finished frames to the configured output directory
type PNGExporter struct {
	logger *zap.Logger
	appCfg domain.Config
}

// NewPNGExporter creates a new PNG frame exporter
func NewPNGExporter(logger *zap.Logger, appCfg domain.Config) *PNGExporter {
	return &PNGExporter{
		logger: logger,
		appCfg: appCfg,
	}
}

// Export saves an RGBA8 buffer as a PNG and returns its absolute path
func (e *PNGExporter) Export(ctx context.Context, pix []byte, screen domain.ScreenGeometry) (string, error) {
	if len(pix) != screen.FrameSize() {
		return "", fmt.Errorf("buffer size mismatch: got %d bytes, want %d for %dx%d",
			len(pix), screen.FrameSize(), screen.Width, screen.Height)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	// 1. Wrap a copy of the buffer; the engine reuses it on the next frame
	img := imaging.Clone(&image.NRGBA{
		Pix:    pix,
		Stride: screen.Width * 4,
		Rect:   image.Rect(0, 0, screen.Width, screen.Height),
	})

	// 2. Ensure output directory exists
	outputDir := e.appCfg.GetOutputDir()
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	// 3. Write to disk, format chosen from the extension
	outputPath := filepath.Join(outputDir, frameFilename)
	if err := imaging.Save(img, outputPath); err != nil {
		return "", fmt.Errorf("failed to write frame: %w", err)
	}

	e.logger.Info("Frame exported",
		zap.String("path", outputPath),
		zap.Int("width", screen.Width),
		zap.Int("height", screen.Height))

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return outputPath, nil // Return relative path if abs fails
	}

	return absPath, nil
}

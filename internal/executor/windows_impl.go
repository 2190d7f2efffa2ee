//go:build windows
// +build windows

package executor

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// WindowsExecutor handles wallpaper setting on Windows systems
type WindowsExecutor struct {
	logger *zap.Logger
}

// NewExecutor creates a new platform-specific wallpaper executor (Windows implementation)
func NewExecutor(logger *zap.Logger) (*WindowsExecutor, error) {
	logger.Info("Windows wallpaper setter initialized")
	return &WindowsExecutor{logger: logger}, nil
}

// SetWallpaper sets the desktop wallpaper using Windows API
func (e *WindowsExecutor) SetWallpaper(ctx context.Context, imagePath string) error {
	e.logger.Info("Setting wallpaper", zap.String("path", imagePath))

	// TODO: call SystemParametersInfoW with SPI_SETDESKWALLPAPER
	return fmt.Errorf("Windows wallpaper setting not yet implemented")
}

//go:build linux
// +build linux

package executor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// WallpaperCommand represents a detected wallpaper setter command
type WallpaperCommand struct {
	Name   string
	Binary string
	Args   []string // %s will be replaced with image path
}

var (
	// Ordered list of wallpaper commands to try (highest priority first)
	wallpaperCommands = []WallpaperCommand{
		// Hyprland - swww (recommended)
		{Name: "swww", Binary: "swww", Args: []string{"img", "%s"}},
		// Hyprland - hyprpaper
		{Name: "hyprpaper", Binary: "hyprctl", Args: []string{"hyprpaper", "wallpaper", ",%s"}},
		// swaybg (Sway/Wayland)
		{Name: "swaybg", Binary: "swaybg", Args: []string{"-i", "%s", "-m", "fill"}},
		// GNOME (dark theme), expects a file:// URI
		{Name: "gnome", Binary: "gsettings", Args: []string{"set", "org.gnome.desktop.background", "picture-uri-dark", "file://%s"}},
		// Generic X11 - feh
		{Name: "feh", Binary: "feh", Args: []string{"--bg-fill", "%s"}},
		// Generic X11 - nitrogen
		{Name: "nitrogen", Binary: "nitrogen", Args: []string{"--set-zoom-fill", "%s"}},
	}
)

// LinuxExecutor handles wallpaper setting on Linux systems
type LinuxExecutor struct {
	logger  *zap.Logger
	command WallpaperCommand
}

// NewExecutor creates a new platform-specific wallpaper executor (Linux implementation).
// A missing setter is reported when SetWallpaper is called, so window mode works without one.
func NewExecutor(logger *zap.Logger) (*LinuxExecutor, error) {
	cmd := detectCommand(logger, commandExists)
	if cmd.Binary == "" {
		logger.Warn("No supported wallpaper command found on this system")
	} else {
		logger.Info("Wallpaper setter detected",
			zap.String("name", cmd.Name),
			zap.String("binary", cmd.Binary))
	}

	return &LinuxExecutor{
		logger:  logger,
		command: cmd,
	}, nil
}

// detectCommand analyzes the environment to choose the best wallpaper command
func detectCommand(logger *zap.Logger, exists func(string) bool) WallpaperCommand {
	// Check environment variables for hints
	desktop := os.Getenv("XDG_CURRENT_DESKTOP")
	session := os.Getenv("XDG_SESSION_TYPE")
	wayland := os.Getenv("WAYLAND_DISPLAY")
	hyprland := os.Getenv("HYPRLAND_INSTANCE_SIGNATURE")

	logger.Debug("Detecting wallpaper command",
		zap.String("desktop", desktop),
		zap.String("session", session),
		zap.String("wayland", wayland),
		zap.String("hyprland", hyprland))

	pick := func(names ...string) (WallpaperCommand, bool) {
		for _, cmd := range wallpaperCommands {
			for _, name := range names {
				if cmd.Name == name && exists(cmd.Binary) {
					return cmd, true
				}
			}
		}
		return WallpaperCommand{}, false
	}

	// Priority-based detection
	if hyprland != "" {
		if cmd, ok := pick("swww", "hyprpaper"); ok {
			return cmd
		}
	}

	if strings.Contains(strings.ToLower(desktop), "gnome") {
		if cmd, ok := pick("gnome"); ok {
			return cmd
		}
	}

	if wayland != "" || session == "wayland" {
		if cmd, ok := pick("swww", "swaybg"); ok {
			return cmd
		}
	}

	// Fallback: try all commands in order
	for _, cmd := range wallpaperCommands {
		if exists(cmd.Binary) {
			logger.Info("Using fallback wallpaper command", zap.String("name", cmd.Name))
			return cmd
		}
	}

	return WallpaperCommand{} // No command found
}

// commandExists checks if a binary exists in PATH
func commandExists(binary string) bool {
	_, err := exec.LookPath(binary)
	return err == nil
}

// buildArgs substitutes the image path into the command template
func (c WallpaperCommand) buildArgs(imagePath string) []string {
	args := make([]string, len(c.Args))
	for i, arg := range c.Args {
		args[i] = strings.ReplaceAll(arg, "%s", imagePath)
	}
	return args
}

// SetWallpaper sets the desktop wallpaper to the specified image
func (e *LinuxExecutor) SetWallpaper(ctx context.Context, imagePath string) error {
	if e.command.Binary == "" {
		return fmt.Errorf("no supported wallpaper command found on this system")
	}

	args := e.command.buildArgs(imagePath)

	e.logger.Debug("Setting wallpaper",
		zap.String("command", e.command.Binary),
		zap.Strings("args", args),
		zap.String("path", imagePath))

	// Execute command
	cmd := exec.CommandContext(ctx, e.command.Binary, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to set wallpaper with %s: %w (output: %s)",
			e.command.Name, err, string(output))
	}

	e.logger.Info("Wallpaper set successfully",
		zap.String("command", e.command.Name),
		zap.String("path", imagePath))

	return nil
}

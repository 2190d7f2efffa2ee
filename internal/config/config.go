package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/genricoloni/starfield/internal/domain"
	"go.uber.org/zap"
)

const (
	defaultOutputDir     = "/tmp/starfield"
	defaultMode          = domain.ModeWindow
	defaultWarmupSeconds = 10.0
	maxWarmupSeconds     = 3600.0
)

// AppConfig holds application configuration
type AppConfig struct {
	logger    *zap.Logger
	outputDir string
	mode      domain.Mode
	warmup    float64
}

// NewAppConfig creates a new application configuration instance
func NewAppConfig(logger *zap.Logger) *AppConfig {
	// Read from environment variables or use defaults
	outputDir := os.Getenv("STARFIELD_OUTPUT_DIR")
	if outputDir == "" {
		outputDir = defaultOutputDir
	}

	mode := domain.Mode(os.Getenv("STARFIELD_MODE"))
	switch mode {
	case domain.ModeWindow, domain.ModeWallpaper:
	case "":
		mode = defaultMode
	default:
		logger.Warn("Unknown mode, falling back to default",
			zap.String("mode", string(mode)),
			zap.String("default", string(defaultMode)))
		mode = defaultMode
	}

	warmup := defaultWarmupSeconds
	if raw := os.Getenv("STARFIELD_WARMUP"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		switch {
		case err != nil || !(v > 0):
			logger.Warn("Invalid warmup, falling back to default",
				zap.String("value", raw),
				zap.Float64("default", defaultWarmupSeconds))
		case v > maxWarmupSeconds:
			logger.Warn("Warmup too long, capping",
				zap.String("value", raw),
				zap.Float64("max", maxWarmupSeconds))
			warmup = maxWarmupSeconds
		default:
			warmup = v
		}
	}

	// Expand path if it contains ~ or environment variables
	outputDir = os.ExpandEnv(outputDir)
	if len(outputDir) > 0 && outputDir[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			outputDir = filepath.Join(home, outputDir[1:])
		}
	}

	logger.Info("Configuration loaded",
		zap.String("outputDir", outputDir),
		zap.String("mode", string(mode)),
		zap.Float64("warmup", warmup))

	return &AppConfig{
		logger:    logger,
		outputDir: outputDir,
		mode:      mode,
		warmup:    warmup,
	}
}

// GetMode returns how rendered frames are delivered
func (c *AppConfig) GetMode() domain.Mode {
	return c.mode
}

// GetOutputDir returns the directory for exported frames
func (c *AppConfig) GetOutputDir() string {
	return c.outputDir
}

// GetWarmupSeconds returns the simulated time before a still frame is captured
func (c *AppConfig) GetWarmupSeconds() float64 {
	return c.warmup
}

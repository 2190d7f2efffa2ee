package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/genricoloni/starfield/internal/domain"
	"github.com/genricoloni/starfield/internal/domain/mocks"
	"github.com/genricoloni/starfield/internal/random"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// mockConfig is a simple mock implementation of domain.Config for testing
type mockConfig struct {
	warmup float64
}

func (m *mockConfig) GetMode() domain.Mode      { return domain.ModeWallpaper }
func (m *mockConfig) GetOutputDir() string      { return "/tmp/starfield-test" }
func (m *mockConfig) GetWarmupSeconds() float64 { return m.warmup }

func TestStill_Run(t *testing.T) {
	screen := domain.ScreenGeometry{Width: 64, Height: 48}

	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockExporter, *mocks.MockExecutor)
		expectedError string
	}{
		{
			name: "Success - Exported And Set",
			setupMocks: func(exp *mocks.MockExporter, exec *mocks.MockExecutor) {
				exp.EXPECT().Export(gomock.Any(), gomock.Len(64*48*4), screen).
					Return("/tmp/starfield-test/starfield.png", nil)
				exec.EXPECT().SetWallpaper(gomock.Any(), "/tmp/starfield-test/starfield.png").
					Return(nil)
			},
		},
		{
			name: "Error - Export Fails",
			setupMocks: func(exp *mocks.MockExporter, exec *mocks.MockExecutor) {
				exp.EXPECT().Export(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("disk full"))
			},
			expectedError: "failed to export frame: disk full",
		},
		{
			name: "Error - Wallpaper Setter Fails",
			setupMocks: func(exp *mocks.MockExporter, exec *mocks.MockExecutor) {
				exp.EXPECT().Export(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("/tmp/x.png", nil)
				exec.EXPECT().SetWallpaper(gomock.Any(), "/tmp/x.png").
					Return(errors.New("no supported wallpaper command"))
			},
			expectedError: "failed to set wallpaper",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			exp := mocks.NewMockExporter(ctrl)
			exec := mocks.NewMockExecutor(ctrl)
			tt.setupMocks(exp, exec)

			eng := newEngine(zap.NewNop(), screen, random.NewSeededSource(1, 1), 50)
			still := NewStill(zap.NewNop(), &mockConfig{warmup: 0.5}, eng, exp, exec)

			err := still.Run(context.Background())

			if tt.expectedError != "" {
				if err == nil {
					t.Fatalf("expected error containing '%s', got nil", tt.expectedError)
				}
				if !strings.Contains(err.Error(), tt.expectedError) {
					t.Errorf("expected error '%s' to contain '%s'", err.Error(), tt.expectedError)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

// TestStill_Run_ContextCancelled verifies nothing is exported once an exit was requested
func TestStill_Run_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	exp := mocks.NewMockExporter(ctrl)
	exec := mocks.NewMockExecutor(ctrl)

	eng := newEngine(zap.NewNop(), domain.ScreenGeometry{Width: 8, Height: 8}, random.NewSeededSource(2, 2), 10)
	still := NewStill(zap.NewNop(), &mockConfig{warmup: 1}, eng, exp, exec)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := still.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

package surface

import (
	"log/slog"
	"sync"

	"github.com/pmeadley/toaster/internal/config"
)

// The process-wide surface. Created lazily; acquiring it twice yields
// the same instance.
var (
	defaultMu      sync.Mutex
	defaultSurface *Surface
)

// Acquire returns the process-wide surface, creating and starting it on
// first use. Later calls ignore cfg and logger and return the existing
// surface.
func Acquire(cfg *config.SurfaceConfig, logger *slog.Logger) *Surface {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultSurface == nil {
		defaultSurface = New(cfg, logger)
		defaultSurface.Start()
	}
	return defaultSurface
}

// ShutdownDefault stops the process-wide surface and clears it so a
// later Acquire creates a fresh one. Safe to call when none exists.
func ShutdownDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultSurface != nil {
		defaultSurface.Stop()
		defaultSurface = nil
	}
}

package usecase

import "go.uber.org/zap"

// resolveLogger returns the configured logger or a no-op fallback so use
// cases stay usable without wiring.
func resolveLogger(logger *zap.Logger) *zap.Logger {
	if logger != nil {
		return logger
	}
	return zap.NewNop()
}

package logger

import "go.uber.org/zap"

// New builds the process logger. Verbose mode uses the human-readable
// development encoder at debug level; the default is production JSON with
// stack traces disabled, since every error already carries its context.
func New(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}

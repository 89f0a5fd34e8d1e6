package logging

import (
	"sync"

	"disha-utils/internal/config"
	"disha-utils/internal/logging/adapters"
)

var (
	globalLogger *MultiLogger
	globalMu     sync.RWMutex
)

// InitializeLogging initializes the global logging system from configuration
func InitializeLogging(cfg *config.Config) error {
	logger := NewMultiLogger()
	logger.SetLevel(ParseLogLevel(cfg.Logging.Level))

	switch cfg.Logging.Output {
	case "file":
		adapter, err := adapters.NewFileAdapter("file", cfg.Logging.FilePath, cfg.Logging.Format)
		if err != nil {
			return err
		}
		if err := logger.AddAdapter(adapter); err != nil {
			return err
		}
	default:
		if err := logger.AddAdapter(adapters.NewStdoutAdapter("stdout", cfg.Logging.Format)); err != nil {
			return err
		}
	}

	globalMu.Lock()
	globalLogger = logger
	globalMu.Unlock()
	return nil
}

// GetGlobalLogger returns the global logger instance. Before
// InitializeLogging runs it falls back to a JSON stdout logger.
func GetGlobalLogger() Logger {
	globalMu.RLock()
	logger := globalLogger
	globalMu.RUnlock()

	if logger != nil {
		return logger
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalLogger == nil {
		globalLogger = NewMultiLogger()
		_ = globalLogger.AddAdapter(adapters.NewStdoutAdapter("stdout", "json"))
	}
	return globalLogger
}

// WithRequestID returns the global logger scoped to a request ID
func WithRequestID(requestID string) Logger {
	return GetGlobalLogger().WithField("request_id", requestID)
}

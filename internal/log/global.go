package log

import "sync"

var global struct {
	mu     sync.RWMutex
	logger *Logger
}

// SetDefaultLogger replaces the process-wide default logger.
func SetDefaultLogger(logger *Logger) {
	global.mu.Lock()
	global.logger = logger
	global.mu.Unlock()
}

// DefaultLogger returns the process-wide default logger, creating one
// with standard defaults on first use.
func DefaultLogger() *Logger {
	global.mu.RLock()
	logger := global.logger
	global.mu.RUnlock()
	if logger != nil {
		return logger
	}

	logger = Default()
	SetDefaultLogger(logger)
	return logger
}

package arena

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logMu     sync.RWMutex
	defLogger *zap.Logger
)

// Logger returns the package logger. It is a no-op logger until SetLogger is
// called, so the pool stays silent by default.
func Logger() *zap.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	if defLogger == nil {
		return zap.NewNop()
	}
	return defLogger
}

// SetLogger installs l as the default logger for pools created afterwards.
// Pools constructed with WithLogger keep their own logger. Passing nil
// restores the no-op default.
func SetLogger(l *zap.Logger) {
	logMu.Lock()
	defer logMu.Unlock()
	defLogger = l
}

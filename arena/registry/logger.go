package registry

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logMu     sync.RWMutex
	defLogger *zap.Logger
)

// Logger returns the package logger, a no-op until SetLogger is called.
func Logger() *zap.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	if defLogger == nil {
		return zap.NewNop()
	}
	return defLogger
}

// SetLogger installs l as the default logger for registries created
// afterwards. Passing nil restores the no-op default.
func SetLogger(l *zap.Logger) {
	logMu.Lock()
	defer logMu.Unlock()
	defLogger = l
}

package registry

import "go.uber.org/zap"

// Option configures a Registry at construction time.
type Option[T any] func(*config[T])

type config[T any] struct {
	label  string
	logger *zap.Logger
}

// WithLabel sets the name used in log events and dumps. Defaults to the
// element type name.
func WithLabel[T any](label string) Option[T] {
	return func(c *config[T]) {
		c.label = label
	}
}

// WithLogger sets the logger for this registry and its backing pool.
func WithLogger[T any](l *zap.Logger) Option[T] {
	return func(c *config[T]) {
		if l != nil {
			c.logger = l
		}
	}
}

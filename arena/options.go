package arena

import "go.uber.org/zap"

// Option configures a Pool at construction time.
type Option[T any] func(*poolConfig[T])

type poolConfig[T any] struct {
	label     string
	logger    *zap.Logger
	onDestroy func(T)
}

// WithLabel sets the pool's diagnostic name. The default is the element
// type name.
func WithLabel[T any](label string) Option[T] {
	return func(c *poolConfig[T]) {
		c.label = label
	}
}

// WithLogger gives the pool its own logger instead of the package default.
func WithLogger[T any](l *zap.Logger) Option[T] {
	return func(c *poolConfig[T]) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithOnDestroy registers a hook invoked with the element value during
// Destroy, before the slot is cleared. It stands in for a destructor: release
// any resources the element owns here. The hook runs under the pool lock and
// must not call back into the pool.
func WithOnDestroy[T any](f func(T)) Option[T] {
	return func(c *poolConfig[T]) {
		c.onDestroy = f
	}
}

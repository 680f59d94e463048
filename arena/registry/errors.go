package registry

import "errors"

var (
	// ErrStaleHandle is returned when a handle's version no longer matches the
	// slot it points at, meaning the entry was removed after the handle was
	// issued (or the handle was never issued by this registry).
	ErrStaleHandle = errors.New("registry: stale handle")

	// ErrStillReferenced is returned by Remove when the entry's use count has
	// not dropped to zero.
	ErrStillReferenced = errors.New("registry: entry still referenced")

	// ErrGUIDExists is returned by AddWithGUID when the GUID is already bound
	// to a live entry.
	ErrGUIDExists = errors.New("registry: guid already registered")
)

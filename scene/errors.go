package scene

import "errors"

var (
	// ErrUnknownNode is returned when an operation names a node the graph
	// does not contain.
	ErrUnknownNode = errors.New("scene: unknown node")

	// ErrUnknownParent is returned by Add and Move when the parent name does
	// not resolve.
	ErrUnknownParent = errors.New("scene: unknown parent")

	// ErrDuplicateName is returned when adding a name the graph already
	// holds. Names are the graph's identity, so they must be unique.
	ErrDuplicateName = errors.New("scene: duplicate node name")
)

package arena

import "reflect"

// TypeInfo describes the element type a pool was instantiated for. Size feeds
// the offset math (handles carry byte offsets, slot = offset / Size); Name is
// used for labels and diagnostics only. Type safety itself is enforced by the
// generic parameter, not by this descriptor.
type TypeInfo struct {
	Name string
	Size int64
}

// TypeInfoOf captures the runtime descriptor for T.
func TypeInfoOf[T any]() TypeInfo {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return TypeInfo{
		Name: t.String(),
		Size: int64(t.Size()),
	}
}

package list

import "unsafe"

// References:
// EASTL and libstdc++ both store the list's own linkage as an embedded
// header of the node type, so the last node's next pointer and the first
// node's prev pointer can close the circle on the container itself:
// https://github.com/electronicarts/EASTL/blob/master/include/EASTL/list.h
// https://gcc.gnu.org/onlinedocs/libstdc++/libstdc++-html-USERS-4.4/a01067.html
// Compared with a nil tail marker this keeps the end position decrementable,
// and compared with a heap-allocated sentinel it costs no extra allocation.

// nodeHeader is the linkage-only record shared by every position in the
// chain, including the list's own embedded anchor. It carries no payload.
type nodeHeader[T comparable] struct {
	prev, next *nodeHeader[T]
	// anchor is set only on the header embedded in a List. It is what
	// turns "dereference of the end iterator" from memory corruption
	// into a deterministic panic.
	anchor bool
}

// node extends a header with one element payload.
// The header must remain the first field: element() relies on a *node and
// a pointer to its embedded header being the same address.
type node[T comparable] struct {
	nodeHeader[T]
	value T
}

// element reinterprets a header back to the full node it is embedded in.
// Callers must have checked that h is not an anchor; only payload-bearing
// nodes may pass through here.
func (h *nodeHeader[T]) element() *node[T] {
	return (*node[T])(unsafe.Pointer(h))
}

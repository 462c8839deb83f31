package view

import "unsafe"

// View is a non-owning window over a contiguous sequence of elements.
// It has pointer semantics: a View is cheap to copy, mutating an
// element through the view mutates the viewed storage, and the view
// must not outlive it. Subviews re-slice in O(1) without copying.
type View[T any] struct {
	data []T
}

// Of wraps a whole slice.
func Of[T any](s []T) View[T] {
	return View[T]{data: s}
}

// OfRange wraps the half-open index range [begin, end) of s.
func OfRange[T any](s []T, begin, end int) View[T] {
	if begin < 0 || end < begin || end > len(s) {
		panic("view: range out of bounds")
	}
	return View[T]{data: s[begin:end:end]}
}

// Len returns the number of viewed elements.
func (v View[T]) Len() int {
	return len(v.data)
}

// Empty reports whether the view covers no elements.
func (v View[T]) Empty() bool {
	return len(v.data) == 0
}

// SizeBytes returns the storage size covered by the view.
func (v View[T]) SizeBytes() uintptr {
	var zero T
	return uintptr(len(v.data)) * unsafe.Sizeof(zero)
}

// At returns the element at index.
func (v View[T]) At(index int) T {
	return v.data[index]
}

// Ptr returns a pointer to the element at index.
func (v View[T]) Ptr(index int) *T {
	return &v.data[index]
}

// Front returns the first viewed element. The view must not be empty.
func (v View[T]) Front() T {
	if len(v.data) == 0 {
		panic("view: front of an empty view")
	}
	return v.data[0]
}

// Back returns the last viewed element. The view must not be empty.
func (v View[T]) Back() T {
	if len(v.data) == 0 {
		panic("view: back of an empty view")
	}
	return v.data[len(v.data)-1]
}

// Sub returns a view of count elements starting at offset.
func (v View[T]) Sub(offset, count int) View[T] {
	if offset < 0 || offset > len(v.data) || count < 0 || offset+count > len(v.data) {
		panic("view: subview out of bounds")
	}
	return View[T]{data: v.data[offset : offset+count : offset+count]}
}

// SubFrom returns a view of everything from offset to the end.
func (v View[T]) SubFrom(offset int) View[T] {
	if offset < 0 || offset > len(v.data) {
		panic("view: subview out of bounds")
	}
	return View[T]{data: v.data[offset:]}
}

// Data exposes the viewed storage as a slice.
func (v View[T]) Data() []T {
	return v.data
}

// ForEach visits the viewed elements front to back.
func (v View[T]) ForEach(fn func(idx int, e T)) {
	for i, e := range v.data {
		fn(i, e)
	}
}

// ReverseForEach visits the viewed elements back to front.
func (v View[T]) ReverseForEach(fn func(idx int, e T)) {
	for i := len(v.data) - 1; i >= 0; i-- {
		fn(i, v.data[i])
	}
}

package ptr

import (
	"go.uber.org/multierr"
)

// Scoped is a single-owner handle to a resource of type T. Exactly one
// Scoped owns the resource at a time: Release and Swap transfer
// ownership, Reset and Close dispose of it through the dispose callback.
// There is no sharing and no reference counting.
//
// The zero value is an empty handle.
type Scoped[T any] struct {
	res     *T
	dispose func(*T) error
}

// NewScoped adopts res. dispose is invoked exactly once when the handle
// is reset or closed; a nil dispose makes disposal a no-op.
func NewScoped[T any](res *T, dispose func(*T) error) *Scoped[T] {
	return &Scoped[T]{res: res, dispose: dispose}
}

// Get returns the owned resource without transferring ownership, or nil
// for an empty handle.
func (s *Scoped[T]) Get() *T {
	return s.res
}

// Deref returns the owned resource by value. Dereferencing an empty
// handle panics.
func (s *Scoped[T]) Deref() T {
	if s.res == nil {
		panic("ptr: dereference of an empty handle")
	}
	return *s.res
}

// IsSet reports whether the handle currently owns a resource.
func (s *Scoped[T]) IsSet() bool {
	return s.res != nil
}

// Release gives up ownership and returns the resource without disposing
// of it. The handle is left empty.
func (s *Scoped[T]) Release() *T {
	old := s.res
	s.res = nil
	return old
}

// Reset disposes of the currently owned resource, then adopts res.
// The disposal error, if any, is returned.
func (s *Scoped[T]) Reset(res *T) error {
	err := s.Close()
	s.res = res
	return err
}

// Swap exchanges the owned resources and dispose callbacks of two
// handles. No disposal happens.
func (s *Scoped[T]) Swap(other *Scoped[T]) {
	s.res, other.res = other.res, s.res
	s.dispose, other.dispose = other.dispose, s.dispose
}

// Close disposes of the owned resource and empties the handle.
// Closing an empty handle is a no-op, so Close is idempotent.
func (s *Scoped[T]) Close() error {
	if s.res == nil {
		return nil
	}
	old := s.res
	s.res = nil
	if s.dispose == nil {
		return nil
	}
	return s.dispose(old)
}

// ScopedGroup owns an ordered collection of disposable handles and
// disposes of them together, last adopted first.
type ScopedGroup struct {
	closers []interface{ Close() error }
}

// Adopt appends handles to the group. The group becomes responsible for
// closing them.
func (g *ScopedGroup) Adopt(closers ...interface{ Close() error }) {
	g.closers = append(g.closers, closers...)
}

// Close disposes of every adopted handle in reverse adoption order and
// combines their errors. The group is left empty and reusable.
func (g *ScopedGroup) Close() error {
	var merr error
	for i := len(g.closers) - 1; i >= 0; i-- {
		merr = multierr.Append(merr, g.closers[i].Close())
	}
	g.closers = nil
	return merr
}

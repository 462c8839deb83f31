package list

// Iterator is a read-write handle to one position of a List. It is a
// single header pointer, so two iterators compare equal with == iff they
// reference the same position. Iterators stay valid across insertions
// anywhere in the list and across erasure of any other element; an
// iterator to an erased element must not be used again.
//
// The position returned by List.End references the list's embedded
// anchor. It is decrementable (Prev of End is the last element) but must
// never be dereferenced.
type Iterator[T comparable] struct {
	h *nodeHeader[T]
}

// Next returns an iterator moved one element forward.
// Advancing past End wraps around the circular chain; callers are
// expected to stop at End the same way they would in a for loop.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{h: it.h.next}
}

// Prev returns an iterator moved one element backward. Prev of End is
// the last element, or End itself when the list is empty.
func (it Iterator[T]) Prev() Iterator[T] {
	return Iterator[T]{h: it.h.prev}
}

// Advance returns an iterator moved n positions forward (backward for
// negative n).
func (it Iterator[T]) Advance(n int) Iterator[T] {
	for ; n > 0; n-- {
		it.h = it.h.next
	}
	for ; n < 0; n++ {
		it.h = it.h.prev
	}
	return it
}

// Value returns the element at the iterator's position.
func (it Iterator[T]) Value() T {
	if it.h.anchor {
		panic("list: dereference of the end iterator")
	}
	return it.h.element().value
}

// Ptr returns a pointer to the element at the iterator's position.
func (it Iterator[T]) Ptr() *T {
	if it.h.anchor {
		panic("list: dereference of the end iterator")
	}
	return &it.h.element().value
}

// Set overwrites the element at the iterator's position.
func (it Iterator[T]) Set(v T) {
	if it.h.anchor {
		panic("list: dereference of the end iterator")
	}
	it.h.element().value = v
}

// Const weakens the iterator to its read-only counterpart.
// There is no conversion back.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{h: it.h}
}

// ConstIterator is the read-only counterpart of Iterator.
type ConstIterator[T comparable] struct {
	h *nodeHeader[T]
}

func (it ConstIterator[T]) Next() ConstIterator[T] {
	return ConstIterator[T]{h: it.h.next}
}

func (it ConstIterator[T]) Prev() ConstIterator[T] {
	return ConstIterator[T]{h: it.h.prev}
}

func (it ConstIterator[T]) Advance(n int) ConstIterator[T] {
	for ; n > 0; n-- {
		it.h = it.h.next
	}
	for ; n < 0; n++ {
		it.h = it.h.prev
	}
	return it
}

func (it ConstIterator[T]) Value() T {
	if it.h.anchor {
		panic("list: dereference of the end iterator")
	}
	return it.h.element().value
}

// ReverseIterator walks the list back to front: Next follows prev links.
// RBegin references the last element and REnd references the anchor.
type ReverseIterator[T comparable] struct {
	h *nodeHeader[T]
}

func (it ReverseIterator[T]) Next() ReverseIterator[T] {
	return ReverseIterator[T]{h: it.h.prev}
}

func (it ReverseIterator[T]) Prev() ReverseIterator[T] {
	return ReverseIterator[T]{h: it.h.next}
}

func (it ReverseIterator[T]) Value() T {
	if it.h.anchor {
		panic("list: dereference of the end iterator")
	}
	return it.h.element().value
}

func (it ReverseIterator[T]) Set(v T) {
	if it.h.anchor {
		panic("list: dereference of the end iterator")
	}
	it.h.element().value = v
}

// Const weakens the iterator to its read-only counterpart.
func (it ReverseIterator[T]) Const() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{h: it.h}
}

// ConstReverseIterator is the read-only counterpart of ReverseIterator.
type ConstReverseIterator[T comparable] struct {
	h *nodeHeader[T]
}

func (it ConstReverseIterator[T]) Next() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{h: it.h.prev}
}

func (it ConstReverseIterator[T]) Prev() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{h: it.h.next}
}

func (it ConstReverseIterator[T]) Value() T {
	if it.h.anchor {
		panic("list: dereference of the end iterator")
	}
	return it.h.element().value
}

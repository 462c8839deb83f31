package list

import (
	"fmt"
	"strings"
)

var _ fmt.Stringer = (*List[struct{}])(nil) // Type check assertion

// List is a circular doubly linked list. The container embeds exactly one
// anchor header, never heap-allocated, whose next link is the first
// element and whose prev link is the last one (both itself when the list
// is empty). The anchor plays three roles at once: it is the End
// position, it is how the first and last element are found, and it is
// what closes the circle. Because of that, End can be decremented in
// O(1) without iterators holding a back-pointer to the container, and no
// separate sentinel node is ever allocated.
//
// The zero value is an empty list ready to use. A List must not be
// copied by value after first use; use Clone, Assign or MoveFrom.
//
// The list is not safe for concurrent use. Callers that share one
// instance across goroutines must serialize every access externally.
type List[T comparable] struct {
	root nodeHeader[T]
	size int
}

// NewList builds a list holding the given values in order.
func NewList[T comparable](values ...T) *List[T] {
	l := new(List[T]).Init()
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// Init resets l to an empty list with a self-linked anchor and returns l.
func (l *List[T]) Init() *List[T] {
	l.root.prev = &l.root
	l.root.next = &l.root
	l.root.anchor = true
	l.size = 0
	return l
}

func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.Init()
	}
}

// Len returns the number of elements in list l.
func (l *List[T]) Len() int {
	return l.size
}

// Empty reports whether list l holds no elements.
func (l *List[T]) Empty() bool {
	return l.size == 0
}

// Begin returns an iterator at the first element of l. On an empty list
// Begin equals End.
func (l *List[T]) Begin() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{h: l.root.next}
}

// End returns the one-past-the-last position of l. It references the
// embedded anchor and must not be dereferenced.
func (l *List[T]) End() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{h: &l.root}
}

// CBegin returns a read-only iterator at the first element of l.
func (l *List[T]) CBegin() ConstIterator[T] {
	return l.Begin().Const()
}

// CEnd returns the read-only one-past-the-last position of l.
func (l *List[T]) CEnd() ConstIterator[T] {
	return l.End().Const()
}

// RBegin returns a reverse iterator at the last element of l.
func (l *List[T]) RBegin() ReverseIterator[T] {
	l.lazyInit()
	return ReverseIterator[T]{h: l.root.prev}
}

// REnd returns the reverse one-past-the-first position of l.
func (l *List[T]) REnd() ReverseIterator[T] {
	l.lazyInit()
	return ReverseIterator[T]{h: &l.root}
}

// CRBegin returns a read-only reverse iterator at the last element of l.
func (l *List[T]) CRBegin() ConstReverseIterator[T] {
	return l.RBegin().Const()
}

// CREnd returns the read-only reverse one-past-the-first position of l.
func (l *List[T]) CREnd() ConstReverseIterator[T] {
	return l.REnd().Const()
}

// Insert splices a new element holding v immediately before pos and
// returns an iterator at the new element. The splice rewrites exactly
// four links and needs no head or tail special case: inserting before
// the first element updates the anchor's next link, inserting at End
// updates the anchor's prev link, both through the same code path.
func (l *List[T]) Insert(pos Iterator[T], v T) Iterator[T] {
	l.lazyInit()
	at := pos.h
	n := &node[T]{value: v}
	// The node is fully built before any list link is rewritten, so a
	// failed allocation never publishes a partially linked chain.
	n.prev, n.next = at.prev, at
	at.prev.next = &n.nodeHeader
	at.prev = &n.nodeHeader
	l.size++
	return Iterator[T]{h: &n.nodeHeader}
}

// Erase unlinks the element at pos and returns an iterator at the
// element that followed it, so chained erasure is natural. Erasing the
// end iterator panics. An iterator at the erased element is invalidated.
func (l *List[T]) Erase(pos Iterator[T]) Iterator[T] {
	h := pos.h
	if h.anchor {
		panic("list: erase of the end iterator")
	}
	after := h.next
	h.prev.next = h.next
	h.next.prev = h.prev
	h.prev, h.next = nil, nil // poison stale iterators, avoid memory leaks
	l.size--
	return Iterator[T]{h: after}
}

// EraseRange erases [first, last) one element at a time and returns an
// iterator equal to last.
func (l *List[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	for it := first; it != last; {
		it = l.Erase(it)
	}
	return last
}

// PushFront inserts v before the first element of l.
func (l *List[T]) PushFront(v T) Iterator[T] {
	return l.Insert(l.Begin(), v)
}

// PushBack appends v after the last element of l.
func (l *List[T]) PushBack(v T) Iterator[T] {
	return l.Insert(l.End(), v)
}

// PopFront removes the first element of l. Popping an empty list panics.
func (l *List[T]) PopFront() {
	if l.size == 0 {
		panic("list: pop from an empty list")
	}
	l.Erase(l.Begin())
}

// PopBack removes the last element of l. Popping an empty list panics.
func (l *List[T]) PopBack() {
	if l.size == 0 {
		panic("list: pop from an empty list")
	}
	l.Erase(l.End().Prev())
}

// Clear unlinks every element and resets the anchor to self-linked.
func (l *List[T]) Clear() {
	l.lazyInit()
	for h := l.root.next; h != &l.root; {
		next := h.next
		h.prev, h.next = nil, nil
		h = next
	}
	l.root.prev = &l.root
	l.root.next = &l.root
	l.size = 0
}

// Clone returns a deep copy of l: every element is copied in iteration
// order and the copy shares no nodes with the original.
func (l *List[T]) Clone() *List[T] {
	l.lazyInit()
	dst := new(List[T]).Init()
	for it := l.Begin(); it != l.End(); it = it.Next() {
		dst.PushBack(it.Value())
	}
	return dst
}

// Assign replaces the contents of l with a deep copy of other.
// Assigning a list to itself is a no-op.
func (l *List[T]) Assign(other *List[T]) {
	if l == other {
		return
	}
	other.lazyInit()
	l.Clear()
	for it := other.Begin(); it != other.End(); it = it.Next() {
		l.PushBack(it.Value())
	}
}

// MoveFrom transfers the whole chain of other into l in O(1) by
// relinking the boundary elements onto l's own anchor, then resets other
// to a valid empty list. Moving a list into itself is a no-op.
func (l *List[T]) MoveFrom(other *List[T]) {
	if l == other {
		return
	}
	l.lazyInit()
	other.lazyInit()
	l.Clear()
	if other.size == 0 {
		return
	}
	l.root.next = other.root.next
	l.root.prev = other.root.prev
	// The boundary elements still point at other's anchor address.
	l.root.next.prev = &l.root
	l.root.prev.next = &l.root
	l.size = other.size

	other.root.next = &other.root
	other.root.prev = &other.root
	other.size = 0
}

// Swap exchanges the contents of l and other in O(1). The anchors live
// at a fixed address inside each container, so only their contents are
// exchanged and then each boundary link is fixed up to point at the
// receiving anchor; an emptied side is re-self-linked.
func (l *List[T]) Swap(other *List[T]) {
	if l == other {
		return
	}
	l.lazyInit()
	other.lazyInit()
	l.root, other.root = other.root, l.root
	l.size, other.size = other.size, l.size
	l.fixupAnchor()
	other.fixupAnchor()
}

func (l *List[T]) fixupAnchor() {
	if l.size == 0 {
		l.root.prev = &l.root
		l.root.next = &l.root
		return
	}
	l.root.next.prev = &l.root
	l.root.prev.next = &l.root
}

// Equal reports whether l and other hold elementwise-equal values in the
// same order. This is a full O(n) structural comparison.
func (l *List[T]) Equal(other *List[T]) bool {
	if l.size != other.size {
		return false
	}
	l.lazyInit()
	other.lazyInit()
	a, b := l.Begin(), other.Begin()
	for a != l.End() {
		if a.Value() != b.Value() {
			return false
		}
		a, b = a.Next(), b.Next()
	}
	return true
}

// Values collects the elements of l into a fresh slice in iteration order.
func (l *List[T]) Values() []T {
	l.lazyInit()
	out := make([]T, 0, l.size)
	for it := l.Begin(); it != l.End(); it = it.Next() {
		out = append(out, it.Value())
	}
	return out
}

// String renders the list as "{e1, e2, ...}".
func (l *List[T]) String() string {
	l.lazyInit()
	var sb strings.Builder
	sb.WriteByte('{')
	for it := l.Begin(); it != l.End(); it = it.Next() {
		if it != l.Begin() {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", it.Value())
	}
	sb.WriteByte('}')
	return sb.String()
}

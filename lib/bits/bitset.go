package bits

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lumo-dev/xcoll/lib/infra"
)

var _ fmt.Stringer = (*BitSet)(nil) // Type check assertion

// BitSet is a set of unique unsigned numbers represented by a
// dynamically sized sequence of bits. The storage grows on demand when a
// member beyond the current capacity is added, so it is ill-suited for
// sparse sets with a large max element.
//
// The zero value is an empty set ready to use.
type BitSet struct {
	data []uint8
}

// NewBitSet builds a set holding the given values.
func NewBitSet(values ...uint) *BitSet {
	s := &BitSet{}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Set adds (on=true) or removes (on=false) pos. Adding grows the
// storage to cover pos; removing a member beyond the storage is a no-op.
func (s *BitSet) Set(pos uint, on bool) {
	byteIdx := pos / 8
	if byteIdx >= uint(len(s.data)) {
		if !on {
			return
		}
		grown := make([]uint8, byteIdx+1)
		copy(grown, s.data)
		s.data = grown
	}
	bitIdx := pos % 8
	s.data[byteIdx] &= ^(uint8(1) << bitIdx)
	if on {
		s.data[byteIdx] |= 1 << bitIdx
	}
}

// Add puts pos into the set.
func (s *BitSet) Add(pos uint) {
	s.Set(pos, true)
}

// Remove takes pos out of the set.
func (s *BitSet) Remove(pos uint) {
	s.Set(pos, false)
}

// Contains reports whether pos is a member. Positions beyond the
// storage are not members.
func (s *BitSet) Contains(pos uint) bool {
	byteIdx := pos / 8
	if byteIdx >= uint(len(s.data)) {
		return false
	}
	return s.data[byteIdx]&(1<<(pos%8)) != 0
}

// Flip toggles the membership of pos, growing the storage when flipping
// a position beyond it.
func (s *BitSet) Flip(pos uint) {
	s.Set(pos, !s.Contains(pos))
}

// Clear removes all members but keeps the storage.
func (s *BitSet) Clear() {
	for i := range s.data {
		s.data[i] = 0
	}
}

// SizeBytes returns the current backing storage size.
func (s *BitSet) SizeBytes() int {
	return len(s.data)
}

// Clone returns a deep copy of s.
func (s *BitSet) Clone() *BitSet {
	if len(s.data) == 0 {
		return &BitSet{}
	}
	dup := make([]uint8, len(s.data))
	copy(dup, s.data)
	return &BitSet{data: dup}
}

// CopyFrom replaces the contents of s with a copy of other, reusing the
// storage when the sizes already match. Self copy is a no-op.
func (s *BitSet) CopyFrom(other *BitSet) {
	if s == other {
		return
	}
	if len(s.data) != len(other.data) {
		s.data = make([]uint8, len(other.data))
	}
	copy(s.data, other.data)
}

// Equal reports whether both sets hold the same members. When the
// storage sizes differ, the tail of the larger set must be all zero.
func (s *BitSet) Equal(other *BitSet) bool {
	longer, shorter := s.data, other.data
	if len(longer) < len(shorter) {
		longer, shorter = shorter, longer
	}
	for i := 0; i < len(shorter); i++ {
		if longer[i] != shorter[i] {
			return false
		}
	}
	for i := len(shorter); i < len(longer); i++ {
		if longer[i] != 0 {
			return false
		}
	}
	return true
}

// Swap exchanges the contents of two sets.
func (s *BitSet) Swap(other *BitSet) {
	s.data, other.data = other.data, s.data
}

// Union returns the set of members contained in a or b.
func Union(a, b *BitSet) *BitSet {
	longer, shorter := a.data, b.data
	if len(longer) < len(shorter) {
		longer, shorter = shorter, longer
	}
	if len(longer) == 0 {
		return &BitSet{}
	}
	out := make([]uint8, len(longer))
	for i := 0; i < len(shorter); i++ {
		out[i] = a.data[i] | b.data[i]
	}
	copy(out[len(shorter):], longer[len(shorter):])
	return &BitSet{data: out}
}

// Intersect returns the set of members contained in both a and b.
func Intersect(a, b *BitSet) *BitSet {
	common := len(a.data)
	if len(b.data) < common {
		common = len(b.data)
	}
	if common == 0 {
		return &BitSet{}
	}
	out := make([]uint8, common)
	for i := 0; i < common; i++ {
		out[i] = a.data[i] & b.data[i]
	}
	return &BitSet{data: out}
}

// SymmetricDifference returns the set of members contained in exactly
// one of a and b.
func SymmetricDifference(a, b *BitSet) *BitSet {
	longer, shorter := a.data, b.data
	if len(longer) < len(shorter) {
		longer, shorter = shorter, longer
	}
	if len(longer) == 0 {
		return &BitSet{}
	}
	out := make([]uint8, len(longer))
	for i := 0; i < len(shorter); i++ {
		out[i] = a.data[i] ^ b.data[i]
	}
	copy(out[len(shorter):], longer[len(shorter):])
	return &BitSet{data: out}
}

// Values collects the members in ascending order.
func (s *BitSet) Values() []uint {
	var out []uint
	for pos := uint(0); pos < uint(len(s.data))*8; pos++ {
		if s.Contains(pos) {
			out = append(out, pos)
		}
	}
	return out
}

// String renders the set as "{v1, v2, ...}".
func (s *BitSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for pos := uint(0); pos < uint(len(s.data))*8; pos++ {
		if !s.Contains(pos) {
			continue
		}
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(strconv.FormatUint(uint64(pos), 10))
	}
	sb.WriteByte('}')
	return sb.String()
}

// ParseBitSet reads members from a whitespace-separated list of
// unsigned values, e.g. "1 5 12".
func ParseBitSet(input string) (*BitSet, error) {
	s := &BitSet{}
	for _, field := range strings.Fields(input) {
		v, err := strconv.ParseUint(field, 10, 32)
		if err != nil {
			return nil, infra.WrapErrorStackWithMessage(err, "bits: invalid set member "+strconv.Quote(field))
		}
		s.Add(uint(v))
	}
	return s, nil
}

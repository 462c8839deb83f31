package bits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitSet_AddRemoveContains(t *testing.T) {
	s := NewBitSet()
	require.False(t, s.Contains(0))
	require.False(t, s.Contains(1000))

	s.Add(3)
	s.Add(64)
	s.Add(3) // duplicate add is a no-op
	require.True(t, s.Contains(3))
	require.True(t, s.Contains(64))
	require.False(t, s.Contains(4))
	require.Equal(t, []uint{3, 64}, s.Values())

	s.Remove(3)
	require.False(t, s.Contains(3))
	s.Remove(1 << 20) // removing beyond the storage must not grow it
	require.LessOrEqual(t, s.SizeBytes(), 64/8+1)
}

func TestBitSet_Flip(t *testing.T) {
	s := NewBitSet(1, 2)
	s.Flip(2)
	s.Flip(3)
	require.Equal(t, []uint{1, 3}, s.Values())
}

func TestBitSet_EqualIgnoresStorageSize(t *testing.T) {
	a := NewBitSet(1, 9)
	b := NewBitSet(1, 9, 200)
	b.Remove(200)

	require.True(t, a.Equal(b))
	require.True(t, b.Equal(a))
	require.NotEqual(t, a.SizeBytes(), b.SizeBytes())

	b.Add(200)
	require.False(t, a.Equal(b))
	require.False(t, b.Equal(a))
}

func TestBitSet_SetAlgebra(t *testing.T) {
	a := NewBitSet(1, 2, 3, 100)
	b := NewBitSet(2, 3, 4)

	assert.Equal(t, []uint{1, 2, 3, 4, 100}, Union(a, b).Values())
	assert.Equal(t, []uint{2, 3}, Intersect(a, b).Values())
	assert.Equal(t, []uint{1, 4, 100}, SymmetricDifference(a, b).Values())

	empty := NewBitSet()
	assert.Equal(t, a.Values(), Union(a, empty).Values())
	assert.Empty(t, Intersect(a, empty).Values())
	assert.Equal(t, a.Values(), SymmetricDifference(a, empty).Values())
}

func TestBitSet_CloneAndCopyFrom(t *testing.T) {
	a := NewBitSet(5, 6)
	c := a.Clone()
	require.True(t, a.Equal(c))

	c.Add(7)
	require.False(t, a.Equal(c)) // deep copy isolation

	d := NewBitSet(100)
	d.CopyFrom(a)
	require.True(t, d.Equal(a))
	d.CopyFrom(d) // self copy keeps contents
	require.True(t, d.Equal(a))
}

func TestBitSet_SwapTwiceRestores(t *testing.T) {
	a := NewBitSet(1)
	b := NewBitSet(2, 3)

	a.Swap(b)
	require.Equal(t, []uint{2, 3}, a.Values())
	require.Equal(t, []uint{1}, b.Values())

	a.Swap(b)
	require.Equal(t, []uint{1}, a.Values())
	require.Equal(t, []uint{2, 3}, b.Values())
}

func TestBitSet_Clear(t *testing.T) {
	s := NewBitSet(1, 2, 3)
	s.Clear()
	require.Empty(t, s.Values())
	require.True(t, s.Equal(NewBitSet()))
}

func TestBitSet_String(t *testing.T) {
	require.Equal(t, "{}", NewBitSet().String())
	require.Equal(t, "{1, 2, 9}", NewBitSet(9, 2, 1).String())
}

func TestParseBitSet(t *testing.T) {
	s, err := ParseBitSet(" 4 1 16 ")
	require.NoError(t, err)
	require.Equal(t, []uint{1, 4, 16}, s.Values())

	s, err = ParseBitSet("")
	require.NoError(t, err)
	require.Empty(t, s.Values())

	_, err = ParseBitSet("1 oops 3")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid set member")
}

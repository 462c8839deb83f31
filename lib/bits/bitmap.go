package bits

// maxBitMapSize caps a fixed bitmap at 64 KiB of backing storage.
const maxBitMapSize uint64 = 1 << 19 // bits

// X32Bitmap is a fixed-capacity bitmap backed by uint32 words. Offsets
// beyond the capacity chosen at construction are ignored instead of
// growing the storage; use BitSet for an unbounded set.
type X32Bitmap struct {
	bits []uint32
}

func NewX32Bitmap(size uint64) *X32Bitmap {
	if size == 0 || size > maxBitMapSize {
		size = maxBitMapSize
	}
	return &X32Bitmap{
		bits: make([]uint32, (size+31)>>5),
	}
}

func (bm *X32Bitmap) SetBit(offset uint64) bool {
	idx, pos := offset>>5, offset&31
	if idx >= uint64(len(bm.bits)) {
		return false
	}
	bm.bits[idx] |= 1 << pos
	return true
}

func (bm *X32Bitmap) UnsetBit(offset uint64) bool {
	idx, pos := offset>>5, offset&31
	if idx >= uint64(len(bm.bits)) {
		return false
	}
	bm.bits[idx] &= ^(uint32(1) << pos)
	return true
}

func (bm *X32Bitmap) GetBit(offset uint64) bool {
	idx, pos := offset>>5, offset&31
	if idx >= uint64(len(bm.bits)) {
		return false
	}
	return bm.bits[idx]&(1<<pos) != 0
}

// EqualTo reports whether both bitmaps hold the same set of bits. When
// the capacities differ, the extra words of the larger bitmap must be
// all zero.
func (bm *X32Bitmap) EqualTo(other *X32Bitmap) bool {
	longer, shorter := bm.bits, other.bits
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

// Purge drops the backing storage. The bitmap must not be used afterwards.
func (bm *X32Bitmap) Purge() {
	bm.bits = nil
}

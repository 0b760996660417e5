package bitnum

// Grow widens u by n leading zero bits. The value is preserved; only the
// width and the count of redundant leading zeros change.
func (u *UInt) Grow(n int) {
	if n < 0 {
		panic("bitnum: grow out of range")
	}
	u.vec.Grow(n, false)
}

// Shrink drops the n leading bits of u. The caller is responsible for
// ensuring the dropped bits are redundant zeros; Shrink does not verify,
// and a value whose set bits are cut loses them. The width can never drop
// below 1, and Shrink(Grow(n)) restores both bits and width exactly.
func (u *UInt) Shrink(n int) {
	if n < 0 || n >= u.vec.Len() {
		panic("bitnum: shrink out of range")
	}
	u.vec.Shrink(n)
}

// Bit returns the value of the bit at position i, with position 0 the
// least significant. Positions at or beyond the width read as 0. Bit
// panics when i is negative.
func (u *UInt) Bit(i int) uint {
	if i < 0 {
		panic("bitnum: negative bit index")
	}
	if i >= u.vec.Len() || !u.vec.Test(i) {
		return 0
	}
	return 1
}

// SetBit sets the bit at position i to b, which must be 0 or 1. Setting a
// 1 at or beyond the width zero-extends the value first so the position
// exists; setting a 0 out there is a no-op, as the bit already reads 0.
func (u *UInt) SetBit(i int, b uint) {
	if i < 0 {
		panic("bitnum: negative bit index")
	}
	if b != 0 && b != 1 {
		panic("bitnum: bit value must be 0 or 1")
	}
	if i >= u.vec.Len() {
		if b == 0 {
			return
		}
		u.vec.Grow(i-u.vec.Len()+1, false)
	}
	u.vec.SetTo(i, b == 1)
}

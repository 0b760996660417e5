package bitnum

type RandSource interface {
	Uint64() uint64
}

// DifferenceUInt subtracts the smaller of a and b from the larger.
func DifferenceUInt(a, b *UInt) *UInt {
	// One of the two clamped differences is always zero, so no ordering
	// of the operands is needed.
	out := Sub(a, b)
	out.Add(Sub(b, a))
	return out
}

package bitnum

// The bitwise operations align their operands at the least significant
// bit, because operand widths may differ. The overlap is the narrower of
// the two widths; the result keeps the receiver's width and never grows,
// so any operand bits beyond the receiver's width are dropped.

// And sets u to u AND n in place. Receiver bits beyond the overlap are
// forced false: the narrower operand is implicitly zero-extended, and AND
// with zero is zero.
func (u *UInt) And(n *UInt) {
	overlap := u.overlap(n)
	for p := 0; p < overlap; p++ {
		u.vec.SetTo(p, u.vec.Test(p) && n.vec.Test(p))
	}
	for p := overlap; p < u.vec.Len(); p++ {
		u.vec.Clear(p)
	}
}

// Or sets u to u OR n in place. Bits beyond the overlap are left alone;
// OR with an absent zero bit changes nothing.
func (u *UInt) Or(n *UInt) {
	overlap := u.overlap(n)
	for p := 0; p < overlap; p++ {
		u.vec.SetTo(p, u.vec.Test(p) || n.vec.Test(p))
	}
}

// Xor sets u to u XOR n in place. Bits beyond the overlap are left alone;
// XOR with an absent zero bit changes nothing.
func (u *UInt) Xor(n *UInt) {
	overlap := u.overlap(n)
	for p := 0; p < overlap; p++ {
		u.vec.SetTo(p, u.vec.Test(p) != n.vec.Test(p))
	}
}

func (u *UInt) overlap(n *UInt) int {
	if w := n.vec.Len(); w < u.vec.Len() {
		return w
	}
	return u.vec.Len()
}

// And returns a AND b without disturbing either operand.
func And(a, b *UInt) *UInt {
	out := a.Clone()
	out.And(b)
	return out
}

// Or returns a OR b without disturbing either operand.
func Or(a, b *UInt) *UInt {
	out := a.Clone()
	out.Or(b)
	return out
}

// Xor returns a XOR b without disturbing either operand.
func Xor(a, b *UInt) *UInt {
	out := a.Clone()
	out.Xor(b)
	return out
}

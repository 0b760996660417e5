package bitnum

import "math/bits"

// Add sets u to u + n in place. The receiver is first zero-extended to
// the wider of the two widths, then a ripple carry runs from the least
// significant bit up. A carry out of the top bit grows the result by one
// set bit, so an overflow is never dropped.
func (u *UInt) Add(n *UInt) {
	if w := n.vec.Len(); w > u.vec.Len() {
		u.vec.Grow(w-u.vec.Len(), false)
	}
	if u.rippleAdd(n) {
		u.vec.Grow(1, true)
	}
}

// rippleAdd adds n into u at u's width and returns the final carry. The
// operand is read virtually: positions beyond its width are zero. Safe
// when n is u itself, as every position is read before it is written.
func (u *UInt) rippleAdd(n *UInt) bool {
	carry := false
	for p := 0; p < u.vec.Len(); p++ {
		a, b := u.vec.Test(p), n.vec.Test(p)
		u.vec.SetTo(p, (a != b) != carry)
		carry = (a && b) || (carry && (a != b))
	}
	return carry
}

// Negate replaces u with its two's complement in place, so that within
// the working width, value(u) + value(Negate(u)) wraps to zero. The
// sequence is trimmed to at most one redundant leading zero first, which
// keeps repeated negations at minimal width instead of growing without
// bound. Negating zero leaves zero.
func (u *UInt) Negate() {
	if z := u.vec.Len() - u.vec.BitLen(); z >= 2 {
		u.vec.Shrink(z - 1)
	}
	for p := 0; p < u.vec.Len(); p++ {
		u.vec.Flip(p)
	}
	u.increment()
	if w := u.vec.Len(); w > 1 && !u.vec.Test(w-1) {
		u.vec.Shrink(1)
	}
}

// increment adds one within the current width. A carry out of the top
// bit is discarded: this closes Negate over the working width and makes
// the negation of zero come out as zero.
func (u *UInt) increment() {
	for p := 0; p < u.vec.Len(); p++ {
		set := u.vec.Test(p)
		u.vec.SetTo(p, !set)
		if !set {
			return
		}
	}
}

// Sub sets u to u - n, clamped at zero, in place: the type cannot
// represent a negative result, so when n exceeds u the result is zero at
// the working width. Internally n is cloned, negated and sign-extended to
// the common width, then ripple-added; the final carry is consumed as the
// no-borrow signal rather than appended, so Sub never grows past the
// common width.
func (u *UInt) Sub(n *UInt) {
	if n.IsZero() {
		// The two's complement of zero is zero, which can never produce
		// the carry that signals "no borrow" below.
		return
	}

	neg := n.Clone()
	if neg.vec.Test(neg.vec.Len() - 1) {
		// A set top bit would read as a sign bit once negated; give the
		// clone the same guard zero construction guarantees.
		neg.vec.Grow(1, false)
	}
	neg.Negate()

	if w, nw := u.vec.Len(), neg.vec.Len(); w > nw {
		// Extend with the clone's own top bit, preserving its two's
		// complement reading at the wider width.
		neg.vec.Grow(w-nw, neg.vec.Test(nw-1))
	} else if nw > w {
		u.vec.Grow(nw-w, false)
	}

	if u.rippleAdd(neg) {
		return // carry out means no borrow: the truncated sum is u - n
	}
	u.vec.ClearAll() // true result is negative: clamp to zero
}

// Mul sets u to u * n in place. When both operands fit uint64 and the
// product does too, the operands are converted natively, multiplied, and
// the receiver rebuilt from the product at minimal width. Anything wider
// falls through to a double-and-add over the multiplier's bits, so the
// product is exact at every width.
func (u *UInt) Mul(n *UInt) {
	if u.IsUint64() && n.IsUint64() {
		if hi, lo := bits.Mul64(u.low64(), n.low64()); hi == 0 {
			u.vec = vec64(lo)
			return
		}
	}

	acc := UIntFrom64(0)
	a := u.Clone()
	for p := n.vec.Len() - 1; p >= 0; p-- {
		acc.Add(acc)
		if n.vec.Test(p) {
			acc.Add(a)
		}
	}
	*u = *acc
}

// Add returns a + b without disturbing either operand.
func Add(a, b *UInt) *UInt {
	out := a.Clone()
	out.Add(b)
	return out
}

// Sub returns a - b, clamped at zero, without disturbing either operand.
func Sub(a, b *UInt) *UInt {
	out := a.Clone()
	out.Sub(b)
	return out
}

// Mul returns a * b without disturbing either operand.
func Mul(a, b *UInt) *UInt {
	out := a.Clone()
	out.Mul(b)
	return out
}

// Negate returns the two's complement of a without disturbing it.
func Negate(a *UInt) *UInt {
	out := a.Clone()
	out.Negate()
	return out
}

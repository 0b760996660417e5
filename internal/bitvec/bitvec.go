// Package bitvec provides the bit-sequence storage used by bitnum.UInt.
//
// A Vec is a fixed-width run of bits over a single growable buffer.
// Position 0 is the least significant bit, position Len()-1 the most
// significant. The width changes only through Grow and Shrink; storage at
// and beyond the width is kept all-false, so the width field is the single
// source of truth for how much of the buffer is live.
package bitvec

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

type Vec struct {
	set *bitset.BitSet
	n   int
}

// New returns a Vec of n all-false bits. n must be at least 1.
func New(n int) Vec {
	if n < 1 {
		panic("bitvec: width must be at least 1")
	}
	return Vec{set: bitset.New(uint(n)), n: n}
}

// Len returns the width in bits.
func (v *Vec) Len() int { return v.n }

// Test reports the bit at position i. Positions at or beyond the width read
// as false; a read never widens the vector. Negative positions panic.
func (v *Vec) Test(i int) bool {
	if i < 0 {
		panic("bitvec: position out of range")
	}
	if i >= v.n {
		return false
	}
	return v.set.Test(uint(i))
}

func (v *Vec) Set(i int)   { v.check(i); v.set.Set(uint(i)) }
func (v *Vec) Clear(i int) { v.check(i); v.set.Clear(uint(i)) }
func (v *Vec) Flip(i int)  { v.check(i); v.set.Flip(uint(i)) }

func (v *Vec) SetTo(i int, b bool) { v.check(i); v.set.SetTo(uint(i), b) }

func (v *Vec) check(i int) {
	if i < 0 || i >= v.n {
		panic("bitvec: position out of range")
	}
}

// Clone returns an independent copy. The backing buffer is never shared.
func (v *Vec) Clone() Vec {
	return Vec{set: v.set.Clone(), n: v.n}
}

// Grow widens the vector by k bits, filling the new leading positions with
// the fill bit. A false fill preserves the value; a true fill is the
// one-extension used for two's complement sign extension.
func (v *Vec) Grow(k int, fill bool) {
	if k < 0 {
		panic("bitvec: grow out of range")
	}
	if fill {
		for p := v.n; p < v.n+k; p++ {
			v.set.Set(uint(p))
		}
	}
	v.n += k
}

// Shrink drops the k leading bits. The caller is responsible for ensuring
// the dropped bits are redundant; Shrink does not verify. The width can
// never drop below 1.
func (v *Vec) Shrink(k int) {
	if k < 0 || k >= v.n {
		panic("bitvec: shrink out of range")
	}
	for p := v.n - k; p < v.n; p++ {
		v.set.Clear(uint(p))
	}
	v.n -= k
}

// ClearAll sets every bit to false without changing the width.
func (v *Vec) ClearAll() { v.set.ClearAll() }

// None reports whether no bit is set.
func (v *Vec) None() bool { return v.set.None() }

// OnesCount returns the number of set bits.
func (v *Vec) OnesCount() int { return int(v.set.Count()) }

// NextSet returns the position of the first set bit at or after i, if any.
func (v *Vec) NextSet(i int) (int, bool) {
	if i < 0 {
		panic("bitvec: position out of range")
	}
	p, ok := v.set.NextSet(uint(i))
	return int(p), ok
}

// BitLen returns the minimal number of bits needed to represent the value:
// one past the highest set position, or 0 when no bit is set.
func (v *Vec) BitLen() int {
	ln := 0
	for p, ok := v.set.NextSet(0); ok; p, ok = v.set.NextSet(p + 1) {
		ln = int(p) + 1
	}
	return ln
}

// Equal reports whether w has the same width and the same bits. The backing
// buffers may differ in capacity; only live positions are compared.
func (v *Vec) Equal(w *Vec) bool {
	if v.n != w.n {
		return false
	}
	for p := 0; p < v.n; p++ {
		if v.set.Test(uint(p)) != w.set.Test(uint(p)) {
			return false
		}
	}
	return true
}

// String renders the bits most significant first, one '1' or '0' per bit,
// with no prefix and no truncation.
func (v *Vec) String() string {
	var b strings.Builder
	b.Grow(v.n)
	for p := v.n - 1; p >= 0; p-- {
		if v.set.Test(uint(p)) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

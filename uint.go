package bitnum

import (
	"fmt"
	"io"
	"math/big"
	"math/bits"

	"github.com/pkg/errors"

	"github.com/shabbyrobe/go-bitnum/internal/bitvec"
)

// UInt is an arbitrary-width unsigned integer stored as an explicit
// sequence of bits rather than as native machine words.
//
// Methods on *UInt mutate the receiver in place; the package-level
// functions of the same names (Add, Sub, Mul, ...) leave their operands
// untouched and return a new value. Every UInt owns its bit storage
// exclusively: no operation ever aliases storage between two values, and
// operands of mutating methods are read-only.
//
// The width is explicit and carries redundant leading zeros: construction
// sizes a value minimally plus one leading guard zero, arithmetic widens
// as needed, and no operation trims except Negate. The zero value of UInt
// has no width and is not usable; create values with the UIntFrom*
// constructors.
type UInt struct {
	vec bitvec.Vec
}

func UIntFrom64(v uint64) *UInt { return &UInt{vec: vec64(v)} }
func UIntFrom32(v uint32) *UInt { return UIntFrom64(uint64(v)) }
func UIntFrom16(v uint16) *UInt { return UIntFrom64(uint64(v)) }
func UIntFrom8(v uint8) *UInt   { return UIntFrom64(uint64(v)) }

// UIntFromInt creates a UInt from a native int. Negative values are
// rejected with ErrNegative; zero is fine, producing a single false bit.
func UIntFromInt(v int) (*UInt, error) {
	if v < 0 {
		return nil, errors.Wrapf(ErrNegative, "int %d", v)
	}
	return UIntFrom64(uint64(v)), nil
}

// UIntFromString creates a UInt from a string. A "0b" or "0B" prefix reads
// the rest as a literal bit sequence and preserves the written width
// exactly, redundant leading zeros included, so String round-trips without
// losing width. Anything else is parsed as a non-negative big.Int in
// base 0 (decimal, 0x hex, 0o octal) and sized minimally.
func UIntFromString(s string) (*UInt, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'b' || s[1] == 'B') {
		raw := s[2:]
		if len(raw) == 0 {
			return nil, errors.Errorf("bitnum: uint string %q invalid", s)
		}
		vec := bitvec.New(len(raw))
		for i := 0; i < len(raw); i++ {
			switch raw[i] {
			case '1':
				vec.Set(len(raw) - 1 - i)
			case '0':
			default:
				return nil, errors.Errorf("bitnum: uint string %q invalid", s)
			}
		}
		return &UInt{vec: vec}, nil
	}

	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, errors.Errorf("bitnum: uint string %q invalid", s)
	}
	return UIntFromBigInt(b)
}

// UIntFromBigInt creates a UInt from a big.Int at minimal width plus one
// leading guard zero. Negative values are rejected with ErrNegative.
func UIntFromBigInt(v *big.Int) (*UInt, error) {
	if v.Sign() < 0 {
		return nil, errors.Wrapf(ErrNegative, "big.Int %s", v)
	}
	n := v.BitLen() + 1
	vec := bitvec.New(n)
	for p := 0; p < n-1; p++ {
		if v.Bit(p) == 1 {
			vec.Set(p)
		}
	}
	return &UInt{vec: vec}, nil
}

// RandUInt generates a random UInt of exactly the given width from an
// external source. Every position is uniformly random, so the value is not
// guaranteed to fill its width.
func RandUInt(source RandSource, width int) *UInt {
	if width < 1 {
		panic("bitnum: width must be at least 1")
	}
	vec := bitvec.New(width)
	var w uint64
	for p := 0; p < width; p++ {
		if p%64 == 0 {
			w = source.Uint64()
		}
		vec.SetTo(p, w&1 == 1)
		w >>= 1
	}
	return &UInt{vec: vec}
}

// Clone returns a deep, independent copy; bit storage is never shared.
func (u *UInt) Clone() *UInt {
	return &UInt{vec: u.vec.Clone()}
}

func (u *UInt) IsZero() bool { return u.vec.None() }

// Width returns the number of bits currently allocated, redundant leading
// zeros included.
func (u *UInt) Width() int { return u.vec.Len() }

// BitLen returns the minimal number of bits needed to represent the
// value; 0 for a zero of any width.
func (u *UInt) BitLen() int { return u.vec.BitLen() }

func (u *UInt) String() string {
	return "0b" + u.vec.String()
}

// Format implements fmt.Formatter. The 'b' verb prints the raw bit
// sequence at its stored width, 's' and 'v' the 0b-prefixed form of
// String. Every other verb is forwarded to big.Int, so 'd', 'x' and 'o'
// work as expected at minimal width.
func (u *UInt) Format(s fmt.State, c rune) {
	switch c {
	case 'b':
		io.WriteString(s, u.vec.String())
	case 's', 'v':
		io.WriteString(s, u.String())
	default:
		u.AsBigInt().Format(s, c)
	}
}

func (u *UInt) IntoBigInt(b *big.Int) {
	b.SetUint64(0)
	for p, ok := u.vec.NextSet(0); ok; p, ok = u.vec.NextSet(p + 1) {
		b.SetBit(b, p, 1)
	}
}

func (u *UInt) AsBigInt() *big.Int {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// Uint64 converts the value back to a uint64, exactly inverting
// UIntFrom64. A set bit at or above position 64 is reported as ErrRange
// rather than silently truncated; a wider value whose excess is all
// redundant zeros converts fine. See IsUint64 to check before you convert.
func (u *UInt) Uint64() (uint64, error) {
	if !u.IsUint64() {
		return 0, errors.Wrapf(ErrRange, "%d bit value in uint64", u.BitLen())
	}
	return u.low64(), nil
}

// IsUint64 reports whether u can be represented as a uint64.
func (u *UInt) IsUint64() bool {
	return u.vec.BitLen() <= 64
}

// low64 folds the low positions most significant first, the way Uint64 is
// defined to read the sequence. Callers check IsUint64 themselves.
func (u *UInt) low64() (acc uint64) {
	top := u.vec.Len() - 1
	if top > 63 {
		top = 63
	}
	for p := top; p >= 0; p-- {
		acc <<= 1
		if u.vec.Test(p) {
			acc |= 1
		}
	}
	return acc
}

// vec64 builds storage for v at minimal width plus one leading guard
// zero, so the top bit of a freshly constructed value is never set.
func vec64(v uint64) bitvec.Vec {
	n := bits.Len64(v) + 1
	vec := bitvec.New(n)
	for p := 0; p < n-1; p++ {
		if v&(1<<uint(p)) != 0 {
			vec.Set(p)
		}
	}
	return vec
}

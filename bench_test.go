package bitnum

import (
	"fmt"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/holiman/uint256"
)

var (
	BenchBigIntResult  *big.Int
	BenchBoolResult    bool
	BenchIntResult     int
	BenchStringResult  string
	BenchUIntResult    *UInt
	BenchUint256Result *uint256.Int
	BenchUint64Result  uint64
)

var benchWidths = []int{8, 64, 256, 1024}

func BenchmarkUIntAdd(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	for _, width := range benchWidths {
		u1, u2 := RandUInt(rng, width), RandUInt(rng, width)
		b.Run(fmt.Sprintf("%dbit", width), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchUIntResult = Add(u1, u2)
			}
		})
	}
}

func BenchmarkUIntSub(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	for _, width := range benchWidths {
		u1, u2 := RandUInt(rng, width), RandUInt(rng, width)
		b.Run(fmt.Sprintf("%dbit", width), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchUIntResult = Sub(u1, u2)
			}
		})
	}
}

func BenchmarkUIntMul(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	for _, width := range []int{8, 32, 64, 256} {
		u1, u2 := RandUInt(rng, width), RandUInt(rng, width)
		b.Run(fmt.Sprintf("%dbit", width), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchUIntResult = Mul(u1, u2)
			}
		})
	}
}

func BenchmarkUIntNegate(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	for _, width := range benchWidths {
		u := RandUInt(rng, width)
		b.Run(fmt.Sprintf("%dbit", width), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchUIntResult = Negate(u)
			}
		})
	}
}

func BenchmarkUIntString(b *testing.B) {
	for _, u := range []*UInt{
		ubits("0b0"),
		u64(0xfedcba98),
		u64(0xfedcba9876543210),
		accUIntFromBigInt(bigs("0x fedcba98 76543210 fedcba98 76543210")),
	} {
		b.Run(fmt.Sprintf("%dbit", u.Width()), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchStringResult = u.String()
			}
		})
	}
}

func BenchmarkUIntBitLen(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	u := RandUInt(rng, 256)
	for i := 0; i < b.N; i++ {
		BenchIntResult = u.BitLen()
	}
}

func BenchmarkUIntIsZero(b *testing.B) {
	u := ubits("0b" + strings.Repeat("0", 256))
	for i := 0; i < b.N; i++ {
		BenchBoolResult = u.IsZero()
	}
}

func BenchmarkUIntFromBigInt(b *testing.B) {
	v := bigs("0x fedcba98 76543210 fedcba98 76543210")
	for i := 0; i < b.N; i++ {
		BenchUIntResult, _ = UIntFromBigInt(v)
	}
}

func BenchmarkUIntAsBigInt(b *testing.B) {
	u := accUIntFromBigInt(bigs("0x fedcba98 76543210 fedcba98 76543210"))
	for i := 0; i < b.N; i++ {
		BenchBigIntResult = u.AsBigInt()
	}
}

// The remaining benchmarks exist to compare against the native and big.Int
// costs of the same operations, so the price of the explicit bit sequence
// representation stays visible.

var BenchUint641, BenchUint642 uint64 = 981409819082, 12900019

func BenchmarkUint64Add(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = BenchUint641 + BenchUint642
	}
}

func BenchmarkUint64Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = BenchUint641 * BenchUint642
	}
}

func BenchmarkBigIntAdd(b *testing.B) {
	u1, u2 := bigU64(BenchUint641), bigU64(BenchUint642)
	for i := 0; i < b.N; i++ {
		BenchBigIntResult = new(big.Int).Add(u1, u2)
	}
}

func BenchmarkBigIntMul(b *testing.B) {
	u1, u2 := bigU64(BenchUint641), bigU64(BenchUint642)
	for i := 0; i < b.N; i++ {
		BenchBigIntResult = new(big.Int).Mul(u1, u2)
	}
}

func BenchmarkUint256Add(b *testing.B) {
	u1, u2 := uint256.NewInt(BenchUint641), uint256.NewInt(BenchUint642)
	for i := 0; i < b.N; i++ {
		BenchUint256Result = new(uint256.Int).Add(u1, u2)
	}
}

func BenchmarkUint256Mul(b *testing.B) {
	u1, u2 := uint256.NewInt(BenchUint641), uint256.NewInt(BenchUint642)
	for i := 0; i < b.N; i++ {
		BenchUint256Result = new(uint256.Int).Mul(u1, u2)
	}
}

package bitnum

import "github.com/pkg/errors"

// Sentinel errors for the failure conditions the API can signal.
var (
	// ErrNegative indicates a negative value was offered to a constructor;
	// a UInt has no representation for negative numbers.
	ErrNegative = errors.New("bitnum: negative value")

	// ErrRange indicates a conversion target cannot represent the value.
	ErrRange = errors.New("bitnum: value out of range")
)

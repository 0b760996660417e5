/*
Package bitnum provides an arbitrary-width unsigned integer type (UInt)
built on an explicit sequence of bits rather than on native machine words.

A UInt carries its width with it: construction sizes a value at its
minimal width plus one leading guard zero, arithmetic widens the result
whenever a carry demands it, and redundant leading zeros persist until
something actively trims them. Methods on *UInt mutate the receiver in
place; the package-level functions of the same names clone first and
leave both operands untouched.

Simple example:

	a := bitnum.UIntFrom64(3)
	a.Add(bitnum.UIntFrom64(5))
	fmt.Println(a)
	// Output: 0b1000

UInt can be created from a variety of sources:

	UIntFrom64(v uint64) *UInt
	UIntFrom32(v uint32) *UInt
	UIntFrom16(v uint16) *UInt
	UIntFrom8(v uint8) *UInt
	UIntFromInt(v int) (*UInt, error)
	UIntFromString(s string) (*UInt, error)
	UIntFromBigInt(v *big.Int) (*UInt, error)
	RandUInt(source RandSource, width int) *UInt

UInt supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package bitnum

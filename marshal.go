package bitnum

import "github.com/pkg/errors"

// The text form is the width-exact "0b" string from String, so marshalling
// round-trips both the bits and the width, redundant leading zeros
// included. The JSON form is the same string, quoted.

func (u *UInt) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *UInt) UnmarshalText(bts []byte) (err error) {
	v, err := UIntFromString(string(bts))
	if err != nil {
		return err
	}
	*u = *v
	return nil
}

func (u *UInt) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *UInt) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) == 0 {
		return errors.Errorf("bitnum: uint invalid JSON %q", string(bts))
	}
	if bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return errors.Errorf("bitnum: uint invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := UIntFromString(string(bts))
	if err != nil {
		return err
	}
	*u = *v
	return nil
}

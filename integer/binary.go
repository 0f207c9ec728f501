package integer

import (
	"github.com/calebcase/oops"
	"github.com/holiman/uint256"
)

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The layout is the big-endian magnitude shifted left by one with the sign in
// the lowest bit. Zero is encoded as a single zero byte.
func (x Int) MarshalBinary() (data []byte, err error) {
	mag := x.magnitude()

	// Only the magnitude of MinValue (2^255) loses its top bit to the shift.
	carry := mag[3] >> 63

	var z uint256.Int
	z.Lsh(&mag, 1)
	if x.IsNeg() {
		z[0] |= 1
	}

	data = z.Bytes()
	if carry == 1 {
		data = append([]byte{1}, data...)
	}

	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Leading zero bytes
// are ignored.
func (x *Int) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	if len(data) == 0 {
		return Error.New("empty data")
	}

	for len(data) > 0 && data[0] == 0 {
		data = data[1:]
	}

	var carry byte
	switch {
	case len(data) > 33:
		return oops.Trace(ErrOverflow)
	case len(data) == 33:
		if data[0] > 1 {
			return oops.Trace(ErrOverflow)
		}

		carry, data = data[0], data[1:]
	}

	var z uint256.Int
	z.SetBytes(data)

	negative := z[0]&1 == 1
	z.Rsh(&z, 1)
	z[3] |= uint64(carry) << 63

	v, err := fromMagnitude(z, negative)
	if err != nil {
		return err
	}

	*x = v

	return nil
}

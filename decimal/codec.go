package decimal

import (
	"github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/calebcase/decimal256/integer"
)

// Every encoding carries the raw integer only. The scale is implied.
var (
	_ json.Marshaler        = Decimal{}
	_ json.Unmarshaler      = (*Decimal)(nil)
	_ msgpack.CustomEncoder = Decimal{}
	_ msgpack.CustomDecoder = (*Decimal)(nil)
)

// MarshalBinary implements encoding.BinaryMarshaler using the integer
// encoding of the raw value.
func (d Decimal) MarshalBinary() (data []byte, err error) {
	return d.raw.MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (d *Decimal) UnmarshalBinary(data []byte) (err error) {
	return d.raw.UnmarshalBinary(data)
}

// MarshalJSON encodes the raw value as a base 10 JSON string.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.raw.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Decimal) UnmarshalJSON(data []byte) (err error) {
	defer Error.WrapP(&err)

	var text string

	err = json.Unmarshal(data, &text)
	if err != nil {
		return err
	}

	raw, err := integer.Parse(text)
	if err != nil {
		return err
	}

	d.raw = raw

	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder as a bin holding
// MarshalBinary.
func (d Decimal) EncodeMsgpack(enc *msgpack.Encoder) error {
	data, err := d.MarshalBinary()
	if err != nil {
		return err
	}

	return enc.EncodeBytes(data)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (d *Decimal) DecodeMsgpack(dec *msgpack.Decoder) (err error) {
	defer Error.WrapP(&err)

	data, err := dec.DecodeBytes()
	if err != nil {
		return err
	}

	return d.UnmarshalBinary(data)
}

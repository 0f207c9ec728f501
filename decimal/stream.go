package decimal

import (
	"github.com/calebcase/decimal256/control"
	"github.com/calebcase/decimal256/integer"
)

// Schema describes how a Decimal field is framed in a control stream.
type Schema struct {
	Nullable bool
}

// Encoder writes Decimals as control data fields holding the raw integer.
// The scale is implied: every Decimal has Places places.
type Encoder struct {
	ie *integer.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce *control.Encoder) *Encoder {
	return &Encoder{
		ie: integer.NewEncoder(integer.Schema{Nullable: schema.Nullable}, ce),
	}
}

// Encode writes d, or a null field for a nil d.
func (e *Encoder) Encode(d *Decimal) (err error) {
	defer Error.WrapP(&err)

	if d == nil {
		return e.ie.Encode(nil)
	}

	raw := d.raw

	return e.ie.Encode(&raw)
}

// Decoder reads Decimals written by an Encoder.
type Decoder struct {
	id *integer.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd *control.Decoder) *Decoder {
	return &Decoder{
		id: integer.NewDecoder(integer.Schema{Nullable: schema.Nullable}, cd),
	}
}

// Decode reads the next field. It returns nil for a null field.
func (d *Decoder) Decode() (v *Decimal, err error) {
	defer Error.WrapP(&err)

	raw, err := d.id.Decode()
	if err != nil || raw == nil {
		return nil, err
	}

	return &Decimal{raw: *raw}, nil
}

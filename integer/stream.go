package integer

import (
	"github.com/calebcase/decimal256/control"
)

// Schema describes how an Int field is framed in a control stream.
type Schema struct {
	// Nullable fields may be absent. Absent values are written as Null
	// blocks.
	Nullable bool
}

// Encoder writes Ints as control data fields holding MarshalBinary output.
type Encoder struct {
	schema Schema
	ce     *control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce *control.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     ce,
	}
}

// Encode writes x. A nil x is written as a null field if the schema allows
// it.
func (e *Encoder) Encode(x *Int) (err error) {
	defer Error.WrapP(&err)

	if x == nil {
		if !e.schema.Nullable {
			return Error.New("nil value for non-nullable field")
		}

		return e.ce.Null()
	}

	data, err := x.MarshalBinary()
	if err != nil {
		return err
	}

	return e.ce.Data(data)
}

// Decoder reads Ints written by an Encoder.
type Decoder struct {
	schema Schema
	cd     *control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd *control.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     cd,
	}
}

// Decode reads the next field. It returns nil for a null field.
func (d *Decoder) Decode() (x *Int, err error) {
	defer Error.WrapP(&err)

	if !d.cd.Next() {
		if d.cd.Err() != nil {
			return nil, d.cd.Err()
		}

		return nil, Error.New("missing field")
	}

	switch t := d.cd.Type(); {
	case t == control.Null:
		if !d.schema.Nullable {
			return nil, Error.New("null value for non-nullable field")
		}

		return nil, nil
	case !t.IsData():
		return nil, Error.New("unexpected %s field", t)
	}

	data, err := d.cd.Data()
	if err != nil {
		return nil, err
	}

	x = new(Int)

	err = x.UnmarshalBinary(data)
	if err != nil {
		return nil, err
	}

	return x, nil
}

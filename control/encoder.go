package control

import (
	"io"
)

// Encoder writes fields to a stream. Each method writes exactly one field.
type Encoder struct {
	w io.Writer

	// open is the number of unbounded containers not yet ended.
	open int
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w: w,
	}
}

func (e *Encoder) write(p ...byte) (err error) {
	_, err = e.w.Write(p)

	return Error.Wrap(err)
}

// Data writes data using the shortest block that holds it:
//
//   - one byte below 0x80 is packed into the control block (Data)
//   - two or three bytes whose first byte fits the mask share the control
//     block (Data1, Data2)
//   - up to 64 bytes are prefixed by their length (DataSize)
//   - anything longer is prefixed by the length of its length (DataSizeSize)
//
// Zero length data must be written with Empty.
func (e *Encoder) Data(data []byte) (err error) {
	size := len(data)

	switch {
	case size == 0:
		return Error.New("invalid: size=0")
	case size == 1 && data[0]&^Data.Mask == 0:
		return e.write(Data.Prefix | data[0])
	case size == 2 && data[0]&^Data1.Mask == 0:
		return e.write(Data1.Prefix|data[0], data[1])
	case size == 3 && data[0]&^Data2.Mask == 0:
		return e.write(Data2.Prefix|data[0], data[1], data[2])
	case size <= 64:
		return e.write(append([]byte{DataSize.Prefix | byte(size-1)}, data...)...)
	}

	sb := sized(uint64(size - 1))

	err = e.write(append([]byte{DataSizeSize.Prefix | byte(len(sb)-1)}, sb...)...)
	if err != nil {
		return err
	}

	return e.write(data...)
}

// Bound writes bsv, an already encoded stream, as a bounded container. The
// length prefix lets a Decoder skip the whole container without reading its
// fields.
func (e *Encoder) Bound(bsv []byte) (err error) {
	if len(bsv) == 0 {
		return Error.New("invalid: size=0")
	}

	err = e.write(ContainerBounded.Prefix)
	if err != nil {
		return err
	}

	err = e.Data(sized(uint64(len(bsv) - 1)))
	if err != nil {
		return err
	}

	return e.write(bsv...)
}

// Unbound writes the fields written by fn inside an unbounded container.
func (e *Encoder) Unbound(fn func(*Encoder) error) (err error) {
	err = e.write(ContainerUnbounded.Prefix)
	if err != nil {
		return err
	}

	e.open++

	err = fn(e)
	if err != nil {
		return err
	}

	e.open--

	return e.write(ContainerEnd.Prefix)
}

// Skip records that amount consecutive fields are omitted. Amounts up to 2^16
// are supported.
func (e *Encoder) Skip(amount uint64) (err error) {
	if amount == 0 || amount > 1<<16 {
		return Error.New("invalid: amount=%d", amount)
	}

	ab := sized(amount - 1)

	return e.write(append([]byte{SkipSize.Prefix | byte(len(ab)-1)}, ab...)...)
}

// Empty writes a zero length value.
func (e *Encoder) Empty() (err error) {
	return e.write(Empty.Prefix)
}

// Null writes an absent value.
func (e *Encoder) Null() (err error) {
	return e.write(Null.Prefix)
}

// Close fails if an unbounded container was left open by a failed callback.
func (e *Encoder) Close() (err error) {
	if e.open != 0 {
		return Error.New("unterminated: open=%d", e.open)
	}

	return nil
}

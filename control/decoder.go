package control

import (
	"bytes"
	"errors"
	"io"
	"math"

	"github.com/calebcase/oops"
)

// Decoder reads fields from a stream.
//
// Next advances to the following field and the accessors (Data, BSV, Enter,
// Amount) read the current one. Fields that are not read are skipped by the
// next call to Next.
type Decoder struct {
	r io.Reader

	consumed uint64
	stack    Stack

	head byte
	t    Type

	// finished is true once everything after the control block of the
	// current field has been read or skipped.
	finished bool

	data   []byte
	amount uint64

	err error
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r: r,
	}
}

// Err returns the error that stopped Next, if any.
func (d *Decoder) Err() error {
	return d.err
}

// Type returns the type of the current field.
func (d *Decoder) Type() Type {
	return d.t
}

// Depth returns the number of entered containers.
func (d *Decoder) Depth() int {
	return len(d.stack)
}

// Stack returns the entered containers.
func (d *Decoder) Stack() Stack {
	return d.stack
}

// Consumed returns the number of bytes read from the stream.
func (d *Decoder) Consumed() uint64 {
	return d.consumed
}

func (d *Decoder) consume(n uint64) (err error) {
	d.consumed += n

	return d.stack.Consume(n)
}

// read returns the next n bytes. The buffer grows as bytes arrive so a corrupt
// size cannot force a large allocation.
func (d *Decoder) read(n uint64) (data []byte, err error) {
	if n > math.MaxInt64 {
		return nil, Error.New("unimplemented: size >= 2^63")
	}

	var buf bytes.Buffer

	m, err := io.CopyN(&buf, d.r, int64(n))
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		return nil, Error.Wrap(err)
	}

	return buf.Bytes(), d.consume(uint64(m))
}

func (d *Decoder) discard(n uint64) (err error) {
	if n > math.MaxInt64 {
		return Error.New("unimplemented: size >= 2^63")
	}

	m, err := io.CopyN(io.Discard, d.r, int64(n))
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		return Error.Wrap(err)
	}

	return d.consume(uint64(m))
}

// fail records err so that Next stops.
func (d *Decoder) fail(err *error) {
	if *err != nil {
		d.err = *err
	}
}

// Next moves to the next field. It returns false at the end of the stream or
// on error; Err distinguishes the two.
func (d *Decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	if !d.finished && d.t != Unknown {
		if d.Seek() != nil {
			return false
		}
	}

	d.err = d.stack.Trim()
	if d.err != nil {
		return false
	}

	d.head = 0
	d.t = Unknown
	d.finished = false
	d.data = nil
	d.amount = 0

	var head [1]byte

	_, err := io.ReadFull(d.r, head[:])
	if err != nil {
		if !errors.Is(err, io.EOF) {
			d.err = Error.Wrap(err)
		} else if len(d.stack) != 0 {
			d.err = Error.New("unexpected end of stream: depth=%d", len(d.stack))
		}

		return false
	}

	d.err = d.consume(1)
	if d.err != nil {
		return false
	}

	t, ok := Types.Match(head[0])
	if !ok {
		d.err = Error.New("unexpected byte: %08b", head[0])

		return false
	}

	switch t {
	case Data, Empty, Null:
		d.finished = true
	case ContainerEnd:
		top := d.stack.Top()
		if top == nil || top.Type != ContainerUnbounded {
			d.err = Error.New("unexpected container end")

			return false
		}

		d.err = d.stack.Pop()
		if d.err != nil {
			return false
		}

		d.finished = true
	}

	d.head = head[0]
	d.t = t

	return true
}

// Seek moves the reading position to the end of the current field, skipping
// whatever has not been read.
func (d *Decoder) Seek() (err error) {
	defer d.fail(&err)

	if d.finished {
		return nil
	}

	switch d.t {
	case Data1, Data2, DataSize, DataSizeSize:
		_, err = d.Data()

		return err
	case ContainerBounded:
		size, err := d.boundSize()
		if err != nil {
			return err
		}

		d.finished = true

		return d.discard(size)
	case ContainerUnbounded:
		depth := len(d.stack)

		err = d.Enter()
		if err != nil {
			return err
		}

		for d.Next() {
			if d.t == ContainerEnd && len(d.stack) == depth {
				return nil
			}
		}

		if d.err != nil {
			return d.err
		}

		return Error.New("unterminated container")
	case SkipSize:
		_, err = d.Amount()

		return err
	}

	return Error.New("unknown field %q: %08b", d.t, d.head)
}

// payload reads the data of a data field whose control block is head.
func (d *Decoder) payload(t Type, head byte) (data []byte, err error) {
	v := head & t.Mask

	switch t {
	case Data:
		return []byte{v}, nil
	case Data1, Data2:
		n := uint64(1)
		if t == Data2 {
			n = 2
		}

		rest, err := d.read(n)
		if err != nil {
			return nil, err
		}

		return append([]byte{v}, rest...), nil
	case DataSize:
		return d.read(uint64(v) + 1)
	case DataSizeSize:
		sb, err := d.read(uint64(v) + 1)
		if err != nil {
			return nil, err
		}

		size, err := unsized(sb)
		if err != nil {
			return nil, err
		}

		if size == 1<<64-1 {
			return nil, Error.New("unimplemented: size >= 2^64")
		}

		return d.read(size + 1)
	}

	return nil, oops.Trace(ErrInvalidOperation)
}

// Data returns the payload of the current data field.
func (d *Decoder) Data() (data []byte, err error) {
	defer d.fail(&err)

	if !d.t.IsData() {
		return nil, oops.Trace(ErrInvalidOperation)
	}

	if d.data != nil {
		return d.data, nil
	}

	if d.finished && d.t != Data {
		return nil, oops.Trace(ErrInvalidOperation)
	}

	d.data, err = d.payload(d.t, d.head)
	if err != nil {
		return nil, err
	}

	d.finished = true

	return d.data, nil
}

// boundSize reads the size field that follows a bounded container's control
// block.
func (d *Decoder) boundSize() (size uint64, err error) {
	if d.finished {
		return 0, oops.Trace(ErrInvalidOperation)
	}

	head, err := d.read(1)
	if err != nil {
		return 0, err
	}

	t, ok := Types.Match(head[0])
	if !ok || !t.IsData() {
		return 0, Error.New("invalid bounded size field: %08b", head[0])
	}

	sb, err := d.payload(t, head[0])
	if err != nil {
		return 0, err
	}

	size, err = unsized(sb)
	if err != nil {
		return 0, err
	}

	if size == 1<<64-1 {
		return 0, Error.New("unimplemented: size >= 2^64")
	}

	return size + 1, nil
}

// Enter descends into the current container. Following calls to Next return
// its fields until the container is exhausted (bounded) or ended (unbounded).
func (d *Decoder) Enter() (err error) {
	defer d.fail(&err)

	switch d.t {
	case ContainerBounded:
		size, err := d.boundSize()
		if err != nil {
			return err
		}

		d.stack.Push(&Frame{
			Type:      ContainerBounded,
			Size:      size,
			Remaining: size,
		})
	case ContainerUnbounded:
		if d.finished {
			return oops.Trace(ErrInvalidOperation)
		}

		d.stack.Push(&Frame{
			Type: ContainerUnbounded,
		})
	default:
		return oops.Trace(ErrInvalidOperation)
	}

	d.finished = true

	return nil
}

// BSV returns the embedded stream of the current bounded container without
// decoding it.
func (d *Decoder) BSV() (bsv []byte, err error) {
	defer d.fail(&err)

	if d.t != ContainerBounded {
		return nil, oops.Trace(ErrInvalidOperation)
	}

	size, err := d.boundSize()
	if err != nil {
		return nil, err
	}

	d.finished = true

	return d.read(size)
}

// Amount returns the number of fields skipped by the current SkipSize field.
func (d *Decoder) Amount() (amount uint64, err error) {
	defer d.fail(&err)

	if d.t != SkipSize {
		return 0, oops.Trace(ErrInvalidOperation)
	}

	if d.amount != 0 {
		return d.amount, nil
	}

	if d.finished {
		return 0, oops.Trace(ErrInvalidOperation)
	}

	ab, err := d.read(uint64(d.head&d.t.Mask) + 1)
	if err != nil {
		return 0, err
	}

	a, err := unsized(ab)
	if err != nil {
		return 0, err
	}

	d.amount = a + 1
	d.finished = true

	return d.amount, nil
}

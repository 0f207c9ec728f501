package control_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/decimal256/control"
)

func TestRoundtrip(t *testing.T) {
	t.Run("data", func(t *testing.T) {
		type TC struct {
			Input []byte
			Mark  error
		}

		tcs := []TC{
			{Input: []byte{0b_0000_0000}, Mark: oops.New("unexpected")},
			{Input: []byte{0b_1000_0000}, Mark: oops.New("unexpected")},
			{Input: []byte{0b_0001_1111, 0b_1111_1111}, Mark: oops.New("unexpected")},
			{Input: []byte{0b_0000_1111, 0b_1111_1111, 0b_1111_1111}, Mark: oops.New("unexpected")},
			{Input: bytes.Repeat([]byte{0xff}, 33), Mark: oops.New("unexpected")},
			{Input: make([]byte, 65), Mark: oops.New("unexpected")},
			{Input: make([]byte, 70000), Mark: oops.New("unexpected")},
		}

		for i, tc := range tcs {
			t.Run(shortName(i, tc.Input), func(t *testing.T) {
				output := &bytes.Buffer{}

				err := control.NewEncoder(output).Data(tc.Input)
				require.NoError(t, err, tc.Mark)

				size := uint64(output.Len())

				d := control.NewDecoder(output)

				ok := d.Next()
				require.True(t, ok, tc.Mark)
				require.True(t, d.Type().IsData(), tc.Mark)

				input, err := d.Data()
				require.NoError(t, err, tc.Mark)
				require.Equal(t, tc.Input, input, tc.Mark)

				// Repeated reads return the same payload.
				again, err := d.Data()
				require.NoError(t, err, tc.Mark)
				require.Equal(t, input, again, tc.Mark)

				ok = d.Next()
				require.False(t, ok, tc.Mark)
				require.NoError(t, d.Err(), tc.Mark)
				require.Equal(t, size, d.Consumed(), tc.Mark)
			})
		}
	})

	t.Run("bound", func(t *testing.T) {
		output := &bytes.Buffer{}

		err := control.NewEncoder(output).Bound([]byte{0b_1000_0000, 0b_1111_1111})
		require.NoError(t, err)

		d := control.NewDecoder(output)

		require.True(t, d.Next())
		require.Equal(t, control.ContainerBounded, d.Type())

		bsv, err := d.BSV()
		require.NoError(t, err)
		require.Equal(t, []byte{0b_1000_0000, 0b_1111_1111}, bsv)

		require.False(t, d.Next())
		require.NoError(t, d.Err())
	})

	t.Run("skip", func(t *testing.T) {
		for _, amount := range []uint64{1, 256, 512, 65536} {
			output := &bytes.Buffer{}

			err := control.NewEncoder(output).Skip(amount)
			require.NoError(t, err)

			d := control.NewDecoder(output)

			require.True(t, d.Next())
			require.Equal(t, control.SkipSize, d.Type())

			got, err := d.Amount()
			require.NoError(t, err)
			require.Equal(t, amount, got)
		}
	})
}

// record writes a field of every kind, nesting a bounded container inside an
// unbounded one.
func record(t *testing.T) []byte {
	inner := &bytes.Buffer{}

	ie := control.NewEncoder(inner)
	require.NoError(t, ie.Data([]byte("inner")))
	require.NoError(t, ie.Null())

	output := &bytes.Buffer{}
	e := control.NewEncoder(output)

	require.NoError(t, e.Data([]byte{1}))
	require.NoError(t, e.Unbound(func(e *control.Encoder) error {
		err := e.Data(make([]byte, 100))
		if err != nil {
			return err
		}

		err = e.Bound(inner.Bytes())
		if err != nil {
			return err
		}

		return e.Skip(3)
	}))
	require.NoError(t, e.Empty())
	require.NoError(t, e.Close())

	return output.Bytes()
}

func TestDecoderNested(t *testing.T) {
	d := control.NewDecoder(bytes.NewReader(record(t)))

	next := func(want control.Type, depth int) {
		t.Helper()

		require.True(t, d.Next(), "%+v", d.Err())
		require.Equal(t, want, d.Type())
		require.Equal(t, depth, d.Depth())
	}

	next(control.Data, 0)

	next(control.ContainerUnbounded, 0)
	require.NoError(t, d.Enter())

	next(control.DataSizeSize, 1)
	data, err := d.Data()
	require.NoError(t, err)
	require.Len(t, data, 100)

	next(control.ContainerBounded, 1)
	require.NoError(t, d.Enter())
	require.Equal(t, 2, d.Depth())

	next(control.DataSize, 2)
	data, err = d.Data()
	require.NoError(t, err)
	require.Equal(t, []byte("inner"), data)

	// The exhausted bounded container is left before the next field.
	next(control.Null, 2)

	next(control.SkipSize, 1)
	amount, err := d.Amount()
	require.NoError(t, err)
	require.Equal(t, uint64(3), amount)

	next(control.ContainerEnd, 0)
	next(control.Empty, 0)

	require.False(t, d.Next())
	require.NoError(t, d.Err())
}

func TestDecoderSeek(t *testing.T) {
	t.Run("unread fields", func(t *testing.T) {
		d := control.NewDecoder(bytes.NewReader(record(t)))

		var kinds []control.Type
		for d.Next() {
			kinds = append(kinds, d.Type())
		}
		require.NoError(t, d.Err())

		require.Equal(t, []control.Type{
			control.Data,
			control.ContainerUnbounded,
			control.Empty,
		}, kinds)
	})

	t.Run("unbounded ending a bounded", func(t *testing.T) {
		inner := &bytes.Buffer{}
		require.NoError(t, control.NewEncoder(inner).Unbound(func(e *control.Encoder) error {
			return e.Data([]byte{7})
		}))

		output := &bytes.Buffer{}
		e := control.NewEncoder(output)
		require.NoError(t, e.Bound(inner.Bytes()))
		require.NoError(t, e.Null())

		d := control.NewDecoder(output)

		require.True(t, d.Next())
		require.NoError(t, d.Enter())

		require.True(t, d.Next())
		require.Equal(t, control.ContainerUnbounded, d.Type())
		require.NoError(t, d.Enter())
		require.Equal(t, 2, d.Depth())

		require.True(t, d.Next())
		require.Equal(t, control.Data, d.Type())

		require.True(t, d.Next())
		require.Equal(t, control.ContainerEnd, d.Type())
		require.Equal(t, 1, d.Depth())

		require.True(t, d.Next(), "%+v", d.Err())
		require.Equal(t, control.Null, d.Type())
		require.Equal(t, 0, d.Depth())
	})
}

func TestDecoderInvalid(t *testing.T) {
	type TC struct {
		name  string
		input []byte
	}

	tcs := []TC{
		{"symmetric", []byte{0b_0000_0111}},
		{"truncated data size", []byte{0b_0100_0001, 0xff}},
		{"truncated data1", []byte{0b_0010_0000}},
		{"truncated size size", []byte{0b_0000_1001, 0x01}},
		{"stray end", []byte{0b_0000_0100}},
		{"unterminated", []byte{0b_0000_0110, 0b_1000_0000}},
		{"bounded overrun", []byte{0b_0000_0101, 0b_1000_0000, 0b_0100_0001, 0xff, 0xff}},
		{"bounded size not data", []byte{0b_0000_0101, 0b_0000_0001, 0xff}},
	}

	for i, tc := range tcs {
		t.Run(shortName(i, tc.input)+tc.name, func(t *testing.T) {
			d := control.NewDecoder(bytes.NewReader(tc.input))

			for d.Next() {
				switch d.Type() {
				case control.ContainerBounded, control.ContainerUnbounded:
					_ = d.Enter()
				default:
					if d.Type().IsData() {
						_, _ = d.Data()
					}
				}
			}

			require.Error(t, d.Err())
			require.True(t, control.Error.Has(d.Err()), "%+v", d.Err())
		})
	}
}

func TestDecoderInvalidOperation(t *testing.T) {
	output := &bytes.Buffer{}
	require.NoError(t, control.NewEncoder(output).Null())

	d := control.NewDecoder(output)
	require.True(t, d.Next())

	_, err := d.Data()
	require.True(t, errors.Is(err, control.ErrInvalidOperation), "%+v", err)

	require.False(t, d.Next())
	require.Equal(t, err, d.Err())
}

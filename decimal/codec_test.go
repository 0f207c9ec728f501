package decimal_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/calebcase/decimal256/control"
	"github.com/calebcase/decimal256/decimal"
	"github.com/calebcase/decimal256/integer"
)

type quote struct {
	Pair   string          `json:"pair" msgpack:"pair"`
	Price  decimal.Decimal `json:"price" msgpack:"price"`
	Spread decimal.Decimal `json:"spread" msgpack:"spread"`
}

var codecCases = []decimal.Decimal{
	decimal.Zero(),
	decimal.One(),
	decimal.Percent(150),
	decimal.Percent(-150),
	decimal.NewInt64(1),
	decimal.Max(),
	decimal.New(integer.MinValue),
}

func TestBinary(t *testing.T) {
	for i, d := range codecCases {
		t.Run(fmt.Sprintf("[%d]%s", i, d), func(t *testing.T) {
			data, err := d.MarshalBinary()
			require.NoError(t, err)

			expected, err := d.Raw().MarshalBinary()
			require.NoError(t, err)
			require.Equal(t, expected, data)

			var back decimal.Decimal
			require.NoError(t, back.UnmarshalBinary(data))
			require.Equal(t, d, back)
		})
	}
}

func TestJSON(t *testing.T) {
	data, err := json.Marshal(decimal.Percent(150))
	require.NoError(t, err)
	require.Equal(t, `"1500000000000000000"`, string(data))

	for i, d := range codecCases {
		t.Run(fmt.Sprintf("[%d]%s", i, d), func(t *testing.T) {
			in := quote{Pair: "XLM/USDC", Price: d, Spread: decimal.Bps(25)}

			data, err := json.Marshal(in)
			require.NoError(t, err)

			var out quote
			require.NoError(t, json.Unmarshal(data, &out))
			require.Equal(t, in, out)
		})
	}

	t.Run("invalid", func(t *testing.T) {
		for _, input := range []string{`1500`, `"1.5"`, `"abc"`, `""`} {
			var d decimal.Decimal
			err := json.Unmarshal([]byte(input), &d)
			require.Error(t, err, input)
		}

		var d decimal.Decimal
		err := d.UnmarshalJSON([]byte(`"` + integer.MaxValue.String() + `0"`))
		require.True(t, errors.Is(err, integer.ErrOverflow), "%+v", err)
	})
}

func TestMsgpack(t *testing.T) {
	for i, d := range codecCases {
		t.Run(fmt.Sprintf("[%d]%s", i, d), func(t *testing.T) {
			in := quote{Pair: "XLM/USDC", Price: d, Spread: decimal.Bps(25)}

			data, err := msgpack.Marshal(&in)
			require.NoError(t, err)

			var out quote
			require.NoError(t, msgpack.Unmarshal(data, &out))
			require.Equal(t, in, out)
		})
	}

	t.Run("invalid", func(t *testing.T) {
		for _, v := range []interface{}{42, []byte{}} {
			data, err := msgpack.Marshal(v)
			require.NoError(t, err)

			var d decimal.Decimal
			require.Error(t, msgpack.Unmarshal(data, &d), "%v", v)
		}
	})
}

func TestStream(t *testing.T) {
	schema := decimal.Schema{Nullable: true}

	for i, d := range codecCases {
		d := d

		t.Run(fmt.Sprintf("[%d]%s", i, d), func(t *testing.T) {
			output := &bytes.Buffer{}

			err := decimal.NewEncoder(schema, control.NewEncoder(output)).Encode(&d)
			require.NoError(t, err)

			// The field holds the same bytes as the binary encoding.
			data, err := d.MarshalBinary()
			require.NoError(t, err)

			cd := control.NewDecoder(bytes.NewReader(output.Bytes()))
			require.True(t, cd.Next())

			field, err := cd.Data()
			require.NoError(t, err)
			require.Equal(t, data, field)

			back, err := decimal.NewDecoder(schema, control.NewDecoder(output)).Decode()
			require.NoError(t, err)
			require.Equal(t, &d, back)
		})
	}

	t.Run("record", func(t *testing.T) {
		price, spread := decimal.Percent(150), decimal.Bps(25)

		output := &bytes.Buffer{}
		ce := control.NewEncoder(output)
		e := decimal.NewEncoder(schema, ce)

		err := ce.Unbound(func(*control.Encoder) error {
			for _, d := range []*decimal.Decimal{&price, nil, &spread} {
				err := e.Encode(d)
				if err != nil {
					return err
				}
			}

			return nil
		})
		require.NoError(t, err)

		cd := control.NewDecoder(output)
		require.True(t, cd.Next())
		require.Equal(t, control.ContainerUnbounded, cd.Type())
		require.NoError(t, cd.Enter())

		d := decimal.NewDecoder(schema, cd)
		for _, want := range []*decimal.Decimal{&price, nil, &spread} {
			got, err := d.Decode()
			require.NoError(t, err)
			require.Equal(t, want, got)
		}

		require.True(t, cd.Next())
		require.Equal(t, control.ContainerEnd, cd.Type())
		require.False(t, cd.Next())
		require.NoError(t, cd.Err())
	})

	t.Run("not nullable", func(t *testing.T) {
		err := decimal.NewEncoder(decimal.Schema{}, control.NewEncoder(&bytes.Buffer{})).Encode(nil)
		require.Error(t, err)
		require.True(t, decimal.Error.Has(err))

		_, err = decimal.NewDecoder(decimal.Schema{}, control.NewDecoder(bytes.NewReader([]byte{0}))).Decode()
		require.Error(t, err)
		require.True(t, integer.Error.Has(err))
	})
}

package otjson_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	ot "github.com/inkwell-dev/ot"
	"github.com/inkwell-dev/ot/otjson"
)

func TestRoundTrip(t *testing.T) {
	c := ot.New(
		ot.Keep{N: 5},
		ot.Add{Value: "asdf"},
		ot.Remove{N: 3},
		ot.Keep{N: 4},
		ot.Add{Value: "zxcv"},
	)
	data, err := otjson.Encode(c)
	require.NoError(t, err)

	decoded, err := otjson.Decode(data)
	require.NoError(t, err)
	require.True(t, c.Equal(decoded))

	reencoded, err := otjson.Encode(decoded)
	require.NoError(t, err)
	require.JSONEq(t, string(data), string(reencoded))
}

func TestDecodeCanonicalizesAdjacentOps(t *testing.T) {
	wire := []byte(`{"operations":[{"type":"keep","value":2},{"type":"keep","value":3},{"type":"add","value":"a"},{"type":"add","value":"b"}]}`)
	c, err := otjson.Decode(wire)
	require.NoError(t, err)
	require.Equal(t, []ot.Operation{ot.Keep{N: 5}, ot.Add{Value: "ab"}}, c.Operations())
}

func TestDecodeDropsZeroLengthOps(t *testing.T) {
	wire := []byte(`{"operations":[{"type":"keep","value":0},{"type":"add","value":""},{"type":"keep","value":3}]}`)
	c, err := otjson.Decode(wire)
	require.NoError(t, err)
	require.Equal(t, []ot.Operation{ot.Keep{N: 3}}, c.Operations())
}

func TestDecodeUnknownType(t *testing.T) {
	wire := []byte(`{"operations":[{"type":"replace","value":3}]}`)
	_, err := otjson.Decode(wire)
	require.Error(t, err)
}

func TestDecodeMalformedJSON(t *testing.T) {
	_, err := otjson.Decode([]byte(`not json`))
	require.Error(t, err)
}

func TestDecodeWrongValueType(t *testing.T) {
	_, err := otjson.Decode([]byte(`{"operations":[{"type":"keep","value":"nope"}]}`))
	require.Error(t, err)

	_, err = otjson.Decode([]byte(`{"operations":[{"type":"add","value":5}]}`))
	require.Error(t, err)
}

func TestEncodeOrder(t *testing.T) {
	c := ot.New(ot.Remove{N: 1}, ot.Add{Value: "hi"}, ot.Keep{N: 2})
	data, err := otjson.Encode(c)
	require.NoError(t, err)
	require.JSONEq(t, `{"operations":[{"type":"remove","value":1},{"type":"add","value":"hi"},{"type":"keep","value":2}]}`, string(data))
}

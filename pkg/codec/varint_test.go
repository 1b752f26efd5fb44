package codec

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteVarIntZero(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVarInt(&buf, 0))
	assert.Equal(t, []byte{0x00}, buf.Bytes())
}

func TestWriteVarIntMaxThreeByteValue(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVarInt(&buf, 2097151))
	assert.Equal(t, []byte{0xff, 0xff, 0x7f}, buf.Bytes())
}

func TestWriteVarIntNegativeOne(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVarInt(&buf, -1))
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}, buf.Bytes())
}

func TestReadVarIntSingleByte(t *testing.T) {
	r := bufio.NewReader(bytes.NewReader([]byte{0x01}))
	v, n, err := ReadVarInt(r)
	require.NoError(t, err)
	assert.Equal(t, int32(1), v)
	assert.Equal(t, 1, n)
}

func TestReadVarIntMinInt32(t *testing.T) {
	r := bufio.NewReader(bytes.NewReader([]byte{0x80, 0x80, 0x80, 0x80, 0x08}))
	v, n, err := ReadVarInt(r)
	require.NoError(t, err)
	assert.Equal(t, int32(-2147483648), v)
	assert.Equal(t, 5, n)
}

func TestReadVarIntTooBig(t *testing.T) {
	r := bufio.NewReader(bytes.NewReader([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01}))
	_, _, err := ReadVarInt(r)
	assert.ErrorIs(t, err, ErrVarIntTooBig)
}

func TestReadVarIntEmptyInputErrors(t *testing.T) {
	r := bufio.NewReader(bytes.NewReader(nil))
	_, _, err := ReadVarInt(r)
	assert.Error(t, err)
}

func TestVarIntRoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 127, 128, 255, 25565, -2147483648, 2147483647} {
		var buf bytes.Buffer
		require.NoError(t, WriteVarInt(&buf, v))
		assert.Equal(t, buf.Len(), VarIntSize(v))

		r := bufio.NewReader(&buf)
		got, _, err := ReadVarInt(r)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

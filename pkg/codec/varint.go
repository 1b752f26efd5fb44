package codec

import (
	"fmt"
	"io"
)

// maxVarIntBytes bounds a VarInt to 5 bytes: enough for any 32-bit value
// once negatives are treated as their unsigned two's-complement form.
const maxVarIntBytes = 5

// WriteVarInt writes v to w using the protocol's variable-length encoding.
func WriteVarInt(w io.ByteWriter, v int32) error {
	u := uint32(v)
	for {
		b := byte(u & 0x7f)
		u >>= 7
		if u != 0 {
			b |= 0x80
		}
		if err := w.WriteByte(b); err != nil {
			return fmt.Errorf("codec: write varint: %w", err)
		}
		if u == 0 {
			return nil
		}
	}
}

// ReadVarInt reads a VarInt from r, returning the decoded value and the
// number of bytes consumed. It returns ErrVarIntTooBig if the
// maxVarIntBytes-th byte still has its continuation bit set.
func ReadVarInt(r io.ByteReader) (int32, int, error) {
	var val int32
	for i := 0; i < maxVarIntBytes; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, 0, fmt.Errorf("codec: read varint: %w", err)
		}
		val |= int32(b&0x7f) << (7 * i)
		if b&0x80 == 0 {
			return val, i + 1, nil
		}
	}
	return 0, 0, ErrVarIntTooBig
}

// VarIntSize reports how many bytes WriteVarInt would emit for v, without
// allocating — used to size length-prefixed packet buffers up front.
func VarIntSize(v int32) int {
	u := uint32(v)
	n := 1
	for u >= 0x80 {
		u >>= 7
		n++
	}
	return n
}

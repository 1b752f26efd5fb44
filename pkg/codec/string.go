package codec

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"
)

// MaxStringLength is the largest byte length a protocol string may declare.
// Minecraft's own protocol caps strings at 32767 UTF-8 bytes; shardkeeper
// enforces the same bound so a corrupt or hostile length prefix can never
// trigger an unbounded allocation.
const MaxStringLength = 32767

// WriteString writes s as a VarInt byte-length prefix followed by its raw
// UTF-8 bytes.
func WriteString(w *bufio.Writer, s string) error {
	if len(s) > MaxStringLength {
		return fmt.Errorf("codec: write string: %d bytes exceeds max %d: %w", len(s), MaxStringLength, ErrStringTooLong)
	}
	if err := WriteVarInt(w, int32(len(s))); err != nil {
		return err
	}
	if _, err := w.WriteString(s); err != nil {
		return fmt.Errorf("codec: write string: %w", err)
	}
	return nil
}

// ReadString reads a VarInt byte-length prefix followed by that many bytes,
// returning them as a string. A body that is not valid UTF-8 is an error.
func ReadString(r *bufio.Reader) (string, error) {
	n, _, err := ReadVarInt(r)
	if err != nil {
		return "", fmt.Errorf("codec: read string length: %w", err)
	}
	if n < 0 || n > MaxStringLength {
		return "", fmt.Errorf("codec: read string: declared length %d exceeds max %d: %w", n, MaxStringLength, ErrStringTooLong)
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("codec: read string body: %w", err)
	}
	if !utf8.Valid(buf) {
		return "", fmt.Errorf("codec: read string body: %d bytes are not valid UTF-8", n)
	}
	return string(buf), nil
}

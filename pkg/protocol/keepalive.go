package protocol

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// KeepAlive carries an opaque 64-bit id the server generates and expects
// the client to echo back within the session's keep-alive timeout (see
// pkg/net). The same struct serves both directions: the clientbound ping
// and the serverbound echo have identical wire shape.
type KeepAlive struct {
	ID int64
}

func (p *KeepAlive) ID() int32 { return 0x00 }

func (p *KeepAlive) Encode(w *bufio.Writer) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(p.ID))
	if _, err := w.Write(buf[:]); err != nil {
		return fmt.Errorf("protocol: encode keepalive: %w", err)
	}
	return nil
}

// DecodeKeepAlive reads the echoed 64-bit id back from the client.
func DecodeKeepAlive(r *bufio.Reader) (Packet, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, fmt.Errorf("protocol: decode keepalive: %w", err)
	}
	return &KeepAlive{ID: int64(binary.BigEndian.Uint64(buf[:]))}, nil
}

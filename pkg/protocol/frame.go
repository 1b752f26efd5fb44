package protocol

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/shardkeeper/shardkeeper/pkg/codec"
)

// WriteFrame writes p to w with the standard framing: a VarInt length
// prefix covering the packet id and body, followed by the id (as a
// VarInt) and the body itself. p.Encode is run against a scratch buffer
// first so the length prefix can be computed before anything touches the
// wire.
func WriteFrame(w *bufio.Writer, p Packet) error {
	var body bytes.Buffer
	bw := bufio.NewWriter(&body)
	if err := codec.WriteVarInt(bw, p.ID()); err != nil {
		return err
	}
	if err := p.Encode(bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("protocol: flush packet body: %w", err)
	}

	if err := codec.WriteVarInt(w, int32(body.Len())); err != nil {
		return err
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		return fmt.Errorf("protocol: write packet frame: %w", err)
	}
	return w.Flush()
}

// ReadFrame reads one length-prefixed packet frame from r, resolves its id
// against reg for the given state and direction, and decodes it.
func ReadFrame(r *bufio.Reader, state ConnState, dir Direction, reg *Registry) (Packet, error) {
	length, _, err := codec.ReadVarInt(r)
	if err != nil {
		return nil, fmt.Errorf("protocol: read frame length: %w", err)
	}
	if length < 0 {
		return nil, fmt.Errorf("protocol: negative frame length %d", length)
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("protocol: read frame body: %w", err)
	}

	br := bufio.NewReader(bytes.NewReader(body))
	id, _, err := codec.ReadVarInt(br)
	if err != nil {
		return nil, fmt.Errorf("protocol: read frame packet id: %w", err)
	}

	dec, err := reg.Decoder(state, dir, id)
	if err != nil {
		return nil, err
	}
	return dec(br)
}

package protocol

import (
	"bufio"
	"fmt"

	"github.com/shardkeeper/shardkeeper/pkg/codec"
)

// Handshake is the first packet any connection sends. NextState tells the
// server which state machine branch (Status or Login) to move the
// connection into.
type Handshake struct {
	ProtocolVersion int32
	ServerAddress   string
	ServerPort      uint16
	NextState       int32
}

func (h *Handshake) ID() int32 { return 0x00 }

func (h *Handshake) Encode(w *bufio.Writer) error {
	if err := codec.WriteVarInt(w, h.ProtocolVersion); err != nil {
		return err
	}
	if err := codec.WriteString(w, h.ServerAddress); err != nil {
		return err
	}
	if err := w.WriteByte(byte(h.ServerPort >> 8)); err != nil {
		return fmt.Errorf("protocol: encode handshake port: %w", err)
	}
	if err := w.WriteByte(byte(h.ServerPort)); err != nil {
		return fmt.Errorf("protocol: encode handshake port: %w", err)
	}
	return codec.WriteVarInt(w, h.NextState)
}

// DecodeHandshake reads protocol_version, server_address, server_port and
// next_state, in that field order, matching the wire layout a real
// Minecraft client sends.
func DecodeHandshake(r *bufio.Reader) (Packet, error) {
	protocolVersion, _, err := codec.ReadVarInt(r)
	if err != nil {
		return nil, fmt.Errorf("protocol: decode handshake: %w", err)
	}
	addr, err := codec.ReadString(r)
	if err != nil {
		return nil, fmt.Errorf("protocol: decode handshake: %w", err)
	}
	hi, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("protocol: decode handshake port: %w", err)
	}
	lo, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("protocol: decode handshake port: %w", err)
	}
	nextState, _, err := codec.ReadVarInt(r)
	if err != nil {
		return nil, fmt.Errorf("protocol: decode handshake next_state: %w", err)
	}
	return &Handshake{
		ProtocolVersion: protocolVersion,
		ServerAddress:   addr,
		ServerPort:      uint16(hi)<<8 | uint16(lo),
		NextState:       nextState,
	}, nil
}

package protocol

import (
	"bufio"
	"fmt"

	"github.com/google/uuid"

	"github.com/shardkeeper/shardkeeper/pkg/codec"
)

// LoginStart is sent by the client once it enters the Login state,
// declaring the player name it wishes to join as.
type LoginStart struct {
	Name string
}

func (p *LoginStart) ID() int32 { return 0x00 }

func (p *LoginStart) Encode(w *bufio.Writer) error {
	return codec.WriteString(w, p.Name)
}

// DecodeLoginStart decodes just the player name field; shardkeeper does not
// implement the player-UUID or signature-data fields newer protocol
// versions add to this packet, since it never performs Mojang session
// verification (see pkg/auth).
func DecodeLoginStart(r *bufio.Reader) (Packet, error) {
	name, err := codec.ReadString(r)
	if err != nil {
		return nil, fmt.Errorf("protocol: decode login start: %w", err)
	}
	return &LoginStart{Name: name}, nil
}

// LoginSuccess moves the connection into the Play state. PropertyCount is
// always written as zero: shardkeeper does not implement Mojang skin/cape
// properties.
type LoginSuccess struct {
	UUID     uuid.UUID
	Username string
}

func (p *LoginSuccess) ID() int32 { return 0x02 }

func (p *LoginSuccess) Encode(w *bufio.Writer) error {
	raw, err := p.UUID.MarshalBinary()
	if err != nil {
		return fmt.Errorf("protocol: encode login success uuid: %w", err)
	}
	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("protocol: encode login success uuid: %w", err)
	}
	if err := codec.WriteString(w, p.Username); err != nil {
		return err
	}
	return codec.WriteVarInt(w, 0) // property_count
}

package protocol

import (
	"fmt"
	"sync"
)

// registryKey identifies one decodable packet shape.
type registryKey struct {
	state     ConnState
	direction Direction
	id        int32
}

// Registry resolves a (ConnState, Direction, id) triple to the Decoder
// that knows how to read that packet's body off the wire. It is built once
// at startup via NewRegistry and is read-only thereafter, but guards its
// map with a mutex anyway since pkg/net's session goroutines all share one
// Registry instance and Go's race detector does not know a map is
// read-only just because nothing in the code happens to mutate it after
// init.
type Registry struct {
	mu    sync.RWMutex
	table map[registryKey]Decoder
}

// NewRegistry returns a Registry pre-populated with every packet
// shardkeeper knows how to decode.
func NewRegistry() *Registry {
	r := &Registry{table: make(map[registryKey]Decoder)}
	r.Register(StateHandshake, Serverbound, 0x00, DecodeHandshake)
	r.Register(StateLogin, Serverbound, 0x00, DecodeLoginStart)
	r.Register(StatePlay, Serverbound, 0x00, DecodeKeepAlive)
	return r
}

// Register adds or overwrites the decoder for one (state, direction, id)
// triple.
func (r *Registry) Register(state ConnState, dir Direction, id int32, dec Decoder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.table[registryKey{state, dir, id}] = dec
}

// Decoder looks up the decoder for one (state, direction, id) triple.
func (r *Registry) Decoder(state ConnState, dir Direction, id int32) (Decoder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dec, ok := r.table[registryKey{state, dir, id}]
	if !ok {
		return nil, fmt.Errorf("protocol: no decoder registered for state=%d direction=%d id=0x%02x", state, dir, id)
	}
	return dec, nil
}

package world

// ChunkPos identifies a 16x16 column of blocks by chunk coordinates (block
// coordinates divided by 16, floored).
type ChunkPos struct {
	X, Z int32
}

// ChunkProvider answers whether a chunk is available for a connection to
// be sent. shardkeeper ships only AirProvider; a real implementation would
// read region files or generate terrain on demand.
type ChunkProvider interface {
	// Loaded reports whether the chunk at pos is available. AirProvider
	// always returns true: every chunk exists, and is empty.
	Loaded(pos ChunkPos) bool
}

// AirProvider is a ChunkProvider that treats the entire world as loaded and
// empty. It exists so pkg/net has something to depend on
// without pulling in a real terrain format; it does not model blocks,
// biomes, or persistence.
type AirProvider struct{}

// NewAirProvider returns a ChunkProvider with no backing storage.
func NewAirProvider() *AirProvider { return &AirProvider{} }

func (AirProvider) Loaded(ChunkPos) bool { return true }

/*
Package world defines the boundary between shardkeeper's entity simulation
and chunk/terrain data, without implementing real terrain generation or
persistence. ChunkProvider is the seam a future Anvil-format reader or a
procedural generator would implement; AirProvider, the only implementation
shipped here, reports every chunk as loaded and entirely empty. Terrain
content is explicitly out of scope (see the non-goals this module exists
to satisfy).
*/
package world

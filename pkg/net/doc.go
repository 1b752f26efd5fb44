/*
Package net turns raw TCP connections into ecs.Entity values. A Server
tracks accepted connections as a map of live sessions guarded by a
mutex, mutated only through Server's own methods.

# Session lifecycle

Each accepted connection runs its own goroutine through a fixed state
machine: Handshake, then either Status (unimplemented beyond connection
close) or Login, then Play. Reaching Play creates one entity carrying
Position, Health and PlayerIdentity components and hands it to the shared
game.World; leaving Play (disconnect, keep-alive timeout) destroys that
entity and removes the session.

# Keep-alive

Once in Play, Server sends a KeepAlive packet on a fixed interval and
expects the same id echoed back within a timeout; missing one closes
the connection and increments metrics.KeepAliveTimeoutsTotal.
*/
package net

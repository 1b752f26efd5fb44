/*
Package game is shardkeeper's tick loop: the thing that actually calls into
pkg/ecs on a schedule. It owns the Registry and Storage for one running
server, declares the four world components (Position, Velocity, Health,
PlayerIdentity), and runs a fixed list of systems once per tick, in
registration order, on every ticker fire.

# Components

Position, Velocity and Health are plain value types. PlayerIdentity carries
a player's UUID and username and is attached to an entity once pkg/net
completes that connection's login handshake.

# Systems

A System is a function that runs one pass of game logic using a *World.
On every ticker fire, World's tick loop runs every registered system in
registration order, then advances the tick counter. Systems build their own pkg/ecs queries against
World's Registry and Storage; game does not wrap querying in any further
abstraction.
*/
package game

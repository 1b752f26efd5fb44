/*
Package playerdata is shardkeeper's persistent store for data that must
survive a server restart: player profiles, the ban list, and the
whitelist. It is deliberately the only persistent state in the server —
the entity-component world itself (pkg/ecs) is in-memory only and is
rebuilt fresh on every process start, per this project's explicit
non-goal of world/entity persistence.

# Storage

playerdata is a bucket-per-concern BoltDB store (an embedded,
single-writer/many-reader key-value engine): one bucket for profiles keyed
by player UUID, one for the ban list keyed by UUID, one for the whitelist
keyed by UUID. Profile and ban values are JSON-marshaled Go structs; a
whitelist entry's value is a single marker byte.
*/
package playerdata

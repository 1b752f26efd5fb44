/*
Package protocol implements the subset of the Minecraft Java Edition packet
protocol shardkeeper needs to accept a connection, carry it through login,
and keep it alive once in the play state: Handshake, login start/success,
and keep-alive. There are no status-ping packets.

# Packet lifecycle

A connection moves through a fixed sequence of ConnState values
(Handshake -> Status|Login -> Play), and the packet ID space is reused
across states — id 0x00 means something different in Handshake than it
does in Play. Registry resolves a (ConnState, Direction, id) triple to a
constructor for the matching Packet, so pkg/net's session loop never
switches on raw bytes itself.

	┌──────────┐  next_state   ┌──────────┐  success   ┌──────┐
	│Handshake │ ────────────▶ │  Status  │            │ Play │
	└──────────┘       │       └──────────┘            └──────┘
	                   │                                   ▲
	                   │       ┌──────────┐  LoginSuccess   │
	                   └─────▶ │  Login   │ ────────────────┘
	                           └──────────┘

shardkeeper implements only as much of Login as is needed to reach Play;
the Status state has no packets here, and pkg/net closes a connection whose
handshake asks for it. World content generation is out of scope (see
pkg/world).
*/
package protocol

/*
Package codec implements the wire primitives shardkeeper's protocol packets
are built from: the Minecraft protocol's VarInt and length-prefixed string
encodings. Every packet field in pkg/protocol bottoms out in one of these
two codecs.

# VarInt

A VarInt is a variable-length encoding of a 32-bit signed integer: each byte
carries 7 data bits plus a continuation bit (the high bit), little-endian by
group, up to 5 bytes for a full 32-bit value. Negative values always encode
to the full 5 bytes, since they are treated as their unsigned 32-bit
two's-complement form.

	┌──────────┬──────────┬──────────┬──────────┬──────────┐
	│  byte 0  │  byte 1  │  byte 2  │  byte 3  │  byte 4   │
	│ 1xxxxxxx │ 1xxxxxxx │ 1xxxxxxx │ 1xxxxxxx │ 0xxxxxxx  │
	└──────────┴──────────┴──────────┴──────────┴──────────┘
	      7 low bits each, continuation bit set on all but the last byte

# Strings

A protocol string is a VarInt byte-length prefix followed by that many
UTF-8 bytes. There is no trailing NUL.
*/
package codec

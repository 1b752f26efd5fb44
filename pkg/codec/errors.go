package codec

import "errors"

// ErrVarIntTooBig is returned by ReadVarInt when a fifth continuation byte
// is still set, which would require more than 32 bits of value.
var ErrVarIntTooBig = errors.New("codec: varint is too big")

// ErrStringTooLong is returned by ReadString when the decoded byte length
// prefix exceeds MaxStringLength.
var ErrStringTooLong = errors.New("codec: string exceeds maximum protocol length")

package payload

import "errors"

var (
	ErrReservedByte = errors.New("payload contains a framing or line terminator byte")
	ErrUnencodable  = errors.New("checksum cannot be encoded without reserved bytes")
)

package payload

import "fmt"

func reserved(b byte) bool {
	return b == StartByte || b == EndByte || b == '\r' || b == '\n'
}

// checksumField splits sum into two bytes whose OR is sum, avoiding bytes
// the capture or Strip would alter.
func checksumField(sum byte) (byte, byte, bool) {
	if !reserved(sum) {
		return sum, sum, true
	}
	for a := 0; a < 256; a++ {
		if reserved(byte(a)) || byte(a)&^sum != 0 {
			continue
		}
		for b := 0; b < 256; b++ {
			if reserved(byte(b)) || byte(b)&^sum != 0 {
				continue
			}
			if byte(a)|byte(b) == sum {
				return byte(a), byte(b), true
			}
		}
	}
	return 0, 0, false
}

// EncodeFrame builds the wire form of a card read: start marker, payload,
// checksum field, CR LF and end marker.
func EncodeFrame(data [DataLen]byte) ([]byte, error) {
	for i, b := range data {
		if reserved(b) {
			return nil, fmt.Errorf("byte %d (0x%02x): %w", i, b, ErrReservedByte)
		}
	}
	sum := Checksum(data)
	c0, c1, ok := checksumField(sum)
	if !ok {
		return nil, fmt.Errorf("checksum 0x%02x: %w", sum, ErrUnencodable)
	}

	out := make([]byte, 0, FrameLen+1)
	out = append(out, StartByte)
	out = append(out, data[:]...)
	out = append(out, c0, c1, '\r', '\n', EndByte)
	return out, nil
}

// EncodeID encodes a card identifier of exactly DataLen characters.
func EncodeID(id string) ([]byte, error) {
	if len(id) != DataLen {
		return nil, fmt.Errorf("card id %q must be %d bytes", id, DataLen)
	}
	var data [DataLen]byte
	copy(data[:], id)
	return EncodeFrame(data)
}

// Corrupt rewrites the checksum field of an encoded frame with a value
// whose OR can never match the payload checksum. Frames shorter than the
// wire form are left untouched.
func Corrupt(wire []byte) {
	if len(wire) < FrameLen+1 {
		return
	}
	var data [DataLen]byte
	copy(data[:], wire[1:1+DataLen])
	sum := Checksum(data)

	v := ^sum
	for reserved(v) || v == sum {
		v++
	}
	wire[1+DataLen], wire[2+DataLen] = v, v
}

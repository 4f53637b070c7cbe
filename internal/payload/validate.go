package payload

import "bytes"

// Result is the outcome of checksum validation.
type Result struct {
	Valid    bool
	ID       string
	Computed byte
	Received byte
}

// Strip replaces line terminators with 0 in place.
func Strip(f *Frame) {
	for i := 0; i < FrameLen-1; i++ {
		if f[i] == '\r' || f[i] == '\n' {
			f[i] = 0
		}
	}
}

// Checksum packs the payload pairwise into nibble-combined bytes and XORs
// them together.
func Checksum(data [DataLen]byte) byte {
	var sum byte
	for k := 0; k < DataLen/2; k++ {
		sum ^= data[2*k]<<4 | data[2*k+1]
	}
	return sum
}

// Validate checks the checksum field of a stripped frame.
func Validate(f Frame) Result {
	var data [DataLen]byte
	copy(data[:], f[:DataLen])

	r := Result{
		Computed: Checksum(data),
		Received: f[DataLen] | f[DataLen+1],
	}
	r.Valid = r.Computed == r.Received
	if r.Valid {
		n := bytes.IndexByte(data[:], 0)
		if n < 0 {
			n = DataLen
		}
		r.ID = string(data[:n])
	}
	return r
}

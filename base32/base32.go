// Package base32 implements the unpadded RFC 4648 base32 codec used by the
// strkey text format. Unlike encoding/base32, Decode rejects non-canonical
// trailing padding bits, so every byte sequence has exactly one valid text
// form.
//
// The *Bytes variants avoid immutable string copies; they exist for seed
// text, which callers may want to scrub after use.
package base32

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

var decodeTable [256]byte

func init() {
	for i := range decodeTable {
		decodeTable[i] = 0xff
	}
	for i := 0; i < len(alphabet); i++ {
		decodeTable[alphabet[i]] = byte(i)
	}
}

// Encode returns the unpadded base32 text of b; 5 bits per symbol, msb
// first, the final group zero-filled.
func Encode(b []byte) string {
	return string(EncodeToBytes(b))
}

// EncodeToBytes is Encode returning a caller-owned byte buffer.
func EncodeToBytes(b []byte) []byte {
	out := make([]byte, 0, (len(b)*8+4)/5)

	var buffer uint
	var bits uint
	for _, c := range b {
		buffer = buffer<<8 | uint(c)
		bits += 8
		for bits >= 5 {
			bits -= 5
			out = append(out, alphabet[buffer>>bits&0x1f])
		}
	}

	if bits > 0 {
		out = append(out, alphabet[buffer<<(5-bits)&0x1f])
	}

	return out
}

// Decode is the inverse of Encode. It fails with InvalidEncodingError on
// characters outside the alphabet, on lengths no encoding can produce and
// on nonzero trailing padding bits.
func Decode(s string) ([]byte, error) {
	return DecodeBytes([]byte(s))
}

// DecodeBytes is Decode over a caller-owned byte buffer; the input is not
// retained.
func DecodeBytes(b []byte) ([]byte, error) {
	// lengths 1, 3 and 6 mod 8 leave 5 or more trailing bits, which no
	// encoding produces
	if len(b)*5%8 >= 5 {
		return nil, InvalidEncodingError.Newf("impossible text length=%d", len(b))
	}

	out := make([]byte, 0, len(b)*5/8)

	var buffer uint
	var bits uint
	for i := 0; i < len(b); i++ {
		c := decodeTable[b[i]]
		if c == 0xff {
			return nil, InvalidEncodingError.Newf("invalid character %q at %d", b[i], i)
		}

		buffer = buffer<<5 | uint(c)
		bits += 5
		if bits >= 8 {
			bits -= 8
			out = append(out, byte(buffer>>bits&0xff))
		}
	}

	// trailing bits beyond the last full byte must be the zero fill of Encode
	if buffer&(1<<bits-1) != 0 {
		return nil, InvalidEncodingError.Newf("nonzero trailing padding bits")
	}

	return out, nil
}

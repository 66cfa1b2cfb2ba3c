// Package crc16 implements the CRC16-XMODEM checksum used by the strkey
// text format: polynomial 0x1021, zero initial register, no final xor.
package crc16

import "encoding/binary"

const polynomial uint16 = 0x1021

// Size is the byte length of an emitted checksum.
const Size = 2

// Checksum returns the CRC16-XMODEM checksum of b, little-endian encoded.
// Any input is valid, including empty.
func Checksum(b []byte) []byte {
	var crc uint16
	for _, c := range b {
		crc ^= uint16(c) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ polynomial
			} else {
				crc <<= 1
			}
		}
	}

	out := make([]byte, Size)
	binary.LittleEndian.PutUint16(out, crc)

	return out
}

// Validate checks expected against the checksum of b.
func Validate(b []byte, expected []byte) error {
	if len(expected) != Size {
		return ChecksumMismatchError.Newf("expected checksum length=%d", len(expected))
	}

	c := Checksum(b)
	if c[0] != expected[0] || c[1] != expected[1] {
		return ChecksumMismatchError.Newf(
			"computed=%02x%02x expected=%02x%02x",
			c[0], c[1], expected[0], expected[1],
		)
	}

	return nil
}

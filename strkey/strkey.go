// Package strkey implements the checksummed, versioned, base32 text
// representation of raw ledger keys and hashes. An encoded text is
//
//	base32( version_byte || payload || crc16_le(version_byte || payload) )
//
// uppercase and unpadded. The version byte values are fixed protocol
// constants; they must stay bit-for-bit compatible with every other
// implementation of the format.
package strkey

import (
	"encoding/binary"

	"github.com/spikeekips/strkey/base32"
	"github.com/spikeekips/strkey/crc16"
)

type VersionByte byte

const (
	// VersionByteAccountID marks an ed25519 public key; texts start with 'G'.
	VersionByteAccountID VersionByte = 6 << 3
	// VersionByteSeed marks an ed25519 private seed; texts start with 'S'.
	VersionByteSeed VersionByte = 18 << 3
	// VersionBytePreAuthTx marks a pre-authorized transaction hash; 'T'.
	VersionBytePreAuthTx VersionByte = 19 << 3
	// VersionByteHashX marks a SHA-256 hash; 'X'.
	VersionByteHashX VersionByte = 23 << 3
	// VersionByteMuxedAccount marks an ed25519 public key plus a 64bit id; 'M'.
	VersionByteMuxedAccount VersionByte = 12 << 3
	// VersionByteSignedPayload marks an ed25519 public key plus a payload; 'P'.
	VersionByteSignedPayload VersionByte = 15 << 3
)

const (
	// KeySize is the byte length of raw keys, seeds and hashes.
	KeySize = 32
	// MuxedSize is KeySize plus the big-endian 64bit multiplexing id.
	MuxedSize = KeySize + 8

	signedPayloadMinSize = KeySize + 4 + 4
	signedPayloadMaxSize = KeySize + 4 + 64
)

func (v VersionByte) String() string {
	switch v {
	case VersionByteAccountID:
		return "account-id"
	case VersionByteSeed:
		return "seed"
	case VersionBytePreAuthTx:
		return "pre-auth-tx"
	case VersionByteHashX:
		return "hash-x"
	case VersionByteMuxedAccount:
		return "muxed-account"
	case VersionByteSignedPayload:
		return "signed-payload"
	}

	return "unknown"
}

// checkPayload validates the payload length, and for signed payloads the
// inner structure, for the given kind.
func checkPayload(v VersionByte, payload []byte) error {
	switch v {
	case VersionByteAccountID, VersionByteSeed, VersionBytePreAuthTx, VersionByteHashX:
		if len(payload) != KeySize {
			return InvalidLengthError.Newf(
				"kind=%q expected=%d length=%d", v, KeySize, len(payload),
			)
		}
	case VersionByteMuxedAccount:
		if len(payload) != MuxedSize {
			return InvalidLengthError.Newf(
				"kind=%q expected=%d length=%d", v, MuxedSize, len(payload),
			)
		}
	case VersionByteSignedPayload:
		return checkSignedPayload(payload)
	default:
		return InvalidVersionByteError.Newf("kind=0x%02x", byte(v))
	}

	return nil
}

// A signed payload is key(32) || inner_length(4, big-endian) || inner
// zero-padded to a 4 byte boundary.
func checkSignedPayload(payload []byte) error {
	if len(payload) < signedPayloadMinSize || len(payload) > signedPayloadMaxSize {
		return InvalidLengthError.Newf(
			"signed payload; length=%d min=%d max=%d",
			len(payload), signedPayloadMinSize, signedPayloadMaxSize,
		)
	}

	inner := binary.BigEndian.Uint32(payload[KeySize : KeySize+4])
	padded := (inner + 3) &^ 3
	if inner < 1 || int(padded) != len(payload)-KeySize-4 {
		return InvalidLengthError.Newf(
			"signed payload; declared=%d length=%d", inner, len(payload),
		)
	}

	for _, c := range payload[KeySize+4+int(inner):] {
		if c != 0 {
			return InvalidLengthError.Newf("signed payload; nonzero padding")
		}
	}

	return nil
}

// Encode returns the text form of payload under the given kind. It fails
// with InvalidLengthError when the payload length does not fit the kind.
func Encode(v VersionByte, payload []byte) (string, error) {
	b, err := encodeToBytes(v, payload)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// MustEncode is Encode for payloads already known to fit the kind.
func MustEncode(v VersionByte, payload []byte) string {
	s, err := Encode(v, payload)
	if err != nil {
		panic(err)
	}

	return s
}

func encodeToBytes(v VersionByte, payload []byte) ([]byte, error) {
	if err := checkPayload(v, payload); err != nil {
		return nil, err
	}

	raw := make([]byte, 0, 1+len(payload)+crc16.Size)
	raw = append(raw, byte(v))
	raw = append(raw, payload...)
	raw = append(raw, crc16.Checksum(raw)...)

	out := base32.EncodeToBytes(raw)
	scrub(raw)

	return out, nil
}

// Decode returns the payload of s, which must be of the expected kind. It
// fails with base32.InvalidEncodingError, InvalidLengthError,
// InvalidChecksumError or InvalidVersionByteError; nothing is returned
// partially.
func Decode(expected VersionByte, s string) ([]byte, error) {
	return decodeBytes(expected, []byte(s))
}

func decodeBytes(expected VersionByte, text []byte) ([]byte, error) {
	raw, err := base32.DecodeBytes(text)
	if err != nil {
		return nil, err
	}
	defer scrub(raw)

	if err := checkDecodedLength(expected, len(raw)); err != nil {
		return nil, err
	}

	data := raw[:len(raw)-crc16.Size]
	checksum := raw[len(raw)-crc16.Size:]
	if err := crc16.Validate(data, checksum); err != nil {
		return nil, InvalidChecksumError.New(err)
	}

	if VersionByte(raw[0]) != expected {
		return nil, InvalidVersionByteError.Newf(
			"expected=%q decoded=0x%02x", expected, raw[0],
		)
	}

	payload := data[1:]
	if err := checkPayload(expected, payload); err != nil {
		return nil, err
	}

	out := make([]byte, len(payload))
	copy(out, payload)

	return out, nil
}

func checkDecodedLength(expected VersionByte, n int) error {
	payload := n - 1 - crc16.Size
	switch expected {
	case VersionByteSignedPayload:
		if payload < signedPayloadMinSize || payload > signedPayloadMaxSize {
			return InvalidLengthError.Newf("decoded length=%d", n)
		}
	default:
		size := KeySize
		if expected == VersionByteMuxedAccount {
			size = MuxedSize
		}
		if payload != size {
			return InvalidLengthError.Newf(
				"kind=%q decoded length=%d expected=%d", expected, n, 1+size+crc16.Size,
			)
		}
	}

	return nil
}

// IsValid reports whether s decodes under the expected kind; it never
// fails.
func IsValid(expected VersionByte, s string) bool {
	_, err := Decode(expected, s)
	return err == nil
}

func scrub(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

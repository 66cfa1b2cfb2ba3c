package strkey

import "github.com/spikeekips/strkey/base32"

// Convenience surface for the common kinds. The secret seed variants
// operate on rune buffers instead of strings so callers can zero the text
// after use; every internal scratch buffer is zeroed before return and
// nothing is retained.

func EncodeEd25519PublicKey(b []byte) (string, error) {
	return Encode(VersionByteAccountID, b)
}

func DecodeEd25519PublicKey(s string) ([]byte, error) {
	return Decode(VersionByteAccountID, s)
}

func IsValidEd25519PublicKey(s string) bool {
	return IsValid(VersionByteAccountID, s)
}

// EncodeEd25519SecretSeed returns the seed text as a fresh rune buffer the
// caller owns; the caller should scrub it after use.
func EncodeEd25519SecretSeed(seed []byte) ([]rune, error) {
	b, err := encodeToBytes(VersionByteSeed, seed)
	if err != nil {
		return nil, err
	}

	out := make([]rune, len(b))
	for i, c := range b {
		out[i] = rune(c)
	}
	scrub(b)

	return out, nil
}

// DecodeEd25519SecretSeed returns the raw 32 byte seed; the caller owns it
// and is responsible for zeroing it after consumption. The input buffer is
// left untouched for the caller to scrub.
func DecodeEd25519SecretSeed(seed []rune) ([]byte, error) {
	text := make([]byte, len(seed))
	for i, r := range seed {
		if r > 0xff {
			scrub(text)
			// out-of-range runes cannot be part of the alphabet
			return nil, base32.InvalidEncodingError.Newf("seed text; invalid character at %d", i)
		}
		text[i] = byte(r)
	}

	raw, err := decodeBytes(VersionByteSeed, text)
	scrub(text)

	return raw, err
}

func IsValidEd25519SecretSeed(seed []rune) bool {
	raw, err := DecodeEd25519SecretSeed(seed)
	if err != nil {
		return false
	}
	scrub(raw)

	return true
}

func EncodePreAuthTx(b []byte) (string, error) {
	return Encode(VersionBytePreAuthTx, b)
}

func DecodePreAuthTx(s string) ([]byte, error) {
	return Decode(VersionBytePreAuthTx, s)
}

func EncodeSha256Hash(b []byte) (string, error) {
	return Encode(VersionByteHashX, b)
}

func DecodeSha256Hash(s string) ([]byte, error) {
	return Decode(VersionByteHashX, s)
}

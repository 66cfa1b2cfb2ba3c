package keypair

import "github.com/btcsuite/btcutil/base58"

const (
	// SeedSize is the byte length of a raw ed25519 signing seed.
	SeedSize = 32
	// PublicKeySize is the byte length of a raw ed25519 public key.
	PublicKeySize = 32
	// SignatureSize is the byte length of an ed25519 signature.
	SignatureSize = 64
)

// Provider is the ed25519 capability a KeyPair delegates to. Any
// implementation must follow RFC 8032 semantics; the backing can be
// software or hardware.
type Provider interface {
	Name() string
	GeneratePrivateKey() ([]byte, error)
	DerivePublicKey(privateKey []byte) ([]byte, error)
	Sign(data []byte, privateKey []byte) (Signature, error)
	// Verify never fails; malformed input is a verification failure.
	Verify(data []byte, sig Signature, publicKey []byte) bool
}

type Signature []byte

func (s Signature) String() string {
	return base58.Encode(s)
}

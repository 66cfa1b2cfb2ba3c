package keypair

import (
	"crypto/rand"

	"golang.org/x/crypto/ed25519"
)

// Native is the software Provider over golang.org/x/crypto/ed25519.
type Native struct {
}

func NewNative() Native {
	return Native{}
}

func (n Native) Name() string {
	return "native"
}

func (n Native) GeneratePrivateKey() ([]byte, error) {
	seed := make([]byte, SeedSize)
	if _, err := rand.Read(seed); err != nil {
		return nil, err
	}

	return seed, nil
}

func (n Native) DerivePublicKey(privateKey []byte) ([]byte, error) {
	if len(privateKey) != SeedSize {
		return nil, InvalidLengthError.Newf("seed; length=%d", len(privateKey))
	}

	private := ed25519.NewKeyFromSeed(privateKey)
	public := make([]byte, PublicKeySize)
	copy(public, private[SeedSize:])
	scrub(private)

	return public, nil
}

func (n Native) Sign(data []byte, privateKey []byte) (Signature, error) {
	if len(privateKey) != SeedSize {
		return nil, InvalidLengthError.Newf("seed; length=%d", len(privateKey))
	}

	private := ed25519.NewKeyFromSeed(privateKey)
	sig := ed25519.Sign(private, data)
	scrub(private)

	return Signature(sig), nil
}

func (n Native) Verify(data []byte, sig Signature, publicKey []byte) bool {
	// ed25519.Verify panics on a wrong-sized public key
	if len(publicKey) != PublicKeySize || len(sig) != SignatureSize {
		return false
	}

	return ed25519.Verify(ed25519.PublicKey(publicKey), data, []byte(sig))
}

func scrub(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

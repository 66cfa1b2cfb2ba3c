// Package keypair provides the ed25519 identity entity of the ledger: a
// public key with an optional signing seed, addressed by its strkey
// account id. Cryptographic operations are delegated to a pluggable
// Provider; text representation to package strkey.
package keypair

import (
	"encoding/json"

	"github.com/spikeekips/strkey/common"
	"github.com/spikeekips/strkey/strkey"
)

// KeyPair is immutable after construction. Without a private key it can
// verify but not sign; the capability never changes afterwards.
type KeyPair struct {
	publicKey  [PublicKeySize]byte
	privateKey *[SeedSize]byte
	provider   Provider
}

func newKeyPair(provider Provider, publicKey []byte, privateKey []byte) (*KeyPair, error) {
	if len(publicKey) != PublicKeySize {
		return nil, InvalidLengthError.Newf("public key; length=%d", len(publicKey))
	}

	kp := &KeyPair{provider: provider}
	copy(kp.publicKey[:], publicKey)

	if privateKey != nil {
		if len(privateKey) != SeedSize {
			return nil, InvalidLengthError.Newf("seed; length=%d", len(privateKey))
		}

		kp.privateKey = new([SeedSize]byte)
		copy(kp.privateKey[:], privateKey)
	}

	return kp, nil
}

// FromAccountID constructs a verify-only KeyPair from an account id text.
func FromAccountID(accountID string) (*KeyPair, error) {
	provider, err := DefaultProviders.Default()
	if err != nil {
		return nil, err
	}

	publicKey, err := strkey.DecodeEd25519PublicKey(accountID)
	if err != nil {
		return nil, err
	}

	return newKeyPair(provider, publicKey, nil)
}

// FromPublicKey constructs a verify-only KeyPair from a raw 32 byte public
// key.
func FromPublicKey(publicKey []byte) (*KeyPair, error) {
	provider, err := DefaultProviders.Default()
	if err != nil {
		return nil, err
	}

	return newKeyPair(provider, publicKey, nil)
}

// FromRawSeed constructs a signing KeyPair from a raw 32 byte seed. The
// input buffer is not retained; the caller should scrub it afterwards.
func FromRawSeed(seed []byte) (*KeyPair, error) {
	provider, err := DefaultProviders.Default()
	if err != nil {
		return nil, err
	}

	return fromRawSeed(provider, seed)
}

func fromRawSeed(provider Provider, seed []byte) (*KeyPair, error) {
	if len(seed) != SeedSize {
		return nil, InvalidLengthError.Newf("seed; length=%d", len(seed))
	}

	publicKey, err := provider.DerivePublicKey(seed)
	if err != nil {
		return nil, err
	}

	return newKeyPair(provider, publicKey, seed)
}

// FromSecretSeed constructs a signing KeyPair from a seed text.
func FromSecretSeed(seed string) (*KeyPair, error) {
	return FromSecretSeedChars([]rune(seed))
}

// FromSecretSeedChars is FromSecretSeed over a mutable buffer; the caller
// keeps ownership and should scrub it after use.
func FromSecretSeedChars(seed []rune) (*KeyPair, error) {
	raw, err := strkey.DecodeEd25519SecretSeed(seed)
	if err != nil {
		return nil, err
	}
	defer scrub(raw)

	return FromRawSeed(raw)
}

// Random constructs a fresh signing KeyPair from the default provider's
// entropy.
func Random() (*KeyPair, error) {
	provider, err := DefaultProviders.Default()
	if err != nil {
		return nil, err
	}

	seed, err := provider.GeneratePrivateKey()
	if err != nil {
		return nil, err
	}
	defer scrub(seed)

	return fromRawSeed(provider, seed)
}

// CanSign reports whether the KeyPair holds a private key.
func (kp *KeyPair) CanSign() bool {
	return kp.privateKey != nil
}

// Sign fails with NotSigningCapableError on a verify-only KeyPair; the
// provider is not consulted in that case.
func (kp *KeyPair) Sign(data []byte) (Signature, error) {
	if kp.privateKey == nil {
		return nil, NotSigningCapableError
	}

	return kp.provider.Sign(data, kp.privateKey[:])
}

// Verify never fails; a malformed signature is simply not a valid
// signature.
func (kp *KeyPair) Verify(data []byte, sig Signature) bool {
	return kp.provider.Verify(data, sig, kp.publicKey[:])
}

// AccountID returns the strkey account id text of the public key.
func (kp *KeyPair) AccountID() string {
	return strkey.MustEncode(strkey.VersionByteAccountID, kp.publicKey[:])
}

// PublicKey returns a copy of the raw public key.
func (kp *KeyPair) PublicKey() []byte {
	b := make([]byte, PublicKeySize)
	copy(b, kp.publicKey[:])

	return b
}

// SecretSeed returns the seed text as a caller-owned rune buffer; ok is
// false for a verify-only KeyPair.
func (kp *KeyPair) SecretSeed() ([]rune, bool) {
	if kp.privateKey == nil {
		return nil, false
	}

	chars, err := strkey.EncodeEd25519SecretSeed(kp.privateKey[:])
	if err != nil {
		return nil, false
	}

	return chars, true
}

// Equal compares public keys only; holding a private key does not change
// identity.
func (kp *KeyPair) Equal(other *KeyPair) bool {
	if other == nil {
		return false
	}

	return kp.publicKey == other.publicKey
}

func (kp *KeyPair) String() string {
	return kp.AccountID()
}

func (kp *KeyPair) kind() string {
	if kp.CanSign() {
		return "private"
	}

	return "public"
}

func (kp *KeyPair) text() string {
	if kp.privateKey != nil {
		chars, _ := kp.SecretSeed()
		return string(chars)
	}

	return kp.AccountID()
}

func (kp *KeyPair) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"kind": kp.kind(),
		"key":  kp.text(),
	})
}

func (kp *KeyPair) UnmarshalJSON(b []byte) error {
	var m map[string]string
	if err := json.Unmarshal(b, &m); err != nil {
		return FailedToUnmarshalKeyPairError.New(err)
	}

	key, found := m["key"]
	if !found {
		return FailedToUnmarshalKeyPairError.Newf("missing key")
	}

	if err := kp.unmarshal(key); err != nil {
		return err
	}

	if kind, found := m["kind"]; found && kind != kp.kind() {
		return FailedToUnmarshalKeyPairError.Newf(
			"kind=%q does not match key kind=%q", kind, kp.kind(),
		)
	}

	return nil
}

func (kp *KeyPair) MarshalText() ([]byte, error) {
	return []byte(kp.text()), nil
}

func (kp *KeyPair) UnmarshalText(b []byte) error {
	return kp.unmarshal(string(b))
}

func (kp *KeyPair) MarshalBinary() ([]byte, error) {
	return common.AppendBinary([]byte(kp.text())), nil
}

func (kp *KeyPair) UnmarshalBinary(b []byte) error {
	e, o := common.ExtractBinary(b)
	if o < 0 {
		return FailedToUnmarshalKeyPairError.Newf("failed to parse key text")
	}

	return kp.unmarshal(string(e))
}

// Parse dispatches on the strkey kind of the text; seed texts produce
// signing KeyPairs, account ids verify-only ones.
func Parse(text string) (*KeyPair, error) {
	switch {
	case strkey.IsValid(strkey.VersionByteSeed, text):
		return FromSecretSeed(text)
	case strkey.IsValid(strkey.VersionByteAccountID, text):
		return FromAccountID(text)
	default:
		_, err := strkey.Decode(strkey.VersionByteAccountID, text)
		return nil, FailedToUnmarshalKeyPairError.New(err)
	}
}

func (kp *KeyPair) unmarshal(text string) error {
	parsed, err := Parse(text)
	if err != nil {
		return FailedToUnmarshalKeyPairError.New(err)
	}

	*kp = *parsed

	return nil
}

package keypair

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/btcsuite/btcutil/base58"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	"github.com/spikeekips/strkey/common"
	"github.com/spikeekips/strkey/strkey"
)

// fixtures cross-checked against the reference implementation
const (
	fixtureSeedText    = "SDJHRQF4GCMIIKAAAQ6IHY42X73FQFLHUULAPSKKD4DFDM7UXWWCRHBE"
	fixtureAccountText = "GCZHXL5HXQX5ABDM26LHYRCQZ5OJFHLOPLZX47WEBP3V2PF5AVFK2A5D"
	fixturePublicHex   = "b27bafa7bc2fd0046cd7967c4450cf5c929d6e7af37e7ec40bf75d3cbd054aad"
)

type testKeyPair struct {
	suite.Suite
}

func (t *testKeyPair) TestRandom() {
	kp, err := Random()
	t.NoError(err)
	t.True(kp.CanSign())

	other, err := Random()
	t.NoError(err)
	t.False(kp.Equal(other))
}

func (t *testKeyPair) TestFromAccountID() {
	kp, err := FromAccountID(fixtureAccountText)
	t.NoError(err)

	t.False(kp.CanSign())
	t.Equal(fixtureAccountText, kp.AccountID())

	expected, _ := hex.DecodeString(fixturePublicHex)
	t.Equal(expected, kp.PublicKey())

	_, ok := kp.SecretSeed()
	t.False(ok)
}

func (t *testKeyPair) TestFromAccountIDInvalid() {
	_, err := FromAccountID(fixtureSeedText)
	t.True(xerrors.Is(err, strkey.InvalidVersionByteError))
}

func (t *testKeyPair) TestFromPublicKey() {
	raw, _ := hex.DecodeString(fixturePublicHex)

	kp, err := FromPublicKey(raw)
	t.NoError(err)
	t.False(kp.CanSign())
	t.Equal(fixtureAccountText, kp.AccountID())

	for _, n := range []int{0, 31, 33} {
		_, err := FromPublicKey(common.RandomBytes(n))
		t.True(xerrors.Is(err, InvalidLengthError), "length=%d", n)
	}
}

func (t *testKeyPair) TestFromSecretSeed() {
	kp, err := FromSecretSeed(fixtureSeedText)
	t.NoError(err)

	t.True(kp.CanSign())
	t.Equal(fixtureAccountText, kp.AccountID())

	chars, ok := kp.SecretSeed()
	t.True(ok)
	t.Equal(fixtureSeedText, string(chars))
}

func (t *testKeyPair) TestFromSecretSeedChars() {
	chars := []rune(fixtureSeedText)

	kp, err := FromSecretSeedChars(chars)
	t.NoError(err)
	t.Equal(fixtureAccountText, kp.AccountID())

	// the caller scrubs its buffer; the KeyPair is unaffected
	for i := range chars {
		chars[i] = 0
	}

	seed, ok := kp.SecretSeed()
	t.True(ok)
	t.Equal(fixtureSeedText, string(seed))
}

func (t *testKeyPair) TestFromRawSeed() {
	kp, err := Random()
	t.NoError(err)

	chars, _ := kp.SecretSeed()
	raw, err := strkey.DecodeEd25519SecretSeed(chars)
	t.NoError(err)

	restored, err := FromRawSeed(raw)
	t.NoError(err)
	t.True(kp.Equal(restored))

	_, err = FromRawSeed(common.RandomBytes(16))
	t.True(xerrors.Is(err, InvalidLengthError))
}

func (t *testKeyPair) TestSignVerify() {
	kp, err := Random()
	t.NoError(err)

	data := []byte("source")
	sig, err := kp.Sign(data)
	t.NoError(err)
	t.Equal(SignatureSize, len(sig))

	t.True(kp.Verify(data, sig))

	{ // tampered input
		tampered := append([]byte{}, data...)
		tampered[0] ^= 0x01
		t.False(kp.Verify(tampered, sig))
	}

	{ // tampered signature
		tampered := append(Signature{}, sig...)
		tampered[0] ^= 0x01
		t.False(kp.Verify(data, tampered))
	}
}

func (t *testKeyPair) TestSignatureString() {
	kp, err := Random()
	t.NoError(err)

	sig, err := kp.Sign([]byte("source"))
	t.NoError(err)

	s := sig.String()
	t.NotEmpty(s)

	// base58 text round-trips to the raw signature
	t.Equal([]byte(sig), base58.Decode(s))
}

func (t *testKeyPair) TestVerifyNeverFails() {
	kp, err := Random()
	t.NoError(err)

	t.False(kp.Verify([]byte("source"), nil))
	t.False(kp.Verify([]byte("source"), Signature("short")))
	t.False(kp.Verify(nil, make(Signature, SignatureSize)))
}

func (t *testKeyPair) TestVerifyOnlyCanNotSign() {
	kp, err := FromAccountID(fixtureAccountText)
	t.NoError(err)

	_, err = kp.Sign([]byte("source"))
	t.True(xerrors.Is(err, NotSigningCapableError))
}

func (t *testKeyPair) TestVerifyOnlyStillVerifies() {
	signer, err := Random()
	t.NoError(err)

	data := []byte("source")
	sig, err := signer.Sign(data)
	t.NoError(err)

	verifier, err := FromPublicKey(signer.PublicKey())
	t.NoError(err)
	t.False(verifier.CanSign())
	t.True(verifier.Verify(data, sig))
}

func (t *testKeyPair) TestEqualIgnoresPrivateKey() {
	signer, err := FromSecretSeed(fixtureSeedText)
	t.NoError(err)

	verifier, err := FromAccountID(fixtureAccountText)
	t.NoError(err)

	t.True(signer.Equal(verifier))
	t.True(verifier.Equal(signer))
	t.False(signer.Equal(nil))
}

func (t *testKeyPair) TestString() {
	kp, err := FromSecretSeed(fixtureSeedText)
	t.NoError(err)

	// String never exposes the seed
	t.Equal(fixtureAccountText, kp.String())
}

func (t *testKeyPair) TestParse() {
	kp, err := Parse(fixtureSeedText)
	t.NoError(err)
	t.True(kp.CanSign())

	kp, err = Parse(fixtureAccountText)
	t.NoError(err)
	t.False(kp.CanSign())

	_, err = Parse("find me")
	t.True(xerrors.Is(err, FailedToUnmarshalKeyPairError))
}

func (t *testKeyPair) TestMarshalJSON() {
	{ // signing KeyPair round-trips with its seed
		kp, err := FromSecretSeed(fixtureSeedText)
		t.NoError(err)

		b, err := json.Marshal(kp)
		t.NoError(err)
		t.Contains(string(b), fixtureSeedText)

		var ukp KeyPair
		t.NoError(json.Unmarshal(b, &ukp))
		t.True(ukp.CanSign())
		t.True(kp.Equal(&ukp))
	}

	{ // verify-only round-trips with its account id
		kp, err := FromAccountID(fixtureAccountText)
		t.NoError(err)

		b, err := json.Marshal(kp)
		t.NoError(err)
		t.Contains(string(b), fixtureAccountText)

		var ukp KeyPair
		t.NoError(json.Unmarshal(b, &ukp))
		t.False(ukp.CanSign())
		t.True(kp.Equal(&ukp))
	}
}

func (t *testKeyPair) TestMarshalJSONKindMismatch() {
	var kp KeyPair
	err := json.Unmarshal(
		[]byte(`{"kind":"public","key":"`+fixtureSeedText+`"}`),
		&kp,
	)
	t.True(xerrors.Is(err, FailedToUnmarshalKeyPairError))
}

func (t *testKeyPair) TestMarshalText() {
	kp, err := Random()
	t.NoError(err)

	b, err := kp.MarshalText()
	t.NoError(err)

	var ukp KeyPair
	t.NoError(ukp.UnmarshalText(b))
	t.True(kp.Equal(&ukp))
	t.True(ukp.CanSign())
}

func (t *testKeyPair) TestMarshalBinary() {
	kp, err := FromAccountID(fixtureAccountText)
	t.NoError(err)

	b, err := kp.MarshalBinary()
	t.NoError(err)
	t.NotEmpty(b)

	var ukp KeyPair
	t.NoError(ukp.UnmarshalBinary(b))
	t.True(kp.Equal(&ukp))
	t.False(ukp.CanSign())

	err = ukp.UnmarshalBinary([]byte{0x01})
	t.True(xerrors.Is(err, FailedToUnmarshalKeyPairError))
}

func TestKeyPair(t *testing.T) {
	suite.Run(t, new(testKeyPair))
}

package keypair

import "github.com/spikeekips/strkey/common"

const (
	ProviderAlreadyRegisteredErrorCode common.ErrorCode = iota + 1
	ProviderNotRegisteredErrorCode
	InvalidLengthErrorCode
	NotSigningCapableErrorCode
	FailedToUnmarshalKeyPairErrorCode
)

var (
	ProviderAlreadyRegisteredError = common.NewError(
		"keypair",
		ProviderAlreadyRegisteredErrorCode,
		"Provider is already registered in Providers",
	)
	ProviderNotRegisteredError = common.NewError(
		"keypair",
		ProviderNotRegisteredErrorCode,
		"Provider is not registered in Providers",
	)
	InvalidLengthError = common.NewError(
		"keypair",
		InvalidLengthErrorCode,
		"invalid key length",
	)
	NotSigningCapableError = common.NewError(
		"keypair",
		NotSigningCapableErrorCode,
		"KeyPair holds no private key; it can not sign",
	)
	FailedToUnmarshalKeyPairError = common.NewError(
		"keypair",
		FailedToUnmarshalKeyPairErrorCode,
		"failed to unmarshal KeyPair",
	)
)

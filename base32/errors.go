package base32

import "github.com/spikeekips/strkey/common"

const (
	InvalidEncodingErrorCode common.ErrorCode = iota + 1
)

var (
	InvalidEncodingError = common.NewError(
		"base32",
		InvalidEncodingErrorCode,
		"invalid base32 encoding",
	)
)

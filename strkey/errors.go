package strkey

import "github.com/spikeekips/strkey/common"

const (
	InvalidLengthErrorCode common.ErrorCode = iota + 1
	InvalidChecksumErrorCode
	InvalidVersionByteErrorCode
)

var (
	InvalidLengthError = common.NewError(
		"strkey",
		InvalidLengthErrorCode,
		"invalid payload length",
	)
	InvalidChecksumError = common.NewError(
		"strkey",
		InvalidChecksumErrorCode,
		"invalid checksum",
	)
	InvalidVersionByteError = common.NewError(
		"strkey",
		InvalidVersionByteErrorCode,
		"invalid version byte",
	)
)

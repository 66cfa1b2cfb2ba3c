package crc16

import "github.com/spikeekips/strkey/common"

const (
	ChecksumMismatchErrorCode common.ErrorCode = iota + 1
)

var (
	ChecksumMismatchError = common.NewError(
		"crc16",
		ChecksumMismatchErrorCode,
		"checksum does not match",
	)
)

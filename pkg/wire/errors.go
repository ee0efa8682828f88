package wire

import "errors"

// Codec errors.
var (
	ErrTruncated          = errors.New("packet truncated")
	ErrUnsupportedVersion = errors.New("unsupported version")
	ErrInvalidTokenLength = errors.New("invalid token length")
	ErrInvalidType        = errors.New("invalid message type")
	ErrInvalidCode        = errors.New("code does not match message class")
	ErrMalformedOption    = errors.New("malformed option")
	ErrMalformed          = errors.New("malformed packet")
	ErrCapacityExceeded   = errors.New("capacity exceeded")
	ErrInvalidOptionOrder = errors.New("options not in ascending order")
	ErrOptionTooLarge     = errors.New("option delta or length too large")
	ErrBufferTooSmall     = errors.New("output buffer too small")
)

// Option value errors.
var (
	ErrIncompatibleOptionValue = errors.New("incompatible option value")
	ErrInvalidContentFormat    = errors.New("invalid content format")
	ErrInvalidObserve          = errors.New("invalid observe value")
	ErrPathTooLong             = errors.New("path too long")
)

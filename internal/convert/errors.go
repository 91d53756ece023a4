package convert

import "errors"

var (
	// ErrReadFailed indicates the source document could not be read.
	ErrReadFailed = errors.New("source read failed")
	// ErrWriteFailed indicates the wrapped page could not be written.
	ErrWriteFailed = errors.New("page write failed")
)

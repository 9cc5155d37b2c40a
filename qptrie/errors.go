package qptrie

import "errors"

var (
	// ErrNilValue is returned by Set when val is nil.
	ErrNilValue = errors.New("qptrie: value must not be nil")

	// ErrMisalignedValue is returned by Set when val's low two bits are not
	// zero: the caller has promised a word-aligned value reference and
	// broken that promise.
	ErrMisalignedValue = errors.New("qptrie: value is not word-aligned")
)

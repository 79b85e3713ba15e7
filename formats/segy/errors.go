// SPDX-License-Identifier: EPL-2.0

package segy

import "errors"

var (
	ErrEmptyStream        = errors.New("no traces to write")
	ErrTooManySamples     = errors.New("trace exceeds 65535 samples")
	ErrMismatchedLength   = errors.New("trace length differs from fixed-length file header")
	ErrIntervalOutOfRange = errors.New("sample interval does not fit in 16 bits of microseconds")
	ErrUnsupportedFormat  = errors.New("unsupported data sample format")
	ErrUnknownByteOrder   = errors.New("cannot determine byte order")
	ErrTruncated          = errors.New("truncated SEG-Y file")
)

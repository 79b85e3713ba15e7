// SPDX-License-Identifier: EPL-2.0

package sem2segy

import "errors"

var (
	ErrNoStations          = errors.New("last station is before the first station")
	ErrZeroSpacing         = errors.New("offset spacing must not be zero")
	ErrInvalidResampleRate = errors.New("resample rate must be positive")
	ErrTooFewOffsets       = errors.New("fewer offsets than stations")
	ErrNoOutputName        = errors.New("output name is empty")
	ErrUnknownType         = errors.New("unknown seismogram type")
	ErrUnknownComponent    = errors.New("unknown seismogram component")
	ErrUnknownEncoding     = errors.New("unknown sample encoding")
	ErrUnknownByteOrder    = errors.New("unknown byte order")
	ErrUnknownAudition     = errors.New("unknown audition format")
	ErrInvalidAuditionRate = errors.New("audition rate must be positive")
)

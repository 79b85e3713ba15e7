// SPDX-License-Identifier: EPL-2.0

package trace

import "errors"

var (
	ErrEmptyTrace    = errors.New("trace has no samples")
	ErrInvalidRate   = errors.New("sampling rate must be positive and finite")
	ErrUnknownMethod = errors.New("unknown resample method")
	ErrTraceTooShort = errors.New("trace too short for requested rate")
)

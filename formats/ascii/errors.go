// SPDX-License-Identifier: EPL-2.0

package ascii

import "errors"

var (
	ErrMalformedRow  = errors.New("malformed seismogram row")
	ErrTooFewSamples = errors.New("seismogram needs at least two samples with positive time")
)

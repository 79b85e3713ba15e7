// SPDX-License-Identifier: EPL-2.0

package plot

import "errors"

var (
	ErrEmptyStream = errors.New("no traces to plot")
	ErrNoFormat    = errors.New("output path has no file extension")
)

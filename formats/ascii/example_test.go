// SPDX-License-Identifier: EPL-2.0

package ascii_test

import (
	"fmt"
	"strings"

	"github.com/ik5/sem2segy/formats/ascii"
)

// Example_decoding demonstrates decoding a simulator seismogram.
func Example_decoding() {
	input := `
  -0.0010000E+00   0.0000000E+00
   0.0000000E+00   0.0000000E+00
   0.0010000E+00   1.0000000E-06
   0.0020000E+00   2.0000000E-06
   0.0030000E+00  -1.0000000E-06
   0.0040000E+00   0.0000000E+00
`

	tr, err := ascii.Decoder{}.Decode(strings.NewReader(input))
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	fmt.Printf("Samples: %d\n", tr.Len())
	fmt.Printf("Sample rate: %.1f Hz\n", tr.SampleRate)
	// Output:
	// Samples: 4
	// Sample rate: 1333.3 Hz
}

// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ik5/r128scan/formats/aiff"
)

// ExampleDecoder_Decode_errorHandling demonstrates proper error handling.
func ExampleDecoder_Decode_errorHandling() {
	decoder := aiff.Decoder{}

	_, err := decoder.Decode(bytes.NewReader([]byte("RIFF....WAVE")))
	if errors.Is(err, aiff.ErrNotAiffFile) {
		fmt.Println("Not a valid AIFF file")
	}
	// Output: Not a valid AIFF file
}

// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ik5/r128scan/formats/wav"
)

// Example_decoding demonstrates decoding a WAV file.
func Example_decoding() {
	// Create a sample WAV file
	samples := []int16{100, 200, 300, 400, 500, 600}
	wavData := new(bytes.Buffer)
	wav.WriteMultiWAV16(wavData, 48000, 2, samples)

	// Decode the WAV file
	decoder := wav.Decoder{}
	source, err := decoder.Decode(bytes.NewReader(wavData.Bytes()))
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	fmt.Printf("Sample rate: %d Hz\n", source.SampleRate())
	fmt.Printf("Channels: %d\n", source.Channels())
	fmt.Printf("Declared frames: %d\n", source.Frames())
	// Output:
	// Sample rate: 48000 Hz
	// Channels: 2
	// Declared frames: 3
}

// Example_errorNotWAV shows handling of invalid WAV files.
func Example_errorNotWAV() {
	_, err := wav.Decoder{}.Decode(bytes.NewReader([]byte("This is not a WAV file")))
	if errors.Is(err, wav.ErrNotWavFile) {
		fmt.Println("Error: not a WAV file")
	}
	// Output: Error: not a WAV file
}

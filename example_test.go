// SPDX-License-Identifier: EPL-2.0

package r128scan_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/r128scan"
	"github.com/ik5/r128scan/batch"
	"github.com/ik5/r128scan/formats/wav"
)

// Example_partialFailure shows that a missing file does not hide the others.
func Example_partialFailure() {
	dir, _ := os.MkdirTemp("", "r128scan-example")
	defer os.RemoveAll(dir)

	// one second of a full scale square-ish pattern
	samples := make([]int16, 44100)
	for i := range samples {
		if i%100 < 50 {
			samples[i] = 16384
		} else {
			samples[i] = -16384
		}
	}
	f, _ := os.Create(filepath.Join(dir, "tone.wav"))
	_ = wav.WriteWAV16(f, 44100, samples)
	f.Close()

	paths := []string{filepath.Join(dir, "tone.wav"), filepath.Join(dir, "missing.wav")}
	report, err := r128scan.Scan(paths, batch.Config{TagGain: true}, nil)
	if errors.Is(err, batch.ErrPartialFailure) {
		for _, t := range report.Tracks {
			fmt.Printf("%s measured=%v peak=%.2f\n", filepath.Base(t.Ref), t.Measured, t.Peak)
		}
	}
	// Output:
	// tone.wav measured=true peak=0.50
	// missing.wav measured=false peak=0.00
}

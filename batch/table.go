// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"math"

	"github.com/ik5/r128scan/ebur128"
)

// Unmeasured is the loudness of a slot no worker has filled in.
const Unmeasured = math.MaxFloat64

// Config is fixed for the duration of a batch.
type Config struct {
	CalculateRange bool
	TagGain        bool
	TruePeak       bool
	// Concurrency caps the number of workers. Zero or less uses one per CPU.
	Concurrency int
}

func (c Config) mode() ebur128.Mode {
	mode := ebur128.ModeI
	if c.CalculateRange {
		mode |= ebur128.ModeLRA
	}
	if c.TruePeak {
		mode |= ebur128.ModeTruePeak
	}
	return mode
}

// trackPeaks reports whether workers record a peak per track.
func (c Config) trackPeaks() bool {
	return c.TagGain || c.TruePeak
}

// Slot is the result of one track. Only the worker for its index writes it.
type Slot struct {
	Ref      string
	Loudness float64
	Peak     float64
	// Range is the loudness range in LU when CalculateRange is set.
	Range  float64
	Frames int64
	// UnderRead is set when Frames differs from the declared length.
	UnderRead bool

	// State is nil unless the track was measured.
	State *ebur128.State
	Err   error
}

// Measured reports whether the worker completed the track.
func (s Slot) Measured() bool { return s.State != nil }

// Table holds one slot per input track, in input order.
type Table []Slot

func newTable(refs []string) Table {
	table := make(Table, len(refs))
	for i, ref := range refs {
		table[i] = Slot{Ref: ref, Loudness: Unmeasured}
	}
	return table
}

// States returns the state of every slot in order, nil for failed tracks.
func (t Table) States() []*ebur128.State {
	states := make([]*ebur128.State, len(t))
	for i := range t {
		states[i] = t[i].State
	}
	return states
}

// Failed counts the slots left unmeasured.
func (t Table) Failed() int {
	n := 0
	for i := range t {
		if !t[i].Measured() {
			n++
		}
	}
	return n
}

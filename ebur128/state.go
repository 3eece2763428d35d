// SPDX-License-Identifier: EPL-2.0

package ebur128

import (
	"fmt"
	"math"
	"slices"

	"github.com/ik5/r128scan/utils"
)

// Mode selects what a State measures. Integrated loudness is always
// available; the other bits add bookkeeping.
type Mode int

const (
	ModeI Mode = 1 << iota
	ModeLRA
	ModeTruePeak

	modeAll = ModeI | ModeLRA | ModeTruePeak
)

const (
	MaxChannels   = 64
	MinSampleRate = 16
	MaxSampleRate = 2822400

	absoluteGate     = -70.0 // LUFS
	relativeGate     = -10.0 // LU, integrated loudness
	rangeGate        = -20.0 // LU, loudness range
	rangeLowPercent  = 0.10
	rangeHighPercent = 0.95

	gatingSubBlocks    = 4  // 400 ms
	shortTermSubBlocks = 30 // 3 s
	shortTermHop       = 10 // 1 s
	oversampling       = 4
)

// absoluteGateEnergy is the mean square energy at absoluteGate.
var absoluteGateEnergy = math.Pow(10, (absoluteGate+0.691)/10)

// State accumulates the loudness of one audio stream. A State is not safe for
// concurrent use.
type State struct {
	mode       Mode
	channels   int
	sampleRate int
	layout     []Channel

	filter       kWeighting
	delay        []filterState
	samples100ms int

	// sub-block in progress
	subEnergy float64
	subFill   int

	ring      [shortTermSubBlocks]float64 // energies of the latest sub-blocks
	subBlocks int                         // sub-blocks completed so far

	blocks    []float64 // gating block energies above the absolute gate
	shortTerm []float64 // short-term energies above the absolute gate

	samplePeak []float64
	truePeak   []float64
	history    [][3]float32 // last three samples per channel for oversampling
}

// New creates a State for interleaved audio with the given layout.
func New(channels, sampleRate int, mode Mode) (*State, error) {
	if channels < 1 || channels > MaxChannels {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}
	if sampleRate < MinSampleRate || sampleRate > MaxSampleRate {
		return nil, fmt.Errorf("%w: %d Hz", ErrInvalidSampleRate, sampleRate)
	}
	if mode&ModeI == 0 || mode&^modeAll != 0 {
		return nil, fmt.Errorf("%w: mode %#x", ErrInvalidMode, int(mode))
	}

	s := &State{
		mode:         mode,
		channels:     channels,
		sampleRate:   sampleRate,
		layout:       defaultLayout(channels),
		filter:       newKWeighting(sampleRate),
		delay:        make([]filterState, channels),
		samples100ms: (sampleRate + 5) / 10,
		samplePeak:   make([]float64, channels),
	}
	if mode&ModeTruePeak != 0 {
		s.truePeak = make([]float64, channels)
		s.history = make([][3]float32, channels)
	}
	return s, nil
}

// SetChannel assigns the role of the channel at index.
func (s *State) SetChannel(index int, ch Channel) error {
	if index < 0 || index >= s.channels {
		return fmt.Errorf("%w: %d of %d", ErrInvalidChannelIndex, index, s.channels)
	}
	s.layout[index] = ch
	return nil
}

// Channels returns a copy of the current layout.
func (s *State) Channels() []Channel {
	return slices.Clone(s.layout)
}

func (s *State) SampleRate() int { return s.sampleRate }
func (s *State) Mode() Mode      { return s.mode }

// AddFramesFloat feeds frames interleaved frames from samples. Nothing is
// consumed when an error is returned.
func (s *State) AddFramesFloat(samples []float32, frames int) error {
	if frames < 0 || frames*s.channels > len(samples) {
		return fmt.Errorf("%w: %d frames of %d channels in %d samples",
			ErrInvalidFrameCount, frames, s.channels, len(samples))
	}

	in := samples[:frames*s.channels]
	for i, v := range in {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return fmt.Errorf("%w: frame %d channel %d", ErrNonFiniteSample, i/s.channels, i%s.channels)
		}
	}

	weights := make([]float64, s.channels)
	for ch, role := range s.layout {
		weights[ch] = role.weight()
	}

	for f := range frames {
		frame := in[f*s.channels : (f+1)*s.channels]
		for ch, v := range frame {
			x := float64(v)
			s.samplePeak[ch] = max(s.samplePeak[ch], math.Abs(x))
			if s.truePeak != nil {
				s.trackTruePeak(ch, v)
			}

			y := s.delay[ch].process(&s.filter, x)
			if weights[ch] != 0 {
				s.subEnergy += weights[ch] * y * y
			}
		}

		s.subFill++
		if s.subFill == s.samples100ms {
			s.closeSubBlock()
		}
	}
	return nil
}

func (s *State) trackTruePeak(ch int, v float32) {
	h := &s.history[ch]
	p := float64(utils.InterpolatedPeak(h[0], h[1], h[2], v, oversampling))
	s.truePeak[ch] = max(s.truePeak[ch], p, math.Abs(float64(v)))
	h[0], h[1], h[2] = h[1], h[2], v
}

func (s *State) closeSubBlock() {
	s.ring[s.subBlocks%shortTermSubBlocks] = s.subEnergy
	s.subBlocks++
	s.subEnergy = 0
	s.subFill = 0

	if s.subBlocks >= gatingSubBlocks {
		if e := s.recentEnergy(gatingSubBlocks); e >= absoluteGateEnergy {
			s.blocks = append(s.blocks, e)
		}
	}

	if s.mode&ModeLRA != 0 && s.subBlocks >= shortTermSubBlocks &&
		(s.subBlocks-shortTermSubBlocks)%shortTermHop == 0 {
		if e := s.recentEnergy(shortTermSubBlocks); e >= absoluteGateEnergy {
			s.shortTerm = append(s.shortTerm, e)
		}
	}
}

// recentEnergy is the mean square over the latest n sub-blocks.
func (s *State) recentEnergy(n int) float64 {
	var sum float64
	for i := 1; i <= n; i++ {
		sum += s.ring[(s.subBlocks-i)%shortTermSubBlocks]
	}
	return sum / float64(n*s.samples100ms)
}

func energyToLoudness(e float64) float64 {
	return -0.691 + 10*math.Log10(e)
}

// gatedMean averages the energies at or above gate LU below their mean.
func gatedMean(energies []float64, gate float64) float64 {
	if len(energies) == 0 {
		return math.Inf(-1)
	}

	var sum float64
	for _, e := range energies {
		sum += e
	}
	threshold := sum / float64(len(energies)) * math.Pow(10, gate/10)

	sum = 0
	n := 0
	for _, e := range energies {
		if e >= threshold {
			sum += e
			n++
		}
	}
	if n == 0 {
		return math.Inf(-1)
	}
	return energyToLoudness(sum / float64(n))
}

// LoudnessGlobal returns the gated integrated loudness in LUFS, or -Inf
// when no block passed the gates.
func (s *State) LoudnessGlobal() float64 {
	return gatedMean(s.blocks, relativeGate)
}

// LoudnessGlobalMultiple returns the integrated loudness of all states
// measured as one programme. Nil states are skipped.
func LoudnessGlobalMultiple(states ...*State) float64 {
	var blocks []float64
	for _, s := range states {
		if s != nil {
			blocks = append(blocks, s.blocks...)
		}
	}
	return gatedMean(blocks, relativeGate)
}

// LoudnessRange returns the loudness range in LU. It needs ModeLRA.
func (s *State) LoudnessRange() (float64, error) {
	return LoudnessRangeMultiple(s)
}

// LoudnessRangeMultiple returns the loudness range of all states measured as
// one programme. Every non-nil state needs ModeLRA.
func LoudnessRangeMultiple(states ...*State) (float64, error) {
	var energies []float64
	for _, s := range states {
		if s == nil {
			continue
		}
		if s.mode&ModeLRA == 0 {
			return 0, fmt.Errorf("%w: loudness range", ErrInvalidMode)
		}
		energies = append(energies, s.shortTerm...)
	}
	if len(energies) == 0 {
		return 0, nil
	}

	var sum float64
	for _, e := range energies {
		sum += e
	}
	threshold := sum / float64(len(energies)) * math.Pow(10, rangeGate/10)

	gated := make([]float64, 0, len(energies))
	for _, e := range energies {
		if e >= threshold {
			gated = append(gated, e)
		}
	}
	if len(gated) == 0 {
		return 0, nil
	}
	slices.Sort(gated)

	last := float64(len(gated) - 1)
	low := gated[int(last*rangeLowPercent+0.5)]
	high := gated[int(last*rangeHighPercent+0.5)]
	return energyToLoudness(high) - energyToLoudness(low), nil
}

// SamplePeak returns the largest absolute sample seen on channel ch.
func (s *State) SamplePeak(ch int) (float64, error) {
	if ch < 0 || ch >= s.channels {
		return 0, fmt.Errorf("%w: %d of %d", ErrInvalidChannelIndex, ch, s.channels)
	}
	return s.samplePeak[ch], nil
}

// TruePeak returns the oversampled peak estimate of channel ch. It needs
// ModeTruePeak and is never below SamplePeak.
func (s *State) TruePeak(ch int) (float64, error) {
	if s.mode&ModeTruePeak == 0 {
		return 0, fmt.Errorf("%w: true peak", ErrInvalidMode)
	}
	if ch < 0 || ch >= s.channels {
		return 0, fmt.Errorf("%w: %d of %d", ErrInvalidChannelIndex, ch, s.channels)
	}
	return s.truePeak[ch], nil
}

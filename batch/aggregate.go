// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"fmt"
	"math"

	"github.com/ik5/r128scan/ebur128"
)

// ReferenceLevel is the ReplayGain target loudness in LUFS.
const ReferenceLevel = -18.0

// GainTuple is the ReplayGain data for one track.
type GainTuple struct {
	TrackGain float64 // dB
	TrackPeak float64
	AlbumGain float64 // dB
	AlbumPeak float64
}

// TrackReport is the caller-facing view of one slot.
type TrackReport struct {
	Ref       string
	Measured  bool
	Loudness  float64 // LUFS, Unmeasured when Measured is false
	Peak      float64
	Range     float64
	Frames    int64
	UnderRead bool
	Err       error

	// Gain is set when gain tagging was requested and every track was measured.
	Gain *GainTuple
}

// Report is the outcome of a batch.
type Report struct {
	Tracks []TrackReport

	// Complete is false when any track failed. The global figures below are
	// only meaningful when it is true.
	Complete bool
	Loudness float64 // LUFS
	Range    float64 // LU, with CalculateRange
	Peak     float64
	Failed   int
}

// Aggregate combines a finished table into a report. When a track failed
// the report still lists every track, but the global figures are left unset
// and the error wraps ErrPartialFailure.
func Aggregate(table Table, cfg Config) (*Report, error) {
	report := &Report{
		Tracks:   make([]TrackReport, len(table)),
		Loudness: Unmeasured,
		Failed:   table.Failed(),
	}
	for i, slot := range table {
		report.Tracks[i] = TrackReport{
			Ref:       slot.Ref,
			Measured:  slot.Measured(),
			Loudness:  slot.Loudness,
			Peak:      slot.Peak,
			Range:     slot.Range,
			Frames:    slot.Frames,
			UnderRead: slot.UnderRead,
			Err:       slot.Err,
		}
	}

	if report.Failed > 0 {
		return report, fmt.Errorf("%w: %d of %d tracks failed", ErrPartialFailure, report.Failed, len(table))
	}

	states := table.States()
	report.Complete = true
	report.Loudness = ebur128.LoudnessGlobalMultiple(states...)

	if cfg.CalculateRange {
		lra, err := ebur128.LoudnessRangeMultiple(states...)
		if err != nil {
			return report, fmt.Errorf("loudness range: %w", err)
		}
		report.Range = lra
	}

	loudness := make([]float64, len(table))
	peaks := make([]float64, len(table))
	for i, slot := range table {
		loudness[i] = slot.Loudness
		peaks[i] = slot.Peak
		report.Peak = max(report.Peak, slot.Peak)
	}

	if cfg.TagGain {
		for i, g := range computeGains(loudness, peaks, report.Loudness) {
			report.Tracks[i].Gain = &g
		}
	}

	return report, nil
}

// computeGains derives ReplayGain tuples from per-track loudness and peak and
// the combined loudness.
func computeGains(loudness, peaks []float64, global float64) []GainTuple {
	albumPeak := 0.0
	for _, p := range peaks {
		albumPeak = max(albumPeak, p)
	}

	gains := make([]GainTuple, len(loudness))
	for i := range loudness {
		gains[i] = GainTuple{
			TrackGain: ReferenceLevel - loudness[i],
			TrackPeak: peaks[i],
			AlbumGain: ReferenceLevel - global,
			AlbumPeak: albumPeak,
		}
	}
	return gains
}

// Analyze runs the batch and aggregates it.
func (a *Analyzer) Analyze(refs []string, cfg Config) (*Report, error) {
	table := a.RunBatch(refs, cfg)

	report, err := Aggregate(table, cfg)
	if err != nil {
		a.logger.Warn("batch incomplete", "failed", report.Failed, "tracks", len(refs), "error", err)
		return report, err
	}

	attrs := []any{"tracks", len(refs), "loudness", report.Loudness}
	if cfg.CalculateRange {
		attrs = append(attrs, "range", report.Range)
	}
	if math.IsInf(report.Loudness, -1) {
		a.logger.Warn("batch is silent", attrs...)
	} else {
		a.logger.Info("global loudness", attrs...)
	}
	return report, nil
}

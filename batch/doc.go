// SPDX-License-Identifier: EPL-2.0

// Package batch measures the loudness of a set of tracks in parallel and
// combines them into album figures.
//
// An Analyzer fans the tracks out over a fixed pool of workers. Each worker
// opens one track, streams it one second at a time into its own
// ebur128.State and writes the result into the slot reserved for that
// track. Slots are written by exactly one worker and read only after all
// workers are done, so the result table needs no locking.
//
//	a := batch.NewAnalyzer(formats.NewOpener(), logger)
//	report, err := a.Analyze(paths, batch.Config{TagGain: true})
//	if errors.Is(err, batch.ErrPartialFailure) {
//	    // report.Tracks still holds every track that was measured
//	}
//
// # Gains
//
// With TagGain each track gets a ReplayGain tuple: track gain and album gain
// relative to ReferenceLevel (-18 LUFS) plus track and album peak. Album
// loudness is gated over all tracks together, not averaged.
package batch

// SPDX-License-Identifier: EPL-2.0

// Package r128scan measures EBU R128 loudness of audio files and derives
// ReplayGain values from it.
//
// Every file is measured on its own worker, then all files are gated
// together to produce an album loudness. Gains are relative to -18 LUFS.
//
// # Supported Formats
//
// Files are picked by extension:
//   - WAV (8/16/24/32-bit PCM, WAVE_FORMAT_EXTENSIBLE layouts) via formats/wav
//   - AIFF via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - FLAC via formats/flac
//
// # Quick Start
//
//	report, err := r128scan.Scan([]string{"01.flac", "02.flac"},
//	    batch.Config{TagGain: true}, slog.Default())
//	if err != nil {
//	    // errors.Is(err, batch.ErrPartialFailure) still leaves
//	    // report.Tracks usable
//	}
//	for _, t := range report.Tracks {
//	    fmt.Println(t.Ref, t.Gain.TrackGain, t.Gain.AlbumGain)
//	}
//
// The batch package holds the scheduler and result types, ebur128 the
// loudness meter itself.
package r128scan

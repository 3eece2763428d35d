// SPDX-License-Identifier: EPL-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/ik5/r128scan/batch"
	"github.com/ik5/r128scan/internal/config"
	"github.com/ik5/r128scan/internal/logging"
)

func writeReport(stdout, stderr io.Writer, cfg *config.Config, report *batch.Report) error {
	format := cfg.Output
	if format == "auto" {
		format = "lines"
		if logging.IsTerminal(stdout) {
			format = "table"
		}
	}

	switch format {
	case "lines":
		return writeLines(stdout, stderr, cfg, report)
	case "table":
		_, err := fmt.Fprintln(stdout, reportTable(cfg, report))
		return err
	case "json":
		return writeJSON(stdout, cfg, report)
	default:
		return fmt.Errorf("output: unsupported value %q", cfg.Output)
	}
}

// writeLines keeps the classic layout: progress on stderr and, with gain
// tagging, one "track-gain track-peak album-gain album-peak" line per file on
// stdout.
func writeLines(stdout, stderr io.Writer, cfg *config.Config, report *batch.Report) error {
	for i, tr := range report.Tracks {
		if tr.Measured {
			fmt.Fprintf(stderr, "segment %d: %.2f LUFS\n", i+1, tr.Loudness)
		}
	}
	if !report.Complete {
		return nil
	}
	fmt.Fprintf(stderr, "global loudness: %.2f LUFS\n", report.Loudness)

	if !cfg.TagGain {
		return nil
	}
	for _, tr := range report.Tracks {
		g := tr.Gain
		if _, err := fmt.Fprintf(stdout, "%.8f %.8f %.8f %.8f\n",
			g.TrackGain, g.TrackPeak, g.AlbumGain, g.AlbumPeak); err != nil {
			return err
		}
	}
	return nil
}

func reportTable(cfg *config.Config, report *batch.Report) string {
	headers := []string{"#", "File", "Loudness (LUFS)"}
	aligns := []columnAlignment{alignRight, alignLeft, alignRight}
	if cfg.CalculateRange {
		headers = append(headers, "LRA (LU)")
		aligns = append(aligns, alignRight)
	}
	if cfg.TagGain || cfg.TruePeak {
		headers = append(headers, "Peak")
		aligns = append(aligns, alignRight)
	}
	if cfg.TagGain {
		headers = append(headers, "Track gain (dB)", "Album gain (dB)")
		aligns = append(aligns, alignRight, alignRight)
	}
	headers = append(headers, "Status")
	aligns = append(aligns, alignLeft)

	rows := make([][]string, 0, len(report.Tracks)+1)
	for i, tr := range report.Tracks {
		row := []string{strconv.Itoa(i + 1), tr.Ref, formatLoudness(tr.Measured, tr.Loudness)}
		if cfg.CalculateRange {
			row = append(row, formatValue(tr.Measured, tr.Range))
		}
		if cfg.TagGain || cfg.TruePeak {
			row = append(row, formatValue(tr.Measured, tr.Peak))
		}
		if cfg.TagGain {
			if tr.Gain != nil {
				row = append(row, formatGain(tr.Gain.TrackGain), formatGain(tr.Gain.AlbumGain))
			} else {
				row = append(row, "-", "-")
			}
		}
		row = append(row, trackStatus(tr))
		rows = append(rows, row)
	}

	album := []string{"", "album", formatLoudness(report.Complete, report.Loudness)}
	if cfg.CalculateRange {
		album = append(album, formatValue(report.Complete, report.Range))
	}
	if cfg.TagGain || cfg.TruePeak {
		album = append(album, formatValue(report.Complete, report.Peak))
	}
	if cfg.TagGain {
		album = append(album, "", formatValue(report.Complete, batch.ReferenceLevel-report.Loudness))
	}
	if report.Complete {
		album = append(album, "ok")
	} else {
		album = append(album, fmt.Sprintf("%d failed", report.Failed))
	}
	rows = append(rows, album)

	return renderTable(headers, rows, aligns)
}

func trackStatus(tr batch.TrackReport) string {
	switch {
	case !tr.Measured:
		return "failed: " + tr.Err.Error()
	case tr.UnderRead:
		return "ok (length mismatch)"
	default:
		return "ok"
	}
}

func formatLoudness(ok bool, v float64) string {
	if ok && math.IsInf(v, -1) {
		return "silent"
	}
	return formatValue(ok, v)
}

func formatValue(ok bool, v float64) string {
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatGain(v float64) string { return formatValue(true, v) }

type jsonGain struct {
	TrackGain *float64 `json:"track_gain"`
	TrackPeak float64  `json:"track_peak"`
	AlbumGain *float64 `json:"album_gain"`
	AlbumPeak float64  `json:"album_peak"`
}

type jsonTrack struct {
	File      string    `json:"file"`
	Measured  bool      `json:"measured"`
	Loudness  *float64  `json:"loudness,omitempty"`
	Range     *float64  `json:"range,omitempty"`
	Peak      *float64  `json:"peak,omitempty"`
	Frames    int64     `json:"frames"`
	UnderRead bool      `json:"under_read,omitempty"`
	Error     string    `json:"error,omitempty"`
	Gain      *jsonGain `json:"replaygain,omitempty"`
}

type jsonReport struct {
	Complete bool        `json:"complete"`
	Failed   int         `json:"failed"`
	Loudness *float64    `json:"loudness,omitempty"`
	Range    *float64    `json:"range,omitempty"`
	Peak     *float64    `json:"peak,omitempty"`
	Tracks   []jsonTrack `json:"tracks"`
}

// finite drops values JSON cannot carry, such as the -Inf loudness of
// silence.
func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

func writeJSON(w io.Writer, cfg *config.Config, report *batch.Report) error {
	out := jsonReport{
		Complete: report.Complete,
		Failed:   report.Failed,
		Tracks:   make([]jsonTrack, len(report.Tracks)),
	}
	if report.Complete {
		out.Loudness = finite(report.Loudness)
		if cfg.CalculateRange {
			out.Range = finite(report.Range)
		}
		if cfg.TagGain || cfg.TruePeak {
			out.Peak = finite(report.Peak)
		}
	}

	for i, tr := range report.Tracks {
		jt := jsonTrack{
			File:      tr.Ref,
			Measured:  tr.Measured,
			Frames:    tr.Frames,
			UnderRead: tr.UnderRead,
		}
		if tr.Measured {
			jt.Loudness = finite(tr.Loudness)
			if cfg.CalculateRange {
				jt.Range = finite(tr.Range)
			}
			if cfg.TagGain || cfg.TruePeak {
				jt.Peak = finite(tr.Peak)
			}
		}
		if tr.Err != nil {
			jt.Error = tr.Err.Error()
		}
		if g := tr.Gain; g != nil {
			jt.Gain = &jsonGain{
				TrackGain: finite(g.TrackGain),
				TrackPeak: g.TrackPeak,
				AlbumGain: finite(g.AlbumGain),
				AlbumPeak: g.AlbumPeak,
			}
		}
		out.Tracks[i] = jt
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

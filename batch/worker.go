// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/ik5/r128scan/audio"
	"github.com/ik5/r128scan/ebur128"
)

// maxBlockSamples bounds the one second block buffer: 64 channels at 192 kHz.
const maxBlockSamples = ebur128.MaxChannels * 192000

// Opener resolves a track reference to a decoded stream.
type Opener interface {
	Open(ref string) (audio.Source, error)
}

// Analyzer measures batches of tracks.
type Analyzer struct {
	opener          Opener
	logger          *slog.Logger
	maxBlockSamples int
}

// NewAnalyzer creates an analyzer reading tracks through opener. A nil
// logger discards all output.
func NewAnalyzer(opener Opener, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Analyzer{
		opener:          opener,
		logger:          logger,
		maxBlockSamples: maxBlockSamples,
	}
}

// process measures one track and stores the outcome in table[index]. It
// never returns an error: a failed track leaves its slot unmeasured with
// Err set.
func (a *Analyzer) process(index int, ref string, cfg Config, table Table) {
	slot := Slot{Ref: ref, Loudness: Unmeasured}
	defer func() { table[index] = slot }()

	log := a.logger.With("track", ref, "index", index)
	fail := func(kind, cause error, msg string) {
		slot = Slot{Ref: ref, Loudness: Unmeasured, Err: fmt.Errorf("%w: %w", kind, cause)}
		log.Error(msg, "error", cause)
	}

	src, err := a.opener.Open(ref)
	if err != nil {
		fail(ErrOpen, err, "could not open track")
		return
	}
	defer func() {
		if err := src.Close(); err != nil {
			log.Warn("could not close track", "error", err)
		}
	}()

	channels, rate := src.Channels(), src.SampleRate()

	st, err := ebur128.New(channels, rate, cfg.mode())
	if err != nil {
		fail(ErrInit, err, "could not initialize loudness state")
		return
	}
	for i, role := range ResolveChannelMap(channels, src.ChannelMap()) {
		if err := st.SetChannel(i, role); err != nil {
			fail(ErrInit, err, "could not apply channel map")
			return
		}
	}

	size := rate * channels
	if size > a.maxBlockSamples {
		fail(ErrAllocation, fmt.Errorf("%d samples per block", size), "could not allocate block buffer")
		return
	}
	buf := make([]float32, size)

	var (
		frames int64
		peak   float64
	)
	for {
		n, readErr := src.ReadSamples(buf)
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			fail(ErrRead, readErr, "could not read samples")
			return
		}
		if n == 0 {
			break
		}
		if n%channels != 0 {
			fail(ErrRead, fmt.Errorf("%w: %d samples for %d channels", ErrPartialFrame, n, channels), "could not read samples")
			return
		}

		block := buf[:n]
		if cfg.trackPeaks() {
			for _, v := range block {
				peak = max(peak, math.Abs(float64(v)))
			}
		}

		count := n / channels
		if err := st.AddFramesFloat(block, count); err != nil {
			fail(ErrFeed, err, "could not feed samples")
			return
		}
		frames += int64(count)

		if readErr != nil {
			break
		}
	}

	if declared := src.Frames(); declared >= 0 && declared != frames {
		slot.UnderRead = true
		log.Warn("could not read full file or determine right length",
			"declared", declared, "read", frames, "error", ErrUnderRead)
	}

	if cfg.TruePeak {
		for ch := range channels {
			tp, err := st.TruePeak(ch)
			if err != nil {
				fail(ErrFeed, err, "could not query true peak")
				return
			}
			peak = max(peak, tp)
		}
	}

	if cfg.CalculateRange {
		lra, err := st.LoudnessRange()
		if err != nil {
			fail(ErrFeed, err, "could not query loudness range")
			return
		}
		slot.Range = lra
	}

	slot.Loudness = st.LoudnessGlobal()
	slot.Peak = peak
	slot.Frames = frames
	slot.State = st

	if math.IsInf(slot.Loudness, -1) {
		log.Info("track measured", "silent", true, "peak", slot.Peak, "frames", frames)
		return
	}
	log.Info("track measured", "loudness", slot.Loudness, "peak", slot.Peak, "frames", frames)
}

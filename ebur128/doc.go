// SPDX-License-Identifier: EPL-2.0

// Package ebur128 measures loudness following EBU R128 and ITU-R BS.1770.
//
// A State is fed interleaved float32 frames and keeps the gating block
// energies of everything it has seen, so integrated loudness can be read at
// any point and several states can be combined into one programme:
//
//	st, err := ebur128.New(2, 48000, ebur128.ModeI|ebur128.ModeLRA)
//	if err != nil {
//	    return err
//	}
//	if err := st.AddFramesFloat(buf, frames); err != nil {
//	    return err
//	}
//	track := st.LoudnessGlobal()
//	album := ebur128.LoudnessGlobalMultiple(st, other)
//
// # Gating
//
// Audio is K-weighted and cut into 400 ms blocks overlapping by 75%. Blocks
// below -70 LUFS are dropped, then blocks more than 10 LU below the mean of
// the rest. Loudness range uses 3 s blocks taken every second, a -20 LU
// relative gate and the spread between the 10th and 95th percentiles.
//
// # Peaks
//
// Sample peak is always tracked. ModeTruePeak adds an estimate of the peak
// between samples using 4x cubic oversampling.
package ebur128

// SPDX-License-Identifier: EPL-2.0

// Package signal prepares decoded audio for geometry mapping.
//
// Preparation is a fixed three-step pass, in order:
//
//  1. Channel reduction: average to mono, keep the first channel, or
//     retain a (primary, depth) stereo pair.
//  2. Downsampling: point-sample every stride-th value, where
//     stride = floor(N/resolution) with a floor of 1. Requested
//     resolutions above the available sample count are clamped and
//     reported, not rejected.
//  3. Normalization (optional): per-channel rescale so the peak
//     absolute value is 1.0.
//
// Point-sampling is a deliberate simplification: no window averaging,
// no anti-alias filtering. The retained values are exact input
// samples, which keeps repeated runs byte-identical and the mapping
// from mesh vertex back to source sample trivial.
//
//	prep, err := signal.Prepare(buf, signal.Options{
//	    Resolution: 1000,
//	    Reduction:  signal.ReduceAverage,
//	    Normalize:  true,
//	})
//
// Prepare never mutates the input buffer; retained channels are fresh
// slices.
package signal

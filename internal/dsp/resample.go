// Package dsp holds the sample-rate conversion used by the resampler tool.
package dsp

import (
	"gonum.org/v1/gonum/interp"
)

// Resample converts a mono sample slice from srcRate to dstRate using
// natural cubic spline interpolation over a uniform time grid. Signals too
// short for a cubic fit fall back to linear interpolation.
func Resample(samples []float64, srcRate, dstRate int) []float64 {
	if srcRate == dstRate || len(samples) < 2 {
		out := make([]float64, len(samples))
		copy(out, samples)
		return out
	}

	n := len(samples)
	total := float64(n) / float64(srcRate)
	m := n * dstRate / srcRate

	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i) * total / float64(n-1)
	}

	var pred interp.Predictor
	if n >= 4 {
		var nc interp.NaturalCubic
		if err := nc.Fit(xs, samples); err != nil {
			pred = fitLinear(xs, samples)
		} else {
			pred = &nc
		}
	} else {
		pred = fitLinear(xs, samples)
	}

	out := make([]float64, m)
	for i := range out {
		var x float64
		if m > 1 {
			x = float64(i) * total / float64(m-1)
		}
		out[i] = pred.Predict(x)
	}
	return out
}

func fitLinear(xs, ys []float64) interp.Predictor {
	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		// Fit only fails on malformed grids, which ours never are.
		panic(err)
	}
	return &pl
}

// Deinterleave splits interleaved multi-channel samples into per-channel
// slices.
func Deinterleave(samples []float64, channels int) [][]float64 {
	if channels < 1 {
		channels = 1
	}
	frames := len(samples) / channels
	out := make([][]float64, channels)
	for ch := range out {
		out[ch] = make([]float64, frames)
		for i := 0; i < frames; i++ {
			out[ch][i] = samples[i*channels+ch]
		}
	}
	return out
}

// Interleave merges per-channel slices back into interleaved order. All
// channels are assumed to be the same length.
func Interleave(channels [][]float64) []float64 {
	if len(channels) == 0 {
		return nil
	}
	frames := len(channels[0])
	out := make([]float64, frames*len(channels))
	for i := 0; i < frames; i++ {
		for ch := range channels {
			out[i*len(channels)+ch] = channels[ch][i]
		}
	}
	return out
}

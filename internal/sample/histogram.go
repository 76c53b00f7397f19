package sample

import "math"

// Histogram bin counts. A 2-D hue/saturation histogram is compared
// instead of raw pixels; it is tolerant of small camera motion and noise.
const (
	HueBins = 50
	SatBins = 60
)

// Histogram is an L1-normalized hue/saturation histogram with
// HueBins*SatBins bins. It is the only descriptor retained per sample;
// raw pixel data is discarded as soon as the histogram is computed.
type Histogram []float64

// NewHistogram computes the descriptor for a raw RGB24 frame.
func NewHistogram(frame []byte) Histogram {
	h := make(Histogram, HueBins*SatBins)

	pixels := len(frame) / 3
	if pixels == 0 {
		return h
	}

	for i := 0; i < pixels*3; i += 3 {
		hue, sat := hueSat(frame[i], frame[i+1], frame[i+2])

		hBin := int(hue / 360 * HueBins)
		if hBin >= HueBins {
			hBin = HueBins - 1
		}
		sBin := int(sat * SatBins)
		if sBin >= SatBins {
			sBin = SatBins - 1
		}

		h[hBin*SatBins+sBin]++
	}

	total := float64(pixels)
	for i := range h {
		h[i] /= total
	}
	return h
}

// hueSat converts an RGB pixel to its hue (degrees, [0, 360)) and
// saturation ([0, 1]) components.
func hueSat(r, g, b byte) (float64, float64) {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	maxC := math.Max(rf, math.Max(gf, bf))
	minC := math.Min(rf, math.Min(gf, bf))
	delta := maxC - minC

	var sat float64
	if maxC > 0 {
		sat = delta / maxC
	}

	if delta == 0 {
		return 0, sat
	}

	var hue float64
	switch maxC {
	case rf:
		hue = math.Mod((gf-bf)/delta, 6)
	case gf:
		hue = (bf-rf)/delta + 2
	default:
		hue = (rf-gf)/delta + 4
	}
	hue *= 60
	if hue < 0 {
		hue += 360
	}
	return hue, sat
}

// Bhattacharyya computes the Bhattacharyya distance between two normalized
// histograms: 0 for identical distributions, 1 for disjoint ones. The
// measure is symmetric and bounded, which is all downstream thresholding
// relies on.
func Bhattacharyya(a, b Histogram) float64 {
	coeff := 0.0
	for i := range a {
		coeff += math.Sqrt(a[i] * b[i])
	}
	// Guard against floating-point drift pushing the coefficient past 1.
	if coeff > 1 {
		coeff = 1
	}
	if coeff < 0 {
		coeff = 0
	}
	return math.Sqrt(1 - coeff)
}

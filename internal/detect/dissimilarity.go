// Package detect finds scene boundaries from sampled frame descriptors
// and reconciles them against length constraints.
package detect

import (
	"github.com/ogolknev/clip-factory/internal/sample"
)

// Point is the dissimilarity between one sampled frame and its
// predecessor, attributed to the later frame's timestamp.
type Point struct {
	Timestamp float64
	Distance  float64
}

// Accumulator turns a stream of frame samples into dissimilarity points.
// Only the previous descriptor is retained, so memory stays constant no
// matter how long the video is.
type Accumulator struct {
	prev    sample.Histogram
	hasPrev bool
	points  []Point
}

// Observe consumes the next sample in timestamp order.
func (a *Accumulator) Observe(s sample.Sample) {
	if a.hasPrev {
		a.points = append(a.points, Point{
			Timestamp: s.Timestamp,
			Distance:  sample.Bhattacharyya(a.prev, s.Descriptor),
		})
	}
	a.prev = s.Descriptor
	a.hasPrev = true
}

// Points returns the accumulated dissimilarity points. A video with a
// single sample produces none, which downstream treats as a video with
// no interior cuts.
func (a *Accumulator) Points() []Point {
	return a.points
}

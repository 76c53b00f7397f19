package detect

import (
	"fmt"

	"github.com/ogolknev/clip-factory/internal/errors"
)

// Boundaries filters dissimilarity points down to candidate cut
// timestamps. A point becomes a cut when its distance reaches the
// threshold. Input points arrive in timestamp order, so the output is
// strictly increasing.
//
// The filter is pure: threshold 0 marks every point, threshold 1 marks
// only maximally dissimilar ones. No length constraints apply here.
func Boundaries(points []Point, threshold float64) ([]float64, error) {
	if threshold < 0 || threshold > 1 {
		return nil, errors.NewInvalidParameterError(
			fmt.Sprintf("threshold must be within [0, 1], got %g", threshold))
	}

	var cuts []float64
	for _, p := range points {
		if p.Distance >= threshold {
			cuts = append(cuts, p.Timestamp)
		}
	}
	return cuts, nil
}

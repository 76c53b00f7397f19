package detect

import (
	"fmt"
	"math"

	"github.com/ogolknev/clip-factory/internal/errors"
	"github.com/ogolknev/clip-factory/internal/scene"
)

// lengthTolerance absorbs floating point drift when checking scene
// lengths against the configured bounds.
const lengthTolerance = 1e-6

// Reconcile turns candidate cut timestamps into a contiguous scene list
// covering [0, duration], honoring the configured length bounds.
//
// Two passes run in order. The merge pass walks cuts left to right and
// accepts a cut only when the scene it would close is at least minLength
// long; rejected cuts dissolve into the following scene. The final
// scene is exempt from the minimum, since there is nothing after it to
// merge into. The split pass then divides any scene longer than
// maxLength into equal parts, as many as needed to bring each part
// within the bound.
//
// Cuts at or beyond the media edges carry no information and are
// dropped before merging.
func Reconcile(cuts []float64, duration, minLength, maxLength float64) (scene.List, error) {
	if duration <= 0 {
		return nil, errors.NewInvalidParameterError(
			fmt.Sprintf("duration must be > 0, got %g", duration))
	}
	if minLength <= 0 {
		return nil, errors.NewInvalidParameterError(
			fmt.Sprintf("min_length must be > 0, got %g", minLength))
	}
	if maxLength <= 0 {
		return nil, errors.NewInvalidParameterError(
			fmt.Sprintf("max_length must be > 0, got %g", maxLength))
	}
	if maxLength < minLength {
		return nil, errors.NewInvalidParameterError(
			fmt.Sprintf("max_length (%g) must be >= min_length (%g)", maxLength, minLength))
	}

	merged := mergeShort(cuts, duration, minLength)
	split := splitLong(merged, maxLength)

	if err := split.Validate(duration); err != nil {
		return nil, err
	}
	for _, s := range split {
		if s.Duration() > maxLength+lengthTolerance {
			return nil, errors.NewInvariantViolationError(
				fmt.Sprintf("scene [%g, %g] exceeds max_length %g after splitting",
					s.Start, s.End, maxLength))
		}
	}
	return split, nil
}

func mergeShort(cuts []float64, duration, minLength float64) scene.List {
	scenes := scene.List{}
	start := 0.0
	for _, cut := range cuts {
		if cut <= 0 || cut >= duration {
			continue
		}
		if cut-start >= minLength {
			scenes = append(scenes, scene.Scene{Start: start, End: cut})
			start = cut
		}
	}
	scenes = append(scenes, scene.Scene{Start: start, End: duration})
	return scenes
}

func splitLong(scenes scene.List, maxLength float64) scene.List {
	out := make(scene.List, 0, len(scenes))
	for _, s := range scenes {
		length := s.Duration()
		if length <= maxLength+lengthTolerance {
			out = append(out, s)
			continue
		}

		parts := int(math.Ceil(length / maxLength))
		partLength := length / float64(parts)
		for i := 0; i < parts; i++ {
			sub := scene.Scene{
				Start: s.Start + float64(i)*partLength,
				End:   s.Start + float64(i+1)*partLength,
			}
			if i == parts-1 {
				sub.End = s.End
			}
			out = append(out, sub)
		}
	}
	return out
}

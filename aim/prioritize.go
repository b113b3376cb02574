package aim

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// PrioritizeTarget picks which of two candidates to engage. Returns candidate position (0 or 1).
//
// centerOffsets are normalized horizontal offsets from image center, straightOnDiffs are corner height asymmetries,
// distance is estimated distance to the targets in feet.
//
// Policy:
//  1. Both candidates aligned or we are closer than cfg.ClosenessFt: most straight-on one.
//  2. Exactly one aligned: that one.
//  3. None aligned: closest to center.
//
// Ties go to the first candidate.
func PrioritizeTarget(centerOffsets, straightOnDiffs []float64, distance float64, cfg Config) (int, error) {
	if len(centerOffsets) != 2 || len(straightOnDiffs) != 2 {
		return -1, errors.Wrapf(ErrCandidateCount, "got %d offsets and %d differentials", len(centerOffsets), len(straightOnDiffs))
	}
	absOffsets := []float64{math.Abs(centerOffsets[0]), math.Abs(centerOffsets[1])}
	inRange := make([]int, 0, 2)
	for i, offset := range absOffsets {
		if offset < cfg.AlignmentThreshold {
			inRange = append(inRange, i)
		}
	}
	switch {
	case len(inRange) == 2 || distance < cfg.ClosenessFt:
		return floats.MinIdx(straightOnDiffs), nil
	case len(inRange) == 1:
		return inRange[0], nil
	default:
		return floats.MinIdx(absOffsets), nil
	}
}

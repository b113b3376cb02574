package aim

import (
	"testing"

	"github.com/pkg/errors"
)

func TestPrioritizeTarget(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		name            string
		centerOffsets   []float64
		straightOnDiffs []float64
		distance        float64
		expected        int
	}{
		{"both aligned picks straight-on", []float64{0.1, 0.2}, []float64{5, 1}, 15, 1},
		{"both aligned tie picks first", []float64{0.1, 0.2}, []float64{3, 3}, 15, 0},
		{"close range ignores alignment", []float64{0.9, 0.1}, []float64{1, 5}, 7.5, 0},
		{"one aligned", []float64{0.9, 0.1}, []float64{1, 5}, 15, 1},
		{"one aligned first", []float64{0.39, 0.4}, []float64{10, 1}, 15, 0},
		{"none aligned picks closest to center", []float64{0.8, 0.6}, []float64{1, 5}, 15, 1},
		{"none aligned with signed offsets", []float64{-0.5, 0.7}, []float64{5, 1}, 15, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			answer, err := PrioritizeTarget(tc.centerOffsets, tc.straightOnDiffs, tc.distance, cfg)
			if err != nil {
				t.Fatal(err)
			}
			if answer != tc.expected {
				t.Errorf("Wrong answer: %d, correct answer: %d", answer, tc.expected)
			}
		})
	}
}

func TestPrioritizeTargetCandidateCount(t *testing.T) {
	cfg := DefaultConfig()
	_, err := PrioritizeTarget([]float64{0.1}, []float64{1}, 15, cfg)
	if !errors.Is(err, ErrCandidateCount) {
		t.Errorf("Expected ErrCandidateCount, got %v", err)
	}
	_, err = PrioritizeTarget([]float64{0.1, 0.2, 0.3}, []float64{1, 2, 3}, 15, cfg)
	if !errors.Is(err, ErrCandidateCount) {
		t.Errorf("Expected ErrCandidateCount, got %v", err)
	}
}

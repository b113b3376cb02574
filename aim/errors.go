package aim

import "github.com/pkg/errors"

var (
	// Structural input anomalies
	ErrMalformedInput    = errors.New("BFR coordinates length must be a positive multiple of 8")
	ErrTooManyCandidates = errors.New("more than two candidate blobs")
	ErrNoCandidates      = errors.New("no candidate blobs")

	// Degenerate geometry
	ErrNoSamples          = errors.New("no blob passed frame bounds check")
	ErrDegenerateGeometry = errors.New("degenerate geometry")
	ErrNegativeRadicand   = errors.New("width distance is shorter than tower height")

	ErrCandidateCount = errors.New("prioritization needs exactly two candidates")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

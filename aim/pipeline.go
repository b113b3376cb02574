package aim

import (
	"math"

	"github.com/pkg/errors"
)

// MaxCandidates is how many targets could be seen at once physically
const MaxCandidates = 2

// Frame is input of a single run
type Frame struct {
	// Flattened BFR records, see Blob for corner order
	Coordinates []float64
	ImageWidth  float64
	ImageHeight float64
}

// Direction tells which way to turn to face the target
type Direction uint16

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

func (direction Direction) String() string {
	switch direction {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}

// TargetEstimate is result of a run. Numbers are meaningful only when Valid is true
type TargetEstimate struct {
	// Cross-blob mean target size, pixels
	PixelHeight float64
	PixelWidth  float64
	Distance    DistanceEstimate
	Bearing     Bearing
	// Selected target center, pixels
	Center Point
	// Selected target center, [-1, 1] with (0, 0) at image center
	NormalizedCenter Point
	// Axis aligned box around selected target, pixels
	BoundingBox Rectangle
	// Number of blobs which passed frame bounds check
	NumTargets int
	// Corrected distance lies in operable range
	InRange bool
	// Selected target is within alignment threshold of center
	Aligned bool
	Valid   bool
}

// Direction returns which way to turn. No turn is needed when target is aligned
func (estimate TargetEstimate) Direction() Direction {
	switch {
	case !estimate.Valid || estimate.Aligned:
		return DirectionNone
	case estimate.Bearing.OffsetPx > 0:
		return DirectionLeft
	case estimate.Bearing.OffsetPx < 0:
		return DirectionRight
	default:
		return DirectionNone
	}
}

// Locked reports whether turret is pointed at target within maxAngleDeg
func (estimate TargetEstimate) Locked(maxAngleDeg float64) bool {
	return estimate.Valid && math.Abs(estimate.Bearing.Average) < maxAngleDeg
}

// Report is estimate plus intermediate results of a run
type Report struct {
	// Blobs left after noise band filter
	Filtered BlobSet
	// Blobs left after external contour selection
	Selected BlobSet
	// Offset of engaged blob in flattened Selected, -1 if not resolved
	SelectedIndex int
	Estimate      TargetEstimate
}

// Pipeline is targeting pipeline with immutable calibration
type Pipeline struct {
	cfg Config
}

// NewPipeline creates pipeline. Calibration is validated once here
func NewPipeline(cfg Config) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "Can't create pipeline")
	}
	return &Pipeline{cfg: cfg}, nil
}

// NewPipelineDefault creates pipeline with DefaultConfig
func NewPipelineDefault() *Pipeline {
	return &Pipeline{cfg: DefaultConfig()}
}

// Config returns pipeline calibration
func (pipeline *Pipeline) Config() Config {
	return pipeline.cfg
}

// Estimate runs pipeline on a single frame. Report is filled as far as the run got, even on error.
func (pipeline *Pipeline) Estimate(frame Frame) (Report, error) {
	cfg := pipeline.cfg
	report := Report{SelectedIndex: -1}
	if !(frame.ImageWidth > 0 && frame.ImageHeight > 0) {
		return report, errors.Wrapf(ErrMalformedInput, "image is %vx%v", frame.ImageWidth, frame.ImageHeight)
	}
	set, err := ParseBlobSet(frame.Coordinates)
	if err != nil {
		return report, err
	}

	report.Filtered = FilterNoiseBand(set, cfg.NoiseBandY)
	if len(report.Filtered) > MaxCandidates {
		return report, errors.Wrapf(ErrTooManyCandidates, "%d blobs after noise band filter", len(report.Filtered))
	}
	report.Selected = report.Filtered
	if len(report.Filtered) > 1 {
		report.Selected = SelectExternalContours(report.Filtered)
	}
	if len(report.Selected) == 0 {
		return report, ErrNoCandidates
	}

	scratch := measureBlobs(report.Selected, frame.ImageWidth, frame.ImageHeight)
	if scratch.Samples() == 0 {
		return report, errors.Wrapf(ErrNoSamples, "%d candidates", len(report.Selected))
	}
	pixelHeight := scratch.MeanPixelHeight()
	pixelWidth := scratch.MeanPixelWidth()
	distance, err := EstimateDistance(pixelHeight, pixelWidth, frame.ImageWidth, frame.ImageHeight, cfg)
	if err != nil {
		return report, err
	}

	target := scratch.samples[0]
	if scratch.Samples() == MaxCandidates {
		position, err := PrioritizeTarget(scratch.centerOffsets(), scratch.straightOnDiffs(), distance.ByWidth, cfg)
		if err != nil {
			return report, err
		}
		target = scratch.samples[position]
	}
	report.SelectedIndex = target.Position * RecordWidth

	normalized := Point{
		X: NormalizeCoordinate(target.Center.X, frame.ImageWidth/2.0),
		Y: NormalizeCoordinate(target.Center.Y, frame.ImageHeight/2.0),
	}
	report.Estimate = TargetEstimate{
		PixelHeight:      pixelHeight,
		PixelWidth:       pixelWidth,
		Distance:         distance,
		Bearing:          EstimateBearing(target.Center, frame.ImageWidth, frame.ImageHeight, cfg),
		Center:           target.Center,
		NormalizedCenter: normalized,
		BoundingBox:      report.Selected[target.Position].BoundingBox(),
		NumTargets:       scratch.Samples(),
		InRange:          distance.Corrected > cfg.MinDistanceFt && distance.Corrected < cfg.MaxDistanceFt,
		Aligned:          math.Abs(normalized.X) < cfg.AlignmentThreshold,
		Valid:            true,
	}
	return report, nil
}

// Process reads frame from host store, runs pipeline and publishes results back.
// On failure only validity flag is published (as false): numbers from previous runs stay as they were.
// Returned error is for diagnostics only: the published validity flag is what consumers act on.
func (pipeline *Pipeline) Process(store VariableStore) (Report, error) {
	coordinates, _ := store.GetArray(VarCoordinates)
	width, _ := store.GetNumber(VarImageWidth)
	height, _ := store.GetNumber(VarImageHeight)

	report, err := pipeline.Estimate(Frame{
		Coordinates: coordinates,
		ImageWidth:  width,
		ImageHeight: height,
	})
	publishDiagnostics(store, report)
	if err != nil {
		if errors.Is(err, ErrMalformedInput) || errors.Is(err, ErrTooManyCandidates) {
			Logf("[aim] Dropping frame: %v", err)
		}
		store.SetBool(VarValidUpdate, false)
		return report, err
	}
	publishEstimate(store, report.Estimate)
	// Validity goes last so consumer never sees valid flag with stale numbers
	store.SetBool(VarValidUpdate, true)
	return report, nil
}

func publishDiagnostics(store VariableStore, report Report) {
	if report.Filtered != nil {
		filtered := report.Filtered.Flatten()
		store.SetArray(VarFilteredCoordinates, filtered)
		store.SetNumber(VarFilteredLen, float64(len(filtered)))
	}
	if report.Selected != nil {
		selected := report.Selected.Flatten()
		store.SetArray(VarSelectedCoordinates, selected)
		store.SetNumber(VarSelectedLen, float64(len(selected)))
	}
	if report.SelectedIndex >= 0 {
		store.SetNumber(VarIndex, float64(report.SelectedIndex))
	}
}

func publishEstimate(store VariableStore, estimate TargetEstimate) {
	store.SetNumber(VarPixelHeight, estimate.PixelHeight)
	store.SetNumber(VarPixelWidth, estimate.PixelWidth)
	store.SetNumber(VarDistanceH, estimate.Distance.ByHeight)
	store.SetNumber(VarDistanceW, estimate.Distance.ByWidth)
	store.SetNumber(VarDistanceAvg, estimate.Distance.Average)
	store.SetNumber(VarDistanceHorizontal, estimate.Distance.Horizontal)
	store.SetNumber(VarDistance, estimate.Distance.Corrected)
	store.SetNumber(VarXLocation, estimate.Center.X)
	store.SetNumber(VarYLocation, estimate.Center.Y)
	store.SetNumber(VarXLocationD, estimate.NormalizedCenter.X)
	store.SetNumber(VarYLocationD, estimate.NormalizedCenter.Y)
	store.SetNumber(VarAngleH, estimate.Bearing.ByHeight)
	store.SetNumber(VarAngleW, estimate.Bearing.ByWidth)
	store.SetNumber(VarAngle, estimate.Bearing.Average)
	store.SetNumber(VarOffsetPx, estimate.Bearing.OffsetPx)
	store.SetNumber(VarNumTargets, float64(estimate.NumTargets))
	store.SetBool(VarInRange, estimate.InRange)
	store.SetBool(VarAligned, estimate.Aligned)
}

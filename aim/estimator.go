package aim

import (
	"math"

	"github.com/pkg/errors"
)

// Measurement is per-blob pixel geometry of a blob which passed frame bounds check
type Measurement struct {
	// Position of blob in the candidate set
	Position    int
	PixelHeight float64
	PixelWidth  float64
	Center      Point
	// Absolute normalized horizontal offset of center, [0, 1]
	CenterOffset float64
	// Corner height asymmetry, see Blob.StraightOnDiff
	StraightOnDiff float64
}

// measurementScratch accumulates measurements of a single run. It never outlives the run.
type measurementScratch struct {
	heightSum float64
	widthSum  float64
	samples   []Measurement
}

// Samples returns number of validated blobs
func (scratch *measurementScratch) Samples() int {
	return len(scratch.samples)
}

// MeanPixelHeight is cross-blob mean height
func (scratch *measurementScratch) MeanPixelHeight() float64 {
	return scratch.heightSum / float64(len(scratch.samples))
}

// MeanPixelWidth is cross-blob mean width. Width is measured left minus right, hence absolute value
func (scratch *measurementScratch) MeanPixelWidth() float64 {
	return math.Abs(scratch.widthSum / float64(len(scratch.samples)))
}

// centerOffsets and straightOnDiffs are prioritization inputs
func (scratch *measurementScratch) centerOffsets() []float64 {
	offsets := make([]float64, len(scratch.samples))
	for i, sample := range scratch.samples {
		offsets[i] = sample.CenterOffset
	}
	return offsets
}

func (scratch *measurementScratch) straightOnDiffs() []float64 {
	diffs := make([]float64, len(scratch.samples))
	for i, sample := range scratch.samples {
		diffs[i] = sample.StraightOnDiff
	}
	return diffs
}

// measureBlobs accumulates pixel geometry of every blob lying inside the frame.
// Blobs outside are skipped silently: partially visible targets are normal.
func measureBlobs(set BlobSet, imageWidth, imageHeight float64) *measurementScratch {
	scratch := &measurementScratch{
		samples: make([]Measurement, 0, len(set)),
	}
	centerX := imageWidth / 2.0
	for i, blob := range set {
		if !blob.InFrame(imageWidth, imageHeight) {
			continue
		}
		measurement := Measurement{
			Position:    i,
			PixelHeight: blob.PixelHeight(),
			PixelWidth:  blob.PixelWidth(),
			Center:      blob.Center(),
		}
		// Only needed to choose between candidates
		if len(set) > 1 {
			measurement.CenterOffset = math.Abs((measurement.Center.X - centerX) / centerX)
			measurement.StraightOnDiff = blob.StraightOnDiff()
		}
		scratch.heightSum += measurement.PixelHeight
		scratch.widthSum += measurement.PixelWidth
		scratch.samples = append(scratch.samples, measurement)
	}
	return scratch
}

// DistanceEstimate holds distances to the target, feet
type DistanceEstimate struct {
	// Via pixel height and vertical FOV
	ByHeight float64
	// Via pixel width and horizontal FOV
	ByWidth float64
	Average float64
	// ByWidth with tower height component removed
	Horizontal float64
	// Horizontal after correction curve. This is the one to use
	Corrected float64
}

// EstimateDistance converts mean pixel size of target into distances
func EstimateDistance(pixelHeight, pixelWidth, imageWidth, imageHeight float64, cfg Config) (DistanceEstimate, error) {
	if !(pixelHeight > 0 && pixelWidth > 0) {
		return DistanceEstimate{}, errors.Wrapf(ErrDegenerateGeometry, "target is %vx%v px", pixelWidth, pixelHeight)
	}
	byHeight, err := projectFeet(cfg.TargetHeightIn, imageHeight, pixelHeight, cfg.VerticalFOVDeg, cfg.SensorOffsetFt)
	if err != nil {
		return DistanceEstimate{}, errors.Wrap(err, "Can't estimate distance by height")
	}
	byWidth, err := projectFeet(cfg.TargetWidthIn, imageWidth, pixelWidth, cfg.HorizontalFOVDeg, cfg.SensorOffsetFt)
	if err != nil {
		return DistanceEstimate{}, errors.Wrap(err, "Can't estimate distance by width")
	}
	radicand := byWidth*byWidth - cfg.TowerHeightFt*cfg.TowerHeightFt
	if radicand < 0 {
		return DistanceEstimate{}, errors.Wrapf(ErrNegativeRadicand, "distance %v ft, tower %v ft", byWidth, cfg.TowerHeightFt)
	}
	horizontal := math.Sqrt(radicand)
	return DistanceEstimate{
		ByHeight:   byHeight,
		ByWidth:    byWidth,
		Average:    (byHeight + byWidth) / 2.0,
		Horizontal: horizontal,
		Corrected:  Truncate2(CorrectDistance(horizontal*inchesPerFoot, cfg.Correction)),
	}, nil
}

// projectFeet projects distance in inches, converts it to feet (two decimals) and shifts to robot front
func projectFeet(actualIn, imagePx, measuredPx, fovDeg, offsetFt float64) (float64, error) {
	inches, err := ProjectDistance(actualIn, imagePx, measuredPx, fovDeg)
	if err != nil {
		return 0, err
	}
	return Truncate2(inches/inchesPerFoot) + offsetFt, nil
}

// Bearing is horizontal angle to the target, degrees. Positive when target is left of center
type Bearing struct {
	// Via vertical FOV
	ByHeight float64
	// Via horizontal FOV
	ByWidth float64
	Average float64
	// centerX - targetX
	OffsetPx float64
}

// EstimateBearing projects horizontal pixel offset of target center onto both fields of view
func EstimateBearing(center Point, imageWidth, imageHeight float64, cfg Config) Bearing {
	offsetPx := imageWidth/2.0 - center.X
	byWidth := Truncate2(cfg.HorizontalFOVDeg * (offsetPx / imageWidth))
	byHeight := Truncate2(cfg.VerticalFOVDeg * (offsetPx / imageHeight))
	return Bearing{
		ByHeight: byHeight,
		ByWidth:  byWidth,
		Average:  Truncate2((byWidth + byHeight) / 2.0),
		OffsetPx: offsetPx,
	}
}

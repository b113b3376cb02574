package aim

import (
	"math"

	"github.com/pkg/errors"
)

// RecordWidth is number of values per blob in flattened BFR array
const RecordWidth = 8

// Blob is a best-fit rectangle (BFR) of single detected region.
// Corners are stored in fixed order:
// bottomRight.x, bottomRight.y, bottomLeft.x, bottomLeft.y, topLeft.x, topLeft.y, topRight.x, topRight.y
//
// Image Y axis points down, so bottom corners have larger Y than top ones.
type Blob [RecordWidth]float64

const (
	brX = iota
	brY
	blX
	blY
	tlX
	tlY
	trX
	trY
)

// NewBlob creates blob from corners
func NewBlob(bottomRight, bottomLeft, topLeft, topRight Point) Blob {
	return Blob{
		bottomRight.X, bottomRight.Y,
		bottomLeft.X, bottomLeft.Y,
		topLeft.X, topLeft.Y,
		topRight.X, topRight.Y,
	}
}

// BottomRight returns bottom right corner
func (blob Blob) BottomRight() Point {
	return Point{X: blob[brX], Y: blob[brY]}
}

// BottomLeft returns bottom left corner
func (blob Blob) BottomLeft() Point {
	return Point{X: blob[blX], Y: blob[blY]}
}

// TopLeft returns top left corner
func (blob Blob) TopLeft() Point {
	return Point{X: blob[tlX], Y: blob[tlY]}
}

// TopRight returns top right corner
func (blob Blob) TopRight() Point {
	return Point{X: blob[trX], Y: blob[trY]}
}

// Center returns mean of four corners
func (blob Blob) Center() Point {
	return Point{
		X: (blob[brX] + blob[blX] + blob[tlX] + blob[trX]) / 4.0,
		Y: (blob[brY] + blob[blY] + blob[tlY] + blob[trY]) / 4.0,
	}
}

// PixelHeight returns mean of left and right edge spans (bottom minus top).
// Negative value means corners are upside down.
func (blob Blob) PixelHeight() float64 {
	return ((blob[blY] - blob[tlY]) + (blob[brY] - blob[trY])) / 2.0
}

// PixelWidth returns mean of top and bottom edge spans measured left minus right.
// For well-formed blob it is negative: callers take absolute value after averaging.
func (blob Blob) PixelWidth() float64 {
	return ((blob[tlX] - blob[trX]) + (blob[blX] - blob[brX])) / 2.0
}

// Area estimates blob area as mean absolute width times mean absolute height
func (blob Blob) Area() float64 {
	width := (math.Abs(blob[tlX]-blob[trX]) + math.Abs(blob[blX]-blob[brX])) / 2.0
	height := (math.Abs(blob[tlY]-blob[blY]) + math.Abs(blob[trY]-blob[brY])) / 2.0
	return Truncate2(width * height)
}

// StraightOnDiff returns mean asymmetry between left and right corner heights.
// Smaller is more square to the camera.
func (blob Blob) StraightOnDiff() float64 {
	return (math.Abs(blob[tlY]-blob[trY]) + math.Abs(blob[blY]-blob[brY])) / 2.0
}

// BoundingBox returns axis aligned box around four corners
func (blob Blob) BoundingBox() Rectangle {
	minX := math.Min(math.Min(blob[brX], blob[blX]), math.Min(blob[tlX], blob[trX]))
	maxX := math.Max(math.Max(blob[brX], blob[blX]), math.Max(blob[tlX], blob[trX]))
	minY := math.Min(math.Min(blob[brY], blob[blY]), math.Min(blob[tlY], blob[trY]))
	maxY := math.Max(math.Max(blob[brY], blob[blY]), math.Max(blob[tlY], blob[trY]))
	return NewRect(minX, minY, maxX-minX, maxY-minY)
}

// minCornerY returns smallest Y of four corners
func (blob Blob) minCornerY() float64 {
	return math.Min(math.Min(blob[brY], blob[blY]), math.Min(blob[tlY], blob[trY]))
}

// InFrame checks that every corner lies strictly inside the image.
// Right corners are checked against width, left ones against zero;
// bottom corners against zero and top ones against height.
func (blob Blob) InFrame(imageWidth, imageHeight float64) bool {
	xValid := blob[brX] < imageWidth && blob[trX] < imageWidth && blob[blX] > 0 && blob[tlX] > 0
	yValid := blob[brY] > 0 && blob[trY] < imageHeight && blob[blY] > 0 && blob[tlY] < imageHeight
	return xValid && yValid
}

// BlobSet is ordered sequence of blobs
type BlobSet []Blob

// ParseBlobSet splits flattened BFR array into blobs
func ParseBlobSet(raw []float64) (BlobSet, error) {
	if len(raw) == 0 || len(raw)%RecordWidth != 0 {
		return nil, errors.Wrapf(ErrMalformedInput, "got %d values", len(raw))
	}
	set := make(BlobSet, len(raw)/RecordWidth)
	for i := range set {
		copy(set[i][:], raw[i*RecordWidth:(i+1)*RecordWidth])
	}
	return set, nil
}

// Flatten returns BFR array representation of set
func (set BlobSet) Flatten() []float64 {
	raw := make([]float64, 0, len(set)*RecordWidth)
	for _, blob := range set {
		raw = append(raw, blob[:]...)
	}
	return raw
}

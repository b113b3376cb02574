package aim

import (
	"math"

	"github.com/pkg/errors"
)

type Rectangle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func NewRect(x, y, width, height float64) Rectangle {
	return Rectangle{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

// Center returns center of rectangle
func (rect Rectangle) Center() Point {
	return Point{
		X: rect.X + rect.Width/2.0,
		Y: rect.Y + rect.Height/2.0,
	}
}

type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func EuclideanDistance(p1, p2 Point) float64 {
	return math.Sqrt(math.Pow(p1.X-p2.X, 2) + math.Pow(p1.Y-p2.Y, 2))
}

// ProjectDistance is the inverse pinhole projection: how far away an object of actualSize
// must be to span measuredSizePx out of imageDimensionPx pixels for a sensor with the given field of view.
// Result is in units of actualSize.
func ProjectDistance(actualSize, imageDimensionPx, measuredSizePx, fieldOfViewDeg float64) (float64, error) {
	if measuredSizePx <= 0 {
		return math.NaN(), errors.Wrapf(ErrDegenerateGeometry, "measured size %v px", measuredSizePx)
	}
	if imageDimensionPx <= 0 {
		return math.NaN(), errors.Wrapf(ErrDegenerateGeometry, "image dimension %v px", imageDimensionPx)
	}
	if fieldOfViewDeg <= 0 || fieldOfViewDeg >= 180 {
		return math.NaN(), errors.Wrapf(ErrDegenerateGeometry, "field of view %v deg", fieldOfViewDeg)
	}
	halfSpan := (actualSize * imageDimensionPx / measuredSizePx) / 2.0
	return halfSpan / math.Tan(degToRad(fieldOfViewDeg)/2.0), nil
}

// NormalizeCoordinate maps pixel coordinate onto [-1, 1] where 0 is the image center.
// Only two decimal digits are kept (truncated, not rounded).
func NormalizeCoordinate(px, centerPx float64) float64 {
	return Truncate2((px - centerPx) / centerPx)
}

// Polynomial is a cubic a*x^3 + b*x^2 + c*x + d
type Polynomial struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
	C float64 `yaml:"c"`
	D float64 `yaml:"d"`
}

// Eval evaluates polynomial at x (Horner's scheme)
func (p Polynomial) Eval(x float64) float64 {
	return ((p.A*x+p.B)*x+p.C)*x + p.D
}

// CorrectDistance applies empirical correction curve to raw horizontal distance.
// Input is in inches, output is in feet truncated to two decimals.
func CorrectDistance(rawDistanceInches float64, curve Polynomial) float64 {
	return Truncate2(curve.Eval(rawDistanceInches) / inchesPerFoot)
}

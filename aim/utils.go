package aim

import "math"

const (
	inchesPerFoot = 12.0
)

// IoU calculates Intersection over Union between two rectangles.
func IoU(r1, r2 Rectangle) float64 {
	xA := math.Max(r1.X, r2.X)
	yA := math.Max(r1.Y, r2.Y)
	xB := math.Min(r1.X+r1.Width, r2.X+r2.Width)
	yB := math.Min(r1.Y+r1.Height, r2.Y+r2.Height)

	interArea := math.Max(0, xB-xA) * math.Max(0, yB-yA)
	if interArea == 0 {
		return 0.0
	}

	r1Area := r1.Width * r1.Height
	r2Area := r2.Width * r2.Height

	return interArea / (r1Area + r2Area - interArea)
}

// Truncate2 drops everything after the second decimal digit (toward zero).
// Published numbers have always been cut this way and consumers compare against them.
func Truncate2(v float64) float64 {
	return math.Trunc(v*100) / 100
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

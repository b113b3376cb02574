package aim

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

// rectBlob creates axis aligned blob with top left corner at (x, y)
func rectBlob(x, y, width, height float64) Blob {
	return NewBlob(
		Point{X: x + width, Y: y + height},
		Point{X: x, Y: y + height},
		Point{X: x, Y: y},
		Point{X: x + width, Y: y},
	)
}

func TestBlobAccessors(t *testing.T) {
	blob := Blob{420, 340, 220, 340, 220, 140, 420, 140}
	if blob.BottomRight() != (Point{X: 420, Y: 340}) {
		t.Errorf("Wrong bottom right corner: %v", blob.BottomRight())
	}
	if blob.BottomLeft() != (Point{X: 220, Y: 340}) {
		t.Errorf("Wrong bottom left corner: %v", blob.BottomLeft())
	}
	if blob.TopLeft() != (Point{X: 220, Y: 140}) {
		t.Errorf("Wrong top left corner: %v", blob.TopLeft())
	}
	if blob.TopRight() != (Point{X: 420, Y: 140}) {
		t.Errorf("Wrong top right corner: %v", blob.TopRight())
	}
	if blob != rectBlob(220, 140, 200, 200) {
		t.Errorf("NewBlob should keep corner order, got %v", rectBlob(220, 140, 200, 200))
	}
	if blob.Center() != (Point{X: 320, Y: 240}) {
		t.Errorf("Wrong center: %v", blob.Center())
	}
	if blob.PixelHeight() != 200 {
		t.Errorf("Wrong pixel height: %v", blob.PixelHeight())
	}
	// Width is measured left minus right
	if blob.PixelWidth() != -200 {
		t.Errorf("Wrong pixel width: %v", blob.PixelWidth())
	}
	if blob.Area() != 40000 {
		t.Errorf("Wrong area: %v", blob.Area())
	}
	if blob.StraightOnDiff() != 0 {
		t.Errorf("Wrong straight-on differential: %v", blob.StraightOnDiff())
	}
	if blob.BoundingBox() != NewRect(220, 140, 200, 200) {
		t.Errorf("Wrong bounding box: %v", blob.BoundingBox())
	}
}

func TestBlobSkewed(t *testing.T) {
	// Right edge is shorter: target is turned away from camera
	blob := Blob{410, 330, 200, 340, 200, 140, 410, 150}
	if math.Abs(blob.PixelHeight()-190) > eps {
		t.Errorf("Wrong pixel height: %v", blob.PixelHeight())
	}
	if math.Abs(blob.StraightOnDiff()-10) > eps {
		t.Errorf("Wrong straight-on differential: %v", blob.StraightOnDiff())
	}
	// width 210, height (200 + 180) / 2
	if math.Abs(blob.Area()-39900) > eps {
		t.Errorf("Wrong area: %v", blob.Area())
	}
}

func TestBlobInFrame(t *testing.T) {
	cases := []struct {
		name     string
		blob     Blob
		expected bool
	}{
		{"inside", rectBlob(220, 140, 200, 200), true},
		{"right edge touches width", rectBlob(440, 140, 200, 200), false},
		{"left edge touches zero", rectBlob(0, 140, 200, 200), false},
		{"bottom above zero", rectBlob(220, -300, 200, 200), false},
		{"top below height", rectBlob(220, 480, 100, 10), false},
		// Bottom corners are checked against zero only, top ones against height only
		{"bottom past height", rectBlob(220, 300, 200, 200), true},
		{"top past zero", rectBlob(220, -10, 200, 200), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if answer := tc.blob.InFrame(640, 480); answer != tc.expected {
				t.Errorf("InFrame: got %t, expected %t", answer, tc.expected)
			}
		})
	}
}

func TestParseBlobSet(t *testing.T) {
	raw := []float64{
		420, 340, 220, 340, 220, 140, 420, 140,
		100, 300, 50, 300, 50, 250, 100, 250,
	}
	set, err := ParseBlobSet(raw)
	if err != nil {
		t.Fatal(err)
	}
	expected := BlobSet{
		{420, 340, 220, 340, 220, 140, 420, 140},
		{100, 300, 50, 300, 50, 250, 100, 250},
	}
	if diff := cmp.Diff(expected, set); diff != "" {
		t.Errorf("ParseBlobSet mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(raw, set.Flatten()); diff != "" {
		t.Errorf("Flatten mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBlobSetMalformed(t *testing.T) {
	for _, raw := range [][]float64{nil, {}, {1, 2, 3, 4, 5, 6, 7}, make([]float64, 12)} {
		_, err := ParseBlobSet(raw)
		if !errors.Is(err, ErrMalformedInput) {
			t.Errorf("Expected ErrMalformedInput for %d values, got %v", len(raw), err)
		}
	}
}

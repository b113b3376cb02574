package aim

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSelectExternalContoursDominant(t *testing.T) {
	small := rectBlob(400, 300, 100, 100) // 10000
	big := rectBlob(50, 250, 300, 100)    // 30000, exactly 3x
	selected := SelectExternalContours(BlobSet{small, big})
	if diff := cmp.Diff(BlobSet{big}, selected); diff != "" {
		t.Errorf("Only larger blob should survive (-want +got):\n%s", diff)
	}
	selected = SelectExternalContours(BlobSet{big, small})
	if diff := cmp.Diff(BlobSet{big}, selected); diff != "" {
		t.Errorf("Only larger blob should survive (-want +got):\n%s", diff)
	}
}

func TestSelectExternalContoursExactlyTwice(t *testing.T) {
	// area1 == 2 * area2 is not dominant
	first := rectBlob(400, 300, 100, 100)
	second := rectBlob(50, 250, 200, 100)
	selected := SelectExternalContours(BlobSet{first, second})
	if diff := cmp.Diff(BlobSet{first, second}, selected); diff != "" {
		t.Errorf("Both blobs should survive in original order (-want +got):\n%s", diff)
	}
}

func TestSelectExternalContoursIdempotent(t *testing.T) {
	first := rectBlob(100, 250, 80, 100)
	second := rectBlob(300, 250, 90, 100)
	once := SelectExternalContours(BlobSet{first, second})
	twice := SelectExternalContours(once)
	if diff := cmp.Diff(BlobSet{first, second}, once); diff != "" {
		t.Errorf("First pass mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("Second pass mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectExternalContoursEqualAreas(t *testing.T) {
	first := rectBlob(100, 250, 80, 100)
	second := rectBlob(300, 250, 80, 100)
	selected := SelectExternalContours(BlobSet{first, second})
	if diff := cmp.Diff(BlobSet{first, second}, selected); diff != "" {
		t.Errorf("Equal blobs should both survive (-want +got):\n%s", diff)
	}
}

func TestSelectExternalContoursTopTwo(t *testing.T) {
	tiny := rectBlob(10, 250, 10, 10)
	first := rectBlob(100, 250, 80, 100)
	second := rectBlob(300, 250, 90, 100)
	selected := SelectExternalContours(BlobSet{second, tiny, first})
	if diff := cmp.Diff(BlobSet{second, first}, selected); diff != "" {
		t.Errorf("Two largest blobs should survive in original order (-want +got):\n%s", diff)
	}
}

func TestSelectExternalContoursSingle(t *testing.T) {
	set := BlobSet{rectBlob(100, 250, 80, 100)}
	if diff := cmp.Diff(set, SelectExternalContours(set)); diff != "" {
		t.Errorf("Single blob should pass through (-want +got):\n%s", diff)
	}
}

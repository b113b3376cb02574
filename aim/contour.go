package aim

import "sort"

// SelectExternalContours reduces candidate set using relative area of two largest blobs.
// If the largest blob is more than twice the area of the runner-up, only the largest is a target,
// the other one is noise or partial detection. Otherwise both are kept in their original order.
// Sets with less than two blobs are returned as is.
func SelectExternalContours(set BlobSet) BlobSet {
	if len(set) < 2 {
		return set
	}
	areas := make([]float64, len(set))
	order := make([]int, len(set))
	for i, blob := range set {
		areas[i] = blob.Area()
		order[i] = i
	}
	// Descending by area; equal areas keep original order
	sort.SliceStable(order, func(i, j int) bool {
		return areas[order[i]] > areas[order[j]]
	})
	first, second := order[0], order[1]
	if areas[first] > 2*areas[second] {
		return BlobSet{set[first]}
	}
	if second < first {
		first, second = second, first
	}
	return BlobSet{set[first], set[second]}
}

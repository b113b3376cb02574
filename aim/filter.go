package aim

// FilterNoiseBand removes every blob having at least one corner with Y below minY.
// Such corner pattern comes from reflections of the bar near the image bottom rather than from target edges.
// Survivors keep their relative order; input is not modified.
func FilterNoiseBand(set BlobSet, minY float64) BlobSet {
	excluded := make(map[int]struct{})
	for i, blob := range set {
		if blob.minCornerY() < minY {
			excluded[i] = struct{}{}
		}
	}
	filtered := make(BlobSet, 0, len(set)-len(excluded))
	for i, blob := range set {
		if _, ok := excluded[i]; ok {
			continue
		}
		filtered = append(filtered, blob)
	}
	return filtered
}

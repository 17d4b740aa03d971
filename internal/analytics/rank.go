package analytics

import "sort"

// TopN returns a copy of groups sorted by total descending, stable on ties
// so equal totals keep their original key order, truncated to limit.
// A non-positive limit disables truncation. The booking-ID sets travel
// with their groups through the sort.
func TopN(groups []Group, limit int) []Group {
	out := make([]Group, len(groups))
	copy(out, groups)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

package detection

import "github.com/paulmach/orb"

// ExplainedRatio measures what fraction of total ink is consistent with a
// clean two-line cross through p: a segment's length counts as explained
// when its midpoint lies within angleTol and within the corridor of either
// cross axis. The complement is loop ink, decoration, and stray marks.
//
// The ratio is always in [0, 1]; with no ink at all it is defined as 0.
func ExplainedRatio(p orb.Point, axis1, axis2 float64, segs []Segment, angleTol, corridor float64) float64 {
	var total, explained float64
	for _, s := range segs {
		total += s.Length
		if segmentOnAxis(s, p, axis1, angleTol, corridor) ||
			segmentOnAxis(s, p, axis2, angleTol, corridor) {
			explained += s.Length
		}
	}
	if total <= 0 {
		return 0
	}
	return explained / total
}

func segmentOnAxis(s Segment, p orb.Point, axis, angleTol, corridor float64) bool {
	return foldedDiff(s.Direction(), axis) <= angleTol &&
		perpDistance(s.Midpoint(), p, axis) <= corridor
}

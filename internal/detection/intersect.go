package detection

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Intersection is a point where two segments cross inside the bounding
// region. Seg1 and Seg2 index into the segment list the intersection was
// computed from; Angle is the acute crossing angle in degrees.
type Intersection struct {
	Point orb.Point `json:"point"`
	Seg1  int       `json:"seg1"`
	Seg2  int       `json:"seg2"`
	Angle float64   `json:"angle_degrees"`
}

// FindIntersections computes every pairwise segment crossing that survives
// the filters:
//
//   - index-adjacent segments of the same stroke are skipped (polyline
//     joints are not crossings)
//   - near-parallel pairs are skipped (direction determinant below epsilon)
//   - the crossing must lie within both segments' extents
//   - crossings within endpointExclusion of either contributing stroke's
//     true start or end point are skipped (tip-to-tip touches)
//   - the acute crossing angle must reach minAngle degrees
//   - the crossing must lie inside box
//
// Complexity is O(n^2) over the segment count, which is fine for the tens
// of segments simplified strokes produce.
func FindIntersections(segs []Segment, box orb.Bound, minAngle, endpointExclusion float64) []Intersection {
	var out []Intersection
	for i := 0; i < len(segs); i++ {
		for j := i + 1; j < len(segs); j++ {
			a, b := segs[i], segs[j]
			if a.Stroke == b.Stroke && abs(a.Index-b.Index) <= 1 {
				continue
			}

			p, ok := segmentCrossing(a, b)
			if !ok {
				continue
			}
			if nearStrokeTip(p, a, endpointExclusion) || nearStrokeTip(p, b, endpointExclusion) {
				continue
			}
			angle := acuteAngle(a.Direction(), b.Direction())
			if angle < minAngle {
				continue
			}
			if !box.Contains(p) {
				continue
			}

			out = append(out, Intersection{Point: p, Seg1: i, Seg2: j, Angle: angle})
		}
	}
	return out
}

// segmentCrossing solves P1 + t*D1 = P2 + u*D2 for the two segments and
// returns the crossing point when t and u both fall within [0, 1].
func segmentCrossing(a, b Segment) (orb.Point, bool) {
	d1x, d1y := a.P2[0]-a.P1[0], a.P2[1]-a.P1[1]
	d2x, d2y := b.P2[0]-b.P1[0], b.P2[1]-b.P1[1]

	denom := d1x*d2y - d1y*d2x
	if denom < zeroEps && denom > -zeroEps {
		return orb.Point{}, false
	}

	ex, ey := b.P1[0]-a.P1[0], b.P1[1]-a.P1[1]
	t := (ex*d2y - ey*d2x) / denom
	u := (ex*d1y - ey*d1x) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return orb.Point{}, false
	}

	return orb.Point{a.P1[0] + t*d1x, a.P1[1] + t*d1y}, true
}

// nearStrokeTip reports whether p sits within radius of the segment's
// source-stroke start or end point.
func nearStrokeTip(p orb.Point, s Segment, radius float64) bool {
	return planar.Distance(p, s.StrokeStart) < radius ||
		planar.Distance(p, s.StrokeEnd) < radius
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

package detection

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/ballotink/markcheck/internal/ink"
)

// zeroEps guards against numerically degenerate geometry: segments shorter
// than this are dropped, and direction determinants smaller than this are
// treated as parallel.
const zeroEps = 1e-9

// Segment is one edge of a simplified stroke's polyline, tagged with the
// stroke it came from and its position within that stroke. StrokeStart and
// StrokeEnd carry the source stroke's true endpoints for intersection
// filtering.
type Segment struct {
	P1, P2      orb.Point
	Stroke      int
	Index       int
	Length      float64
	StrokeStart orb.Point
	StrokeEnd   orb.Point
}

// Direction returns the segment's heading in degrees, in (-180, 180].
func (s Segment) Direction() float64 {
	return math.Atan2(s.P2[1]-s.P1[1], s.P2[0]-s.P1[0]) * 180 / math.Pi
}

// Midpoint returns the segment's midpoint.
func (s Segment) Midpoint() orb.Point {
	return orb.Point{(s.P1[0] + s.P2[0]) / 2, (s.P1[1] + s.P2[1]) / 2}
}

// BuildSegments flattens simplified strokes into a single segment list.
// Zero-length edges are dropped so downstream direction math never divides
// by zero.
func BuildSegments(strokes []ink.Stroke) []Segment {
	var segs []Segment
	for si, s := range strokes {
		if len(s) < 2 {
			continue
		}
		start, end := s[0], s[len(s)-1]
		for i := 1; i < len(s); i++ {
			length := planar.Distance(s[i-1], s[i])
			if length < zeroEps {
				continue
			}
			segs = append(segs, Segment{
				P1:          s[i-1],
				P2:          s[i],
				Stroke:      si,
				Index:       i - 1,
				Length:      length,
				StrokeStart: start,
				StrokeEnd:   end,
			})
		}
	}
	return segs
}

// foldDirection folds a heading in degrees into [0, 180). Ink direction is
// bidirectional, so headings 180 degrees apart are the same direction.
func foldDirection(deg float64) float64 {
	d := math.Mod(deg, 180)
	if d < 0 {
		d += 180
	}
	return d
}

// foldedDiff returns the distance between two folded directions, measured
// through the 0/180 seam, in [0, 90].
func foldedDiff(a, b float64) float64 {
	d := math.Abs(foldDirection(a) - foldDirection(b))
	if d > 90 {
		d = 180 - d
	}
	return d
}

// acuteAngle returns the acute angle between two headings, in [0, 90].
func acuteAngle(d1, d2 float64) float64 {
	return foldedDiff(d1, d2)
}

// perpDistance returns the perpendicular distance from p to the infinite
// line through origin at heading dirDeg.
func perpDistance(p, origin orb.Point, dirDeg float64) float64 {
	rad := dirDeg * math.Pi / 180
	ux, uy := math.Cos(rad), math.Sin(rad)
	dx, dy := p[0]-origin[0], p[1]-origin[1]
	return math.Abs(ux*dy - uy*dx)
}

// forwardProjection returns the signed distance of p from origin along
// heading dirDeg.
func forwardProjection(p, origin orb.Point, dirDeg float64) float64 {
	rad := dirDeg * math.Pi / 180
	return (p[0]-origin[0])*math.Cos(rad) + (p[1]-origin[1])*math.Sin(rad)
}

// distToSegment returns the distance from p to the closed segment ab.
func distToSegment(p, a, b orb.Point) float64 {
	abx, aby := b[0]-a[0], b[1]-a[1]
	apx, apy := p[0]-a[0], p[1]-a[1]
	lenSq := abx*abx + aby*aby
	if lenSq < zeroEps {
		return planar.Distance(p, a)
	}
	t := (apx*abx + apy*aby) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return planar.Distance(p, orb.Point{a[0] + t*abx, a[1] + t*aby})
}

package ink

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Stroke is the ordered point sequence of one continuous drawing gesture.
//
// It is a named orb.LineString so strokes unmarshal directly from the
// [[x,y],...] JSON shape used by mark files and tool arguments, and so the
// orb planar helpers apply without conversion boilerplate.
type Stroke orb.LineString

// Length returns the stroke's total arc length in logical units.
func (s Stroke) Length() float64 {
	return planar.Length(orb.LineString(s))
}

// Bound returns the stroke's axis-aligned bounding box.
func (s Stroke) Bound() orb.Bound {
	return orb.LineString(s).Bound()
}

// Clone returns an independent copy of the stroke.
func (s Stroke) Clone() Stroke {
	out := make(Stroke, len(s))
	copy(out, s)
	return out
}

// TotalLength sums the arc lengths of all strokes.
func TotalLength(strokes []Stroke) float64 {
	total := 0.0
	for _, s := range strokes {
		total += s.Length()
	}
	return total
}

// PointCount sums the point counts of all strokes.
func PointCount(strokes []Stroke) int {
	n := 0
	for _, s := range strokes {
		n += len(s)
	}
	return n
}

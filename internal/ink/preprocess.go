package ink

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/simplify"
)

// lastPointSlack is how far (in logical units) the final emitted resample
// point may sit from the stroke's true endpoint before the endpoint is
// appended explicitly.
const lastPointSlack = 0.5

// Resample returns a copy of the stroke with approximately uniform point
// spacing.
//
// The polyline is walked from its first point, emitting an interpolated
// point every step arc-length units. The original last point is preserved
// whenever the final emitted point is more than half a unit away from it,
// so the stroke's true extent survives resampling.
//
// Strokes with fewer than 2 points, and non-positive steps, pass through
// as a copy.
func Resample(s Stroke, step float64) Stroke {
	if len(s) < 2 || step <= 0 {
		return s.Clone()
	}

	out := Stroke{s[0]}
	carry := 0.0 // arc length covered since the last emitted point

	for i := 1; i < len(s); i++ {
		a, b := s[i-1], s[i]
		segLen := planar.Distance(a, b)
		if segLen == 0 {
			continue
		}
		for t := step - carry; t <= segLen; t += step {
			f := t / segLen
			out = append(out, orb.Point{
				a[0] + (b[0]-a[0])*f,
				a[1] + (b[1]-a[1])*f,
			})
		}
		carry = math.Mod(carry+segLen, step)
	}

	last := s[len(s)-1]
	if planar.Distance(out[len(out)-1], last) > lastPointSlack {
		out = append(out, last)
	}
	return out
}

// Simplify reduces a stroke with the Ramer-Douglas-Peucker algorithm:
// endpoints are kept, and interior points survive only where the polyline
// deviates from its chord by more than tolerance.
//
// Simplification is idempotent: re-simplifying an already-simplified
// stroke with the same tolerance returns the same point set. Strokes with
// fewer than 3 points pass through as a copy.
func Simplify(s Stroke, tolerance float64) Stroke {
	if len(s) < 3 {
		return s.Clone()
	}
	// The orb simplifier works in place, so hand it a copy.
	ls := make(orb.LineString, len(s))
	copy(ls, s)
	return Stroke(simplify.DouglasPeucker(tolerance).LineString(ls))
}

// Preprocess resamples a raw stroke to uniform spacing and then simplifies
// it, producing the cleaned polyline the detection pipeline operates on.
// The input stroke is never modified.
func Preprocess(s Stroke, step, tolerance float64) Stroke {
	return Simplify(Resample(s, step), tolerance)
}

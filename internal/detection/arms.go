package detection

import "github.com/paulmach/orb"

// ArmMeasurement is the result of measuring ink reach in the four arm
// directions radiating from a candidate crossing point. Extensions[i]
// always corresponds to Angles[i]; this order correspondence is relied on
// by the balance and explained-ink checks.
type ArmMeasurement struct {
	Extensions [4]float64 `json:"extensions"`
	Angles     [4]float64 `json:"angles_degrees"`
	Min        float64    `json:"min_extension"`
	Valid      bool       `json:"valid"`
}

// Average returns the mean of the four arm extensions.
func (m ArmMeasurement) Average() float64 {
	return (m.Extensions[0] + m.Extensions[1] + m.Extensions[2] + m.Extensions[3]) / 4
}

// Balance returns the weakest-to-strongest arm ratio, in [0, 1].
// It returns 0 when the strongest arm has no ink at all.
func (m ArmMeasurement) Balance() float64 {
	max := m.Extensions[0]
	for _, e := range m.Extensions[1:] {
		if e > max {
			max = e
		}
	}
	if max <= 0 {
		return 0
	}
	return m.Min / max
}

// CrossCandidate is an intersection whose four arms all reach the minimum
// extension. Strokes carries the containing cluster's distinct-stroke
// count, not just the candidate's own two segments.
type CrossCandidate struct {
	Point        orb.Point      `json:"point"`
	Arms         ArmMeasurement `json:"arms"`
	Strokes      int            `json:"strokes_at_intersection"`
	Intersection int            `json:"intersection"`
	Cluster      int            `json:"cluster"`
}

// MinExtension is the candidate's weakest arm, used as its overall
// strength when picking the best candidate.
func (c CrossCandidate) MinExtension() float64 {
	return c.Arms.Min
}

// MeasureArms measures ink reach in the four arm directions derived from
// the two stroke directions dir1 and dir2 (each folded into [0, 180)):
// each direction and its opposite.
//
// Every segment of every stroke participates, not just the two that formed
// the crossing. A segment contributes to an arm when three conditions hold
// jointly:
//
//	(a) its bidirectional direction is within angleTol of the arm's
//	(b) its midpoint sits within corridor of the arm's infinite axis
//	(c) at least one endpoint lies on the arm's forward side of p
//
// An arm's length is the farthest forward projection across qualifying
// segments. The measurement is Valid when all four arms reach minExt.
func MeasureArms(p orb.Point, dir1, dir2 float64, segs []Segment, angleTol, corridor, minExt float64) ArmMeasurement {
	m := ArmMeasurement{
		Angles: [4]float64{dir1, dir1 + 180, dir2, dir2 + 180},
	}

	for ai, armDir := range m.Angles {
		reach := 0.0
		for _, s := range segs {
			if foldedDiff(s.Direction(), armDir) > angleTol {
				continue
			}
			if perpDistance(s.Midpoint(), p, armDir) > corridor {
				continue
			}
			for _, end := range [2]orb.Point{s.P1, s.P2} {
				if d := forwardProjection(end, p, armDir); d >= 0 && d > reach {
					reach = d
				}
			}
		}
		m.Extensions[ai] = reach
	}

	m.Min = m.Extensions[0]
	for _, e := range m.Extensions[1:] {
		if e < m.Min {
			m.Min = e
		}
	}
	m.Valid = m.Min >= minExt
	return m
}

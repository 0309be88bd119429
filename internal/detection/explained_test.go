package detection

import (
	"math"
	"testing"

	"github.com/paulmach/orb"

	"github.com/ballotink/markcheck/internal/ink"
)

func explainedDefault(p orb.Point, axis1, axis2 float64, segs []Segment) float64 {
	cfg := DefaultConfig()
	return ExplainedRatio(p, axis1, axis2, segs, cfg.ArmAngleTolerance, cfg.CorridorHalfWidth)
}

func TestExplainedRatio_CleanCross(t *testing.T) {
	segs := BuildSegments([]ink.Stroke{
		line(60, 60, 240, 240),
		line(60, 240, 240, 60),
	})
	if got := explainedDefault(orb.Point{150, 150}, 45, 135, segs); got != 1 {
		t.Errorf("clean cross explained ratio = %v, want 1", got)
	}
}

func TestExplainedRatio_StrayInkLowersRatio(t *testing.T) {
	segs := BuildSegments([]ink.Stroke{
		line(60, 60, 240, 240),
		line(60, 240, 240, 60),
		line(60, 40, 240, 40), // horizontal decoration, on neither axis
	})
	got := explainedDefault(orb.Point{150, 150}, 45, 135, segs)

	crossInk := 2 * 180 * math.Sqrt2
	want := crossInk / (crossInk + 180)
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("ratio = %v, want %v", got, want)
	}
}

func TestExplainedRatio_Bounds(t *testing.T) {
	segs := BuildSegments([]ink.Stroke{
		line(60, 60, 240, 240),
		line(60, 40, 240, 40),
		line(100, 250, 110, 290),
	})
	got := explainedDefault(orb.Point{150, 150}, 45, 135, segs)
	if got < 0 || got > 1 {
		t.Errorf("ratio %v out of [0,1]", got)
	}
}

func TestExplainedRatio_NoInk(t *testing.T) {
	if got := explainedDefault(orb.Point{150, 150}, 45, 135, nil); got != 0 {
		t.Errorf("empty segment list ratio = %v, want 0", got)
	}
}

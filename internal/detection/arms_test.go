package detection

import (
	"math"
	"testing"

	"github.com/paulmach/orb"

	"github.com/ballotink/markcheck/internal/ink"
)

func measureDefault(p orb.Point, dir1, dir2 float64, segs []Segment) ArmMeasurement {
	cfg := DefaultConfig()
	return MeasureArms(p, dir1, dir2, segs,
		cfg.ArmAngleTolerance, cfg.CorridorHalfWidth, cfg.MinArmExtension)
}

func TestMeasureArms_CleanCross(t *testing.T) {
	segs := BuildSegments([]ink.Stroke{
		line(60, 60, 240, 240),
		line(60, 240, 240, 60),
	})
	m := measureDefault(orb.Point{150, 150}, 45, 135, segs)

	if !m.Valid {
		t.Fatalf("clean cross arms invalid: %+v", m)
	}
	want := 90 * math.Sqrt2
	for i, e := range m.Extensions {
		if math.Abs(e-want) > 1 {
			t.Errorf("arm %d extension = %v, want ~%v", i, e, want)
		}
	}
	if math.Abs(m.Min-want) > 1 {
		t.Errorf("min extension = %v, want ~%v", m.Min, want)
	}
}

func TestMeasureArms_AngleOrderCorrespondence(t *testing.T) {
	segs := BuildSegments([]ink.Stroke{
		line(60, 60, 240, 240),
		line(60, 240, 240, 60),
	})
	m := measureDefault(orb.Point{150, 150}, 45, 135, segs)

	want := [4]float64{45, 225, 135, 315}
	if m.Angles != want {
		t.Errorf("arm angles = %v, want %v", m.Angles, want)
	}
}

func TestMeasureArms_TruncatedArmFails(t *testing.T) {
	// The second stroke barely extends past the crossing on one side.
	segs := BuildSegments([]ink.Stroke{
		line(60, 60, 240, 240),
		line(142, 158, 240, 60),
	})
	m := measureDefault(orb.Point{150, 150}, 45, 135, segs)

	if m.Valid {
		t.Fatalf("truncated arm accepted: %+v", m)
	}
	if m.Min > 12 {
		t.Errorf("min extension = %v, want ~11.3", m.Min)
	}
}

func TestMeasureArms_UsesAllStrokes(t *testing.T) {
	// A third, collinear stroke extends one arm beyond the crossing pair.
	segs := BuildSegments([]ink.Stroke{
		line(60, 60, 240, 240),
		line(60, 240, 240, 60),
		line(240, 240, 290, 290),
	})
	m := measureDefault(orb.Point{150, 150}, 45, 135, segs)

	want := 140 * math.Sqrt2
	if math.Abs(m.Extensions[0]-want) > 1 {
		t.Errorf("extended arm = %v, want ~%v", m.Extensions[0], want)
	}
}

func TestMeasureArms_IgnoresBackwardInk(t *testing.T) {
	// Ink strictly behind the crossing must not count toward a forward arm.
	segs := BuildSegments([]ink.Stroke{
		line(60, 60, 140, 140),
	})
	m := measureDefault(orb.Point{150, 150}, 45, 135, segs)

	if m.Extensions[0] != 0 {
		t.Errorf("forward arm sees backward ink: %v", m.Extensions[0])
	}
	if m.Extensions[1] < 100 {
		t.Errorf("backward arm = %v, want ~127", m.Extensions[1])
	}
}

func TestMeasureArms_CorridorRejectsOffsetInk(t *testing.T) {
	// Parallel ink far from the arm's axis must not count.
	segs := BuildSegments([]ink.Stroke{
		line(60, 100, 240, 280), // 45 degrees, offset ~28 from the axis
	})
	m := measureDefault(orb.Point{150, 150}, 45, 135, segs)

	if m.Extensions[0] != 0 || m.Extensions[1] != 0 {
		t.Errorf("offset ink leaked into arms: %+v", m.Extensions)
	}
}

func TestArmMeasurementBalance(t *testing.T) {
	m := ArmMeasurement{Extensions: [4]float64{100, 100, 25, 100}, Min: 25}
	if got := m.Balance(); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("Balance() = %v, want 0.25", got)
	}

	zero := ArmMeasurement{}
	if zero.Balance() != 0 {
		t.Errorf("zero measurement balance = %v, want 0", zero.Balance())
	}
}

func TestArmMeasurementAverage(t *testing.T) {
	m := ArmMeasurement{Extensions: [4]float64{10, 20, 30, 40}}
	if got := m.Average(); math.Abs(got-25) > 1e-9 {
		t.Errorf("Average() = %v, want 25", got)
	}
}

package detection

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/ballotink/markcheck/internal/ink"
)

// Validator classifies ink marks against a fixed calibration. It holds no
// per-call state and is safe for concurrent use.
type Validator struct {
	cfg Config
	box orb.Bound
}

// NewValidator creates a validator for the given calibration. The config
// is copied and treated as immutable for the validator's lifetime.
func NewValidator(cfg Config) *Validator {
	return &Validator{cfg: cfg, box: cfg.Box()}
}

// Config returns the validator's calibration.
func (v *Validator) Config() Config {
	return v.cfg
}

// Validate classifies a stroke snapshot. The checks run in strict
// precedence order; the first one that fails determines the category.
// When debug is true, the result carries the pipeline's intermediate
// artifacts; the flag never changes the decision.
//
// Validate reads the strokes but never mutates them, and every invocation
// builds its derived state from scratch.
func (v *Validator) Validate(strokes []ink.Stroke, debug bool) *Result {
	cfg := v.cfg
	dbg := &DebugInfo{}

	// 1. Waiting: nothing drawn yet.
	if len(strokes) == 0 {
		return v.finish(nil, CategoryWaiting, "no strokes drawn", dbg, debug)
	}

	// 2. Blank: not enough ink.
	totalInk := ink.TotalLength(strokes)
	dbg.TotalInk = totalInk
	if totalInk < cfg.MinInkLength {
		return v.reject(CategoryBlank,
			fmt.Sprintf("total ink %.1f is below the %.1f minimum", totalInk, cfg.MinInkLength),
			dbg, debug)
	}

	// 3. Preprocess and guard against scribbles.
	simplified := make([]ink.Stroke, len(strokes))
	for i, s := range strokes {
		simplified[i] = ink.Preprocess(s, cfg.ResampleStep, cfg.SimplifyTolerance)
	}
	pointCount := ink.PointCount(simplified)
	dbg.PointCount = pointCount
	if debug {
		dbg.Simplified = make([][]orb.Point, len(simplified))
		for i, s := range simplified {
			dbg.Simplified[i] = []orb.Point(s)
		}
	}
	if pointCount > cfg.MaxPointCount {
		return v.reject(CategoryWrongSymbol,
			fmt.Sprintf("%d points after simplification exceeds the %d scribble limit",
				pointCount, cfg.MaxPointCount),
			dbg, debug)
	}

	// 4. Outside box. Simplified segments can be long, so each one is
	// sampled densely; endpoints alone would miss excursions.
	if p, out := v.pointOutsideBox(simplified); out {
		return v.reject(CategoryOutsideBox,
			fmt.Sprintf("ink at (%.1f, %.1f) leaves the answer box", p[0], p[1]),
			dbg, debug)
	}

	// 5. Segments and intersections.
	segs := BuildSegments(simplified)
	dbg.SegmentCount = len(segs)
	inters := FindIntersections(segs, v.box, cfg.MinCrossingAngle, cfg.EndpointExclusion)
	dbg.Intersections = inters
	if len(inters) == 0 {
		return v.reject(CategoryNoCross, "no two strokes cross", dbg, debug)
	}

	// 6. Cluster intersections and measure arms for every member.
	clusters, clusterOf := ClusterIntersections(inters, segs, cfg.ClusterEps)
	measurements := make([]ArmMeasurement, len(inters))
	for i, it := range inters {
		d1 := foldDirection(segs[it.Seg1].Direction())
		d2 := foldDirection(segs[it.Seg2].Direction())
		m := MeasureArms(it.Point, d1, d2, segs,
			cfg.ArmAngleTolerance, cfg.CorridorHalfWidth, cfg.MinArmExtension)
		measurements[i] = m
		if m.Valid {
			clusters[clusterOf[i]].CrossValid = true
		}
	}
	dbg.Clusters = clusters

	// 7. Scale reference: median four-arm average across all valid
	// intersections, or the fixed fallback when none exist yet.
	var armAverages []float64
	for i := range inters {
		if measurements[i].Valid {
			armAverages = append(armAverages, measurements[i].Average())
		}
	}
	scaleRef := cfg.FallbackScaleRef
	if len(armAverages) > 0 {
		scaleRef = median(armAverages)
	}
	dbg.ScaleReference = scaleRef

	// 8. Multiple well-separated valid crossings.
	if cat, reason, flagged := v.checkSeparation(clusters, scaleRef); flagged {
		return v.reject(cat, reason, dbg, debug)
	}

	// 9. Candidate list: every intersection with four sufficient arms,
	// stamped with its cluster's distinct-stroke count.
	var candidates []CrossCandidate
	for i, it := range inters {
		if !measurements[i].Valid {
			continue
		}
		ci := clusterOf[i]
		candidates = append(candidates, CrossCandidate{
			Point:        it.Point,
			Arms:         measurements[i],
			Strokes:      clusters[ci].Strokes,
			Intersection: i,
			Cluster:      ci,
		})
	}
	dbg.Candidates = candidates
	if len(candidates) == 0 {
		return v.reject(CategoryWrongSymbol,
			"strokes cross but no crossing has four sufficient arms", dbg, debug)
	}

	// 10. Best candidate: largest weakest arm; first one wins ties.
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.MinExtension() > best.MinExtension() {
			best = c
		}
	}
	dbg.Best = &best

	// 11. Branch count around the best candidate.
	branches := v.branchCount(best.Point, segs)
	dbg.BranchCount = branches

	// 12. Multi-line star: three or more distinct strokes converging on
	// the crossing. Checked before the branch counts because angularly
	// close lines can collapse into two branches and hide the star.
	if best.Strokes >= 3 {
		return v.reject(CategoryWrongSymbol,
			fmt.Sprintf("%d strokes converge on the crossing", best.Strokes),
			dbg, debug)
	}

	// 13-14. Branch count floor and ceiling.
	switch {
	case branches < 2:
		return v.reject(CategoryWrongSymbol,
			fmt.Sprintf("only %d ink direction(s) at the crossing", branches),
			dbg, debug)
	case branches == 3:
		// Two strokes or fewer: a pen-direction change naturally adds a
		// third branch, so let it pass. With three or more strokes the
		// arm balance separates a cross plus emphasis from a lopsided
		// star.
		if len(strokes) >= 3 {
			if balance := best.Arms.Balance(); balance < cfg.ArmBalanceMin {
				return v.reject(CategoryWrongSymbol,
					fmt.Sprintf("three branches with arm balance %.2f below %.2f",
						balance, cfg.ArmBalanceMin),
					dbg, debug)
			}
		}
	case branches >= 4:
		return v.reject(CategoryWrongSymbol,
			fmt.Sprintf("%d ink directions at the crossing", branches),
			dbg, debug)
	}

	// 15. Explained ink against the best candidate's two axes.
	axis1 := foldDirection(segs[inters[best.Intersection].Seg1].Direction())
	axis2 := foldDirection(segs[inters[best.Intersection].Seg2].Direction())
	ratio := ExplainedRatio(best.Point, axis1, axis2, segs,
		cfg.ArmAngleTolerance, cfg.CorridorHalfWidth)
	dbg.ExplainedRatio = ratio
	threshold := v.explainedThreshold(len(strokes))
	if ratio < threshold {
		return v.reject(CategoryExtraWriting,
			fmt.Sprintf("only %.0f%% of ink fits the cross axes (need %.0f%%)",
				ratio*100, threshold*100),
			dbg, debug)
	}

	// 16. Valid.
	valid := true
	return v.finish(&valid, CategoryValid, "mark is a valid cross", dbg, debug)
}

// pointOutsideBox walks every simplified segment at resample-step spacing
// and reports the first interpolated point outside the box plus tolerance.
func (v *Validator) pointOutsideBox(strokes []ink.Stroke) (orb.Point, bool) {
	tol := v.cfg.BoxTolerance
	step := v.cfg.ResampleStep
	for _, s := range strokes {
		if len(s) == 0 {
			continue
		}
		if !v.insideBox(s[0], tol) {
			return s[0], true
		}
		for i := 1; i < len(s); i++ {
			a, b := s[i-1], s[i]
			segLen := planar.Distance(a, b)
			for t := step; t < segLen; t += step {
				f := t / segLen
				p := orb.Point{a[0] + (b[0]-a[0])*f, a[1] + (b[1]-a[1])*f}
				if !v.insideBox(p, tol) {
					return p, true
				}
			}
			if !v.insideBox(b, tol) {
				return b, true
			}
		}
	}
	return orb.Point{}, false
}

func (v *Validator) insideBox(p orb.Point, tol float64) bool {
	return p[0] >= v.box.Min[0]-tol && p[0] <= v.box.Max[0]+tol &&
		p[1] >= v.box.Min[1]-tol && p[1] <= v.box.Max[1]+tol
}

// checkSeparation scans every pair of cross-valid cluster centroids and
// bands their separation relative to the scale reference. A multi-mark
// pair stops the scan immediately; an intentional pair is flagged but
// scanning continues, and multi-mark wins when both occur.
func (v *Validator) checkSeparation(clusters []Cluster, scaleRef float64) (Category, string, bool) {
	var valid []Cluster
	for _, c := range clusters {
		if c.CrossValid {
			valid = append(valid, c)
		}
	}
	if len(valid) < 2 || scaleRef <= 0 {
		return "", "", false
	}

	multi := false
	intentional := false
scan:
	for i := 0; i < len(valid); i++ {
		for j := i + 1; j < len(valid); j++ {
			r := planar.Distance(valid[i].Centroid, valid[j].Centroid) / scaleRef
			switch {
			case r >= v.cfg.MultiMarkRatio:
				multi = true
				break scan
			case r >= v.cfg.IntentionalRatio:
				intentional = true
			default:
				// Below the retrace band (and the gap up to the
				// intentional ratio): same mark, retraced.
			}
		}
	}

	switch {
	case multi:
		return CategoryMultiMark, "two separate valid crosses drawn", true
	case intentional:
		return CategoryIntentional, "secondary cross reads as intentional invalidation", true
	}
	return "", "", false
}

// branchCount clusters the directions of all segments within the topology
// radius of p and returns the surviving mode count.
func (v *Validator) branchCount(p orb.Point, segs []Segment) int {
	var dirs []WeightedDirection
	for _, s := range segs {
		if distToSegment(p, s.P1, s.P2) > v.cfg.TopologyRadius {
			continue
		}
		dirs = append(dirs, WeightedDirection{Angle: s.Direction(), Weight: s.Length})
	}
	return len(DirectionModes(dirs, v.cfg.TopologyAngleTolerance))
}

func (v *Validator) explainedThreshold(strokeCount int) float64 {
	switch strokeCount {
	case 1:
		return v.cfg.ExplainedOneStroke
	case 2:
		return v.cfg.ExplainedTwoStrokes
	default:
		return v.cfg.ExplainedManyStrokes
	}
}

func (v *Validator) reject(cat Category, reason string, dbg *DebugInfo, debug bool) *Result {
	invalid := false
	return v.finish(&invalid, cat, reason, dbg, debug)
}

func (v *Validator) finish(valid *bool, cat Category, reason string, dbg *DebugInfo, debug bool) *Result {
	res := &Result{Valid: valid, Category: cat, Reason: reason}
	if debug {
		res.Debug = dbg
	}
	return res
}

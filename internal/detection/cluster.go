package detection

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Cluster is a spatial group of intersections. Members indexes into the
// intersection list; Strokes counts the distinct stroke identities across
// every member's two segments, not just one member's pair. CrossValid is
// set by the decision engine once any member passes the arm check.
type Cluster struct {
	Members    []int     `json:"members"`
	Centroid   orb.Point `json:"centroid"`
	Strokes    int       `json:"strokes"`
	CrossValid bool      `json:"cross_valid"`
}

// ClusterIntersections groups intersections by greedy single-linkage
// chaining: a cluster absorbs every unvisited intersection within eps of
// any point already in the cluster, transitively, until none remain. A
// cluster's diameter may therefore exceed eps; chains of near-eps hops
// capturing thick or retraced ink are intentional.
//
// The second return value maps each intersection index to its cluster
// index, so callers can look a cluster up without rescanning memberships.
func ClusterIntersections(inters []Intersection, segs []Segment, eps float64) ([]Cluster, []int) {
	clusterOf := make([]int, len(inters))
	for i := range clusterOf {
		clusterOf[i] = -1
	}

	var clusters []Cluster
	for i := range inters {
		if clusterOf[i] >= 0 {
			continue
		}
		ci := len(clusters)
		members := []int{i}
		clusterOf[i] = ci

		// Absorb until a full pass adds nothing.
		for grew := true; grew; {
			grew = false
			for j := range inters {
				if clusterOf[j] >= 0 {
					continue
				}
				for _, m := range members {
					if planar.Distance(inters[j].Point, inters[m].Point) <= eps {
						members = append(members, j)
						clusterOf[j] = ci
						grew = true
						break
					}
				}
			}
		}

		clusters = append(clusters, Cluster{
			Members:  members,
			Centroid: centroidOf(inters, members),
			Strokes:  distinctStrokes(inters, segs, members),
		})
	}
	return clusters, clusterOf
}

func centroidOf(inters []Intersection, members []int) orb.Point {
	var x, y float64
	for _, m := range members {
		x += inters[m].Point[0]
		y += inters[m].Point[1]
	}
	n := float64(len(members))
	return orb.Point{x / n, y / n}
}

// distinctStrokes counts distinct stroke identities across all member
// intersections. A three-stroke star yields three pairwise intersections
// that each see only two strokes; only this cluster-wide union reveals the
// third.
func distinctStrokes(inters []Intersection, segs []Segment, members []int) int {
	seen := make(map[int]struct{})
	for _, m := range members {
		seen[segs[inters[m].Seg1].Stroke] = struct{}{}
		seen[segs[inters[m].Seg2].Stroke] = struct{}{}
	}
	return len(seen)
}

// DirectionMode is one angular cluster of ink directions: a weighted mean
// angle in [0, 180) and the summed segment length behind it.
type DirectionMode struct {
	Angle  float64 `json:"angle_degrees"`
	Weight float64 `json:"weight"`
}

// WeightedDirection is one segment's contribution to direction clustering.
type WeightedDirection struct {
	Angle  float64 // degrees, any range; folded internally
	Weight float64 // typically the segment length
}

// DirectionModes clusters directions angularly: values are folded into
// [0, 180), sorted, and consecutive angles within tol merge into weighted
// running modes. After the sweep the wrap-around seam is checked: if the
// last and first mode are within tol measured through 0/180, they merge.
// Modes come back sorted by descending weight; their count is the branch
// count around a point.
func DirectionModes(dirs []WeightedDirection, tol float64) []DirectionMode {
	if len(dirs) == 0 {
		return nil
	}

	folded := make([]WeightedDirection, len(dirs))
	for i, d := range dirs {
		folded[i] = WeightedDirection{Angle: foldDirection(d.Angle), Weight: d.Weight}
	}
	sort.Slice(folded, func(i, j int) bool { return folded[i].Angle < folded[j].Angle })

	var modes []DirectionMode
	for _, d := range folded {
		if len(modes) > 0 {
			last := &modes[len(modes)-1]
			if d.Angle-last.Angle <= tol {
				w := last.Weight + d.Weight
				last.Angle = (last.Angle*last.Weight + d.Angle*d.Weight) / w
				last.Weight = w
				continue
			}
		}
		modes = append(modes, DirectionMode{Angle: d.Angle, Weight: d.Weight})
	}

	// Wrap-around: the gap between the last and first mode through the
	// 0/180 seam may itself be within tolerance.
	if len(modes) >= 2 {
		first, last := modes[0], modes[len(modes)-1]
		if first.Angle+180-last.Angle <= tol {
			w := first.Weight + last.Weight
			merged := (first.Angle*first.Weight + (last.Angle-180)*last.Weight) / w
			modes[0] = DirectionMode{Angle: foldDirection(merged), Weight: w}
			modes = modes[:len(modes)-1]
		}
	}

	sort.SliceStable(modes, func(i, j int) bool { return modes[i].Weight > modes[j].Weight })
	return modes
}

// median returns the median of values, averaging the middle pair for even
// counts. It returns math.NaN for an empty slice; callers guard for that.
func median(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

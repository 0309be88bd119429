package detection

import "github.com/paulmach/orb"

// Category is the final classification of a mark. The constants are listed
// in precedence order: once a check rejects with a category, later checks
// never run.
type Category string

const (
	// CategoryWaiting means no strokes were drawn yet. It is a neutral
	// state, not a rejection.
	CategoryWaiting Category = "waiting"

	// CategoryBlank means the total ink length is below the minimum.
	CategoryBlank Category = "blank"

	// CategoryOutsideBox means some ink leaves the bounding region by more
	// than the tolerance.
	CategoryOutsideBox Category = "outside_box"

	// CategoryNoCross means no two segments cross anywhere.
	CategoryNoCross Category = "no_cross"

	// CategoryMultiMark means two well-separated valid crossings exist.
	CategoryMultiMark Category = "multi_mark"

	// CategoryIntentional means a moderately separated secondary crossing
	// exists, read as an intentional invalidation of the mark.
	CategoryIntentional Category = "intentional"

	// CategoryWrongSymbol covers wrong topology: scribbles, marks with no
	// valid arm structure, too few or too many branches, multi-stroke
	// stars, and imbalanced emphasis marks.
	CategoryWrongSymbol Category = "wrong_symbol"

	// CategoryExtraWriting means a valid cross exists but too much ink is
	// unexplained by its two axes.
	CategoryExtraWriting Category = "extra_writing"

	// CategoryValid means the mark passed every check.
	CategoryValid Category = "valid"
)

// Result is the outcome of one validation call.
type Result struct {
	// Valid is true for an accepted cross, false for any rejection, and
	// nil while no strokes have been drawn (the waiting state).
	Valid *bool `json:"valid"`

	// Category tags the outcome; for Valid == false it names the
	// rejection reason class.
	Category Category `json:"category"`

	// Reason is a human-readable sentence describing the outcome.
	Reason string `json:"reason"`

	// Debug carries intermediate pipeline artifacts when validation was
	// invoked with the debug flag. It is purely additive diagnostic
	// output and never influences the decision.
	Debug *DebugInfo `json:"debug,omitempty"`
}

// DebugInfo exposes the pipeline's intermediate artifacts for diagnostic
// tooling such as the snapshot renderer.
type DebugInfo struct {
	PointCount     int              `json:"point_count"`
	TotalInk       float64          `json:"total_ink"`
	SegmentCount   int              `json:"segment_count"`
	Simplified     [][]orb.Point    `json:"simplified,omitempty"`
	Intersections  []Intersection   `json:"intersections,omitempty"`
	Clusters       []Cluster        `json:"clusters,omitempty"`
	Candidates     []CrossCandidate `json:"candidates,omitempty"`
	Best           *CrossCandidate  `json:"best,omitempty"`
	ScaleReference float64          `json:"scale_reference,omitempty"`
	BranchCount    int              `json:"branch_count,omitempty"`
	ExplainedRatio float64          `json:"explained_ratio,omitempty"`
}

package detection

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	yaml "gopkg.in/yaml.v2"
)

// Config holds every numeric and geometric parameter of the classifier.
//
// A Config is supplied once when constructing a Validator and must not be
// modified afterwards. All lengths are in logical units of the capture
// space, all angles in degrees.
//
// Alternate calibrations can be kept as YAML profiles and applied with
// LoadConfig; fields omitted from a profile keep their default values.
type Config struct {
	// Bounding region of the answer box and the slack allowed before a
	// stroke counts as leaving it.
	BoxMinX      float64 `yaml:"box_min_x"`
	BoxMinY      float64 `yaml:"box_min_y"`
	BoxMaxX      float64 `yaml:"box_max_x"`
	BoxMaxY      float64 `yaml:"box_max_y"`
	BoxTolerance float64 `yaml:"box_tolerance"`

	// MinInkLength is the total arc length below which a mark is blank.
	MinInkLength float64 `yaml:"min_ink_length"`

	// MaxPointCount caps the total post-simplification point count;
	// anything denser is treated as a scribble.
	MaxPointCount int `yaml:"max_point_count"`

	// Preprocessing: resample spacing and RDP tolerance.
	ResampleStep      float64 `yaml:"resample_step"`
	SimplifyTolerance float64 `yaml:"simplify_tolerance"`

	// Intersection filtering: minimum acute crossing angle and the radius
	// around stroke endpoints inside which crossings are ignored
	// (tip-to-tip touches are not crossings).
	MinCrossingAngle  float64 `yaml:"min_crossing_angle"`
	EndpointExclusion float64 `yaml:"endpoint_exclusion"`

	// ClusterEps is the chaining distance for spatial intersection
	// clustering.
	ClusterEps float64 `yaml:"cluster_eps"`

	// Arm measurement: minimum ink reach per arm, the corridor half-width
	// around an arm's axis, and the angular tolerance for a segment to
	// count toward an arm.
	MinArmExtension   float64 `yaml:"min_arm_extension"`
	CorridorHalfWidth float64 `yaml:"corridor_half_width"`
	ArmAngleTolerance float64 `yaml:"arm_angle_tolerance"`

	// Branch topology: radius around the chosen crossing within which ink
	// directions are counted, and the merge tolerance between directions.
	TopologyRadius         float64 `yaml:"topology_radius"`
	TopologyAngleTolerance float64 `yaml:"topology_angle_tolerance"`

	// Separation ratios relative to the scale reference. Below
	// RetraceRatio two valid crossings are the same retraced mark; at or
	// above MultiMarkRatio they are two marks; from IntentionalRatio up to
	// MultiMarkRatio the second crossing counts as an intentional
	// invalidation.
	RetraceRatio     float64 `yaml:"retrace_ratio"`
	IntentionalRatio float64 `yaml:"intentional_ratio"`
	MultiMarkRatio   float64 `yaml:"multi_mark_ratio"`

	// FallbackScaleRef is used as the scale reference when no valid
	// crossing exists to measure one from.
	FallbackScaleRef float64 `yaml:"fallback_scale_ref"`

	// Explained-ink thresholds by stroke count. Single-stroke crosses
	// inherently leave unexplained loop ink at the turn point, so the
	// threshold tightens as the stroke count rises.
	ExplainedOneStroke   float64 `yaml:"explained_one_stroke"`
	ExplainedTwoStrokes  float64 `yaml:"explained_two_strokes"`
	ExplainedManyStrokes float64 `yaml:"explained_many_strokes"`

	// ArmBalanceMin is the minimum weakest/strongest arm ratio that lets a
	// three-branch, three-stroke mark pass as a cross with emphasis.
	ArmBalanceMin float64 `yaml:"arm_balance_min"`
}

// DefaultConfig returns the canonical calibration for a 300x300 logical
// capture region.
func DefaultConfig() Config {
	return Config{
		BoxMinX:      0,
		BoxMinY:      0,
		BoxMaxX:      300,
		BoxMaxY:      300,
		BoxTolerance: 8,

		MinInkLength:  30,
		MaxPointCount: 60,

		ResampleStep:      4,
		SimplifyTolerance: 2,

		MinCrossingAngle:  15,
		EndpointExclusion: 6,

		ClusterEps: 20,

		MinArmExtension:   12,
		CorridorHalfWidth: 8,
		ArmAngleTolerance: 25,

		TopologyRadius:         60,
		TopologyAngleTolerance: 30,

		RetraceRatio:     0.12,
		IntentionalRatio: 0.20,
		MultiMarkRatio:   1.0,

		FallbackScaleRef: 30,

		ExplainedOneStroke:   0.60,
		ExplainedTwoStrokes:  0.70,
		ExplainedManyStrokes: 0.80,

		ArmBalanceMin: 0.35,
	}
}

// LoadConfig reads a YAML calibration profile and overlays it on the
// default configuration.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports the first structurally impossible parameter combination.
func (c Config) Validate() error {
	if c.BoxMaxX <= c.BoxMinX || c.BoxMaxY <= c.BoxMinY {
		return fmt.Errorf("invalid config: bounding box (%g,%g)-(%g,%g) is empty",
			c.BoxMinX, c.BoxMinY, c.BoxMaxX, c.BoxMaxY)
	}
	if c.ResampleStep <= 0 {
		return fmt.Errorf("invalid config: resample step must be positive, got %g", c.ResampleStep)
	}
	if c.RetraceRatio > c.IntentionalRatio || c.IntentionalRatio > c.MultiMarkRatio {
		return fmt.Errorf("invalid config: separation ratios must be ordered retrace <= intentional <= multi_mark, got %g/%g/%g",
			c.RetraceRatio, c.IntentionalRatio, c.MultiMarkRatio)
	}
	return nil
}

// Box returns the bounding region as an orb.Bound.
func (c Config) Box() orb.Bound {
	return orb.Bound{
		Min: orb.Point{c.BoxMinX, c.BoxMinY},
		Max: orb.Point{c.BoxMaxX, c.BoxMaxY},
	}
}

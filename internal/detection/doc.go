// Package detection classifies a freehand ink mark as a valid cross or one
// of several invalid categories, following manual ballot-adjudication rules.
//
// The classifier is a multi-stage geometric pipeline over the stroke set:
//
//  1. Preprocessing: each stroke is resampled and RDP-simplified (package ink)
//  2. Segment building: simplified strokes become directed line segments
//     tagged with stroke identity
//  3. Intersection finding: pairwise segment crossings inside the bounding
//     region, filtered by crossing angle and endpoint proximity
//  4. Clustering: intersections are grouped spatially (greedy chaining);
//     ink directions are grouped angularly into weighted modes
//  5. Arm extension: from a candidate crossing point, ink reach is measured
//     along the four arm directions of the two underlying strokes
//  6. Explained-ink scoring: the fraction of total ink consistent with the
//     two chosen cross axes
//  7. Decision: a strict precedence of checks combines these signals into a
//     final Category
//
// # Determinism and Purity
//
// Validation is a pure, synchronous computation over an immutable stroke
// snapshot. It performs no I/O, holds no state across calls, and is safe
// for concurrent use as long as each call receives its own stroke slice.
// Every code path terminates in a well-defined Category; degenerate
// geometry (parallel lines, zero-length segments, single points) is
// absorbed by epsilon guards rather than surfacing NaN or Infinity.
//
// # Calibration
//
// All thresholds live in Config, supplied once at Validator construction
// and treated as immutable afterwards. Separation thresholds between
// multiple marks scale with a robust (median) estimate of the drawn cross's
// arm length rather than with fixed pixel distances, so the same
// calibration serves small and large handwriting.
package detection

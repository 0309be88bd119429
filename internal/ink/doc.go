// Package ink models freehand pen strokes and prepares them for geometric
// analysis.
//
// A stroke is the ordered point sequence produced by one continuous drawing
// gesture. This package provides:
//
//   - The Stroke type, backed by orb.LineString so the rest of the toolkit
//     can use the orb planar-geometry helpers directly
//   - Preprocessing: arc-length resampling followed by Ramer-Douglas-Peucker
//     simplification, producing the cleaned polylines the detection pipeline
//     operates on
//   - Mark files: loading recorded stroke sets from JSON, with a
//     concurrency-safe path-keyed cache for the server's path-oriented tools
//
// # Coordinate System
//
// All coordinates live in a fixed logical space matching the capture
// surface:
//   - Origin (0, 0) at top-left
//   - X increases rightward
//   - Y increases downward
//
// # Immutability
//
// Preprocessing never mutates its input; every function returns freshly
// allocated strokes. Callers own the raw strokes they pass in.
package ink

// Package render produces diagnostic snapshot images of a mark and the
// classifier's intermediate artifacts.
//
// A snapshot rasterizes the logical coordinate space: white background,
// the answer-box outline, the ink polylines, and - when debug artifacts
// are supplied - intersection dots colored per cluster and a crosshair on
// the chosen cross candidate.
//
// Snapshots are purely diagnostic. They consume the classifier's DebugInfo
// output and can never influence a classification.
package render

// Package server implements the MCP (Model Context Protocol) surface of
// the mark-validation toolkit: a JSON-RPC server over stdin/stdout that
// exposes the classifier as tools.
//
// Available tools:
//
//   - mark_load: load a mark file and report stroke/point counts, total
//     ink, and bounds
//   - mark_validate: classify a mark (from a file path or inline strokes),
//     optionally with debug artifacts
//   - mark_render: render a diagnostic PNG snapshot of a mark with the
//     classifier's overlay
//   - config_show: report the active calibration
//
// The protocol layer handles initialize, tools/list, tools/call, and ping.
// Loaded mark files are cached per path; the classifier itself is
// stateless.
package server

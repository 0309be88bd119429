package ink

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/paulmach/orb"
)

// Mark is a recorded set of strokes, typically captured by a drawing
// surface and saved as a JSON mark file:
//
//	{"strokes": [[[x,y],[x,y],...], ...]}
type Mark struct {
	Strokes []Stroke `json:"strokes"`
}

// LoadMark reads and decodes a mark file from disk.
func LoadMark(path string) (*Mark, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open mark file: %w", err)
	}
	var m Mark
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode mark file: %w", err)
	}
	return &m, nil
}

// MarkCache provides thread-safe caching of loaded marks to avoid redundant
// disk reads when several tools are invoked against the same file.
//
// Marks are keyed by the exact path string provided; different paths to the
// same file result in separate entries. Cached marks remain in memory until
// removed via Evict or Clear.
//
// MarkCache is safe for concurrent use by multiple goroutines.
type MarkCache struct {
	mu    sync.RWMutex
	marks map[string]*Mark
}

// NewMarkCache creates and initializes a new empty mark cache.
func NewMarkCache() *MarkCache {
	return &MarkCache{
		marks: make(map[string]*Mark),
	}
}

// Load retrieves a mark from the cache or reads it from disk if not cached.
func (c *MarkCache) Load(path string) (*Mark, error) {
	c.mu.RLock()
	if m, ok := c.marks[path]; ok {
		c.mu.RUnlock()
		return m, nil
	}
	c.mu.RUnlock()

	m, err := LoadMark(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.marks[path] = m
	c.mu.Unlock()

	return m, nil
}

// Evict removes a specific mark from the cache by its path.
// If the path is not in the cache, Evict does nothing.
func (c *MarkCache) Evict(path string) {
	c.mu.Lock()
	delete(c.marks, path)
	c.mu.Unlock()
}

// Clear removes all marks from the cache.
func (c *MarkCache) Clear() {
	c.mu.Lock()
	c.marks = make(map[string]*Mark)
	c.mu.Unlock()
}

// MarkInfo contains summary metadata about a mark.
type MarkInfo struct {
	// StrokeCount is the number of strokes in the mark.
	StrokeCount int `json:"stroke_count"`

	// PointCount is the total number of raw points across all strokes.
	PointCount int `json:"point_count"`

	// TotalInk is the summed arc length of all strokes in logical units.
	TotalInk float64 `json:"total_ink"`

	// MinX, MinY, MaxX, MaxY describe the bounding box of all ink.
	// All four are zero for an empty mark.
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// Info summarizes a mark without modifying it.
func (m *Mark) Info() *MarkInfo {
	info := &MarkInfo{
		StrokeCount: len(m.Strokes),
		PointCount:  PointCount(m.Strokes),
		TotalInk:    TotalLength(m.Strokes),
	}

	var bound orb.Bound
	first := true
	for _, s := range m.Strokes {
		if len(s) == 0 {
			continue
		}
		if first {
			bound = s.Bound()
			first = false
			continue
		}
		bound = bound.Union(s.Bound())
	}
	if !first {
		info.MinX, info.MinY = bound.Min.X(), bound.Min.Y()
		info.MaxX, info.MaxY = bound.Max.X(), bound.Max.Y()
	}
	return info
}

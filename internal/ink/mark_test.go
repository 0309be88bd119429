package ink

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeMarkFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mark.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write mark file: %v", err)
	}
	return path
}

func TestLoadMark(t *testing.T) {
	path := writeMarkFile(t, `{"strokes": [[[0,0],[10,0]], [[5,-5],[5,5]]]}`)

	m, err := LoadMark(path)
	if err != nil {
		t.Fatalf("LoadMark failed: %v", err)
	}
	if len(m.Strokes) != 2 {
		t.Fatalf("got %d strokes, want 2", len(m.Strokes))
	}
	if m.Strokes[1][0][0] != 5 || m.Strokes[1][0][1] != -5 {
		t.Errorf("stroke 1 point 0 = %v, want (5,-5)", m.Strokes[1][0])
	}
}

func TestLoadMark_Missing(t *testing.T) {
	if _, err := LoadMark(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadMark_Malformed(t *testing.T) {
	path := writeMarkFile(t, `{"strokes": [[[0,0`)
	if _, err := LoadMark(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestMarkInfo(t *testing.T) {
	m := &Mark{Strokes: []Stroke{
		{{0, 0}, {10, 0}},
		{{5, -5}, {5, 5}},
	}}
	info := m.Info()

	if info.StrokeCount != 2 {
		t.Errorf("StrokeCount = %d, want 2", info.StrokeCount)
	}
	if info.PointCount != 4 {
		t.Errorf("PointCount = %d, want 4", info.PointCount)
	}
	if math.Abs(info.TotalInk-20) > 1e-9 {
		t.Errorf("TotalInk = %v, want 20", info.TotalInk)
	}
	if info.MinX != 0 || info.MinY != -5 || info.MaxX != 10 || info.MaxY != 5 {
		t.Errorf("bounds = (%v,%v)-(%v,%v), want (0,-5)-(10,5)",
			info.MinX, info.MinY, info.MaxX, info.MaxY)
	}
}

func TestMarkInfo_Empty(t *testing.T) {
	info := (&Mark{}).Info()
	if info.StrokeCount != 0 || info.TotalInk != 0 || info.MaxX != 0 {
		t.Errorf("empty mark info not zeroed: %+v", info)
	}
}

func TestMarkCache(t *testing.T) {
	path := writeMarkFile(t, `{"strokes": [[[0,0],[10,0]]]}`)
	cache := NewMarkCache()

	first, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	second, err := cache.Load(path)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if first != second {
		t.Error("second Load did not return the cached mark")
	}

	cache.Evict(path)
	third, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load after Evict failed: %v", err)
	}
	if third == first {
		t.Error("Load after Evict returned the evicted pointer")
	}

	cache.Clear()
	if _, err := cache.Load(path); err != nil {
		t.Fatalf("Load after Clear failed: %v", err)
	}
}

func TestMarkCache_MissingFile(t *testing.T) {
	cache := NewMarkCache()
	if _, err := cache.Load("/does/not/exist.json"); err == nil {
		t.Error("expected error for missing file")
	}
}

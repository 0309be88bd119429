package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/paulmach/orb"

	"github.com/ballotink/markcheck/internal/detection"
	"github.com/ballotink/markcheck/internal/ink"
)

// margin is the pixel border added around the logical box so ink at the
// box tolerance edge stays visible.
const margin = 12

// Options controls snapshot rendering.
type Options struct {
	// Scale resizes the finished snapshot. Values <= 0 mean 1.0.
	Scale float64

	// Overlay draws the classifier's debug artifacts (cluster dots,
	// candidate crosshair) on top of the ink.
	Overlay bool

	// PenRadius is the Gaussian blur radius used to give the 1px
	// rasterized polylines a pen-like width. Values <= 0 mean 1.0.
	PenRadius float64
}

// Snapshot is a rendered diagnostic image, base64-encoded for transport
// inside a JSON tool result.
type Snapshot struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Render rasterizes a mark (and optionally the classifier's debug
// artifacts) into a PNG snapshot.
func Render(box orb.Bound, strokes []ink.Stroke, dbg *detection.DebugInfo, opts Options) (*Snapshot, error) {
	if opts.Scale <= 0 {
		opts.Scale = 1.0
	}
	if opts.PenRadius <= 0 {
		opts.PenRadius = 1.0
	}

	img := rasterize(box, strokes, dbg, opts)

	final := image.Image(img)
	if opts.Scale != 1.0 {
		w := int(float64(img.Bounds().Dx()) * opts.Scale)
		h := int(float64(img.Bounds().Dy()) * opts.Scale)
		if w < 1 || h < 1 {
			return nil, fmt.Errorf("scale %g collapses the snapshot", opts.Scale)
		}
		final = imaging.Resize(img, w, h, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, final); err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return &Snapshot{
		Width:       final.Bounds().Dx(),
		Height:      final.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

func rasterize(box orb.Bound, strokes []ink.Stroke, dbg *detection.DebugInfo, opts Options) *image.RGBA {
	w := int(math.Ceil(box.Max[0]-box.Min[0])) + 2*margin
	h := int(math.Ceil(box.Max[1]-box.Min[1])) + 2*margin
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	toPixel := func(p orb.Point) (int, int) {
		return int(math.Round(p[0]-box.Min[0])) + margin,
			int(math.Round(p[1]-box.Min[1])) + margin
	}

	for _, s := range strokes {
		drawPolyline(img, s, toPixel, color.Black)
	}

	// Soften the 1px polylines into pen-width ink.
	img = blur.Gaussian(img, opts.PenRadius)

	outline := color.RGBA{R: 0xB0, G: 0xB0, B: 0xB0, A: 0xFF}
	drawRect(img, margin, margin, w-margin-1, h-margin-1, outline)

	if opts.Overlay && dbg != nil {
		drawOverlay(img, dbg, toPixel)
	}
	return img
}

func drawOverlay(img *image.RGBA, dbg *detection.DebugInfo, toPixel func(orb.Point) (int, int)) {
	if len(dbg.Clusters) > 0 {
		palette := colorful.FastHappyPalette(len(dbg.Clusters))
		for ci, cluster := range dbg.Clusters {
			r, g, b := palette[ci].RGB255()
			c := color.RGBA{R: r, G: g, B: b, A: 0xFF}
			for _, m := range cluster.Members {
				x, y := toPixel(dbg.Intersections[m].Point)
				fillCircle(img, x, y, 3, c)
			}
			x, y := toPixel(cluster.Centroid)
			fillCircle(img, x, y, 5, c)
		}
	}

	if dbg.Best != nil {
		red := color.RGBA{R: 0xD0, A: 0xFF}
		x, y := toPixel(dbg.Best.Point)
		for d := -8; d <= 8; d++ {
			set(img, x+d, y, red)
			set(img, x, y+d, red)
		}
	}
}

func drawPolyline(img *image.RGBA, s ink.Stroke, toPixel func(orb.Point) (int, int), c color.Color) {
	for i := 1; i < len(s); i++ {
		a, b := s[i-1], s[i]
		dx, dy := b[0]-a[0], b[1]-a[1]
		steps := int(math.Hypot(dx, dy)*2) + 1
		for t := 0; t <= steps; t++ {
			f := float64(t) / float64(steps)
			x, y := toPixel(orb.Point{a[0] + dx*f, a[1] + dy*f})
			set(img, x, y, c)
		}
	}
}

func drawRect(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	for x := x1; x <= x2; x++ {
		set(img, x, y1, c)
		set(img, x, y2, c)
	}
	for y := y1; y <= y2; y++ {
		set(img, x1, y, c)
		set(img, x2, y, c)
	}
}

func fillCircle(img *image.RGBA, cx, cy, r int, c color.Color) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				set(img, cx+dx, cy+dy, c)
			}
		}
	}
}

func set(img *image.RGBA, x, y int, c color.Color) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.Set(x, y, c)
	}
}

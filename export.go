package liquid

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// ExportOptions controls offline rendering of recorded frames.
type ExportOptions struct {
	// Width and Height of every image. Zero sizes the image to the union of
	// all frame bounds plus Padding.
	Width, Height int
	Padding       float64

	Background Color

	// Caption draws Frame.String at the bottom of each image.
	Caption  bool
	FontSize float64

	// Every exports one frame out of Every; the last frame is always
	// exported. Zero or one exports all.
	Every int
}

// DefaultExportOptions returns white-background, captioned options.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		Padding:    24,
		Background: ColorWhite,
		Caption:    true,
		FontSize:   12,
		Every:      1,
	}
}

// exporter renders frames into a fixed canvas. origin is the world point
// drawn at the canvas' top-left corner.
type exporter struct {
	opts   ExportOptions
	width  int
	height int
	origin Vec2
	face   font.Face
}

func newExporter(frames []Frame, opts ExportOptions) (*exporter, error) {
	var bounds Rect
	for _, f := range frames {
		bounds = bounds.Union(f.Bounds)
	}
	e := &exporter{opts: opts, width: opts.Width, height: opts.Height}
	e.origin = Vec2{bounds.X - opts.Padding, bounds.Y - opts.Padding}
	if e.width <= 0 || e.height <= 0 {
		e.width = int(math.Ceil(bounds.Width + 2*opts.Padding))
		e.height = int(math.Ceil(bounds.Height + 2*opts.Padding))
	} else {
		// Center the content in the requested canvas.
		e.origin = Vec2{
			bounds.X + bounds.Width/2 - float64(e.width)/2,
			bounds.Y + bounds.Height/2 - float64(e.height)/2,
		}
	}
	if opts.Caption {
		face, err := captionFace(opts.FontSize)
		if err != nil {
			return nil, err
		}
		e.face = face
		e.height += int(math.Ceil(opts.FontSize * 2))
	}
	if e.width <= 0 || e.height <= 0 {
		return nil, fmt.Errorf("export: empty canvas %dx%d", e.width, e.height)
	}
	return e, nil
}

// captionFace loads the Go Mono face used for captions.
func captionFace(size float64) (font.Face, error) {
	if size <= 0 {
		size = 12
	}
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse caption font: %w", err)
	}
	return truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

func (e *exporter) render(f Frame) *gg.Context {
	dc := gg.NewContext(e.width, e.height)
	dc.SetColor(e.opts.Background)
	dc.Clear()

	dc.Push()
	dc.Translate(-e.origin.X, -e.origin.Y)
	DrawFrame(dc, f)
	dc.Pop()

	if e.face != nil {
		dc.SetFontFace(e.face)
		dc.SetColor(color.Black)
		dc.DrawString(f.String(), 8, float64(e.height)-e.opts.FontSize*0.6)
	}
	return dc
}

// DrawFrame draws one frame onto dc in world coordinates: spawned cells with
// their connectors first, the root last.
func DrawFrame(dc *gg.Context, f Frame) {
	dc.SetFillRuleWinding()
	for i := 1; i < len(f.Cells); i++ {
		drawSnapshot(dc, f.Cells[i], f.Cells[i-1].Color)
	}
	if len(f.Cells) > 0 {
		drawSnapshot(dc, f.Cells[0], f.Cells[0].Color)
	}
}

// drawSnapshot fills c's outline with the predecessor's membrane color,
// then the circle itself.
func drawSnapshot(dc *gg.Context, c CellSnapshot, membrane Color) {
	dc.SetColor(membrane)
	for _, p := range c.Outline.Paths {
		tracePath(dc, p)
		dc.Fill()
	}
	dc.SetColor(c.Color)
	dc.DrawCircle(c.Circle.Center.X, c.Circle.Center.Y, c.Circle.Radius)
	dc.Fill()
	if c.IconAlpha > 0 {
		// Icons are images owned by the widget; offline renders mark a
		// revealed icon with a white dot.
		dc.SetColor(ColorWhite.WithAlpha(c.IconAlpha))
		dc.DrawCircle(c.Circle.Center.X, c.Circle.Center.Y, c.Circle.Radius*0.2)
		dc.Fill()
	}
}

// tracePath replays p as gg path commands. gg joins an arc to the current
// point with a line, matching Path's arc semantics.
func tracePath(dc *gg.Context, p Path) {
	dc.NewSubPath()
	for _, s := range p.Segments {
		switch s.Kind {
		case SegmentMoveTo:
			dc.MoveTo(s.To.X, s.To.Y)
		case SegmentLineTo:
			dc.LineTo(s.To.X, s.To.Y)
		case SegmentQuadTo:
			dc.QuadraticTo(s.Control.X, s.Control.Y, s.To.X, s.To.Y)
		case SegmentArc:
			dc.DrawArc(s.Center.X, s.Center.Y, s.Radius, s.StartAngle, s.EndAngle)
		case SegmentClose:
			dc.ClosePath()
		}
	}
}

// RenderFrame renders a single frame to an image using opts.
func RenderFrame(f Frame, opts ExportOptions) (image.Image, error) {
	e, err := newExporter([]Frame{f}, opts)
	if err != nil {
		return nil, err
	}
	return e.render(f).Image(), nil
}

// ExportPNG writes frames to dir as frame_00000.png, frame_00001.png, ...
// numbered by tick, and returns the written paths. All images share one
// canvas so the sequence can be assembled into an animation.
func ExportPNG(frames []Frame, dir string, opts ExportOptions) ([]string, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("export: no frames")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("export: mkdir %s: %w", dir, err)
	}
	e, err := newExporter(frames, opts)
	if err != nil {
		return nil, err
	}
	every := max(opts.Every, 1)
	var paths []string
	for i, f := range frames {
		if i%every != 0 && i != len(frames)-1 {
			continue
		}
		path := filepath.Join(dir, fmt.Sprintf("frame_%05d.png", f.Tick))
		if err := e.render(f).SavePNG(path); err != nil {
			return paths, fmt.Errorf("export: %w", err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

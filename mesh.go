package liquid

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// flattenTolerance is the maximum chord deviation, in pixels, used when
// turning outlines and circles into triangles.
const flattenTolerance = 0.25

// polygonMesh is a reusable vertex/index buffer for untextured fills. Each
// contour is added as a triangle fan and filled with the non-zero rule, so
// concave outlines such as a pinched neck fill correctly.
type polygonMesh struct {
	verts []ebiten.Vertex
	inds  []uint16
}

func (m *polygonMesh) reset() {
	m.verts = m.verts[:0]
	m.inds = m.inds[:0]
}

// appendFan adds a closed polygon as a fan around its first point. Vertex
// colors are premultiplied.
func (m *polygonMesh) appendFan(pts []Vec2, c Color) {
	if len(pts) < 3 {
		return
	}
	base := uint16(len(m.verts))
	cr := float32(c.R * c.A)
	cg := float32(c.G * c.A)
	cb := float32(c.B * c.A)
	ca := float32(c.A)
	for _, p := range pts {
		m.verts = append(m.verts, ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	for i := 1; i+1 < len(pts); i++ {
		m.inds = append(m.inds, base, base+uint16(i), base+uint16(i+1))
	}
}

// appendPath flattens p and adds it as one fan. Outline paths always hold a
// single contour.
func (m *polygonMesh) appendPath(p Path, c Color) {
	m.appendFan(p.Flatten(flattenTolerance), c)
}

// appendCircle adds a full circle.
func (m *polygonMesh) appendCircle(circ Circle, c Color) {
	if circ.Radius <= 0 {
		return
	}
	var p Path
	p.Arc(circ.Center, circ.Radius, 0, 2*math.Pi)
	p.Close()
	m.appendPath(p, c)
}

// appendBar adds a rectangle of the given half extents rotated by angle
// around center.
func (m *polygonMesh) appendBar(center Vec2, halfW, halfH, angle float64, c Color) {
	corners := [4]Vec2{{-halfW, -halfH}, {halfW, -halfH}, {halfW, halfH}, {-halfW, halfH}}
	pts := make([]Vec2, 4)
	for i, q := range corners {
		pts[i] = center.Add(q.Rotate(angle))
	}
	m.appendFan(pts, c)
}

// fill draws the buffered triangles onto dst and leaves the buffer intact.
func (m *polygonMesh) fill(dst *ebiten.Image) {
	if len(m.inds) == 0 {
		return
	}
	var op ebiten.DrawTrianglesOptions
	op.FillRule = ebiten.FillRuleNonZero
	op.AntiAlias = true
	dst.DrawTriangles(m.verts, m.inds, ensureWhitePixel(), &op)
}

// bounds returns the axis-aligned box around the buffered vertices.
func (m *polygonMesh) bounds() Rect {
	if len(m.verts) == 0 {
		return Rect{}
	}
	minX, minY := float64(m.verts[0].DstX), float64(m.verts[0].DstY)
	maxX, maxY := minX, minY
	for _, v := range m.verts[1:] {
		x, y := float64(v.DstX), float64(v.DstY)
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// --- White pixel singleton (no sync.Once, rendering is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used
// as the source of every untextured fill.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

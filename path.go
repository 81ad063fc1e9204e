package liquid

import "math"

// SegmentKind identifies the drawing command of a path Segment.
type SegmentKind uint8

const (
	SegmentMoveTo SegmentKind = iota // start a new contour at To
	SegmentLineTo                    // straight line to To
	SegmentQuadTo                    // quadratic Bézier through Control to To
	SegmentArc                       // circular arc around Center from StartAngle to EndAngle
	SegmentClose                     // close the contour back to its start
)

// Segment is a single path command. Only the fields relevant to Kind are set.
//
// An arc sweeps linearly from StartAngle to EndAngle, so a decreasing pair
// sweeps counter-clockwise on screen. Like canvas arcs, it is joined to the
// current point by a straight line when the two do not coincide.
type Segment struct {
	Kind       SegmentKind
	To         Vec2
	Control    Vec2
	Center     Vec2
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

// Path is an ordered list of drawing commands forming one or more contours.
// Paths are plain values; the geometry kernel builds a fresh one each frame.
type Path struct {
	Segments []Segment
}

// MoveTo starts a new contour at p.
func (p *Path) MoveTo(pt Vec2) {
	p.Segments = append(p.Segments, Segment{Kind: SegmentMoveTo, To: pt})
}

// LineTo adds a straight line from the current point to pt.
func (p *Path) LineTo(pt Vec2) {
	p.Segments = append(p.Segments, Segment{Kind: SegmentLineTo, To: pt})
}

// QuadTo adds a quadratic Bézier curve from the current point to pt.
func (p *Path) QuadTo(control, pt Vec2) {
	p.Segments = append(p.Segments, Segment{Kind: SegmentQuadTo, Control: control, To: pt})
}

// Arc adds a circular arc. The arc's end point becomes the current point.
func (p *Path) Arc(center Vec2, radius, startAngle, endAngle float64) {
	p.Segments = append(p.Segments, Segment{
		Kind:       SegmentArc,
		To:         PointOnCircle(center, radius, endAngle),
		Center:     center,
		Radius:     radius,
		StartAngle: startAngle,
		EndAngle:   endAngle,
	})
}

// Close closes the current contour.
func (p *Path) Close() {
	p.Segments = append(p.Segments, Segment{Kind: SegmentClose})
}

// Start returns the first point of the path.
func (p *Path) Start() Vec2 {
	for _, s := range p.Segments {
		switch s.Kind {
		case SegmentMoveTo:
			return s.To
		case SegmentArc:
			return PointOnCircle(s.Center, s.Radius, s.StartAngle)
		}
	}
	return Vec2{}
}

// Current returns the point the last drawing command ended at, ignoring a
// trailing Close.
func (p *Path) Current() Vec2 {
	for i := len(p.Segments) - 1; i >= 0; i-- {
		if p.Segments[i].Kind != SegmentClose {
			return p.Segments[i].To
		}
	}
	return Vec2{}
}

// Contours returns the number of contours in the path.
func (p *Path) Contours() int {
	n := 0
	open := false
	for _, s := range p.Segments {
		switch s.Kind {
		case SegmentMoveTo:
			n++
			open = true
		case SegmentClose:
			open = false
		default:
			if !open {
				n++
				open = true
			}
		}
	}
	return n
}

// IsClosed reports whether every contour of the path ends with Close.
func (p *Path) IsClosed() bool {
	if len(p.Segments) == 0 {
		return false
	}
	open := false
	for _, s := range p.Segments {
		if s.Kind == SegmentClose {
			open = false
		} else {
			open = true
		}
	}
	return !open
}

// Flatten approximates the path by a polyline whose chords deviate from the
// curves by at most roughly tolerance. Contours are concatenated; a closed
// contour repeats its start point at the end.
func (p *Path) Flatten(tolerance float64) []Vec2 {
	if tolerance <= 0 {
		tolerance = 0.25
	}
	var pts []Vec2
	var start, cur Vec2
	for _, s := range p.Segments {
		switch s.Kind {
		case SegmentMoveTo:
			start, cur = s.To, s.To
			pts = append(pts, cur)
		case SegmentLineTo:
			cur = s.To
			pts = append(pts, cur)
		case SegmentQuadTo:
			n := quadSteps(cur, s.Control, s.To, tolerance)
			for i := 1; i <= n; i++ {
				t := float64(i) / float64(n)
				pts = append(pts, quadPoint(cur, s.Control, s.To, t))
			}
			cur = s.To
		case SegmentArc:
			first := PointOnCircle(s.Center, s.Radius, s.StartAngle)
			if len(pts) == 0 {
				start = first
			}
			pts = append(pts, first)
			n := arcSteps(s.Radius, s.EndAngle-s.StartAngle, tolerance)
			for i := 1; i <= n; i++ {
				a := s.StartAngle + (s.EndAngle-s.StartAngle)*float64(i)/float64(n)
				pts = append(pts, PointOnCircle(s.Center, s.Radius, a))
			}
			cur = s.To
		case SegmentClose:
			if cur != start {
				pts = append(pts, start)
			}
			cur = start
		}
	}
	return pts
}

// Bounds returns the axis-aligned bounding box of the flattened path.
func (p *Path) Bounds() Rect {
	pts := p.Flatten(0.5)
	if len(pts) == 0 {
		return Rect{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, pt := range pts[1:] {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

func quadPoint(p0, c, p1 Vec2, t float64) Vec2 {
	mt := 1 - t
	return Vec2{
		X: mt*mt*p0.X + 2*mt*t*c.X + t*t*p1.X,
		Y: mt*mt*p0.Y + 2*mt*t*c.Y + t*t*p1.Y,
	}
}

// quadSteps picks a subdivision count from the control polygon length.
func quadSteps(p0, c, p1 Vec2, tolerance float64) int {
	l := p0.Dist(c) + c.Dist(p1)
	n := int(math.Ceil(math.Sqrt(l / tolerance)))
	return max(2, min(n, 64))
}

// arcSteps picks a subdivision count so the sagitta stays under tolerance.
func arcSteps(radius, sweep, tolerance float64) int {
	sweep = math.Abs(sweep)
	if radius <= tolerance || sweep == 0 {
		return 1
	}
	step := 2 * math.Acos(1-tolerance/radius)
	n := int(math.Ceil(sweep / step))
	return max(1, min(n, 128))
}

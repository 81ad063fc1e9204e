package liquid

import "math"

// DefaultSplitPoint is the separation ratio at which a single connector blob
// becomes two tapering blobs.
const DefaultSplitPoint = 0.8

// Connector angles in the nominal "up" frame, where b sits above a. Angles
// use screen convention: 0° right, 90° bottom, 180° left, 270° top.
const (
	angleKissA = 270.0 // top of a, facing b
	angleKissB = 90.0  // bottom of b, facing a

	angleBArcStart = 135.0 // b's arc runs through its bottom quarter
	angleBArcEnd   = 45.0
	angleAArcStart = 315.0 // a's arc runs through its top quarter
	angleAArcEnd   = 225.0
)

// OutlineKind distinguishes the three connector shapes.
type OutlineKind uint8

const (
	OutlineNone   OutlineKind = iota // no membrane: overlapping or too far apart
	OutlineSingle                    // one necked blob joining both circles
	OutlineSplit                     // two tapering blobs, one per circle
)

// String returns a short name for the outline kind.
func (k OutlineKind) String() string {
	switch k {
	case OutlineSingle:
		return "single"
	case OutlineSplit:
		return "split"
	default:
		return "none"
	}
}

// Outline is the connector shape between two circles for one frame. Single
// outlines carry one closed path, split outlines two (the neighbor's part
// first, then the moving circle's part).
type Outline struct {
	Kind  OutlineKind
	Paths []Path
	Ratio float64 // separation ratio the outline was built for; 0 for None
}

// IsNone reports whether the outline draws nothing.
func (o Outline) IsNone() bool {
	return o.Kind == OutlineNone
}

// Kernel computes liquid connector outlines between a stationary circle a and
// a moving circle b. It holds no per-frame state.
type Kernel struct {
	// MaxConnectDistance is the center distance at which the two circles
	// stop being connected; it is the movement ratio of the pair.
	MaxConnectDistance float64

	// SplitPoint is the separation ratio where Single gives way to Split.
	// Zero means DefaultSplitPoint.
	SplitPoint float64

	// Direction orients the connector along the cascade's axis.
	Direction Direction
}

func (k Kernel) splitPoint() float64 {
	if k.SplitPoint <= 0 || k.SplitPoint >= 1 {
		return DefaultSplitPoint
	}
	return k.SplitPoint
}

// angle converts a nominal-frame angle in degrees to radians in the
// direction's frame.
func (k Kernel) angle(deg float64) float64 {
	return degToRad(deg) + k.Direction.frameAngle()
}

// axis returns the unit vector pointing from a toward b.
func (k Kernel) axis() Vec2 {
	return Vec2{0, -1}.Rotate(k.Direction.frameAngle())
}

// side returns the unit vector perpendicular to the axis, to the right of it
// in the nominal frame.
func (k Kernel) side() Vec2 {
	return Vec2{1, 0}.Rotate(k.Direction.frameAngle())
}

// IsOverlapping reports whether the two circles overlap, i.e. the distance
// between their centers is less than the sum of their radii.
func IsOverlapping(a, b Circle) bool {
	return a.Center.Dist(b.Center) < a.Radius+b.Radius
}

// KissingPoints returns the point on a facing b and the point on b facing a,
// taken at fixed angles along the cascade axis rather than along the actual
// bearing between the centers.
func (k Kernel) KissingPoints(a, b Circle) (onA, onB Vec2) {
	return a.PointAt(k.angle(angleKissA)), b.PointAt(k.angle(angleKissB))
}

// SeparationRatio returns the distance between the kissing points normalized
// by the gap left between the circles at MaxConnectDistance. It is +Inf when
// that gap is not positive.
func (k Kernel) SeparationRatio(a, b Circle) float64 {
	denom := k.MaxConnectDistance - a.Radius - b.Radius
	if denom <= 0 {
		return math.Inf(1)
	}
	onA, onB := k.KissingPoints(a, b)
	return onA.Dist(onB) / denom
}

// BuildOutline computes the connector between stationary circle a and moving
// circle b.
func (k Kernel) BuildOutline(a, b Circle) Outline {
	if IsOverlapping(a, b) {
		return Outline{}
	}
	ratio := k.SeparationRatio(a, b)
	split := k.splitPoint()
	switch {
	case ratio >= 0 && ratio < split:
		return Outline{Kind: OutlineSingle, Paths: []Path{k.connectedPath(a, b, ratio)}, Ratio: ratio}
	case ratio >= split && ratio <= 1:
		bPart, aPart := k.splitPath(a, b, ratio)
		return Outline{Kind: OutlineSplit, Paths: []Path{bPart, aPart}, Ratio: ratio}
	default:
		return Outline{}
	}
}

// NeckOffset is how far the connected outline's control points sit from the
// kissing-point midpoint, perpendicular to the axis.
func (k Kernel) NeckOffset(b Circle, ratio float64) float64 {
	return b.Radius * (k.splitPoint() - ratio)
}

// TailLength is the length of the tail each split blob extends toward the
// other circle, for kissing points d apart. It reaches 0 at ratio 1.
func (k Kernel) TailLength(d, ratio float64) float64 {
	return d - k.tailCorrection(d, ratio)
}

// tailCorrection pulls the split control point back from the far kissing
// point: 0 at the split point, d at ratio 1. With a split point of 0.8 the
// factor 1/(1-split) is 5.
func (k Kernel) tailCorrection(d, ratio float64) float64 {
	split := k.splitPoint()
	return d * (ratio - split) / (1 - split)
}

// connectedPath builds the single necked contour: b's facing arc, a curve
// down the right flank into a's facing arc, and a curve back up the left
// flank.
func (k Kernel) connectedPath(a, b Circle, ratio float64) Path {
	onA, onB := k.KissingPoints(a, b)
	mid := onA.Mid(onB)
	offset := k.side().Scale(k.NeckOffset(b, ratio))

	start := b.PointAt(k.angle(angleBArcStart))
	var p Path
	p.MoveTo(start)
	p.Arc(b.Center, b.Radius, k.angle(angleBArcStart), k.angle(angleBArcEnd))
	p.QuadTo(mid.Add(offset), a.PointAt(k.angle(angleAArcStart)))
	p.Arc(a.Center, a.Radius, k.angle(angleAArcStart), k.angle(angleAArcEnd))
	p.QuadTo(mid.Sub(offset), start)
	p.Close()
	return p
}

// splitPath builds the two tapering contours, b's first. Each is the
// circle's facing arc closed by a curve whose control point reaches toward
// the other circle.
func (k Kernel) splitPath(a, b Circle, ratio float64) (bPart, aPart Path) {
	onA, onB := k.KissingPoints(a, b)
	rc := k.tailCorrection(onA.Dist(onB), ratio)
	axis := k.axis()

	bStart := b.PointAt(k.angle(angleBArcStart))
	bPart.MoveTo(bStart)
	bPart.Arc(b.Center, b.Radius, k.angle(angleBArcStart), k.angle(angleBArcEnd))
	bPart.QuadTo(onA.Add(axis.Scale(rc)), bStart)
	bPart.Close()

	aStart := a.PointAt(k.angle(angleAArcStart))
	aPart.MoveTo(aStart)
	aPart.Arc(a.Center, a.Radius, k.angle(angleAArcStart), k.angle(angleAArcEnd))
	aPart.QuadTo(onB.Sub(axis.Scale(rc)), aStart)
	aPart.Close()
	return bPart, aPart
}

package liquid

import (
	"math"
	"reflect"
	"testing"
)

// Root at the origin, radius 50; cell radius 40 directly above it. With a
// movement of 150 the kissing-point gap runs from 0 at center distance 90 to
// 60 at distance 150, so ratio = (d - 90) / 60.
const (
	testRootR    = 50.0
	testCellR    = 40.0
	testMovement = 150.0
)

func testKernel() Kernel {
	return Kernel{MaxConnectDistance: testMovement, Direction: DirectionUp}
}

func testPair(ratio float64) (a, b Circle) {
	d := testRootR + testCellR + ratio*(testMovement-testRootR-testCellR)
	return Circle{Radius: testRootR}, Circle{Center: Vec2{0, -d}, Radius: testCellR}
}

func TestIsOverlapping(t *testing.T) {
	a := Circle{Radius: 10}
	tests := []struct {
		name string
		b    Circle
		want bool
	}{
		{"concentric", Circle{Radius: 5}, true},
		{"overlap", Circle{Center: Vec2{15, 0}, Radius: 10}, true},
		{"touching", Circle{Center: Vec2{20, 0}, Radius: 10}, false},
		{"apart", Circle{Center: Vec2{0, 30}, Radius: 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOverlapping(a, tt.b); got != tt.want {
				t.Errorf("IsOverlapping = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKissingPointsFaceEachOther(t *testing.T) {
	a, b := testPair(0.5)
	onA, onB := testKernel().KissingPoints(a, b)
	if !vecApprox(onA, Vec2{0, -testRootR}, 1e-9) {
		t.Errorf("onA = %v, want top of a", onA)
	}
	if !vecApprox(onB, Vec2{0, b.Center.Y + testCellR}, 1e-9) {
		t.Errorf("onB = %v, want bottom of b", onB)
	}
}

func TestSeparationRatio(t *testing.T) {
	k := testKernel()
	for _, want := range []float64{0, 0.25, 0.5, 0.8, 0.95} {
		a, b := testPair(want)
		if got := k.SeparationRatio(a, b); !approxEqual(got, want, 1e-9) {
			t.Errorf("SeparationRatio = %v, want %v", got, want)
		}
	}
}

func TestSeparationRatioDegenerateDistance(t *testing.T) {
	k := Kernel{MaxConnectDistance: 90}
	a, b := testPair(0.5)
	if got := k.SeparationRatio(a, b); !math.IsInf(got, 1) {
		t.Errorf("SeparationRatio = %v, want +Inf", got)
	}
	if o := k.BuildOutline(a, b); !o.IsNone() {
		t.Errorf("outline = %v, want none", o.Kind)
	}
}

func TestBuildOutlineOverlappingIsNone(t *testing.T) {
	k := testKernel()
	a := Circle{Radius: testRootR}
	for _, d := range []float64{0, 10, 45, 89.9} {
		b := Circle{Center: Vec2{0, -d}, Radius: testCellR}
		if o := k.BuildOutline(a, b); o.Kind != OutlineNone || len(o.Paths) != 0 {
			t.Errorf("d=%v: outline = %v with %d paths, want none", d, o.Kind, len(o.Paths))
		}
	}
}

func TestBuildOutlineKinds(t *testing.T) {
	k := testKernel()
	tests := []struct {
		ratio float64
		want  OutlineKind
		paths int
	}{
		{0, OutlineSingle, 1},
		{0.3, OutlineSingle, 1},
		{0.79, OutlineSingle, 1},
		{0.8, OutlineSplit, 2},
		{0.9, OutlineSplit, 2},
		{0.99, OutlineSplit, 2},
		{1.01, OutlineNone, 0},
		{2, OutlineNone, 0},
	}
	for _, tt := range tests {
		a, b := testPair(tt.ratio)
		o := k.BuildOutline(a, b)
		if o.Kind != tt.want {
			t.Errorf("ratio %v: kind = %v, want %v", tt.ratio, o.Kind, tt.want)
			continue
		}
		if len(o.Paths) != tt.paths {
			t.Errorf("ratio %v: %d paths, want %d", tt.ratio, len(o.Paths), tt.paths)
		}
		for i, p := range o.Paths {
			if !p.IsClosed() || p.Contours() != 1 {
				t.Errorf("ratio %v: path %d closed=%v contours=%d", tt.ratio, i, p.IsClosed(), p.Contours())
			}
			// The final curve returns to the contour's first point.
			if p.Current() != p.Start() {
				t.Errorf("ratio %v: path %d ends at %v, starts at %v", tt.ratio, i, p.Current(), p.Start())
			}
		}
	}
}

func TestConnectedPathShape(t *testing.T) {
	k := testKernel()
	a, b := testPair(0.4)
	p := k.connectedPath(a, b, 0.4)

	kinds := []SegmentKind{SegmentMoveTo, SegmentArc, SegmentQuadTo, SegmentArc, SegmentQuadTo, SegmentClose}
	if len(p.Segments) != len(kinds) {
		t.Fatalf("got %d segments, want %d", len(p.Segments), len(kinds))
	}
	for i, want := range kinds {
		if p.Segments[i].Kind != want {
			t.Errorf("segment %d kind = %v, want %v", i, p.Segments[i].Kind, want)
		}
	}

	// b's arc runs 135° → 45°, a's arc 315° → 225°.
	if s := p.Segments[1]; s.Center != b.Center || !approxEqual(s.StartAngle, degToRad(135), 1e-12) || !approxEqual(s.EndAngle, degToRad(45), 1e-12) {
		t.Errorf("b arc = %+v", s)
	}
	if s := p.Segments[3]; s.Center != a.Center || !approxEqual(s.StartAngle, degToRad(315), 1e-12) || !approxEqual(s.EndAngle, degToRad(225), 1e-12) {
		t.Errorf("a arc = %+v", s)
	}

	// Control points straddle the kissing midpoint symmetrically.
	onA, onB := k.KissingPoints(a, b)
	mid := onA.Mid(onB)
	c1, c2 := p.Segments[2].Control, p.Segments[4].Control
	if !vecApprox(c1.Add(c2).Scale(0.5), mid, 1e-9) {
		t.Errorf("controls %v, %v not symmetric about %v", c1, c2, mid)
	}
	if got := c1.Dist(mid); !approxEqual(got, testCellR*(0.8-0.4), 1e-9) {
		t.Errorf("neck offset = %v, want %v", got, testCellR*0.4)
	}
}

func TestNeckOffsetDecreasesWithRatio(t *testing.T) {
	k := testKernel()
	prev := math.Inf(1)
	for r := 0.0; r < 0.8; r += 0.05 {
		a, b := testPair(r)
		p := k.connectedPath(a, b, r)
		onA, onB := k.KissingPoints(a, b)
		got := p.Segments[2].Control.Dist(onA.Mid(onB))
		if got >= prev {
			t.Fatalf("ratio %.2f: neck offset %v did not decrease from %v", r, got, prev)
		}
		prev = got
	}
}

func TestSplitTailDecreasesToZero(t *testing.T) {
	k := testKernel()
	prev := math.Inf(1)
	for _, r := range []float64{0.8, 0.85, 0.9, 0.95, 1} {
		a, b := testPair(r)
		bPart, aPart := k.splitPath(a, b, r)
		_, onB := k.KissingPoints(a, b)
		onA, _ := k.KissingPoints(a, b)

		// b's tail reaches from its kissing point toward a.
		tailB := bPart.Segments[2].Control.Dist(onB)
		tailA := aPart.Segments[2].Control.Dist(onA)
		if !approxEqual(tailA, tailB, 1e-9) {
			t.Errorf("ratio %v: tails differ %v vs %v", r, tailA, tailB)
		}
		if !approxEqual(tailB, k.TailLength(onA.Dist(onB), r), 1e-9) {
			t.Errorf("ratio %v: tail %v, TailLength %v", r, tailB, k.TailLength(onA.Dist(onB), r))
		}
		if tailB >= prev {
			t.Fatalf("ratio %v: tail %v did not decrease from %v", r, tailB, prev)
		}
		prev = tailB
	}
	if !approxEqual(prev, 0, 1e-9) {
		t.Errorf("tail at ratio 1 = %v, want 0", prev)
	}
}

func TestBuildOutlineIdempotent(t *testing.T) {
	k := testKernel()
	for _, r := range []float64{0.2, 0.9} {
		a, b := testPair(r)
		o1 := k.BuildOutline(a, b)
		o2 := k.BuildOutline(a, b)
		if !reflect.DeepEqual(o1, o2) {
			t.Errorf("ratio %v: outlines differ", r)
		}
	}
}

func TestBuildOutlineCustomSplitPoint(t *testing.T) {
	k := testKernel()
	k.SplitPoint = 0.5
	a, b := testPair(0.6)
	if o := k.BuildOutline(a, b); o.Kind != OutlineSplit {
		t.Errorf("kind = %v, want split above custom split point", o.Kind)
	}
	a, b = testPair(0.4)
	if o := k.BuildOutline(a, b); o.Kind != OutlineSingle {
		t.Errorf("kind = %v, want single below custom split point", o.Kind)
	}
}

func TestBuildOutlineFollowsDirection(t *testing.T) {
	// Rotating the whole configuration a quarter turn rotates the outline.
	up := testKernel()
	right := up
	right.Direction = DirectionRight

	a, bUp := testPair(0.5)
	bRight := Circle{Center: bUp.Center.Rotate(math.Pi / 2), Radius: bUp.Radius}

	oUp := up.BuildOutline(a, bUp)
	oRight := right.BuildOutline(a, bRight)
	if oUp.Kind != oRight.Kind || !approxEqual(oUp.Ratio, oRight.Ratio, 1e-9) {
		t.Fatalf("up %v/%v, right %v/%v", oUp.Kind, oUp.Ratio, oRight.Kind, oRight.Ratio)
	}
	ptsUp := oUp.Paths[0].Flatten(0.5)
	ptsRight := oRight.Paths[0].Flatten(0.5)
	if len(ptsUp) != len(ptsRight) {
		t.Fatalf("flattened lengths differ: %d vs %d", len(ptsUp), len(ptsRight))
	}
	for i := range ptsUp {
		if want := ptsUp[i].Rotate(math.Pi / 2); !vecApprox(ptsRight[i], want, 1e-6) {
			t.Fatalf("point %d = %v, want %v", i, ptsRight[i], want)
		}
	}
}

func TestOutlineKindString(t *testing.T) {
	for k, want := range map[OutlineKind]string{OutlineNone: "none", OutlineSingle: "single", OutlineSplit: "split"} {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}

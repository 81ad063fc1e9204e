package liquid

import "testing"

func TestHitTest(t *testing.T) {
	b := newTestButton(t, 2)
	if err := b.Open(); err != nil {
		t.Fatal(err)
	}
	settle(t, b)

	c1 := b.ctrl.Cell(1).Center
	c2 := b.ctrl.Cell(2).Center
	tests := []struct {
		name string
		x, y float64
		want int
	}{
		{"root center", testCenter.X, testCenter.Y, 0},
		{"root edge", testCenter.X + testRootR, testCenter.Y, 0},
		{"first cell", c1.X, c1.Y, 1},
		{"second cell", c2.X + 10, c2.Y - 10, 2},
		{"between root and cell", testCenter.X, testCenter.Y - 70, noTarget},
		{"far away", 0, 0, noTarget},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.hitTest(tt.x, tt.y); got != tt.want {
				t.Errorf("hitTest(%v, %v) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitTestRootAboveCells(t *testing.T) {
	b := newTestButton(t, 1)
	if err := b.Open(); err != nil {
		t.Fatal(err)
	}
	stepFrames(b, 3)
	// The moving cell still overlaps the root; the root is drawn on top.
	if got := b.hitTest(testCenter.X, testCenter.Y); got != 0 {
		t.Errorf("hitTest = %d, want 0", got)
	}
}

func TestHitTestLaterCellWins(t *testing.T) {
	b := newTestButton(t, 2)
	if err := b.Open(); err != nil {
		t.Fatal(err)
	}
	for b.ctrl.Active() != 2 {
		b.ticker.Tick(testDT)
	}
	b.ticker.Tick(testDT)
	c1 := b.ctrl.Cell(1).Center
	if got := b.hitTest(c1.X, c1.Y); got != 2 {
		t.Errorf("hitTest = %d, want 2 for the cell leaving its predecessor", got)
	}
}

func TestPressOutsideThenReleaseInsideIsNoTap(t *testing.T) {
	b := newTestButton(t, 1)
	b.processPointer(0, 0, true)
	b.processPointer(testCenter.X, testCenter.Y, false)
	if b.pendingOpen {
		t.Error("tap fired for a press outside the button")
	}
}

func TestReleaseOffTargetIsNoTap(t *testing.T) {
	b := newTestButton(t, 1)
	b.processPointer(testCenter.X, testCenter.Y, true)
	b.processPointer(0, 0, false)
	if b.pendingOpen {
		t.Error("tap fired for a release outside the pressed circle")
	}
	if b.pointer.target != noTarget {
		t.Errorf("target = %d, want reset", b.pointer.target)
	}
}

func TestReleaseWithoutPressIgnored(t *testing.T) {
	b := newTestButton(t, 1)
	b.processPointer(testCenter.X, testCenter.Y, false)
	if b.pendingOpen {
		t.Error("release without a press fired a tap")
	}
}

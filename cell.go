package liquid

import "github.com/hajimehoshi/ebiten/v2"

// Cell is one circular button of a cascade: the stationary root or one of
// the cells spawned from it. A moving cell owns the liquid outline that joins
// it to its predecessor.
type Cell struct {
	Name string

	// Center moves every frame while the cell animates. Radius is assigned
	// when the cell joins a chain and stays fixed afterwards.
	Center Vec2
	Radius float64

	Color Color

	// Icon is drawn inside the circle, inset by the config's
	// InternalRadiusRatio. Nil draws no icon.
	Icon *ebiten.Image

	// IconAlpha starts at 0 for spawned cells and reaches 1 once the cell
	// has settled.
	IconAlpha float64

	// Scale multiplies the drawn radius. Hit testing ignores it.
	Scale float64

	UserData any

	// OnOutline, when set, receives every outline this cell computes or
	// clears. Renderers that do not poll Outline each frame hook in here.
	OnOutline func(Outline)

	neighbor    Circle
	hasNeighbor bool
	outline     Outline
	kernel      Kernel
	index       int
	revealed    bool
	removed     bool
}

// NewCell creates a cell with the given color and optional icon. Its center
// and radius are assigned when a controller adds it to a chain.
func NewCell(name string, color Color, icon *ebiten.Image) *Cell {
	return &Cell{Name: name, Color: color, Icon: icon, Scale: 1}
}

// Circle returns the cell's current circle.
func (c *Cell) Circle() Circle {
	return Circle{Center: c.Center, Radius: c.Radius}
}

// Index returns the cell's position in its chain: 0 for the root, 1.. for
// spawned cells. A cell that has been removed reports -1.
func (c *Cell) Index() int {
	if c.removed {
		return -1
	}
	return c.index
}

// Revealed reports whether the cell has reached its target and shown its
// icon.
func (c *Cell) Revealed() bool {
	return c.revealed
}

// Removed reports whether the cell has been retracted out of its chain.
func (c *Cell) Removed() bool {
	return c.removed
}

// SetNeighbor stores the circle the next outline is computed against. It
// does not recompute the outline.
func (c *Cell) SetNeighbor(n Circle) {
	c.neighbor = n
	c.hasNeighbor = true
}

// SetKernel sets the geometry used by RecomputeOutline.
func (c *Cell) SetKernel(k Kernel) {
	c.kernel = k
}

// Outline returns the outline computed by the last RecomputeOutline.
func (c *Cell) Outline() Outline {
	return c.outline
}

// RecomputeOutline replaces the current outline with one built from the
// neighbor (stationary side) and this cell (moving side). Without a
// neighbor the outline is cleared.
func (c *Cell) RecomputeOutline() {
	if !c.hasNeighbor {
		c.ClearOutline()
		return
	}
	c.outline = c.kernel.BuildOutline(c.neighbor, c.Circle())
	if c.OnOutline != nil {
		c.OnOutline(c.outline)
	}
}

// ClearOutline drops the current outline without replacement.
func (c *Cell) ClearOutline() {
	c.outline = Outline{}
	if c.OnOutline != nil {
		c.OnOutline(c.outline)
	}
}

// Translate moves the cell's center by delta. Callers recompute the outline
// afterwards when a neighbor is set.
func (c *Cell) Translate(delta Vec2) {
	c.Center = c.Center.Add(delta)
}

// attach prepares a cell for position index in a chain.
func (c *Cell) attach(index int, center Vec2, radius float64, k Kernel) {
	c.index = index
	c.Center = center
	c.Radius = radius
	c.kernel = k
	c.IconAlpha = 0
	c.revealed = false
	c.removed = false
	c.hasNeighbor = false
	c.outline = Outline{}
	if c.Scale == 0 {
		c.Scale = 1
	}
}

// detach marks a cell as no longer part of a chain.
func (c *Cell) detach() {
	c.ClearOutline()
	c.hasNeighbor = false
	c.removed = true
}

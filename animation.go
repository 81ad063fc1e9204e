package liquid

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 2 float64 fields simultaneously. Create one via
// the convenience constructors (TweenIconAlpha, TweenPulse, TweenValue) and
// call Update(dt) each frame. If the target cell is removed from its chain,
// the group stops immediately.
//
// Button owns the groups it starts and updates them after the cascade step
// of each frame.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	fields [2]*float64
	target *Cell
	Done   bool

	// OnDone runs once, on the update that finishes the group.
	OnDone func()
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target cell has been removed, Done is set to true and no
// writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.Removed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.Done && g.OnDone != nil {
		g.OnDone()
	}
}

// TweenIconAlpha creates a TweenGroup that fades cell.IconAlpha to the
// target value over the given duration.
func TweenIconAlpha(cell *Cell, to float64, duration float32) *TweenGroup {
	g := &TweenGroup{count: 1, target: cell}
	g.tweens[0] = gween.New(float32(cell.IconAlpha), float32(to), duration, ease.OutQuad)
	g.fields[0] = &cell.IconAlpha
	return g
}

// TweenPulse creates a TweenGroup that grows *scale to toScale while fading
// *alpha to 0: the ring that spreads out of a tapped button.
func TweenPulse(scale, alpha *float64, toScale float64, duration float32) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(*scale), float32(toScale), duration, ease.OutQuad)
	g.tweens[1] = gween.New(float32(*alpha), 0, duration, ease.Linear)
	g.fields[0] = scale
	g.fields[1] = alpha
	return g
}

// TweenValue creates a TweenGroup that animates a single field, such as the
// "+" glyph's rotation, to the target value.
func TweenValue(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[0] = field
	return g
}

package liquid

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Shadow parameters, in pixels and alpha.
const (
	shadowOffset = 2.0
	shadowSpread = 1.0
	shadowAlpha  = 0.3
)

// Draw renders the cascade onto screen. Spawned cells are drawn first, each
// one's connector beneath its circle, then the tap pulse, the root and the
// root's glyph or icon. It implements ebiten.Game.
func (b *Button) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if b.debug {
		t0 = time.Now()
	}

	if b.ClearColor.A > 0 {
		screen.Fill(b.ClearColor.toRGBA())
	}

	cfg := b.ctrl.Config()
	chain := b.ctrl.Chain()
	var stats debugStats

	for i := 1; i < len(chain); i++ {
		b.drawCell(screen, chain[i], chain[i-1].Color, cfg, &stats)
	}
	b.drawPulse(screen)
	b.drawCell(screen, b.root, b.root.Color, cfg, &stats)
	if b.root.Icon == nil {
		b.drawGlyph(screen, cfg)
	}

	if b.ShowFPS {
		b.fps.draw(screen)
	}
	b.flushScreenshots(screen)

	if b.debug {
		stats.updateTime = b.stats.updateTime
		stats.drawTime = time.Since(t0)
		b.stats = stats
		b.debugLog(stats)
	}
}

// drawCell draws one cell's outline, shadow, circle and icon. The outline
// is the liquid pulled out of the predecessor, so it takes membrane's color.
func (b *Button) drawCell(screen *ebiten.Image, c *Cell, membrane Color, cfg Config, stats *debugStats) {
	if o := c.Outline(); !o.IsNone() {
		b.mesh.reset()
		for _, p := range o.Paths {
			b.mesh.appendPath(p, membrane)
		}
		b.mesh.fill(screen)
		stats.outlines++
		stats.paths += len(o.Paths)
	}

	circ := c.Circle()
	circ.Radius *= c.Scale

	b.mesh.reset()
	if cfg.EnableShadow {
		shadow := Circle{
			Center: circ.Center.Add(Vec2{shadowOffset, shadowOffset}),
			Radius: circ.Radius + shadowSpread,
		}
		b.mesh.appendCircle(shadow, Color{A: shadowAlpha * c.Color.A})
		b.mesh.fill(screen)
		b.mesh.reset()
	}
	b.mesh.appendCircle(circ, c.Color)
	b.mesh.fill(screen)
	stats.cells++

	if c.Icon != nil && c.IconAlpha > 0 {
		drawIcon(screen, c.Icon, circ, cfg.InternalRadiusRatio, c.IconAlpha)
	}
}

// drawIcon fits img into the square inscribed in the circle's inset.
func drawIcon(screen, img *ebiten.Image, circ Circle, inset, alpha float64) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w == 0 || h == 0 {
		return
	}
	side := circ.Radius * inset * math.Sqrt2
	scale := side / float64(max(w, h))

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(circ.Center.X, circ.Center.Y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, &op)
}

// drawPulse draws the ring spreading out of a tapped root.
func (b *Button) drawPulse(screen *ebiten.Image) {
	if b.pulseAlpha <= 0 {
		return
	}
	circ := b.root.Circle()
	circ.Radius *= b.pulseScale
	b.mesh.reset()
	b.mesh.appendCircle(circ, b.root.Color.WithAlpha(b.pulseAlpha))
	b.mesh.fill(screen)
}

// drawGlyph draws the root's "+" sign, turned by the open/close animation.
func (b *Button) drawGlyph(screen *ebiten.Image, cfg Config) {
	r := b.root.Radius * b.root.Scale * cfg.InternalRadiusRatio
	half := r * 0.5
	thick := math.Max(1, r*0.06)
	b.mesh.reset()
	b.mesh.appendBar(b.root.Center, half, thick, b.glyphRotation, ColorWhite)
	b.mesh.appendBar(b.root.Center, thick, half, b.glyphRotation, ColorWhite)
	b.mesh.fill(screen)
}

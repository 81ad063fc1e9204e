package liquid

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// logger is the package logger. Warnings (such as a data source running out
// of cells early) are shown by default; debug mode lowers the level.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "liquid",
	Level:  log.WarnLevel,
})

// Logger returns the package logger.
func Logger() *log.Logger {
	return logger
}

// SetLogger replaces the package logger. Nil is ignored.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// debugStats holds per-frame timing and outline metrics.
// Only populated when Button.debug is true.
type debugStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	cells      int
	outlines   int
	paths      int
}

// debugLog prints timing and outline stats at debug level.
func (b *Button) debugLog(stats debugStats) {
	if !b.debug {
		return
	}
	b.log().Debug("frame",
		"state", b.ctrl.State(),
		"active", b.ctrl.Active(),
		"cells", stats.cells,
		"outlines", stats.outlines,
		"paths", stats.paths,
		"update", stats.updateTime,
		"draw", stats.drawTime,
	)
}

// debugCheckChain panics when the chain no longer satisfies the controller's
// invariants: the root at index 0, every cell knowing its own index, and an
// active index only while animating. Called every frame in debug mode.
func debugCheckChain(c *Controller) {
	for i, cell := range c.chain {
		if cell.index != i {
			panic(SequencingViolation{Op: "chain index", Active: c.active, Requested: i})
		}
	}
	animating := c.state != StateIdle
	if animating != c.sub.Valid() || animating != (c.active > 0) {
		panic(SequencingViolation{Op: "subscription", Active: c.active, Requested: -1})
	}
}

package liquid

import (
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// EventSink is the interface for optional ECS integration. A sink receives
// every cascade event after the button's own callbacks.
type EventSink interface {
	EmitEvent(event Event)
}

// Button is the top-level widget: a root circle that opens a cascade of
// cells when tapped. It implements ebiten.Game, so it can be run directly
// with Run or embedded by calling Update and Draw from another game.
type Button struct {
	ctrl   *Controller
	ticker *Ticker
	root   *Cell

	// ClearColor fills the screen before drawing. A zero alpha leaves the
	// screen untouched, for embedding into another game's Draw.
	ClearColor Color

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	// ShowFPS draws the FPS/TPS overlay in the top-left corner.
	ShowFPS bool

	// OnEvent receives every cascade event after the button has reacted
	// to it.
	OnEvent func(Event)

	sink EventSink

	glyphRotation float64 // "+" glyph angle in radians
	glyphTarget   float64
	glyphTween    *TweenGroup
	pulseScale    float64
	pulseAlpha    float64
	pendingOpen   bool // pulse is playing; open when it ends

	tweens []*TweenGroup
	mesh   polygonMesh

	// Input state
	pointer     pointerState
	touchBuf    []ebiten.TouchID
	injectQueue []syntheticPointerEvent

	// Tooling
	screenshotQueue []string
	testRunner      *TestRunner
	fps             fpsOverlay

	debug  bool
	logger *log.Logger
	stats  debugStats
}

// NewButton creates a button with its root centered at center. Cells come
// from source when the button opens.
func NewButton(center Vec2, radius float64, cfg Config, source DataSource) (*Button, error) {
	root := NewCell("root", ColorBlue, nil)
	root.Center = center
	root.Radius = radius
	root.IconAlpha = 1

	ticker := NewTicker()
	ctrl, err := NewController(root, cfg, source, ticker)
	if err != nil {
		return nil, err
	}
	b := &Button{
		ctrl:          ctrl,
		ticker:        ticker,
		root:          root,
		ScreenshotDir: "screenshots",
		pulseScale:    1,
		pointer:       pointerState{target: noTarget},
	}
	ctrl.OnEvent = b.onEvent
	return b, nil
}

// Controller returns the cascade controller, for observer callbacks and
// programmatic inspection.
func (b *Button) Controller() *Controller {
	return b.ctrl
}

// Root returns the root cell. Its Color and Icon may be changed freely.
func (b *Button) Root() *Cell {
	return b.root
}

// SetIcon replaces the "+" glyph with an image. Nil restores the glyph.
func (b *Button) SetIcon(img *ebiten.Image) {
	b.root.Icon = img
}

// SetLogger sets the logger used by the button and its controller. Nil
// restores the package logger.
func (b *Button) SetLogger(l *log.Logger) {
	b.logger = l
	b.ctrl.SetLogger(l)
}

func (b *Button) log() *log.Logger {
	if b.logger != nil {
		return b.logger
	}
	return Logger()
}

// SetDebugMode enables or disables debug mode. When enabled, cascade events
// and per-frame stats are logged at debug level and the chain invariants are
// checked every frame.
func (b *Button) SetDebugMode(enabled bool) {
	b.debug = enabled
	if enabled {
		b.log().SetLevel(log.DebugLevel)
	} else {
		b.log().SetLevel(log.WarnLevel)
	}
}

// Open opens the cascade without a tap pulse.
func (b *Button) Open() error {
	return b.ctrl.Open()
}

// Close closes the cascade.
func (b *Button) Close() {
	b.ctrl.Close()
}

// Toggle opens a closed cascade and closes an open one.
func (b *Button) Toggle() error {
	return b.ctrl.Toggle()
}

// Update advances input, the cascade and tweens by one tick. It implements
// ebiten.Game.
func (b *Button) Update() error {
	b.update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (b *Button) update(dt float64) {
	var t0 time.Time
	if b.debug {
		t0 = time.Now()
	}

	if b.testRunner != nil {
		b.testRunner.step(b)
	}
	b.processInput()
	b.ticker.Tick(dt)
	b.updateTweens(dt)
	b.fps.update(dt)

	if b.debug {
		debugCheckChain(b.ctrl)
		b.stats.updateTime = time.Since(t0)
	}
}

// updateTweens advances every running tween. Tweens started by a finishing
// tween's OnDone first update on the next frame.
func (b *Button) updateTweens(dt float64) {
	n := len(b.tweens)
	for i := 0; i < n; i++ {
		b.tweens[i].Update(float32(dt))
	}
	kept := b.tweens[:0]
	for _, g := range b.tweens {
		if !g.Done {
			kept = append(kept, g)
		}
	}
	clear(b.tweens[len(kept):])
	b.tweens = kept
}

// Layout implements ebiten.Game.
func (b *Button) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// handleTap reacts to a completed tap on chain index target. A tapped cell
// is reported first; any tap then toggles the cascade. Opening from rest
// plays the root's pulse before the first cell moves.
func (b *Button) handleTap(target int) {
	if target >= 1 {
		b.ctrl.Select(target)
	}
	switch {
	case b.pendingOpen:
		return
	case b.ctrl.State() == StateIdle && b.ctrl.Len() == 0:
		b.startPulse()
	default:
		if err := b.ctrl.Toggle(); err != nil {
			b.log().Error("toggle cascade", "err", err)
		}
	}
}

func (b *Button) startPulse() {
	dur := b.ctrl.Config().TapPulseDuration
	if dur <= 0 {
		b.openAfterPulse()
		return
	}
	b.pendingOpen = true
	b.pulseScale, b.pulseAlpha = 1, 1
	g := TweenPulse(&b.pulseScale, &b.pulseAlpha, 1.5, float32(dur))
	g.OnDone = b.openAfterPulse
	b.tweens = append(b.tweens, g)
}

func (b *Button) openAfterPulse() {
	b.pendingOpen = false
	b.pulseScale, b.pulseAlpha = 1, 0
	if err := b.ctrl.Open(); err != nil {
		b.log().Error("open cascade", "err", err)
	}
}

// onEvent applies the visual side of cascade transitions.
func (b *Button) onEvent(e Event) {
	cfg := b.ctrl.Config()
	switch e.Type {
	case EventOpenStarted:
		b.rotateGlyph(math.Pi/4, cfg.OpeningDuration)
	case EventCloseStarted, EventClosed:
		b.rotateGlyph(0, cfg.OpeningDuration)
	case EventSettled:
		if e.Cell == nil {
			break
		}
		if cfg.IconFadeDuration > 0 {
			b.tweens = append(b.tweens, TweenIconAlpha(e.Cell, 1, float32(cfg.IconFadeDuration)))
		} else {
			e.Cell.IconAlpha = 1
		}
	}
	if b.OnEvent != nil {
		b.OnEvent(e)
	}
	if b.sink != nil {
		b.sink.EmitEvent(e)
	}
}

// SetEventSink sets the optional ECS bridge. Nil removes it.
func (b *Button) SetEventSink(sink EventSink) {
	b.sink = sink
}

// rotateGlyph turns the "+" glyph toward to, replacing any rotation in
// progress. It does nothing when the glyph is already headed there.
func (b *Button) rotateGlyph(to, duration float64) {
	if b.root.Icon != nil || to == b.glyphTarget {
		return
	}
	b.glyphTarget = to
	if b.glyphTween != nil {
		b.glyphTween.Done = true
	}
	b.glyphTween = TweenValue(&b.glyphRotation, to, float32(duration), ease.InOutQuad)
	b.tweens = append(b.tweens, b.glyphTween)
}

// updateConfig applies fn to a copy of the config and keeps the result only
// if it validates. Out-of-range assignments leave the previous value.
func (b *Button) updateConfig(fn func(*Config)) bool {
	cfg := b.ctrl.Config()
	fn(&cfg)
	if err := b.ctrl.SetConfig(cfg); err != nil {
		b.log().Debug("ignored config change", "err", err)
		return false
	}
	return true
}

// SetInternalRadiusRatio sets the icon inset. Values outside [0, 1] are
// ignored.
func (b *Button) SetInternalRadiusRatio(v float64) bool {
	return b.updateConfig(func(c *Config) { c.InternalRadiusRatio = v })
}

// SetCellSizeRatio sets the cell radius relative to the root. Non-positive
// values are ignored. Cells already in the chain keep their radius.
func (b *Button) SetCellSizeRatio(v float64) bool {
	return b.updateConfig(func(c *Config) { c.CellSizeRatio = v })
}

// SetSplitPoint sets the separation ratio where a connector splits. Values
// outside (0, 1) are ignored.
func (b *Button) SetSplitPoint(v float64) bool {
	return b.updateConfig(func(c *Config) { c.SplitPoint = v })
}

// SetOpeningDuration sets the per-cell opening time. Non-positive values
// are ignored.
func (b *Button) SetOpeningDuration(seconds float64) bool {
	return b.updateConfig(func(c *Config) { c.OpeningDuration = seconds })
}

// SetClosingDuration sets the total closing time. Non-positive values are
// ignored.
func (b *Button) SetClosingDuration(seconds float64) bool {
	return b.updateConfig(func(c *Config) { c.ClosingDuration = seconds })
}

// SetDirection changes the opening axis. The axis is fixed for a whole
// open/close cycle, so the change is ignored unless the cascade is closed
// and at rest.
func (b *Button) SetDirection(d Direction) bool {
	return b.updateConfig(func(c *Config) { c.Direction = d })
}

// SetEnableShadow toggles drop shadows under every circle.
func (b *Button) SetEnableShadow(enabled bool) {
	b.updateConfig(func(c *Config) { c.EnableShadow = enabled })
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
}

// Run opens a window and runs the button as the whole game.
func Run(b *Button, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 640, 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	b.ShowFPS = cfg.ShowFPS
	return ebiten.RunGame(b)
}

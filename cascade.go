package liquid

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// State is the phase of a cascade.
type State uint8

const (
	StateIdle    State = iota // nothing animating; the chain is fully open or fully closed
	StateOpening              // cells are travelling outward one at a time
	StateClosing              // cells are retracting from the tail
)

// String returns the lower-case name of the state.
func (s State) String() string {
	switch s {
	case StateOpening:
		return "opening"
	case StateClosing:
		return "closing"
	default:
		return "idle"
	}
}

// DataSource supplies the cells of a cascade. Its answers must stay
// consistent for the duration of one open/close cycle.
type DataSource interface {
	// NumberOfCells is how many cells open from the root.
	NumberOfCells() int
	// CellAt returns the cell for a zero-based index. Nil means the cell
	// is missing; the cascade stops opening there.
	CellAt(index int) *Cell
	// SpacingRatio scales the gap between settled neighbors when
	// Config.MovementRatio is zero.
	SpacingRatio() float64
}

// EventType identifies a cascade event.
type EventType uint8

const (
	EventOpenStarted  EventType = iota // an open began or a close was reversed
	EventCloseStarted                  // a close began
	EventSpawned                       // a cell joined the chain
	EventSettled                       // a cell reached its target
	EventRemoved                       // a cell was retracted out of the chain
	EventOpened                        // opening finished; the chain is final
	EventClosed                        // closing finished, or an open found no cells; only the root remains
	EventCellMissing                   // the data source had no cell for an index
)

var eventNames = [...]string{
	"open-started", "close-started", "spawned", "settled",
	"removed", "opened", "closed", "cell-missing",
}

// String returns a short name for the event type.
func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return fmt.Sprintf("EventType(%d)", uint8(t))
}

// Event describes one cascade transition. Index is the chain index of the
// cell involved, or 0 for events about the whole chain.
type Event struct {
	Type  EventType
	Index int
	Cell  *Cell
}

// Controller runs the open/close cascade of a chain of cells. It is the only
// writer of cell positions and chain membership. At most one cell, the
// active one, animates at a time, and only the active cell's step is
// subscribed to the frame driver.
type Controller struct {
	cfg    Config
	source DataSource
	driver FrameDriver
	logger *log.Logger

	chain  []*Cell // chain[0] is the root
	state  State
	active int // chain index of the animating cell; 0 when none
	sub    Subscription

	elapsed    float64 // seconds the active cell has been animating
	closeSteps int     // movable cells when the current close began

	// Observer callbacks (nil by default).
	OnWillOpen  func()
	OnWillClose func()
	OnSelect    func(index int)
	OnEvent     func(Event)
}

// NewController creates an idle controller for the given root. The config
// is validated; a configured MovementRatio must keep the root and a settled
// cell from overlapping.
func NewController(root *Cell, cfg Config, source DataSource, driver FrameDriver) (*Controller, error) {
	if root == nil {
		return nil, fmt.Errorf("new controller: nil root")
	}
	if driver == nil {
		return nil, fmt.Errorf("new controller: nil frame driver")
	}
	if root.Radius < 0 {
		return nil, &ConfigError{Field: "radius", Value: root.Radius, Reason: "must be >= 0"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		cfg:    cfg,
		source: source,
		driver: driver,
		chain:  []*Cell{root},
	}
	if cfg.MovementRatio > 0 {
		if err := c.validateMovementRatios(cfg); err != nil {
			return nil, err
		}
	}
	root.index = 0
	if root.Scale == 0 {
		root.Scale = 1
	}
	return c, nil
}

// SetLogger replaces the logger; nil restores the package logger.
func (c *Controller) SetLogger(l *log.Logger) {
	c.logger = l
}

func (c *Controller) log() *log.Logger {
	if c.logger != nil {
		return c.logger
	}
	return Logger()
}

// SetDataSource replaces the data source. It takes effect on the next open.
func (c *Controller) SetDataSource(source DataSource) {
	c.source = source
}

// Config returns the controller's configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// SetConfig replaces the configuration after validating it. A uniform
// MovementRatio must keep settled neighbors from overlapping, and the
// direction can only change while the cascade is closed and at rest.
// On error the previous configuration stays in effect.
func (c *Controller) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.MovementRatio > 0 {
		if err := c.validateMovementRatios(cfg); err != nil {
			return err
		}
	}
	if cfg.Direction != c.cfg.Direction && (c.state != StateIdle || len(c.chain) > 1) {
		return &ConfigError{Field: "direction", Value: float64(cfg.Direction), Reason: "cannot change during a cycle"}
	}
	c.cfg = cfg
	return nil
}

// State returns the current phase.
func (c *Controller) State() State {
	return c.state
}

// Root returns the stationary root cell.
func (c *Controller) Root() *Cell {
	return c.chain[0]
}

// Len returns the number of movable cells in the chain.
func (c *Controller) Len() int {
	return len(c.chain) - 1
}

// Cell returns the cell at chain index i, or nil if out of range.
func (c *Controller) Cell(i int) *Cell {
	if i < 0 || i >= len(c.chain) {
		return nil
	}
	return c.chain[i]
}

// Chain returns the chain, root first. The returned slice MUST NOT be mutated.
func (c *Controller) Chain() []*Cell {
	return c.chain
}

// Active returns the chain index of the animating cell, or 0 when idle.
func (c *Controller) Active() int {
	return c.active
}

// Elapsed returns how long the active cell has been animating.
func (c *Controller) Elapsed() float64 {
	return c.elapsed
}

// IsOpen reports whether the cascade is open or opening.
func (c *Controller) IsOpen() bool {
	return c.state == StateOpening || (c.state == StateIdle && len(c.chain) > 1)
}

// MovementRatio returns the center distance chain index k travels from its
// predecessor before settling. It is also the maximum connection distance
// of the pair.
func (c *Controller) MovementRatio(k int) float64 {
	return c.movementRatio(c.cfg, k)
}

func (c *Controller) movementRatio(cfg Config, k int) float64 {
	if cfg.MovementRatio > 0 {
		return cfg.MovementRatio
	}
	spacing := 0.0
	if c.source != nil {
		spacing = c.source.SpacingRatio()
	}
	if k <= 1 {
		r := c.chain[0].Radius
		return r + r*cfg.InternalRadiusRatio + 2*r*spacing
	}
	r := c.chain[0].Radius * cfg.CellSizeRatio
	return 2*r + 2*r*spacing
}

func (c *Controller) cellRadius() float64 {
	return c.chain[0].Radius * c.cfg.CellSizeRatio
}

func (c *Controller) kernel(k int) Kernel {
	return Kernel{
		MaxConnectDistance: c.MovementRatio(k),
		SplitPoint:         c.cfg.SplitPoint,
		Direction:          c.cfg.Direction,
	}
}

// validateMovementRatios checks that neighbors settled under cfg cannot
// overlap: the root against the first cell and a cell against the next.
func (c *Controller) validateMovementRatios(cfg Config) error {
	r := c.chain[0].Radius
	rc := r * cfg.CellSizeRatio
	if err := validateMovement(c.movementRatio(cfg, 1), r, rc); err != nil {
		return err
	}
	return validateMovement(c.movementRatio(cfg, 2), rc, rc)
}

// Open starts opening the cascade. From Idle with no cells it spawns the
// first cell; while Closing it reverses and the active cell heads back out.
// It is a no-op when already open or opening.
func (c *Controller) Open() error {
	switch c.state {
	case StateOpening:
		return nil
	case StateClosing:
		c.notify(c.OnWillOpen)
		k := c.active
		c.deactivate()
		c.state = StateOpening
		c.emit(EventOpenStarted, k)
		c.activate(k)
		return nil
	}
	if len(c.chain) > 1 {
		return nil
	}
	if c.source == nil {
		return fmt.Errorf("open: no data source")
	}
	if err := c.validateMovementRatios(c.cfg); err != nil {
		return err
	}
	c.notify(c.OnWillOpen)
	c.emit(EventOpenStarted, 0)
	if c.spawn(1) == nil {
		c.log().Debug("cascade has no cells to open")
		c.emit(EventClosed, 0)
		return nil
	}
	c.state = StateOpening
	c.activate(1)
	return nil
}

// Close starts retracting the chain from its tail. Closing interrupts an
// open in progress: the opening step is dropped before the close begins. It
// is a no-op when already closed or closing.
func (c *Controller) Close() {
	if c.state == StateClosing || len(c.chain) < 2 {
		return
	}
	c.notify(c.OnWillClose)
	if c.state == StateOpening {
		c.deactivate()
		c.chain[len(c.chain)-1].ClearOutline()
	}
	c.state = StateClosing
	c.closeSteps = len(c.chain) - 1
	c.emit(EventCloseStarted, len(c.chain)-1)
	c.activate(len(c.chain) - 1)
}

// Toggle opens a closed cascade and closes an open one. A toggle while
// opening closes; a toggle while closing reopens.
func (c *Controller) Toggle() error {
	switch {
	case c.state == StateOpening:
		c.Close()
	case c.state == StateClosing:
		return c.Open()
	case len(c.chain) > 1:
		c.Close()
	default:
		return c.Open()
	}
	return nil
}

// Select reports a tap on the cell at chain index k (k >= 1) to OnSelect as
// its zero-based data source index.
func (c *Controller) Select(k int) {
	if k < 1 || k >= len(c.chain) {
		return
	}
	if c.OnSelect != nil {
		c.OnSelect(k - 1)
	}
}

// spawn asks the data source for the cell at chain index k and appends it at
// its predecessor's center. It returns nil when no more cells are available.
func (c *Controller) spawn(k int) *Cell {
	idx := k - 1
	if idx >= c.source.NumberOfCells() {
		return nil
	}
	cell := c.source.CellAt(idx)
	if cell == nil {
		c.log().Warn("cascade stopped early", "index", idx, "err", ErrMissingCell)
		c.emit(EventCellMissing, k)
		return nil
	}
	cell.attach(k, c.chain[k-1].Center, c.cellRadius(), c.kernel(k))
	c.chain = append(c.chain, cell)
	c.emit(EventSpawned, k)
	return cell
}

// activate hands the single frame subscription to chain index k.
func (c *Controller) activate(k int) {
	if c.sub.Valid() {
		panic(SequencingViolation{Op: "activate", Active: c.active, Requested: k})
	}
	c.active = k
	c.elapsed = 0
	c.sub = c.driver.Subscribe(c.tick)
}

// deactivate drops the frame subscription of the active cell.
func (c *Controller) deactivate() {
	if c.sub.Valid() {
		c.driver.Unsubscribe(c.sub)
		c.sub = Subscription{}
	}
	c.active = 0
	c.elapsed = 0
}

// tick advances the active cell by one frame of dt seconds.
func (c *Controller) tick(dt float64) {
	if dt <= 0 || c.active < 1 || c.active >= len(c.chain) {
		return
	}
	c.elapsed += dt
	switch c.state {
	case StateOpening:
		c.stepOpen(dt)
	case StateClosing:
		c.stepClose(dt)
	}
}

func (c *Controller) stepOpen(dt float64) {
	k := c.active
	cell, pred := c.chain[k], c.chain[k-1]
	target := c.MovementRatio(k)

	distance := c.along(cell, pred)
	if distance < target {
		step := target / (c.cfg.OpeningDuration / dt)
		cell.Translate(c.cfg.Direction.Offset(step))
		cell.SetKernel(c.kernel(k))
		cell.SetNeighbor(pred.Circle())
		cell.RecomputeOutline()
		if distance+step < target {
			return
		}
	}
	c.deactivate()
	cell.ClearOutline()
	cell.revealed = true
	c.emit(EventSettled, k)

	if c.spawn(k+1) == nil {
		c.state = StateIdle
		c.emit(EventOpened, 0)
		return
	}
	c.activate(k + 1)
}

func (c *Controller) stepClose(dt float64) {
	k := c.active
	cell, pred := c.chain[k], c.chain[k-1]
	target := c.MovementRatio(k)

	keyDuration := c.cfg.ClosingDuration / float64(c.closeSteps+1)
	step := target / (keyDuration / dt)
	remaining := c.along(cell, pred) - step
	cell.Translate(c.cfg.Direction.Reverse(step))

	if remaining-step > 0 {
		return
	}
	c.deactivate()
	c.chain = c.chain[:k]
	cell.detach()
	c.emitCell(EventRemoved, k, cell)

	if k-1 >= 1 {
		c.activate(k - 1)
		return
	}
	c.state = StateIdle
	c.emit(EventClosed, 0)
}

// along returns how far cell lies ahead of pred along the opening axis.
// It is negative once a retracting cell has passed its predecessor.
func (c *Controller) along(cell, pred *Cell) float64 {
	off := cell.Center.Sub(pred.Center)
	axis := c.cfg.Direction.Offset(1)
	return off.X*axis.X + off.Y*axis.Y
}

func (c *Controller) notify(fn func()) {
	if fn != nil {
		fn()
	}
}

func (c *Controller) emit(t EventType, k int) {
	var cell *Cell
	if k >= 0 && k < len(c.chain) {
		cell = c.chain[k]
	}
	c.emitCell(t, k, cell)
}

func (c *Controller) emitCell(t EventType, k int, cell *Cell) {
	c.log().Debug("cascade", "event", t, "index", k, "state", c.state)
	if c.OnEvent != nil {
		c.OnEvent(Event{Type: t, Index: k, Cell: cell})
	}
}

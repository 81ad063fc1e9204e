package liquid

import "fmt"

// CellSnapshot is the drawable state of one cell at one instant.
type CellSnapshot struct {
	Index     int
	Name      string
	Circle    Circle
	Color     Color
	IconAlpha float64
	Outline   Outline
}

// Frame is a copy of a cascade's drawable state. Cells holds the root first.
type Frame struct {
	Tick    int
	Time    float64
	State   State
	Active  int
	Cells   []CellSnapshot
	Events  []Event
	Bounds  Rect
	Elapsed float64
}

// Distance returns the center distance between the active cell and its
// predecessor, or 0 when nothing is animating.
func (f Frame) Distance() float64 {
	if f.Active < 1 || f.Active >= len(f.Cells) {
		return 0
	}
	return f.Cells[f.Active].Circle.Center.Dist(f.Cells[f.Active-1].Circle.Center)
}

// ActiveOutline returns the outline of the active cell.
func (f Frame) ActiveOutline() Outline {
	if f.Active < 1 || f.Active >= len(f.Cells) {
		return Outline{}
	}
	return f.Cells[f.Active].Outline
}

// String summarizes the frame on one line.
func (f Frame) String() string {
	o := f.ActiveOutline()
	return fmt.Sprintf("tick=%d t=%.3fs state=%s cells=%d active=%d distance=%.2f outline=%s ratio=%.3f",
		f.Tick, f.Time, f.State, len(f.Cells)-1, f.Active, f.Distance(), o.Kind, o.Ratio)
}

// Snapshot copies the controller's drawable state.
func (c *Controller) Snapshot() Frame {
	f := Frame{
		State:   c.state,
		Active:  c.active,
		Elapsed: c.elapsed,
		Cells:   make([]CellSnapshot, len(c.chain)),
	}
	for i, cell := range c.chain {
		f.Cells[i] = CellSnapshot{
			Index:     i,
			Name:      cell.Name,
			Circle:    cell.Circle(),
			Color:     cell.Color,
			IconAlpha: cell.IconAlpha,
			Outline:   cell.Outline(),
		}
		f.Bounds = f.Bounds.Union(cell.Circle().Bounds())
	}
	return f
}

// Recorder steps a controller with a fixed interval and keeps a Frame per
// tick. It drives its own Ticker, so it needs no display.
type Recorder struct {
	ctrl   *Controller
	ticker *Ticker
	dt     float64
	frames []Frame
	events []Event

	// MaxTicks bounds each phase so a misconfigured cascade cannot spin
	// forever.
	MaxTicks int
}

// NewRecorder builds a controller over a fresh Ticker for headless runs.
// dt is the tick interval in seconds, typically 1/60.
func NewRecorder(root *Cell, cfg Config, source DataSource, dt float64) (*Recorder, error) {
	if dt <= 0 {
		return nil, &ConfigError{Field: "tick_interval", Value: dt, Reason: "must be > 0"}
	}
	ticker := NewTicker()
	ctrl, err := NewController(root, cfg, source, ticker)
	if err != nil {
		return nil, err
	}
	r := &Recorder{ctrl: ctrl, ticker: ticker, dt: dt, MaxTicks: 100000}
	ctrl.OnEvent = func(e Event) {
		r.events = append(r.events, e)
		if e.Type == EventSettled && e.Cell != nil {
			e.Cell.IconAlpha = 1
		}
	}
	return r, nil
}

// Controller returns the recorded controller.
func (r *Recorder) Controller() *Controller {
	return r.ctrl
}

// Frames returns every frame recorded so far.
func (r *Recorder) Frames() []Frame {
	return r.frames
}

// Open opens the cascade and records until it settles.
func (r *Recorder) Open() error {
	if err := r.ctrl.Open(); err != nil {
		return err
	}
	return r.run()
}

// Close closes the cascade and records until it settles.
func (r *Recorder) Close() error {
	r.ctrl.Close()
	return r.run()
}

// Step records n ticks regardless of state.
func (r *Recorder) Step(n int) {
	for i := 0; i < n; i++ {
		r.tick()
	}
}

func (r *Recorder) run() error {
	r.capture()
	for i := 0; r.ctrl.State() != StateIdle; i++ {
		if i >= r.MaxTicks {
			return fmt.Errorf("record: cascade still %s after %d ticks", r.ctrl.State(), i)
		}
		r.tick()
	}
	return nil
}

func (r *Recorder) tick() {
	r.ticker.Tick(r.dt)
	r.capture()
}

func (r *Recorder) capture() {
	f := r.ctrl.Snapshot()
	f.Tick = r.ticker.Ticks()
	f.Time = float64(f.Tick) * r.dt
	f.Events = r.events
	r.events = nil
	r.frames = append(r.frames, f)
}

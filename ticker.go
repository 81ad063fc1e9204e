package liquid

// FrameDriver delivers per-frame ticks to subscribers. Each callback receives
// the seconds elapsed since the previous tick.
type FrameDriver interface {
	Subscribe(fn func(dt float64)) Subscription
	Unsubscribe(sub Subscription)
}

// Subscription identifies one registered tick callback. The zero value is
// not a subscription.
type Subscription struct {
	id uint32
}

// Valid reports whether s refers to a subscription.
func (s Subscription) Valid() bool {
	return s.id != 0
}

type tickSub struct {
	id uint32
	fn func(dt float64)
}

// Ticker is a FrameDriver advanced explicitly by calling Tick. Button calls
// it once per Update; tests and tools call it with any interval they like.
//
// Callbacks may subscribe and unsubscribe during a tick. A subscription
// removed mid-tick is not called again, and one added mid-tick first runs on
// the following tick.
type Ticker struct {
	subs     []tickSub
	dispatch []tickSub // reused snapshot buffer
	nextID   uint32
	ticks    int
}

// NewTicker returns an empty Ticker.
func NewTicker() *Ticker {
	return &Ticker{}
}

// Subscribe registers fn to be called on every subsequent Tick.
func (t *Ticker) Subscribe(fn func(dt float64)) Subscription {
	t.nextID++
	t.subs = append(t.subs, tickSub{id: t.nextID, fn: fn})
	return Subscription{id: t.nextID}
}

// Unsubscribe removes the subscription. Unknown or zero handles are ignored.
func (t *Ticker) Unsubscribe(sub Subscription) {
	if !sub.Valid() {
		return
	}
	for i, s := range t.subs {
		if s.id == sub.id {
			t.subs = append(t.subs[:i], t.subs[i+1:]...)
			return
		}
	}
}

// Len returns the number of live subscriptions.
func (t *Ticker) Len() int {
	return len(t.subs)
}

// Ticks returns how many times Tick has been called.
func (t *Ticker) Ticks() int {
	return t.ticks
}

// Tick calls every subscription registered before this call with dt.
func (t *Ticker) Tick(dt float64) {
	t.ticks++
	t.dispatch = append(t.dispatch[:0], t.subs...)
	for _, s := range t.dispatch {
		if !t.subscribed(s.id) {
			continue
		}
		s.fn(dt)
	}
}

func (t *Ticker) subscribed(id uint32) bool {
	for _, s := range t.subs {
		if s.id == id {
			return true
		}
	}
	return false
}

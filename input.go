package liquid

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// noTarget marks a pointer that went down outside every circle.
const noTarget = -1

// pointerState tracks one press from down to up.
type pointerState struct {
	down     bool
	touching bool // the press came from touch
	touch    ebiten.TouchID
	target   int // chain index under the press, or noTarget
}

// hitTest returns the chain index of the topmost circle containing (x, y),
// or noTarget. The root is drawn over every cell and later cells over
// earlier ones, so the root is tested first and then the chain from the tail.
func (b *Button) hitTest(x, y float64) int {
	chain := b.ctrl.Chain()
	if chain[0].Circle().Contains(x, y) {
		return 0
	}
	for i := len(chain) - 1; i >= 1; i-- {
		if chain[i].Circle().Contains(x, y) {
			return i
		}
	}
	return noTarget
}

// processInput handles one frame of pointer input. Injected events take
// priority; real mouse and touch input is read only when none are queued.
func (b *Button) processInput() {
	if b.processInjectedInput() {
		return
	}
	b.processMouse()
	b.processTouch()
}

func (b *Button) processMouse() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		b.processPointer(float64(x), float64(y), true)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		b.processPointer(float64(x), float64(y), false)
	}
}

// processTouch follows the first touch only; multi-touch gestures are out
// of scope.
func (b *Button) processTouch() {
	b.touchBuf = inpututil.AppendJustPressedTouchIDs(b.touchBuf[:0])
	if !b.pointer.down && len(b.touchBuf) > 0 {
		id := b.touchBuf[0]
		x, y := ebiten.TouchPosition(id)
		b.pointer.touch = id
		b.pointer.touching = true
		b.processPointer(float64(x), float64(y), true)
		return
	}
	if b.pointer.down && b.pointer.touching && inpututil.IsTouchJustReleased(b.pointer.touch) {
		x, y := inpututil.TouchPositionInPreviousTick(b.pointer.touch)
		b.pointer.touching = false
		b.processPointer(float64(x), float64(y), false)
	}
}

// processPointer turns a press/release pair over the same circle into a tap.
func (b *Button) processPointer(x, y float64, pressed bool) {
	if pressed {
		b.pointer.down = true
		b.pointer.target = b.hitTest(x, y)
		return
	}
	if !b.pointer.down {
		return
	}
	b.pointer.down = false
	target := b.pointer.target
	b.pointer.target = noTarget
	if target == noTarget || b.hitTest(x, y) != target {
		return
	}
	b.handleTap(target)
}

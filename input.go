package lumen

import "github.com/hajimehoshi/ebiten/v2"

// PointerListener receives the three pointer events the system consumes.
// Move events are delivered regardless of button state; listeners that only
// care about drags gate on their own down/up state.
type PointerListener interface {
	PointerDown(x, y float64)
	PointerMove(x, y float64)
	PointerUp()
}

// syntheticPointerEvent is a single injected pointer event, consumed one per
// tick so multi-frame interactions (drags) play out like real input.
type syntheticPointerEvent struct {
	typ  EventType
	x, y float64
}

// Pointer converts mouse state into PointerDown/PointerMove/PointerUp calls
// on its listeners, once per tick. Injected events take priority over real
// input and drain one per tick.
type Pointer struct {
	// PollHardware reads the real mouse each tick. Disable for headless
	// runs driven entirely by injected events.
	PollHardware bool

	listeners   []PointerListener
	down        bool
	last        Vec2
	hasLast     bool
	injectQueue []syntheticPointerEvent
}

// NewPointer creates a pointer source with hardware polling enabled.
func NewPointer() *Pointer {
	return &Pointer{PollHardware: true}
}

// AddListener registers a listener. Listeners are notified in registration
// order.
func (p *Pointer) AddListener(l PointerListener) {
	p.listeners = append(p.listeners, l)
}

// InjectDown queues a synthetic press at the given screen coordinates.
// The event is consumed on the next Update call.
func (p *Pointer) InjectDown(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{typ: EventPointerDown, x: x, y: y})
}

// InjectMove queues a synthetic cursor move.
func (p *Pointer) InjectMove(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{typ: EventPointerMove, x: x, y: y})
}

// InjectUp queues a synthetic release.
func (p *Pointer) InjectUp(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{typ: EventPointerUp, x: x, y: y})
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves, and release at (toX, toY). The sequence consumes
// `frames` ticks; minimum is 2 (press + release).
func (p *Pointer) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	p.InjectDown(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		p.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	p.InjectUp(toX, toY)
}

// Pending reports how many injected events are still queued.
func (p *Pointer) Pending() int {
	return len(p.injectQueue)
}

// Update delivers at most one injected event, or polls the real mouse for
// press/release edges and cursor movement. Call once per tick.
func (p *Pointer) Update() {
	if len(p.injectQueue) > 0 {
		ev := p.injectQueue[0]
		copy(p.injectQueue, p.injectQueue[1:])
		p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]
		p.dispatch(ev.typ, ev.x, ev.y)
		return
	}

	if !p.PollHardware {
		return
	}

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	if pressed && !p.down {
		p.down = true
		p.dispatch(EventPointerDown, x, y)
	}
	if p.hasLast && (x != p.last.X || y != p.last.Y) {
		p.dispatch(EventPointerMove, x, y)
	}
	p.last = Vec2{X: x, Y: y}
	p.hasLast = true
	if !pressed && p.down {
		p.down = false
		p.dispatch(EventPointerUp, x, y)
	}
}

func (p *Pointer) dispatch(typ EventType, x, y float64) {
	for _, l := range p.listeners {
		switch typ {
		case EventPointerDown:
			l.PointerDown(x, y)
		case EventPointerMove:
			l.PointerMove(x, y)
		case EventPointerUp:
			l.PointerUp()
		}
	}
}

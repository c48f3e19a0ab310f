package scratch

// InputMode selects the one input mechanism a card listens to.
type InputMode int

const (
	// InputMouse binds pointer down/move/up/leave events.
	InputMouse InputMode = iota

	// InputTouch binds touch start/move/end/cancel events.
	InputTouch
)

// String returns the input mode name.
func (m InputMode) String() string {
	switch m {
	case InputMouse:
		return "Mouse"
	case InputTouch:
		return "Touch"
	default:
		return "Unknown"
	}
}

// DetectInputMode picks the input mechanism from a one-time capability
// probe of the host. Touch-capable hosts bind touch exclusively, so the
// emulated mouse events a touch screen also delivers are never doubled.
func DetectInputMode(touchCapable bool) InputMode {
	if touchCapable {
		return InputTouch
	}
	return InputMouse
}

// EventKind identifies a raw device event.
type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	PointerLeave
	TouchStart
	TouchMove
	TouchEnd
	TouchCancel
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "PointerDown"
	case PointerMove:
		return "PointerMove"
	case PointerUp:
		return "PointerUp"
	case PointerLeave:
		return "PointerLeave"
	case TouchStart:
		return "TouchStart"
	case TouchMove:
		return "TouchMove"
	case TouchEnd:
		return "TouchEnd"
	case TouchCancel:
		return "TouchCancel"
	default:
		return "Unknown"
	}
}

// Point is a coordinate pair, in device or surface space depending on use.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is the on-screen rectangle of the scratch surface in device space.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Event is a raw pointer or touch event as delivered by the host.
type Event struct {
	Kind EventKind

	// X, Y are the device coordinates of a pointer event.
	X, Y float64

	// Touches holds the active touch points of a touch event in device
	// coordinates. Only the first one scratches.
	Touches []Point

	// Surface is where the scratch surface sits on screen when the event
	// is dispatched.
	Surface Rect
}

// Command is one surface-local scratch point produced by an active gesture.
type Command struct {
	Point

	// From is the previous point of the same gesture, or Point itself for
	// the first command of a gesture.
	From Point

	// Stroke numbers gestures from 1 in the order they started.
	Stroke int

	// First marks the command that started the gesture.
	First bool
}

type gesturePhase int

const (
	phaseNone gesturePhase = iota
	phaseStart
	phaseMove
	phaseEnd
)

// pointerSession classifies the raw events of one input mechanism.
// Events that belong to another mechanism classify as phaseNone.
type pointerSession interface {
	mode() InputMode
	classify(ev Event) (gesturePhase, Point)
}

type mouseSession struct{}

func (mouseSession) mode() InputMode { return InputMouse }

func (mouseSession) classify(ev Event) (gesturePhase, Point) {
	p := Point{X: ev.X, Y: ev.Y}
	switch ev.Kind {
	case PointerDown:
		return phaseStart, p
	case PointerMove:
		return phaseMove, p
	case PointerUp, PointerLeave:
		return phaseEnd, p
	default:
		return phaseNone, Point{}
	}
}

type touchSession struct{}

func (touchSession) mode() InputMode { return InputTouch }

func (touchSession) classify(ev Event) (gesturePhase, Point) {
	switch ev.Kind {
	case TouchStart, TouchMove:
		if len(ev.Touches) == 0 {
			return phaseNone, Point{}
		}
		if ev.Kind == TouchStart {
			return phaseStart, ev.Touches[0]
		}
		return phaseMove, ev.Touches[0]
	case TouchEnd, TouchCancel:
		return phaseEnd, Point{}
	default:
		return phaseNone, Point{}
	}
}

func newPointerSession(mode InputMode) pointerSession {
	if mode == InputTouch {
		return touchSession{}
	}
	return mouseSession{}
}

// InputNormalizer turns the raw events of one bound input mechanism into an
// ordered stream of surface-local scratch commands.
//
// It is Idle until a press or touch start, Active until release, leave,
// touch end or cancel. Motion while Idle produces nothing.
type InputNormalizer struct {
	session pointerSession
	active  bool
	last    Point
	strokes int
}

// NewInputNormalizer binds the normalizer to one input mechanism for its
// whole lifetime.
func NewInputNormalizer(mode InputMode) *InputNormalizer {
	return &InputNormalizer{session: newPointerSession(mode)}
}

// Mode returns the bound input mechanism.
func (n *InputNormalizer) Mode() InputMode {
	return n.session.mode()
}

// Active reports whether a gesture is in progress.
func (n *InputNormalizer) Active() bool {
	return n.active
}

// Strokes returns the number of gestures started so far.
func (n *InputNormalizer) Strokes() int {
	return n.strokes
}

// Handle consumes one raw event. It returns a scratch command and true when
// the event contributes a point to an active gesture.
func (n *InputNormalizer) Handle(ev Event) (Command, bool) {
	phase, raw := n.session.classify(ev)
	switch phase {
	case phaseStart:
		p := raw.Sub(ev.Surface.Origin())
		n.active = true
		n.strokes++
		n.last = p
		Logger().Debug("scratch: gesture start",
			"mode", n.session.mode(), "stroke", n.strokes, "x", p.X, "y", p.Y)
		return Command{Point: p, From: p, Stroke: n.strokes, First: true}, true

	case phaseMove:
		if !n.active {
			return Command{}, false
		}
		p := raw.Sub(ev.Surface.Origin())
		cmd := Command{Point: p, From: n.last, Stroke: n.strokes}
		n.last = p
		return cmd, true

	case phaseEnd:
		if n.active {
			n.active = false
			Logger().Debug("scratch: gesture end", "stroke", n.strokes, "kind", ev.Kind)
		}
	}
	return Command{}, false
}

// Cancel ends any active gesture without producing a command.
func (n *InputNormalizer) Cancel() {
	n.active = false
}

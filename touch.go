package okulus

import "fmt"

// PointerKind is the kind of a pointer event delivered by the host.
type PointerKind uint8

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerCancel
)

// String returns the event kind name.
func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	}
	return fmt.Sprintf("PointerKind(%d)", uint8(k))
}

// PointerEvent is a pointer event in the same coordinate space as the
// bounds it is tested against.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// TouchState is the state of the press-feedback state machine.
type TouchState uint8

const (
	TouchIdle TouchState = iota
	TouchPressed
)

// String returns the state name.
func (s TouchState) String() string {
	if s == TouchPressed {
		return "pressed"
	}
	return "idle"
}

// TouchOverlay tracks whether a pointer is pressed inside the shape.
//
// A down inside the bounds presses. Moving outside while pressed releases,
// and moving back in does not press again. Up and cancel always release.
// When disabled the machine stays idle and consumes nothing.
//
// TouchOverlay is not safe for concurrent use; it is driven from the
// host's UI thread.
type TouchOverlay struct {
	enabled  bool
	tracking bool
	state    TouchState
}

// NewTouchOverlay creates an idle state machine.
func NewTouchOverlay(enabled bool) *TouchOverlay {
	return &TouchOverlay{enabled: enabled}
}

// Enabled reports whether the machine reacts to events.
func (t *TouchOverlay) Enabled() bool { return t.enabled }

// State returns the current state.
func (t *TouchOverlay) State() TouchState { return t.state }

// Active reports whether the overlay should be drawn.
func (t *TouchOverlay) Active() bool { return t.state == TouchPressed }

// SetEnabled turns the machine on or off. Disabling resets it to idle and
// reports whether that changed the visible state.
func (t *TouchOverlay) SetEnabled(enabled bool) (changed bool) {
	t.enabled = enabled
	if enabled {
		return false
	}
	t.tracking = false
	return t.set(TouchIdle)
}

// Handle feeds ev to the machine. consumed reports whether the host should
// treat the event as handled; changed reports whether the overlay
// visibility flipped, in which case the host redraws once.
func (t *TouchOverlay) Handle(ev PointerEvent, bounds Rect) (consumed, changed bool) {
	if !t.enabled {
		return false, false
	}

	switch ev.Kind {
	case PointerDown:
		if !bounds.Contains(ev.X, ev.Y) {
			t.tracking = false
			return false, t.set(TouchIdle)
		}
		t.tracking = true
		return true, t.set(TouchPressed)

	case PointerMove:
		if !t.tracking {
			return false, false
		}
		if t.state == TouchPressed && !bounds.Contains(ev.X, ev.Y) {
			return true, t.set(TouchIdle)
		}
		return true, false

	case PointerUp, PointerCancel:
		consumed = t.tracking
		t.tracking = false
		return consumed, t.set(TouchIdle)
	}
	return false, false
}

// Color resolves the overlay color for style: the style's touch overlay
// color while pressed, transparent otherwise.
func (t *TouchOverlay) Color(style StyleSpec) RGBA {
	if t.Active() && style.TouchOverlayEnabled {
		return style.TouchOverlayColor
	}
	return Transparent
}

func (t *TouchOverlay) set(s TouchState) bool {
	if t.state == s {
		return false
	}
	Logger().Debug("okulus: touch overlay", "from", t.state, "to", s)
	t.state = s
	return true
}

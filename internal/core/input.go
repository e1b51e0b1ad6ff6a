package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // P, Escape - pause/unpause game
	ActionRestart        // R key - restart the session
	ActionQuit           // Q, Ctrl+C - exit game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Key is a movement key whose held/released state is tracked per tick.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "None"
	}
}

// Point is a position reported by the input service (mouse cursor).
type Point struct {
	X, Y float64
}

// InputFrame is the input snapshot for one simulation tick.
// The platform fills it from its event source; games only read it.
type InputFrame struct {
	// Actions maps one-shot actions to whether they were triggered this frame.
	Actions map[Action]bool

	// HeldKeys are the movement keys currently held down.
	HeldKeys map[Key]bool

	// ReleasedKeys are the movement keys released during this frame.
	ReleasedKeys map[Key]bool

	// Mouse is the cursor position in world coordinates.
	Mouse Point
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions:      make(map[Action]bool),
		HeldKeys:     make(map[Key]bool),
		ReleasedKeys: make(map[Key]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Hold marks a key as held down.
func (f *InputFrame) Hold(k Key) {
	if f.HeldKeys == nil {
		f.HeldKeys = make(map[Key]bool)
	}
	f.HeldKeys[k] = true
}

// Release marks a key as released during this frame.
func (f *InputFrame) Release(k Key) {
	if f.ReleasedKeys == nil {
		f.ReleasedKeys = make(map[Key]bool)
	}
	f.ReleasedKeys[k] = true
}

// Held reports whether the key is currently held.
func (f InputFrame) Held(k Key) bool {
	return f.HeldKeys[k]
}

// Released reports whether the key was released this frame.
func (f InputFrame) Released(k Key) bool {
	return f.ReleasedKeys[k]
}

// AnyReleased reports whether any movement key was released this frame.
func (f InputFrame) AnyReleased() bool {
	for _, released := range f.ReleasedKeys {
		if released {
			return true
		}
	}
	return false
}

// SetMouse records the cursor position.
func (f *InputFrame) SetMouse(x, y float64) {
	f.Mouse = Point{X: x, Y: y}
}

// Clear resets actions and releases for the next frame.
// Held keys persist until the platform releases them.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.ReleasedKeys {
		delete(f.ReleasedKeys, k)
	}
}

// Clone creates a deep copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.HeldKeys {
		clone.HeldKeys[k] = v
	}
	for k, v := range f.ReleasedKeys {
		clone.ReleasedKeys[k] = v
	}
	clone.Mouse = f.Mouse
	return clone
}

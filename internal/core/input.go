package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move up
	ActionDown           // S, Down arrow - move down
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionAttack         // Space - attack; hold to charge with the melee character
	ActionDodge          // Shift/X - dodge roll
	ActionSwap           // Tab/E - swap character
	ActionConfirm        // Enter - continue to the next level
	ActionRestart        // R key - restart after victory/defeat
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P, Escape - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionAttack:
		return "Attack"
	case ActionDodge:
		return "Dodge"
	case ActionSwap:
		return "Swap"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the input intent for one simulation tick.
//
// Actions holds edge events (pressed this tick). Held holds the level state
// of buttons that matter while kept down (movement, attack charge). Move is an
// optional analog vector with components in [-1, 1]; when its length exceeds
// the dead zone it overrides the directional actions.
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool
	Move    Vec2
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Hold sets whether an action is currently held down.
func (f *InputFrame) Hold(a Action, down bool) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	if down {
		f.Held[a] = true
		return
	}
	delete(f.Held, a)
}

// Holding returns true if the action is held this frame.
func (f InputFrame) Holding(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// Direction returns the keyboard movement vector built from the held
// directional actions, normalized so diagonals are not faster.
func (f InputFrame) Direction() Vec2 {
	var d Vec2
	if f.Holding(ActionUp) {
		d.Y--
	}
	if f.Holding(ActionDown) {
		d.Y++
	}
	if f.Holding(ActionLeft) {
		d.X--
	}
	if f.Holding(ActionRight) {
		d.X++
	}
	return d.Normalize()
}

// Clear resets edge events for the next frame. Held state and the analog
// vector persist until the producer changes them.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Latch adds the edge events of o to f. Held state is left alone.
func (f *InputFrame) Latch(o InputFrame) {
	for a, on := range o.Actions {
		if on {
			f.Set(a)
		}
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	clone.Move = f.Move
	return clone
}

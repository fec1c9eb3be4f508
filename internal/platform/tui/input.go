package tui

import "github.com/vovakirdan/tui-twinblade/internal/core"

// Terminals report key presses and auto-repeats but never releases, so a
// held key is modelled as a window that every repeat refreshes. The first
// press gets a long window to bridge the OS repeat delay.
const (
	holdFirst  = 30 // ticks
	holdRepeat = 6  // ticks
)

type hold struct {
	ticks int
	held  bool
}

// heldInput builds the per-tick InputFrame from discrete key events.
type heldInput struct {
	frame core.InputFrame
	keys  map[core.Action]*hold
}

func newHeldInput() *heldInput {
	return &heldInput{
		frame: core.NewInputFrame(),
		keys:  make(map[core.Action]*hold),
	}
}

// Press records one key event. Ranged is true when the active character
// fires on every press rather than charging.
func (h *heldInput) Press(a core.Action, ranged bool) {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		h.release(opposite(a))
		h.refresh(a, true)
	case core.ActionAttack:
		if ranged {
			h.frame.Set(a)
			return
		}
		// A tap strikes at once. A repeat arriving inside the window turns
		// it into a hold that charges until the repeats stop.
		if k, ok := h.keys[a]; ok {
			k.held = true
			k.ticks = holdRepeat
			return
		}
		h.frame.Set(a)
		h.keys[a] = &hold{ticks: holdFirst}
	case core.ActionNone:
	default:
		h.frame.Set(a)
	}
}

func (h *heldInput) refresh(a core.Action, held bool) {
	if k, ok := h.keys[a]; ok {
		k.ticks = holdRepeat
		k.held = held
		return
	}
	h.keys[a] = &hold{ticks: holdFirst, held: held}
}

func (h *heldInput) release(a core.Action) {
	delete(h.keys, a)
	h.frame.Hold(a, false)
}

// Frame returns the input for the coming tick with held state applied.
func (h *heldInput) Frame() core.InputFrame {
	for a, k := range h.keys {
		h.frame.Hold(a, k.held)
	}
	return h.frame
}

// Advance ages the hold windows and clears edge events after a tick.
func (h *heldInput) Advance() {
	for a, k := range h.keys {
		k.ticks--
		if k.ticks <= 0 {
			h.release(a)
		}
	}
	h.frame.Clear()
}

// Reset drops every held key, e.g. after pause or a level change.
func (h *heldInput) Reset() {
	clear(h.keys)
	h.frame = core.NewInputFrame()
}

package core

import (
	"math"
	"testing"
)

func TestInputFrameEdgesAndHeld(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionDodge)
	f.Hold(ActionAttack, true)

	if !f.Has(ActionDodge) {
		t.Error("Has(Dodge) = false, expected true")
	}
	if f.Has(ActionAttack) {
		t.Error("Has(Attack) = true, expected false (only held)")
	}
	if !f.Holding(ActionAttack) {
		t.Error("Holding(Attack) = false, expected true")
	}

	f.Clear()
	if f.Has(ActionDodge) {
		t.Error("Clear() should drop edge events")
	}
	if !f.Holding(ActionAttack) {
		t.Error("Clear() should keep held state")
	}

	f.Hold(ActionAttack, false)
	if f.Holding(ActionAttack) {
		t.Error("Hold(false) should release the action")
	}
}

func TestInputFrameDirection(t *testing.T) {
	tests := []struct {
		name  string
		held  []Action
		wantX float64
		wantY float64
	}{
		{"none", nil, 0, 0},
		{"right", []Action{ActionRight}, 1, 0},
		{"up", []Action{ActionUp}, 0, -1},
		{"opposites cancel", []Action{ActionLeft, ActionRight}, 0, 0},
		{"diagonal normalized", []Action{ActionDown, ActionRight}, math.Sqrt2 / 2, math.Sqrt2 / 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.held {
				f.Hold(a, true)
			}
			d := f.Direction()
			if math.Abs(d.X-tc.wantX) > 1e-9 || math.Abs(d.Y-tc.wantY) > 1e-9 {
				t.Errorf("Direction() = %v, expected (%v, %v)", d, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionSwap)
	f.Hold(ActionUp, true)
	f.Move = V(0.5, 0)

	c := f.Clone()
	f.Clear()
	f.Hold(ActionUp, false)

	if !c.Has(ActionSwap) || !c.Holding(ActionUp) || c.Move != V(0.5, 0) {
		t.Errorf("Clone() did not copy state: %+v", c)
	}
}

func TestInputFrameLatch(t *testing.T) {
	pending := NewInputFrame()
	in := NewInputFrame()
	in.Set(ActionDodge)
	in.Hold(ActionLeft, true)

	pending.Latch(in)
	in.Clear()
	pending.Latch(in)

	if !pending.Has(ActionDodge) {
		t.Error("Latch() lost the dodge edge")
	}
	if pending.Holding(ActionLeft) {
		t.Error("Latch() should not copy held state")
	}
}

func TestActionString(t *testing.T) {
	if ActionAttack.String() != "Attack" {
		t.Errorf("ActionAttack.String() = %q", ActionAttack.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
	if CueChargeReady.String() != "charge_ready" {
		t.Errorf("CueChargeReady.String() = %q", CueChargeReady.String())
	}
}

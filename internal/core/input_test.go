package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame(ActionLeft)

	if !f.Has(ActionLeft) {
		t.Error("Frame created with ActionLeft should have it")
	}
	if f.Has(ActionJump) {
		t.Error("Frame should not have ActionJump yet")
	}

	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("Set should mark ActionJump as held")
	}

	f.Unset(ActionLeft)
	if f.Has(ActionLeft) {
		t.Error("Unset should release ActionLeft")
	}

	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should release all actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Error("Zero frame should have no actions")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on zero frame should allocate and mark the action")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame(ActionRight)
	clone := f.Clone()
	f.Clear()

	if !clone.Has(ActionRight) {
		t.Error("Clone should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	if ActionJump.String() != "Jump" {
		t.Errorf("ActionJump.String() = %q", ActionJump.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Unknown action should stringify as Unknown")
	}
}

package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionJump) {
		t.Error("fresh frame should have no actions")
	}

	f.Set(ActionJump)
	f.Set(ActionRight)
	if !f.Has(ActionJump) || !f.Has(ActionRight) {
		t.Error("Set actions should be visible through Has")
	}
	if f.Has(ActionLeft) {
		t.Error("unset action reported as triggered")
	}

	f.Clear()
	if f.Has(ActionJump) || f.Has(ActionRight) {
		t.Error("Clear should drop every action")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	// The zero value works: Has answers false, Set allocates on demand.
	var f InputFrame
	if f.Has(ActionPause) {
		t.Error("zero-value frame should have no actions")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on a zero-value frame should take effect")
	}
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)

	c := f.Clone()
	c.Set(ActionRun)
	f.Clear()

	if !c.Has(ActionLeft) || !c.Has(ActionRun) {
		t.Error("clone should keep its own action set")
	}
	if f.Has(ActionRun) {
		t.Error("writes to the clone leaked into the original")
	}
}

func TestActionString(t *testing.T) {
	if ActionJump.String() != "Jump" {
		t.Errorf("ActionJump.String() = %q, expected %q", ActionJump.String(), "Jump")
	}
	if Action(-1).String() != "Unknown" || Action(999).String() != "Unknown" {
		t.Error("out-of-range actions should stringify as Unknown")
	}
}

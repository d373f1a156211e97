package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyGameBindings(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{runeKey('a'), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{runeKey('d'), core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{runeKey(' '), core.ActionJump},
		{runeKey('z'), core.ActionRun},
		{runeKey('p'), core.ActionPause},
		{runeKey('r'), core.ActionRestart},
		{runeKey('x'), core.ActionNone},
	}
	for _, tc := range tests {
		action, isQuit := km.MapKey(tc.msg)
		if action != tc.want {
			t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), action, tc.want)
		}
		if isQuit {
			t.Errorf("MapKey(%q) flagged quit", tc.msg.String())
		}
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		action, isQuit := km.MapKey(msg)
		if !isQuit || action != core.ActionQuit {
			t.Errorf("MapKey(%q) = %v quit=%v, expected ActionQuit with quit set", msg.String(), action, isQuit)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(runeKey('a'), &frame); quit {
		t.Error("movement key flagged quit")
	}
	km.MapKeyToFrame(runeKey(' '), &frame)

	if !frame.Has(core.ActionLeft) || !frame.Has(core.ActionJump) {
		t.Error("mapped actions missing from frame")
	}
	if quit := km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame); !quit {
		t.Error("ctrl+c should flag quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}
	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}

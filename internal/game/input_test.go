package game

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyToAction(t *testing.T) {
	cases := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionMoveN},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), ActionMoveS},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionMoveW},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), ActionMoveE},
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), ActionMoveN},
		{"A uppercase", tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModNone), ActionMoveW},
		{"s", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), ActionMoveS},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), ActionMoveE},
		{"wait", tcell.NewEventKey(tcell.KeyRune, '.', tcell.ModNone), ActionWait},
		{"quit q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit},
		{"quit escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := keyToAction(tc.ev); got != tc.want {
				t.Errorf("keyToAction = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestActionToDelta(t *testing.T) {
	cases := []struct {
		action Action
		dx, dy int
	}{
		{ActionMoveN, 0, -1},
		{ActionMoveS, 0, 1},
		{ActionMoveE, 1, 0},
		{ActionMoveW, -1, 0},
		{ActionWait, 0, 0},
		{ActionNone, 0, 0},
	}
	for _, tc := range cases {
		dx, dy := actionToDelta(tc.action)
		if dx != tc.dx || dy != tc.dy {
			t.Errorf("actionToDelta(%v) = (%d,%d), want (%d,%d)", tc.action, dx, dy, tc.dx, tc.dy)
		}
	}
}

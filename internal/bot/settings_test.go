package bot

import (
	"testing"

	"hrbot/internal/model"
)

func TestNewSettings(t *testing.T) {
	rows := []model.Setting{
		{Name: SettingInitialGreeting, Value: "Hello!"},
		{Name: SettingHelpText, Value: "Use /menu."},
		{Name: SettingMenuButtonsPerRow, Value: "3", IntType: true},
		{Name: "UNRELATED", Value: "ignored"},
	}

	s := newSettings(rows)
	if s.InitialGreeting != "Hello!" || s.HelpText != "Use /menu." {
		t.Fatalf("text settings not mapped: %+v", s)
	}
	if s.MenuButtonsPerRow != 3 {
		t.Fatalf("expected 3 buttons per row, got %d", s.MenuButtonsPerRow)
	}
	// Absent numeric settings fall back so the keyboard stays renderable.
	if s.MenuButtonsPerPage != 4 {
		t.Fatalf("expected fallback page size 4, got %d", s.MenuButtonsPerPage)
	}
}

func TestNewSettingsBadNumbersFallBack(t *testing.T) {
	rows := []model.Setting{
		{Name: SettingMenuButtonsPerRow, Value: "zero", IntType: true},
		{Name: SettingMenuButtonsPerPage, Value: "-2", IntType: true},
	}
	s := newSettings(rows)
	if s.MenuButtonsPerRow != 2 || s.MenuButtonsPerPage != 4 {
		t.Fatalf("fallbacks not applied: row=%d page=%d", s.MenuButtonsPerRow, s.MenuButtonsPerPage)
	}
}

func TestMenuKeyboardLayout(t *testing.T) {
	items := []model.MenuItem{
		{ID: 1, ButtonText: "A"},
		{ID: 2, ButtonText: "B"},
		{ID: 3, ButtonText: "C"},
	}

	t.Run("items wrap into rows", func(t *testing.T) {
		keyboard := menuKeyboard(items, 1, 1, 2)
		if len(keyboard) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(keyboard))
		}
		if len(keyboard[0]) != 2 || len(keyboard[1]) != 1 {
			t.Fatalf("unexpected row sizes: %d, %d", len(keyboard[0]), len(keyboard[1]))
		}
	})

	t.Run("middle page gets both arrows", func(t *testing.T) {
		keyboard := menuKeyboard(items, 2, 3, 2)
		nav := keyboard[len(keyboard)-1]
		if len(nav) != 2 {
			t.Fatalf("expected prev and next, got %d buttons", len(nav))
		}
		if *nav[0].CallbackData != "b:menu::1" || *nav[1].CallbackData != "b:menu::3" {
			t.Fatalf("unexpected nav callbacks: %q, %q", *nav[0].CallbackData, *nav[1].CallbackData)
		}
	})

	t.Run("first page has no prev", func(t *testing.T) {
		keyboard := menuKeyboard(items, 1, 3, 2)
		nav := keyboard[len(keyboard)-1]
		if len(nav) != 1 || *nav[0].CallbackData != "b:menu::2" {
			t.Fatalf("unexpected nav row: %+v", nav)
		}
	})

	t.Run("single page has no nav row", func(t *testing.T) {
		keyboard := menuKeyboard(items, 1, 1, 2)
		last := keyboard[len(keyboard)-1]
		if len(last) != 1 || *last[0].CallbackData != "b:menu:3:" {
			t.Fatalf("nav row leaked into a single page keyboard: %+v", last)
		}
	})
}

func TestChatStates(t *testing.T) {
	states := newChatStates()
	if states.isAwaiting(42) {
		t.Fatal("fresh chat must not await a message")
	}
	states.setAwaiting(42, true)
	if !states.isAwaiting(42) {
		t.Fatal("awaiting flag not set")
	}
	if states.isAwaiting(43) {
		t.Fatal("flag leaked to another chat")
	}
	states.setAwaiting(42, false)
	if states.isAwaiting(42) {
		t.Fatal("awaiting flag not cleared")
	}
}

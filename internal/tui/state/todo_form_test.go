package state

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/todo-tui/internal/api"
)

func TestTodoForm_TypingAndNavigation(t *testing.T) {
	f := NewTodoForm()

	for _, r := range "Buy milk" {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if f.Title.Value() != "Buy milk" {
		t.Errorf("expected title typed into focused field, got %q", f.Title.Value())
	}

	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	if f.FocusIndex != TodoFieldDescription {
		t.Fatalf("expected description focus, got %d", f.FocusIndex)
	}
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2l")})
	if f.Description.Value() != "2l" {
		t.Errorf("expected description typed, got %q", f.Description.Value())
	}

	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	f.Update(tea.KeyMsg{Type: tea.KeySpace})
	if !f.Completed {
		t.Error("expected space to toggle completed flag")
	}

	// Wraps around to the title.
	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	if f.FocusIndex != TodoFieldTitle {
		t.Errorf("expected focus to wrap to title, got %d", f.FocusIndex)
	}
	f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if f.FocusIndex != TodoFieldCompleted {
		t.Errorf("expected shift+tab to wrap to completed, got %d", f.FocusIndex)
	}

	d := f.Draft()
	if d != (TodoDraft{Title: "Buy milk", Description: "2l", Completed: true}) {
		t.Errorf("unexpected draft %+v", d)
	}
}

func TestTodoForm_LoadAndReset(t *testing.T) {
	f := NewTodoForm()
	gen := f.Generation
	f.Load(api.Todo{ID: "1", Title: "A", Description: "desc", Completed: true})
	if f.Generation == gen {
		t.Error("expected Load to bump the generation")
	}
	gen = f.Generation

	if d := f.Draft(); d.Title != "A" || d.Description != "desc" || !d.Completed {
		t.Errorf("unexpected draft after load: %+v", d)
	}

	f.Reset()
	if d := f.Draft(); d != (TodoDraft{}) {
		t.Errorf("expected empty draft after reset, got %+v", d)
	}
	if f.Generation == gen {
		t.Error("expected Reset to bump the generation")
	}
	if f.FocusIndex != TodoFieldTitle {
		t.Errorf("expected title focus after reset")
	}
}

func TestTodoForm_IsValid(t *testing.T) {
	tests := []struct {
		title string
		want  bool
	}{
		{"", false},
		{"   ", false},
		{"\t", false},
		{"x", true},
		{"  padded  ", true},
	}
	for _, tt := range tests {
		f := NewTodoForm()
		f.Title.SetValue(tt.title)
		if got := f.IsValid(); got != tt.want {
			t.Errorf("IsValid(%q) = %v, want %v", tt.title, got, tt.want)
		}
	}
}

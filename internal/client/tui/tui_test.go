package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFailedMutationKeepsInput(t *testing.T) {
	m := New(nil)
	m.mode = modeAdd
	m.input.SetValue("buy milk")
	m.inFlight = true

	updated, _ := m.Update(mutationFailedMsg{err: errors.New("boom")})
	got := updated.(Model)

	if got.inFlight {
		t.Error("inFlight must clear when the mutation settles")
	}
	if got.errMsg != "boom" {
		t.Errorf("errMsg = %q, want the failure message", got.errMsg)
	}
	if got.input.Value() != "buy milk" {
		t.Errorf("input = %q, want it preserved for a retry", got.input.Value())
	}
	if got.mode != modeAdd {
		t.Error("the add form must stay open after a failure")
	}
}

func TestSuccessfulCreateClearsInput(t *testing.T) {
	m := New(nil)
	m.mode = modeAdd
	m.input.SetValue("buy milk")
	m.inFlight = true

	updated, cmd := m.Update(mutationDoneMsg{})
	got := updated.(Model)

	if got.input.Value() != "" {
		t.Errorf("input = %q, want it cleared on success", got.input.Value())
	}
	if got.mode != modeList {
		t.Error("the add form must close on success")
	}
	if cmd == nil {
		t.Error("a settled mutation must trigger a re-fetch of the list")
	}
}

func TestSubmitDisabledWhileInFlight(t *testing.T) {
	m := New(nil)
	m.mode = modeAdd
	m.input.SetValue("buy milk")
	m.inFlight = true

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := updated.(Model)

	if cmd != nil {
		t.Error("enter must be a no-op while a mutation is pending")
	}
	if !got.inFlight {
		t.Error("the pending mutation must stay pending")
	}
	if got.input.Value() != "buy milk" {
		t.Errorf("input = %q, want it untouched", got.input.Value())
	}
}

func TestEmptySubmitRejectedLocally(t *testing.T) {
	m := New(nil)
	m.mode = modeAdd
	m.input.SetValue("   ")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := updated.(Model)

	if cmd != nil {
		t.Error("whitespace-only input must not reach the API")
	}
	if got.errMsg == "" {
		t.Error("the user must see why nothing was submitted")
	}
	if got.inFlight {
		t.Error("no request may be in flight after a local rejection")
	}
}

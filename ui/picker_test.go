package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestPickerInitialSelection(t *testing.T) {
	p := newPicker([]string{"AUD", "EUR", "USD"}, "EUR")
	if got := p.Value(); got != "EUR" {
		t.Errorf("initial value is %q, want EUR", got)
	}
}

func TestPickerCursor(t *testing.T) {
	p := newPicker([]string{"AUD", "EUR", "USD"}, "AUD")
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := p.Value(); got != "EUR" {
		t.Errorf("after down, value is %q, want EUR", got)
	}
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyUp})
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got := p.Value(); got != "AUD" {
		t.Errorf("up does not stop at the first entry: %q", got)
	}
}

func TestPickerFilter(t *testing.T) {
	p := newPicker([]string{"AUD", "EUR", "USD", "GBP"}, "AUD")
	p.filter.SetValue("us")
	p.refilter()
	if got := p.Value(); got != "USD" {
		t.Errorf("filter \"us\" selects %q, want USD", got)
	}
	p.filter.SetValue("zzz")
	p.refilter()
	if got := p.Value(); got != "" {
		t.Errorf("impossible filter selects %q, want empty", got)
	}
}

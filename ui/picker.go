package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// picker is a fuzzy-filtered currency code selector. Typing narrows the
// candidate list; up and down move the selection within it.
type picker struct {
	filter  textinput.Model
	codes   []string
	matches fuzzy.Matches
	sel     int
}

func newPicker(codes []string, initial string) picker {
	ti := textinput.New()
	ti.Placeholder = "filter"
	ti.Prompt = ""
	ti.CharLimit = 8
	ti.Width = 8
	p := picker{filter: ti, codes: codes}
	p.refilter()
	for i, m := range p.matches {
		if m.Str == initial {
			p.sel = i
		}
	}
	return p
}

func (p *picker) refilter() {
	word := strings.TrimSpace(p.filter.Value())
	if word == "" {
		// No filter ranks everything equally; keep table order.
		p.matches = make(fuzzy.Matches, len(p.codes))
		for i, c := range p.codes {
			p.matches[i] = fuzzy.Match{Str: c, Index: i}
		}
	} else {
		p.matches = fuzzy.Find(word, p.codes)
	}
	if p.sel >= len(p.matches) {
		p.sel = 0
	}
}

// Value returns the selected code, or the empty string when the filter
// matches nothing.
func (p *picker) Value() string {
	if len(p.matches) == 0 {
		return ""
	}
	return p.matches[p.sel].Str
}

func (p picker) Update(msg tea.Msg) (picker, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up":
			if p.sel > 0 {
				p.sel--
			}
			return p, nil
		case "down":
			if p.sel < len(p.matches)-1 {
				p.sel++
			}
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.filter, cmd = p.filter.Update(msg)
	p.refilter()
	return p, cmd
}

func (p *picker) Focus() tea.Cmd {
	return p.filter.Focus()
}

func (p *picker) Blur() {
	p.filter.Blur()
}

// View renders the filter line and a short window of candidates around the
// selection.
func (p *picker) View() string {
	var b strings.Builder
	b.WriteString(p.filter.View())
	b.WriteByte('\n')
	if len(p.matches) == 0 {
		b.WriteString(hintStyle.Render("no match"))
		return b.String()
	}
	const window = 5
	start := clamp(p.sel-window/2, 0, max(0, len(p.matches)-window))
	end := min(start+window, len(p.matches))
	for i := start; i < end; i++ {
		code := p.matches[i].Str
		if i == p.sel {
			b.WriteString(selectedStyle.Render(code))
		} else {
			b.WriteString(code)
		}
		if i < end-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

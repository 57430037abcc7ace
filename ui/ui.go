// Package ui implements the mathpad terminal widget: a plot pane, a
// calculator pane, and a currency pane on one screen. Every result is
// recomputed from scratch inside the event that requested it; the model
// holds no derived state beyond the strings it last rendered.
package ui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mathpad/calc"
	"mathpad/currency"
	"mathpad/expr"
	"mathpad/plot"
)

// Messages shown in place of results.
const (
	msgInvalidExpr   = "invalid expression"
	msgInvalidAmount = "invalid amount"
	msgNoConversion  = "conversion impossible"
)

// Focusable fields, in tab order.
const (
	focusPlot = iota
	focusCalc
	focusAmount
	focusFrom
	focusTo
	focusCount
)

// Styles.
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	focusedPaneStyle = paneStyle.
				BorderForeground(lipgloss.Color("6"))
	resultStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

const (
	graphWidth  = 64
	graphHeight = 16
)

// Model is the Bubble Tea model for the widget.
type Model struct {
	sampler plot.Sampler
	table   currency.Table

	plotInput textinput.Model
	calcInput textinput.Model
	amount    textinput.Model
	from, to  picker

	focus int

	graph     string
	graphMin  string
	graphMax  string
	plotLabel string
	plotErr   string
	calcOut   string
	convOut   string
	convErr   string

	width    int
	quitting bool
}

// New builds the widget model over a sampling grid and a rate table.
func New(sampler plot.Sampler, table currency.Table) Model {
	pi := textinput.New()
	pi.Placeholder = "expression of x, e.g. sin(x)/x"
	pi.CharLimit = 256
	pi.Width = 48
	pi.Focus()

	ci := textinput.New()
	ci.Placeholder = "expression, e.g. sqrt(2) * e^2"
	ci.CharLimit = 256
	ci.Width = 48

	ai := textinput.New()
	ai.Placeholder = "amount"
	ai.CharLimit = 32
	ai.Width = 12

	codes := table.Codes()
	m := Model{
		sampler:   sampler,
		table:     table,
		plotInput: pi,
		calcInput: ci,
		amount:    ai,
		from:      newPicker(codes, currency.Base),
		to:        newPicker(codes, "USD"),
		width:     80,
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			return m.cycle(1), nil
		case "shift+tab":
			return m.cycle(-1), nil
		case "enter":
			switch m.focus {
			case focusPlot:
				m.replot()
			case focusCalc:
				m.recalc()
			default:
				m.reconvert()
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusPlot:
		m.plotInput, cmd = m.plotInput.Update(msg)
	case focusCalc:
		m.calcInput, cmd = m.calcInput.Update(msg)
	case focusAmount:
		m.amount, cmd = m.amount.Update(msg)
		m.reconvert()
	case focusFrom:
		m.from, cmd = m.from.Update(msg)
		m.reconvert()
	case focusTo:
		m.to, cmd = m.to.Update(msg)
		m.reconvert()
	}
	return m, cmd
}

// cycle moves focus by delta, blurring the old field and focusing the new.
func (m Model) cycle(delta int) Model {
	switch m.focus {
	case focusPlot:
		m.plotInput.Blur()
	case focusCalc:
		m.calcInput.Blur()
	case focusAmount:
		m.amount.Blur()
	case focusFrom:
		m.from.Blur()
	case focusTo:
		m.to.Blur()
	}
	m.focus = (m.focus + delta + focusCount) % focusCount
	switch m.focus {
	case focusPlot:
		m.plotInput.Focus()
	case focusCalc:
		m.calcInput.Focus()
	case focusAmount:
		m.amount.Focus()
	case focusFrom:
		m.from.Focus()
	case focusTo:
		m.to.Focus()
	}
	return m
}

// replot compiles the plot expression and rebuilds the chart. Compilation
// failure skips rendering and shows the invalid-expression message; samples
// that fail to evaluate show as breaks in the drawn line.
func (m *Model) replot() {
	text := m.plotInput.Value()
	if strings.TrimSpace(text) == "" {
		m.graph, m.plotErr, m.plotLabel = "", "", ""
		return
	}
	f, err := expr.Compile(expr.Rewrite(text), []string{"x"})
	if err != nil {
		m.graph = ""
		m.plotErr = msgInvalidExpr
		m.plotLabel = ""
		return
	}
	samples := m.sampler.Sample(f)
	m.plotErr = ""
	m.plotLabel = text
	m.graph = renderGraph(samples, graphWidth, graphHeight)
	if ymin, ymax, ok := yBounds(samples); ok {
		m.graphMin, m.graphMax = axisLabel(ymin), axisLabel(ymax)
	} else {
		m.graphMin, m.graphMax = "", ""
	}
}

func (m *Model) recalc() {
	if strings.TrimSpace(m.calcInput.Value()) == "" {
		m.calcOut = ""
		return
	}
	m.calcOut = calc.Display(m.calcInput.Value())
}

// reconvert recomputes the currency result. It runs on every edit of the
// amount or either picker, not just on enter.
func (m *Model) reconvert() {
	text := strings.TrimSpace(m.amount.Value())
	if text == "" {
		m.convOut, m.convErr = "", ""
		return
	}
	amount, err := strconv.ParseFloat(text, 64)
	if err != nil {
		m.convOut, m.convErr = "", msgInvalidAmount
		return
	}
	out, err := m.table.Convert(amount, m.from.Value(), m.to.Value())
	if err != nil {
		m.convOut, m.convErr = "", msgNoConversion
		return
	}
	m.convOut, m.convErr = strconv.FormatFloat(out, 'f', 2, 64)+" "+m.to.Value(), ""
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	panes := []string{
		m.pane(focusPlot, "Plot f(x)", m.plotView()),
		m.pane(focusCalc, "Calculator", m.calcView()),
		m.pane(focusAmount, "Currency", m.currencyView()),
	}
	help := hintStyle.Render("tab: next field • enter: compute • esc: quit")
	return lipgloss.JoinVertical(lipgloss.Left, append(panes, help)...)
}

func (m Model) pane(focus int, title, body string) string {
	style := paneStyle
	if m.focused(focus) {
		style = focusedPaneStyle
	}
	return style.Render(titleStyle.Render(title) + "\n" + body)
}

// focused reports whether the pane starting at the given field holds focus.
// The currency pane spans three fields.
func (m Model) focused(first int) bool {
	if first == focusAmount {
		return m.focus >= focusAmount
	}
	return m.focus == first
}

func (m Model) plotView() string {
	var b strings.Builder
	b.WriteString(m.plotInput.View())
	b.WriteByte('\n')
	switch {
	case m.plotErr != "":
		b.WriteString(errorStyle.Render(m.plotErr))
	case m.graph != "":
		b.WriteString(hintStyle.Render(m.graphMax))
		b.WriteByte('\n')
		b.WriteString(m.graph)
		b.WriteByte('\n')
		b.WriteString(hintStyle.Render(m.graphMin))
		b.WriteByte('\n')
		b.WriteString(resultStyle.Render("f(x) = " + m.plotLabel))
	default:
		b.WriteString(hintStyle.Render("enter an expression and press enter"))
	}
	return b.String()
}

func (m Model) calcView() string {
	var b strings.Builder
	b.WriteString(m.calcInput.View())
	b.WriteByte('\n')
	switch {
	case m.calcOut == "":
		b.WriteString(hintStyle.Render("enter an expression and press enter"))
	case m.calcOut == calc.Marker:
		b.WriteString(errorStyle.Render(m.calcOut))
	default:
		b.WriteString(resultStyle.Render("= " + m.calcOut))
	}
	return b.String()
}

func (m Model) currencyView() string {
	left := "amount\n" + m.amount.View()
	from := "from\n" + m.from.View()
	to := "to\n" + m.to.View()
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", from, "  ", to)
	var out string
	switch {
	case m.convErr != "":
		out = errorStyle.Render(m.convErr)
	case m.convOut != "":
		out = resultStyle.Render("= " + m.convOut)
	default:
		out = hintStyle.Render("enter an amount")
	}
	return row + "\n" + out
}

// Run starts the widget and blocks until the user quits or ctx is done.
func Run(ctx context.Context, sampler plot.Sampler, table currency.Table) error {
	p := tea.NewProgram(New(sampler, table), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Package tui implements the interactive calculator: nine editable
// parameter fields on the left, live-derived results on the right,
// re-solved on every keystroke.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeeftor/screencalc/internal/report"
	"github.com/jeeftor/screencalc/internal/screen"
	"github.com/jeeftor/screencalc/internal/styles"
)

// placeholders hint at the expected syntax per parameter
var placeholders = map[screen.Param]string{
	screen.ParamAspect:   "9:16",
	screen.ParamDensity:  "300dpi",
	screen.ParamDiagonal: "55in",
	screen.ParamDistance: "50cm",
	screen.ParamHeight:   "68.6cm",
	screen.ParamHeightPx: "1080",
	screen.ParamWidth:    "121.9cm",
	screen.ParamWidthPx:  "1920",
	screen.ParamPixels:   "2073600",
}

// Model is the bubbletea model for the calculator TUI
type Model struct {
	params   []screen.Param
	inputs   []textinput.Model
	errs     []string
	focus    int
	results  string
	width    int
	height   int
	quitting bool
}

// New creates a calculator model with every parameter field empty
func New() Model {
	params := screen.Params()
	inputs := make([]textinput.Model, len(params))
	for i, p := range params {
		ti := textinput.New()
		ti.Placeholder = placeholders[p]
		ti.Prompt = ""
		ti.CharLimit = 32
		ti.Width = 16
		inputs[i] = ti
	}
	inputs[0].Focus()

	m := Model{
		params: params,
		inputs: inputs,
		errs:   make([]string, len(params)),
		width:  80,
		height: 24,
	}
	m.recompute()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab", "enter", "down":
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.recompute()
	return m, cmd
}

func (m *Model) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

// recompute parses every non-empty field and re-runs the solver
func (m *Model) recompute() {
	st := screen.NewState()
	for i, p := range m.params {
		m.errs[i] = ""
		raw := strings.TrimSpace(m.inputs[i].Value())
		if raw == "" {
			continue
		}
		v, err := screen.ParseValue(p, raw)
		if err != nil {
			m.errs[i] = err.Error()
			continue
		}
		// Set only fails on duplicates, impossible with one field per param
		_ = st.Set(p, v)
	}
	unresolved := screen.Solve(st)
	m.results = report.Sprint(st, unresolved, report.Options{Color: true})
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var form strings.Builder
	for i, p := range m.params {
		label := fmt.Sprintf("%-9s", string(p))
		if i == m.focus {
			label = styles.KeyStyle.Render(label)
		}
		form.WriteString(label + " " + m.inputs[i].View())
		if m.errs[i] != "" {
			form.WriteString("  " + styles.ErrorStyle.Render(m.errs[i]))
		}
		form.WriteString("\n")
	}
	form.WriteString("\n" + styles.MutedStyle.Render("tab/↑↓ move · esc quit"))

	left := styles.BoxStyle.Render(form.String())
	right := styles.BoxStyle.Render(m.results)

	title := styles.TitleStyle.Render("screencalc")
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return title + "\n" + body + "\n"
}

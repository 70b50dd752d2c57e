package report

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"simcmp/internal/compare"
	"simcmp/internal/dataset"
)

const (
	stateList = iota
	stateDetail
)

// Model is a bubbletea model that pages through the variables of a
// comparison result.
type Model struct {
	result        *dataset.Dataset
	vars          []string
	state, cursor int
	width, height int
}

func NewModel(result *dataset.Dataset) Model {
	return Model{
		result: result,
		vars:   Variables(result),
		width:  80,
		height: 24,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.vars)-1 {
				m.cursor++
			}
		case "enter":
			if m.state == stateList && len(m.vars) > 0 {
				m.state = stateDetail
			}
		case "esc":
			m.state = stateList
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.state == stateDetail {
		return m.detailView()
	}
	return m.listView()
}

func (m Model) listView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("compared variables"))
	b.WriteString("\n\n")

	if len(m.vars) == 0 {
		b.WriteString(dimStyle.Render("result contains no compared variables"))
		b.WriteString("\n")
	}
	for i, name := range m.vars {
		line := fmt.Sprintf("  %-16s  abserr %10.3e  relerr %10.3e",
			name,
			scalar(m.result, name+".abserr"),
			scalar(m.result, name+".relerr"))
		if i == m.cursor {
			b.WriteString(okStyle.Render("▶" + line[1:]))
		} else {
			b.WriteString(varStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("↑/↓ select · enter detail · q quit"))
	return b.String()
}

func (m Model) detailView() string {
	name := m.vars[m.cursor]

	var b strings.Builder
	b.WriteString(titleStyle.Render(name))
	b.WriteString("\n\n")

	for _, suffix := range compare.MetricSuffixes {
		b.WriteString(fmt.Sprintf("  %s %12.6e\n",
			headerStyle.Render(fmt.Sprintf("%-14s", suffix)),
			scalar(m.result, name+"."+suffix)))
	}
	b.WriteString("\n")

	if delta, err := m.result.Var(name + ".delta"); err == nil && len(delta.Data) > 1 {
		graphWidth := m.width - 12
		if graphWidth < 20 {
			graphWidth = 20
		}
		b.WriteString(asciigraph.Plot(delta.Data,
			asciigraph.Height(10),
			asciigraph.Width(graphWidth),
			asciigraph.Caption(name+".delta"),
		))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("esc back · q quit"))
	return b.String()
}

// Browse runs the interactive browser over a result dataset.
func Browse(result *dataset.Dataset) error {
	p := tea.NewProgram(NewModel(result))
	_, err := p.Run()
	return err
}

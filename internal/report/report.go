// Package report renders comparison result datasets for the terminal:
// a styled per-variable metric table, ASCII plots of the difference
// arrays, and an interactive browser.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"simcmp/internal/compare"
	"simcmp/internal/dataset"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	varStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Variables returns the compared variable names present in a result
// dataset, in sorted order.
func Variables(d *dataset.Dataset) []string {
	var names []string
	for key := range d.Vars {
		if name, ok := strings.CutSuffix(key, ".abserr"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func scalar(d *dataset.Dataset, key string) float64 {
	a, ok := d.Vars[key]
	if !ok || len(a.Data) == 0 {
		return 0
	}
	return a.Data[0]
}

// Summary renders one table row per compared variable with the eight
// scalar metrics.
func Summary(d *dataset.Dataset) string {
	names := Variables(d)

	var b strings.Builder
	b.WriteString(titleStyle.Render("comparison summary"))
	b.WriteString("\n\n")

	header := fmt.Sprintf("%-16s", "variable")
	for _, suffix := range compare.MetricSuffixes {
		header += fmt.Sprintf("  %12s", suffix)
	}
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	if len(names) == 0 {
		b.WriteString(dimStyle.Render("no compared variables"))
		b.WriteString("\n")
		return b.String()
	}

	for _, name := range names {
		row := fmt.Sprintf("%-16s", name)
		for _, suffix := range compare.MetricSuffixes {
			row += fmt.Sprintf("  %12.4e", scalar(d, name+"."+suffix))
		}
		b.WriteString(varStyle.Render(row))
		b.WriteString("\n")
	}
	return b.String()
}

// PlotVariable renders asciigraph plots of a variable's delta and
// interperr arrays.
func PlotVariable(d *dataset.Dataset, name string, width, height int) (string, error) {
	delta, err := d.Var(name + ".delta")
	if err != nil {
		return "", err
	}
	interpErr, err := d.Var(name + ".interperr")
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(asciigraph.Plot(delta.Data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(name+".delta"),
	))
	b.WriteString("\n\n")
	b.WriteString(asciigraph.Plot(interpErr.Data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(name+".interperr"),
	))
	b.WriteString("\n")
	return b.String(), nil
}

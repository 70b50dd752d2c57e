// Package export renders compared variables as standalone SVG charts
// for inclusion in validation reports.
package export

import (
	"fmt"
	"os"
	"strings"

	"simcmp/internal/dataset"
)

const margin = 40.0

// VariableSVG renders a line chart of a variable's delta with a
// shaded ±interperr band around zero.
func VariableSVG(result *dataset.Dataset, name string, width, height float64) (string, error) {
	delta, err := result.Var(name + ".delta")
	if err != nil {
		return "", err
	}
	if delta.Rank() != 1 {
		return "", fmt.Errorf("%w: %q has rank %d", dataset.ErrNotOneDimensional, delta.Name, delta.Rank())
	}
	interpErr, err := result.Var(name + ".interperr")
	if err != nil {
		return "", err
	}

	coords := delta.Coords[delta.Dims[0]]
	n := len(coords)
	if n == 0 {
		return "", fmt.Errorf("%w: %q is empty", dataset.ErrShape, delta.Name)
	}

	// Vertical range covers delta and the error band, padded.
	yMin, yMax := 0.0, 0.0
	for i, d := range delta.Data {
		if d < yMin {
			yMin = d
		}
		if d > yMax {
			yMax = d
		}
		if b := interpErr.Data[i]; b > yMax {
			yMax = b
		}
		if b := -interpErr.Data[i]; b < yMin {
			yMin = b
		}
	}
	yRange := yMax - yMin
	if yRange == 0 {
		yRange = 1
	}
	yMin -= 0.05 * yRange
	yRange *= 1.1

	xMin := coords[0]
	xRange := coords[n-1] - coords[0]
	if xRange == 0 {
		xRange = 1
	}

	px := func(x float64) float64 { return margin + (x-xMin)/xRange*(width-2*margin) }
	py := func(y float64) float64 { return height - margin - (y-yMin)/yRange*(height-2*margin) }

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	// Error band: +interperr down to -interperr around zero.
	sb.WriteString(`<polygon fill="#224422" points="`)
	for i := range coords {
		sb.WriteString(fmt.Sprintf("%.1f,%.1f ", px(coords[i]), py(interpErr.Data[i])))
	}
	for i := n - 1; i >= 0; i-- {
		sb.WriteString(fmt.Sprintf("%.1f,%.1f ", px(coords[i]), py(-interpErr.Data[i])))
	}
	sb.WriteString("\"/>\n")

	// Zero axis.
	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#444466"/>
`, px(xMin), py(0), px(coords[n-1]), py(0)))

	// Delta trace.
	sb.WriteString(`<polyline fill="none" stroke="#00ff88" stroke-width="1.5" points="`)
	for i := range coords {
		sb.WriteString(fmt.Sprintf("%.1f,%.1f ", px(coords[i]), py(delta.Data[i])))
	}
	sb.WriteString("\"/>\n")

	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="20" fill="#cccccc" font-family="monospace" font-size="12">%s.delta</text>
`, margin, name))
	sb.WriteString("</svg>\n")
	return sb.String(), nil
}

// WriteVariableSVG renders the chart to a file.
func WriteVariableSVG(path string, result *dataset.Dataset, name string, width, height float64) error {
	svg, err := VariableSVG(result, name, width, height)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(svg), 0644)
}

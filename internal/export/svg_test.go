package export

import (
	"strings"
	"testing"

	"simcmp/internal/dataset"
)

func fixture() *dataset.Dataset {
	d := dataset.NewDataset()
	d.AddVar("v.delta", &dataset.LabeledArray{
		Name: "v.delta", Dims: []string{"x"}, Shape: []int{4},
		Data:   []float64{0.1, -0.3, 0.2, 0.0},
		Coords: map[string][]float64{"x": {0, 1, 2, 3}},
	})
	d.AddVar("v.interperr", &dataset.LabeledArray{
		Name: "v.interperr", Dims: []string{"x"}, Shape: []int{4},
		Data:   []float64{0.05, 0.05, 0.1, 0.05},
		Coords: map[string][]float64{"x": {0, 1, 2, 3}},
	})
	return d
}

func TestVariableSVG(t *testing.T) {
	svg, err := VariableSVG(fixture(), "v", 640, 360)
	if err != nil {
		t.Fatalf("VariableSVG() error = %v", err)
	}

	for _, want := range []string{"<svg", "<polyline", "<polygon", "v.delta", "</svg>"} {
		if !strings.Contains(svg, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestVariableSVGUnknown(t *testing.T) {
	if _, err := VariableSVG(fixture(), "ghost", 640, 360); err == nil {
		t.Error("expected error for unknown variable")
	}
}

package dataset

import (
	"encoding/json"
	"os"
)

type fileVariable struct {
	Dims  []string  `json:"dims"`
	Shape []int     `json:"shape"`
	Data  []float64 `json:"data"`
}

type fileDataset struct {
	Coords map[string][]float64    `json:"coords"`
	Attrs  map[string]string       `json:"attrs,omitempty"`
	Vars   map[string]fileVariable `json:"vars"`
}

// Save writes the dataset to path as an indented self-describing JSON
// document.
func Save(path string, d *Dataset) error {
	out := fileDataset{
		Coords: d.Coords,
		Attrs:  d.Attrs,
		Vars:   make(map[string]fileVariable, len(d.Vars)),
	}
	for name, a := range d.Vars {
		out.Vars[name] = fileVariable{Dims: a.Dims, Shape: a.Shape, Data: a.Data}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// Load reads a dataset from path and validates it.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var in fileDataset
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, err
	}

	d := NewDataset()
	if in.Coords != nil {
		d.Coords = in.Coords
	}
	if in.Attrs != nil {
		d.Attrs = in.Attrs
	}
	for name, v := range in.Vars {
		a := &LabeledArray{
			Name:   name,
			Dims:   v.Dims,
			Shape:  v.Shape,
			Data:   v.Data,
			Coords: make(map[string][]float64, len(v.Dims)),
		}
		if a.Dims == nil {
			a.Dims = []string{}
		}
		if a.Shape == nil {
			a.Shape = []int{}
		}
		for _, dim := range v.Dims {
			a.Coords[dim] = d.Coords[dim]
		}
		d.Vars[name] = a
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

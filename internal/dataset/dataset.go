package dataset

import (
	"fmt"
	"sort"
)

// LabeledArray is an n-dimensional numeric array with named dimensions.
// Data is stored row-major; Coords holds the ordered coordinate values
// along each named dimension. A rank-0 array (empty Dims and Shape,
// single data element) represents a scalar.
type LabeledArray struct {
	Name   string
	Dims   []string
	Shape  []int
	Data   []float64
	Coords map[string][]float64
}

// New constructs a labeled array and validates its invariants.
func New(name string, dims []string, shape []int, data []float64, coords map[string][]float64) (*LabeledArray, error) {
	a := &LabeledArray{Name: name, Dims: dims, Shape: shape, Data: data, Coords: coords}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Scalar constructs a rank-0 array holding a single value.
func Scalar(name string, v float64) *LabeledArray {
	return &LabeledArray{Name: name, Data: []float64{v}}
}

// Rank returns the number of named dimensions.
func (a *LabeledArray) Rank() int { return len(a.Dims) }

// Size returns the total number of elements implied by Shape.
func (a *LabeledArray) Size() int {
	n := 1
	for _, s := range a.Shape {
		n *= s
	}
	return n
}

// Validate checks the structural invariants: one extent per named
// dimension, data length equal to the product of extents, and each
// dimension's coordinate array matching its extent.
func (a *LabeledArray) Validate() error {
	if len(a.Shape) != len(a.Dims) {
		return fmt.Errorf("%w: %q has %d dims but %d extents", ErrShape, a.Name, len(a.Dims), len(a.Shape))
	}
	if len(a.Data) != a.Size() {
		return fmt.Errorf("%w: %q has %d elements for shape %v", ErrShape, a.Name, len(a.Data), a.Shape)
	}
	for i, dim := range a.Dims {
		c, ok := a.Coords[dim]
		if !ok {
			return fmt.Errorf("%w: %q dimension %q", ErrMissingCoord, a.Name, dim)
		}
		if len(c) != a.Shape[i] {
			return fmt.Errorf("%w: %q dimension %q has %d coordinates for extent %d",
				ErrCoordLength, a.Name, dim, len(c), a.Shape[i])
		}
	}
	return nil
}

// IsScalar reports whether the array is rank-0.
func (a *LabeledArray) IsScalar() bool { return len(a.Dims) == 0 }

// Value returns the single element of a rank-0 array.
func (a *LabeledArray) Value() float64 {
	return a.Data[0]
}

// Slice returns a copy of the leading sub-box a[0:limits[0], 0:limits[1], ...].
// Coordinates are truncated to match. Limits beyond an extent are clamped.
func (a *LabeledArray) Slice(limits []int) *LabeledArray {
	shape := make([]int, len(a.Shape))
	for i := range a.Shape {
		shape[i] = a.Shape[i]
		if i < len(limits) && limits[i] < shape[i] {
			shape[i] = limits[i]
		}
		if shape[i] < 0 {
			shape[i] = 0
		}
	}

	out := &LabeledArray{
		Name:   a.Name,
		Dims:   append([]string(nil), a.Dims...),
		Shape:  shape,
		Coords: make(map[string][]float64, len(a.Dims)),
	}
	for i, dim := range a.Dims {
		out.Coords[dim] = append([]float64(nil), a.Coords[dim][:shape[i]]...)
	}

	size := out.Size()
	out.Data = make([]float64, 0, size)
	if size == 0 {
		return out
	}

	// Walk the sub-box in row-major order, mapping each multi-index
	// back into the source strides.
	srcStrides := strides(a.Shape)
	idx := make([]int, len(shape))
	for {
		off := 0
		for d, i := range idx {
			off += i * srcStrides[d]
		}
		out.Data = append(out.Data, a.Data[off])

		d := len(idx) - 1
		for d >= 0 {
			idx[d]++
			if idx[d] < shape[d] {
				break
			}
			idx[d] = 0
			d--
		}
		if d < 0 {
			break
		}
	}
	return out
}

func strides(shape []int) []int {
	s := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		s[i] = acc
		acc *= shape[i]
	}
	return s
}

// Dataset maps variable names to labeled arrays and dimension names to
// shared coordinate arrays, plus free-form metadata attributes.
type Dataset struct {
	Vars   map[string]*LabeledArray
	Coords map[string][]float64
	Attrs  map[string]string
}

// NewDataset returns an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{
		Vars:   make(map[string]*LabeledArray),
		Coords: make(map[string][]float64),
		Attrs:  make(map[string]string),
	}
}

// AddVar inserts a variable under key and merges its coordinates into
// the dataset-level coordinate set. An already-present dimension keeps
// its existing coordinates; the first writer wins.
func (d *Dataset) AddVar(key string, a *LabeledArray) {
	d.Vars[key] = a
	for _, dim := range a.Dims {
		if _, ok := d.Coords[dim]; !ok {
			d.Coords[dim] = a.Coords[dim]
		}
	}
}

// Var returns the variable stored under key.
func (d *Dataset) Var(key string) (*LabeledArray, error) {
	a, ok := d.Vars[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, key)
	}
	return a, nil
}

// VarNames returns all variable keys in sorted order.
func (d *Dataset) VarNames() []string {
	names := make([]string, 0, len(d.Vars))
	for name := range d.Vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks every variable's invariants.
func (d *Dataset) Validate() error {
	for _, name := range d.VarNames() {
		if err := d.Vars[name].Validate(); err != nil {
			return err
		}
	}
	return nil
}

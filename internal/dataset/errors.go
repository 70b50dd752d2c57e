package dataset

import "errors"

// Domain errors for labeled-array datasets.
var (
	// ErrShape indicates a shape inconsistent with the named dimensions.
	ErrShape = errors.New("dataset: shape does not match dimension names")

	// ErrCoordLength indicates a coordinate array whose length differs
	// from the array extent along its dimension.
	ErrCoordLength = errors.New("dataset: coordinate length does not match extent")

	// ErrMissingCoord indicates a named dimension without a coordinate array.
	ErrMissingCoord = errors.New("dataset: dimension has no coordinate array")

	// ErrUnknownVariable indicates a lookup of a variable not present
	// in the dataset.
	ErrUnknownVariable = errors.New("dataset: unknown variable")

	// ErrNotOneDimensional indicates an operation that requires a 1-D
	// variable was applied to a variable of different rank.
	ErrNotOneDimensional = errors.New("dataset: variable is not one-dimensional")
)

package screen

import (
	"errors"
	"fmt"
)

var (
	ErrNoImage          = errors.New("no image")
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrNotNumeric       = errors.New("not numeric")
	ErrRowOutOfRange    = errors.New("row out of range")
	ErrColumnOutOfRange = errors.New("column out of range")
	ErrInvalidColor     = errors.New("invalid color")
)

// DimensionError is returned when a grid dimension is not an integer in
// [MinDimension, MaxDimension]. Value holds the offending input as given.
type DimensionError struct {
	Dimension string
	Value     string
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf(
		"the number of %s must be between %d and %d, you entered %s",
		e.Dimension, MinDimension, MaxDimension, e.Value,
	)
}

func (e *DimensionError) Unwrap() error { return ErrInvalidDimension }

// RangeError is returned for a coordinate outside the current grid.
type RangeError struct {
	Axis  Axis
	Value int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d is out of range", e.Axis, e.Value)
}

func (e *RangeError) Unwrap() error {
	if e.Axis == Row {
		return ErrRowOutOfRange
	}
	return ErrColumnOutOfRange
}

type NumberError struct {
	Token string
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("all columns and rows must be specified by a number, got %q", e.Token)
}

func (e *NumberError) Unwrap() error { return ErrNotNumeric }

type ColorError struct {
	Value string
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("color %q invalid. All colors must be a single capital letter", e.Value)
}

func (e *ColorError) Unwrap() error { return ErrInvalidColor }

package screen

import (
	"errors"
	"testing"
)

func TestParseCoordinate(t *testing.T) {
	for token, want := range map[string]int{
		"1":   1,
		"250": 250,
		"+3":  3,
		"-2":  -2,
		"3.0": 3,
		"4e0": 4,
	} {
		got, err := ParseCoordinate(token)
		if err != nil {
			t.Fatalf("%q: %v", token, err)
		}
		if got != want {
			t.Fatalf("%q: expected %d, got %d", token, want, got)
		}
	}

	for _, token := range []string{"", "x", "1.5", "3a", "NaN", "Inf", "1e300"} {
		_, err := ParseCoordinate(token)
		if !errors.Is(err, ErrNotNumeric) {
			t.Fatalf("%q: expected ErrNotNumeric, got %v", token, err)
		}
		var numErr *NumberError
		if !errors.As(err, &numErr) || numErr.Token != token {
			t.Fatalf("%q: unexpected %#v", token, err)
		}
	}
}

func TestParseDimension(t *testing.T) {
	if v, err := ParseDimension("rows", "12"); err != nil || v != 12 {
		t.Fatalf("unexpected %d, %v", v, err)
	}

	_, err := ParseDimension("rows", "ten")
	var dimErr *DimensionError
	if !errors.As(err, &dimErr) {
		t.Fatalf("expected DimensionError, got %v", err)
	}
	if dimErr.Dimension != "rows" || dimErr.Value != "ten" {
		t.Fatalf("unexpected %+v", dimErr)
	}
	if !errors.Is(err, ErrInvalidDimension) {
		t.Fatal("expected ErrInvalidDimension")
	}
}

func TestParseColor(t *testing.T) {
	for _, token := range []string{"A", "O", "Z"} {
		c, err := ParseColor(token)
		if err != nil {
			t.Fatal(err)
		}
		if c.String() != token {
			t.Fatalf("expected %s, got %v", token, c)
		}
	}

	for _, token := range []string{"", "a", "AB", "1", "[", "@", "É"} {
		_, err := ParseColor(token)
		if !errors.Is(err, ErrInvalidColor) {
			t.Fatalf("%q: expected ErrInvalidColor, got %v", token, err)
		}
		var clrErr *ColorError
		if !errors.As(err, &clrErr) || clrErr.Value != token {
			t.Fatalf("%q: unexpected %#v", token, err)
		}
	}
}

func TestErrorMessages(t *testing.T) {
	for _, tc := range []struct {
		err  error
		want string
	}{
		{&RangeError{Axis: Row, Value: 9}, "row 9 is out of range"},
		{&RangeError{Axis: Column, Value: 0}, "column 0 is out of range"},
		{
			&DimensionError{Dimension: "columns", Value: "300"},
			"the number of columns must be between 1 and 250, you entered 300",
		},
		{&ColorError{Value: "q"}, `color "q" invalid. All colors must be a single capital letter`},
		{&NumberError{Token: "x"}, `all columns and rows must be specified by a number, got "x"`},
	} {
		if got := tc.err.Error(); got != tc.want {
			t.Errorf("expected %q, got %q", tc.want, got)
		}
	}
}

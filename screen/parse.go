package screen

import (
	"math"
	"strconv"
)

// ParseCoordinate converts a raw token into a column or row number. Any
// integer-valued number is accepted ("3", "+3", "3.0", "3e0"); the result
// is not range checked.
func ParseCoordinate(token string) (int, error) {
	if v, err := strconv.Atoi(token); err == nil {
		return v, nil
	}

	f, err := strconv.ParseFloat(token, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) ||
		f > math.MaxInt32 || f < math.MinInt32 {
		return 0, &NumberError{Token: token}
	}
	return int(f), nil
}

// ParseDimension converts a raw create argument. Non-numeric input is
// reported as a DimensionError naming the dimension.
func ParseDimension(dimension, token string) (int, error) {
	v, err := ParseCoordinate(token)
	if err != nil {
		return 0, &DimensionError{Dimension: dimension, Value: token}
	}
	return v, nil
}

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrNotANumber     = errors.New("not a number")
	ErrNotWholeNumber = errors.New("not a whole number")
)

// Number is a float64 that also decodes from a numeric JSON string, the form
// HTML form inputs post. An empty string or null decodes to zero.
type Number float64

// UnmarshalJSON accepts 80, 80.5, "80" and "80.5".
func (n *Number) UnmarshalJSON(b []byte) error {
	v, err := parseNumber(b)
	if err != nil {
		return err
	}
	*n = Number(v)
	return nil
}

// Float64 returns n as a float64.
func (n Number) Float64() float64 {
	return float64(n)
}

// Integer is an int that also decodes from a numeric JSON string. Values
// with a fractional part are rejected.
type Integer int

// UnmarshalJSON accepts 35 and "35".
func (i *Integer) UnmarshalJSON(b []byte) error {
	v, err := parseNumber(b)
	if err != nil {
		return err
	}
	if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return fmt.Errorf("%w: %v", ErrNotWholeNumber, v)
	}
	*i = Integer(v)
	return nil
}

// Int returns i as an int.
func (i Integer) Int() int {
	return int(i)
}

func parseNumber(b []byte) (float64, error) {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		return 0, nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return 0, err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			return 0, nil
		}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s", ErrNotANumber, raw)
	}
	return v, nil
}

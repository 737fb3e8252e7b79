// Package fitness implements the health calculators: BMI, daily calories,
// macro split, body-fat estimation and food recognition result shaping.
package fitness

import (
	"errors"
	"math"
	"strings"

	"macromate/internal/models"
)

// ErrInvalidMeasurement is returned when a body measurement is not positive.
var ErrInvalidMeasurement = errors.New("measurements must be positive")

// Imperial to metric conversion factors.
const (
	cmPerInch = 2.54
	kgPerLb   = 0.453592
)

func isImperial(unit string) bool {
	return strings.EqualFold(strings.TrimSpace(unit), models.UnitImperial)
}

// roundInt rounds half to even, matching the calculators' published numbers.
func roundInt(x float64) int {
	return int(math.RoundToEven(x))
}

func round1(x float64) float64 {
	return math.RoundToEven(x*10) / 10
}

func positive(values ...float64) bool {
	for _, v := range values {
		if !(v > 0) {
			return false
		}
	}
	return true
}

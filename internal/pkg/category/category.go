// Package category holds the bucketing rules that normalize raw
// registration input into the categorical values the record store and
// the regression model work with. The functions are pure and never
// fail: unparseable input maps to an explicit sentinel bucket.
package category

import (
	"strconv"
	"strings"

	"github.com/aksoyde/gradesphere/internal/app/models"
)

// Income thresholds, inclusive on the lower bound of each band.
const (
	incomeAverageFloor = 70000
	incomeHighFloor    = 200000
)

// goodRatioMax is the largest teacher/student ratio still rated Good.
const goodRatioMax = 25.0

// Income buckets a raw household income figure.
func Income(raw float64) models.IncomeCategory {
	switch {
	case raw < incomeAverageFloor:
		return models.IncomeLow
	case raw < incomeHighFloor:
		return models.IncomeAverage
	default:
		return models.IncomeHigh
	}
}

// TeacherRatio buckets a raw teacher/student ratio string. A value that
// does not parse as a number is a normal outcome and rates Invalid.
func TeacherRatio(raw string) models.RatioCategory {
	ratio, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return models.RatioInvalid
	}
	if ratio <= goodRatioMax {
		return models.RatioGood
	}
	return models.RatioBad
}

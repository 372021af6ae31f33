package calculator

import (
	"math"

	"github.com/mmynk/receiptsplit/internal/models"
)

// Tolerance is the largest difference between a custom split and its line
// amount that still counts as balanced. Two cents absorbs the drift from
// repeated equal divisions such as 100 split three ways.
const Tolerance = 0.01

// floatSlack keeps the inclusive Tolerance boundary stable under float error
// (100 - 99.99 is slightly more than 0.01 in binary).
const floatSlack = 1e-9

// IsValid reports whether a line's contributions are consistent with its mode.
// Equal-mode lines are always valid, including empty ones; emptiness is a
// separate check, see HasContributors.
func IsValid(line models.LineItem) bool {
	if line.Mode != models.ModeCustom {
		return true
	}
	return math.Abs(contributionSum(line)-line.Amount) <= Tolerance+floatSlack
}

// HasContributors reports whether anybody is assigned to the line.
func HasContributors(line models.LineItem) bool {
	return len(line.Contributors) > 0
}

// ValidateLines returns the first line that blocks a settlement.
// All lines are checked for contributors before any amounts are checked.
func ValidateLines(lines []models.LineItem) error {
	for i, line := range lines {
		if !HasContributors(line) {
			return &IncompleteAllocationError{Index: i, Label: line.Label}
		}
	}
	for i, line := range lines {
		if !IsValid(line) {
			return &InvalidCustomAllocationError{
				Index:  i,
				Label:  line.Label,
				Amount: line.Amount,
				Sum:    contributionSum(line),
			}
		}
	}
	return nil
}

func contributionSum(line models.LineItem) float64 {
	var sum float64
	for _, a := range line.Contributors {
		sum += a.Float()
	}
	return sum
}

package calculator

import (
	"fmt"
	"math"

	"github.com/mmynk/receiptsplit/internal/models"
)

// Settlement is the final consumption breakdown for one computation.
type Settlement struct {
	// Amounts maps each participant to their rounded share of Total.
	Amounts map[string]float64

	// ScaleFactor is Total / RawTotal.
	ScaleFactor float64

	// RawTotal is the sum of every participant's contributions before scaling.
	RawTotal float64

	// Total is the authoritative bill total the amounts were scaled to.
	Total float64

	participants []string
}

// Breakdown returns the amounts in participant order.
func (s *Settlement) Breakdown() []models.PersonAmount {
	out := make([]models.PersonAmount, 0, len(s.participants))
	for _, p := range s.participants {
		out = append(out, models.PersonAmount{Person: p, Amount: s.Amounts[p]})
	}
	return out
}

// ComputeSettlement turns the allocation set into per-person amounts that add
// up to total.
//
// Algorithm:
//   - raw(p) = sum of p's contributions across all lines (blank counts as zero)
//   - k = total / sum(raw(p))
//   - amount(p) = round(raw(p) * k, 2)
//
// The single factor k spreads any gap between the mechanical sum and the agreed
// total (equal-split rounding, edited discounts) in proportion to each share.
// Every line must have contributors and every custom line must balance.
func ComputeSettlement(lines []models.LineItem, participants []string, total float64) (*Settlement, error) {
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}
	if err := ValidateLines(lines); err != nil {
		return nil, err
	}

	raw := make(map[string]float64, len(participants))
	for _, p := range participants {
		raw[p] = 0
	}
	for _, line := range lines {
		for p, a := range line.Contributors {
			if _, ok := raw[p]; ok {
				raw[p] += a.Float()
			}
		}
	}

	var rawTotal float64
	for _, p := range participants {
		rawTotal += raw[p]
	}
	if math.Abs(rawTotal) < floatSlack {
		return nil, ErrDegenerateTotals
	}

	k := total / rawTotal
	if math.IsNaN(k) || math.IsInf(k, 0) {
		return nil, fmt.Errorf("%w: scale factor %v", ErrDegenerateTotals, k)
	}

	amounts := make(map[string]float64, len(participants))
	for _, p := range participants {
		amounts[p] = roundToCents(raw[p] * k)
	}

	return &Settlement{
		Amounts:      amounts,
		ScaleFactor:  k,
		RawTotal:     rawTotal,
		Total:        total,
		participants: append([]string(nil), participants...),
	}, nil
}

// roundToCents rounds a float to 2 decimal places.
func roundToCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

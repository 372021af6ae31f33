package calculator

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateTotals means the raw contributions sum to zero, so no scale
	// factor can map them onto the authoritative total.
	ErrDegenerateTotals = errors.New("contributions sum to zero, cannot scale to bill total")

	// ErrNoParticipants is returned when a settlement is requested for nobody.
	ErrNoParticipants = errors.New("must have at least one participant")
)

// IncompleteAllocationError reports a line that nobody contributes to.
type IncompleteAllocationError struct {
	Index int
	Label string
}

func (e *IncompleteAllocationError) Error() string {
	return fmt.Sprintf("%q has no contributors", e.Label)
}

// InvalidCustomAllocationError reports a custom-mode line whose contributions
// do not add up to the line amount.
type InvalidCustomAllocationError struct {
	Index  int
	Label  string
	Amount float64
	Sum    float64
}

func (e *InvalidCustomAllocationError) Error() string {
	return fmt.Sprintf("%q has invalid split amounts: contributions sum to %.2f, expected %.2f",
		e.Label, e.Sum, e.Amount)
}

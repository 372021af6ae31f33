package session

import (
	"fmt"

	"github.com/mmynk/receiptsplit/internal/calculator"
	"github.com/mmynk/receiptsplit/internal/models"
)

// AssignLines builds a fresh allocation set from the session's receipts,
// equally split across every participant. Previous allocations are discarded.
func AssignLines(s models.Session) (models.Session, error) {
	if len(s.Participants) == 0 {
		return s, ErrNoParticipants
	}
	if len(s.Receipts) == 0 {
		return s, ErrNoReceipts
	}
	lines := calculator.Aggregate(s.Receipts, s.Participants)
	if len(lines) == 0 {
		return s, ErrNoLines
	}
	out := s.Clone()
	out.Lines = lines
	return out, nil
}

func ToggleContributor(s models.Session, lineIdx int, participant string) (models.Session, error) {
	if err := requireParticipant(s, participant); err != nil {
		return s, err
	}
	return editLine(s, lineIdx, func(l models.LineItem) models.LineItem {
		return calculator.ToggleMembership(l, participant)
	})
}

func ToggleMode(s models.Session, lineIdx int) (models.Session, error) {
	return editLine(s, lineIdx, calculator.ToggleMode)
}

// SetCustomAmount stores raw user input for a contributor on a custom line.
// The line must be in custom mode and the participant must already contribute to it.
func SetCustomAmount(s models.Session, lineIdx int, participant, raw string) (models.Session, error) {
	if err := requireParticipant(s, participant); err != nil {
		return s, err
	}
	if err := checkLine(s, lineIdx); err != nil {
		return s, err
	}
	if s.Lines[lineIdx].Mode != models.ModeCustom {
		return s, fmt.Errorf("%w: %q", ErrNotCustomMode, s.Lines[lineIdx].Label)
	}
	if _, ok := s.Lines[lineIdx].Contributors[participant]; !ok {
		return s, fmt.Errorf("%w: %q does not contribute to %q",
			ErrUnknownParticipant, participant, s.Lines[lineIdx].Label)
	}
	return editLine(s, lineIdx, func(l models.LineItem) models.LineItem {
		return calculator.SetCustomAmount(l, participant, raw)
	})
}

func ToggleAll(s models.Session, lineIdx int) (models.Session, error) {
	return editLine(s, lineIdx, func(l models.LineItem) models.LineItem {
		return calculator.ToggleAllMembership(l, s.Participants)
	})
}

func editLine(s models.Session, lineIdx int, fn func(models.LineItem) models.LineItem) (models.Session, error) {
	if err := checkLine(s, lineIdx); err != nil {
		return s, err
	}
	out := s.Clone()
	out.Lines[lineIdx] = fn(out.Lines[lineIdx])
	return out, nil
}

func checkLine(s models.Session, idx int) error {
	if idx < 0 || idx >= len(s.Lines) {
		return fmt.Errorf("%w: %d", ErrLineIndex, idx)
	}
	return nil
}

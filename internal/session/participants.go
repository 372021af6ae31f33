package session

import (
	"fmt"
	"strings"

	"github.com/mmynk/receiptsplit/internal/calculator"
	"github.com/mmynk/receiptsplit/internal/models"
)

// ParseParticipants splits a comma separated list of names.
// Names are trimmed, blanks dropped and duplicates removed, keeping first occurrence order.
func ParseParticipants(raw string) []string {
	return normalize(strings.Split(raw, ","))
}

// SetParticipants replaces the participant list.
// Existing lines keep their allocations for people still present; equal-mode
// lines are re-split when someone leaves. Payer assignments for removed people
// are dropped.
func SetParticipants(s models.Session, participants []string) models.Session {
	out := s.Clone()
	out.Participants = normalize(participants)

	for i, line := range out.Lines {
		out.Lines[i] = calculator.ReconcileParticipants(line, out.Participants)
	}
	for idx, payer := range out.Payers {
		if !contains(out.Participants, payer) {
			delete(out.Payers, idx)
		}
	}
	return out
}

func normalize(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func contains(list []string, name string) bool {
	for _, n := range list {
		if n == name {
			return true
		}
	}
	return false
}

func requireParticipant(s models.Session, name string) error {
	if !contains(s.Participants, name) {
		return fmt.Errorf("%w: %q", ErrUnknownParticipant, name)
	}
	return nil
}

package calculator

import "github.com/mmynk/receiptsplit/internal/models"

// ToggleMembership adds participant to the line, or removes them if already present.
//
// In equal mode every remaining contributor is reset to amount / count, so the
// shares always sum to the line amount. In custom mode a new contributor starts
// at an explicit zero and existing amounts are left alone.
// Removing the last contributor leaves an empty map; that is caught at settlement.
func ToggleMembership(line models.LineItem, participant string) models.LineItem {
	out := line.Clone()

	if _, ok := out.Contributors[participant]; ok {
		delete(out.Contributors, participant)
		if out.Mode != models.ModeCustom {
			out.Contributors = equalShares(out.Amount, keys(out.Contributors))
		}
		return out
	}

	if out.Mode == models.ModeCustom {
		out.Contributors[participant] = models.Number(0)
		return out
	}

	members := append(keys(out.Contributors), participant)
	out.Contributors = equalShares(out.Amount, members)
	return out
}

// ToggleMode flips the line between equal and custom mode.
// Switching to equal recomputes equal shares over the current members.
// Switching to custom keeps membership and the current (equal) amounts.
func ToggleMode(line models.LineItem) models.LineItem {
	out := line.Clone()
	if out.Mode == models.ModeCustom {
		out.Mode = models.ModeEqual
		out.Contributors = equalShares(out.Amount, keys(out.Contributors))
		return out
	}
	out.Mode = models.ModeCustom
	return out
}

// SetCustomAmount stores a raw user-entered amount for participant.
// A blank value stays blank; unparsable input becomes zero. The result is not
// checked against the line amount, see IsValid.
func SetCustomAmount(line models.LineItem, participant, raw string) models.LineItem {
	out := line.Clone()
	out.Contributors[participant] = models.ParseAmount(raw)
	return out
}

// ToggleAllMembership clears the line if every participant is already assigned,
// otherwise assigns all of them.
func ToggleAllMembership(line models.LineItem, all []string) models.LineItem {
	out := line.Clone()

	allAssigned := true
	for _, p := range all {
		if _, ok := out.Contributors[p]; !ok {
			allAssigned = false
			break
		}
	}

	if allAssigned {
		out.Contributors = map[string]models.Amount{}
		return out
	}

	if out.Mode == models.ModeCustom {
		out.Contributors = make(map[string]models.Amount, len(all))
		for _, p := range all {
			out.Contributors[p] = models.Number(0)
		}
		return out
	}
	out.Contributors = equalShares(out.Amount, all)
	return out
}

// ReconcileParticipants drops contributors that are no longer in participants.
// Equal-mode lines are re-split over whoever is left.
func ReconcileParticipants(line models.LineItem, participants []string) models.LineItem {
	known := make(map[string]bool, len(participants))
	for _, p := range participants {
		known[p] = true
	}

	out := line.Clone()
	changed := false
	for p := range out.Contributors {
		if !known[p] {
			delete(out.Contributors, p)
			changed = true
		}
	}
	if changed && out.Mode != models.ModeCustom {
		out.Contributors = equalShares(out.Amount, keys(out.Contributors))
	}
	return out
}

// equalShares assigns amount / len(members) to each member.
func equalShares(amount float64, members []string) map[string]models.Amount {
	shares := make(map[string]models.Amount, len(members))
	if len(members) == 0 {
		return shares
	}
	share := amount / float64(len(members))
	for _, p := range members {
		shares[p] = models.Number(share)
	}
	return shares
}

func keys(m map[string]models.Amount) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

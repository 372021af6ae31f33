package calculator

import "github.com/mmynk/receiptsplit/internal/models"

// SetPayer records who paid receipt receiptIndex and returns the updated map.
// An empty participant clears the assignment. The input map is not modified.
func SetPayer(payers map[int]string, receiptIndex int, participant string) map[int]string {
	out := make(map[int]string, len(payers)+1)
	for k, v := range payers {
		out[k] = v
	}
	if participant == "" {
		delete(out, receiptIndex)
		return out
	}
	out[receiptIndex] = participant
	return out
}

// ComputePaidTotals sums, per payer, the totals of the receipts they paid.
//
// Algorithm:
//   - For each receipt with a payer: payer's paid += totalFn(receipt)
//   - Receipts without a payer are skipped
//
// This is independent of ComputeSettlement; the two are reported side by side
// so users can see who consumed what and who fronted the money.
func ComputePaidTotals(receipts []models.Receipt, payers map[int]string, totalFn func(models.Receipt) float64) map[string]float64 {
	paid := make(map[string]float64)
	for i, r := range receipts {
		payer, ok := payers[i]
		if !ok || payer == "" {
			continue
		}
		paid[payer] += totalFn(r)
	}
	for p, amount := range paid {
		paid[p] = roundToCents(amount)
	}
	return paid
}

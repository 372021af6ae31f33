package session

import (
	"github.com/mmynk/receiptsplit/internal/calculator"
	"github.com/mmynk/receiptsplit/internal/models"
)

// SetPayer records who paid a receipt. An empty participant clears it.
func SetPayer(s models.Session, receiptIdx int, participant string) (models.Session, error) {
	if err := checkReceipt(s, receiptIdx); err != nil {
		return s, err
	}
	if participant != "" {
		if err := requireParticipant(s, participant); err != nil {
			return s, err
		}
	}
	out := s.Clone()
	out.Payers = calculator.SetPayer(out.Payers, receiptIdx, participant)
	return out, nil
}

// Total is the authoritative bill total: the combined receipt total unless
// override is given.
func Total(s models.Session, override *float64) float64 {
	if override != nil {
		return *override
	}
	return calculator.CombinedTotal(s.Receipts)
}

// Settle computes the consumption breakdown for the session.
func Settle(s models.Session, override *float64) (*calculator.Settlement, error) {
	if len(s.Lines) == 0 {
		return nil, ErrNoLines
	}
	return calculator.ComputeSettlement(s.Lines, s.Participants, Total(s, override))
}

// PaidTotals reports how much each payer fronted.
func PaidTotals(s models.Session) map[string]float64 {
	return calculator.ComputePaidTotals(s.Receipts, s.Payers, calculator.ReceiptTotal)
}

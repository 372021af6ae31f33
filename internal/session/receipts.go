package session

import (
	"fmt"

	"github.com/mmynk/receiptsplit/internal/models"
)

const newTaxName = "New Tax/Fee"

// AddReceipts appends receipts in order. The allocation set is cleared
// because it no longer covers every receipt.
func AddReceipts(s models.Session, receipts ...models.Receipt) models.Session {
	out := s.Clone()
	for _, r := range receipts {
		out.Receipts = append(out.Receipts, r.Clone())
	}
	out.Lines = nil
	return out
}

// ReplaceReceipts discards every receipt, payer and line and starts over with receipts.
func ReplaceReceipts(s models.Session, receipts ...models.Receipt) models.Session {
	out := s.Clone()
	out.Receipts = make([]models.Receipt, 0, len(receipts))
	for _, r := range receipts {
		out.Receipts = append(out.Receipts, r.Clone())
	}
	out.Payers = map[int]string{}
	out.Lines = nil
	return out
}

// RemoveReceipt deletes the receipt at idx. Payers of later receipts move down
// one position with their receipt.
func RemoveReceipt(s models.Session, idx int) (models.Session, error) {
	if err := checkReceipt(s, idx); err != nil {
		return s, err
	}
	out := s.Clone()
	out.Receipts = append(out.Receipts[:idx], out.Receipts[idx+1:]...)

	payers := make(map[int]string, len(out.Payers))
	for i, p := range out.Payers {
		switch {
		case i < idx:
			payers[i] = p
		case i > idx:
			payers[i-1] = p
		}
	}
	out.Payers = payers
	out.Lines = nil
	return out, nil
}

// UpdateItem replaces one item on a receipt.
func UpdateItem(s models.Session, receiptIdx, itemIdx int, item models.Item) (models.Session, error) {
	if err := checkReceipt(s, receiptIdx); err != nil {
		return s, err
	}
	if itemIdx < 0 || itemIdx >= len(s.Receipts[receiptIdx].Items) {
		return s, fmt.Errorf("%w: %d", ErrItemIndex, itemIdx)
	}
	out := s.Clone()
	out.Receipts[receiptIdx].Items[itemIdx] = item
	out.Lines = nil
	return out, nil
}

// UpdateTax replaces one tax or fee on a receipt.
func UpdateTax(s models.Session, receiptIdx, taxIdx int, tax models.Tax) (models.Session, error) {
	if err := checkTax(s, receiptIdx, taxIdx); err != nil {
		return s, err
	}
	out := s.Clone()
	out.Receipts[receiptIdx].Taxes[taxIdx] = tax
	out.Lines = nil
	return out, nil
}

// AddTax appends a zero-valued placeholder tax to a receipt.
func AddTax(s models.Session, receiptIdx int) (models.Session, error) {
	if err := checkReceipt(s, receiptIdx); err != nil {
		return s, err
	}
	out := s.Clone()
	out.Receipts[receiptIdx].Taxes = append(out.Receipts[receiptIdx].Taxes,
		models.Tax{Name: newTaxName, Amount: models.Number(0)})
	out.Lines = nil
	return out, nil
}

func RemoveTax(s models.Session, receiptIdx, taxIdx int) (models.Session, error) {
	if err := checkTax(s, receiptIdx, taxIdx); err != nil {
		return s, err
	}
	out := s.Clone()
	taxes := out.Receipts[receiptIdx].Taxes
	out.Receipts[receiptIdx].Taxes = append(taxes[:taxIdx], taxes[taxIdx+1:]...)
	out.Lines = nil
	return out, nil
}

// SetDiscount sets the receipt-level discount. An empty kind means none.
func SetDiscount(s models.Session, receiptIdx int, d models.Discount) (models.Session, error) {
	if err := checkReceipt(s, receiptIdx); err != nil {
		return s, err
	}
	if d.Kind == "" {
		d.Kind = models.DiscountNone
	}
	if !d.Kind.Valid() {
		return s, fmt.Errorf("%w: %q", ErrInvalidDiscount, d.Kind)
	}
	out := s.Clone()
	out.Receipts[receiptIdx].Discount = d
	out.Lines = nil
	return out, nil
}

func checkReceipt(s models.Session, idx int) error {
	if idx < 0 || idx >= len(s.Receipts) {
		return fmt.Errorf("%w: %d", ErrReceiptIndex, idx)
	}
	return nil
}

func checkTax(s models.Session, receiptIdx, taxIdx int) error {
	if err := checkReceipt(s, receiptIdx); err != nil {
		return err
	}
	if taxIdx < 0 || taxIdx >= len(s.Receipts[receiptIdx].Taxes) {
		return fmt.Errorf("%w: %d", ErrTaxIndex, taxIdx)
	}
	return nil
}

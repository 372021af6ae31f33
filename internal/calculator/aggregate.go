package calculator

import (
	"fmt"
	"math"
	"strconv"

	"github.com/mmynk/receiptsplit/internal/models"
)

// taxLabelSuffix marks tax and fee lines so they read differently from products.
const taxLabelSuffix = " (Tax/Fee)"

// Aggregate flattens receipts into one ordered allocation set.
//
// For each receipt, in order: one line per item, one line per tax, then at most
// one discount line. Every line starts in equal mode, split across all
// participants, and remembers which receipt it came from. The result never
// shares state with a previous call, so re-running after edits replaces it.
func Aggregate(receipts []models.Receipt, participants []string) []models.LineItem {
	var lines []models.LineItem
	multi := len(receipts) > 1

	for ri, r := range receipts {
		for _, item := range r.Items {
			lines = append(lines, newLine(item.Name, item.Price.Float(), models.KindItem, ri, participants))
		}
		for _, tax := range r.Taxes {
			lines = append(lines, newLine(tax.Name+taxLabelSuffix, tax.Amount.Float(), models.KindTax, ri, participants))
		}
		if r.Discount.Active() {
			amount := -discountValue(r)
			lines = append(lines, newLine(discountLabel(r.Discount, ri, multi), amount, models.KindDiscount, ri, participants))
		}
	}

	return lines
}

// ReceiptTotal is what a single receipt costs after its own discount.
// It never goes below zero.
func ReceiptTotal(r models.Receipt) float64 {
	total := grossTotal(r)
	if r.Discount.Active() {
		total -= discountValue(r)
	}
	return math.Max(total, 0)
}

// CombinedTotal is the sum of ReceiptTotal over all receipts.
func CombinedTotal(receipts []models.Receipt) float64 {
	var total float64
	for _, r := range receipts {
		total += ReceiptTotal(r)
	}
	return total
}

// grossTotal is items plus taxes, before the discount.
func grossTotal(r models.Receipt) float64 {
	var total float64
	for _, item := range r.Items {
		total += item.Price.Float()
	}
	for _, tax := range r.Taxes {
		total += tax.Amount.Float()
	}
	return total
}

// discountValue is the positive money value of an active discount.
func discountValue(r models.Receipt) float64 {
	v := r.Discount.Value.Float()
	if r.Discount.Kind == models.DiscountPercentage {
		return grossTotal(r) * v / 100
	}
	return v
}

func discountLabel(d models.Discount, receiptIndex int, multi bool) string {
	label := "Discount"
	if d.Kind == models.DiscountPercentage {
		label += fmt.Sprintf(" (%s%%)", strconv.FormatFloat(d.Value.Float(), 'f', -1, 64))
	}
	if multi {
		label += fmt.Sprintf(" - Receipt %d", receiptIndex+1)
	}
	return label
}

func newLine(label string, amount float64, kind models.LineKind, receiptIndex int, participants []string) models.LineItem {
	return models.LineItem{
		Label:        label,
		Amount:       amount,
		Kind:         kind,
		ReceiptIndex: receiptIndex,
		Mode:         models.ModeEqual,
		Contributors: equalShares(amount, participants),
	}
}

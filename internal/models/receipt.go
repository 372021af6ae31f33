package models

// DiscountKind selects how a receipt discount is applied.
type DiscountKind string

const (
	DiscountNone       DiscountKind = "none"
	DiscountPercentage DiscountKind = "percentage"
	DiscountAbsolute   DiscountKind = "absolute"
)

// Valid reports whether k is one of the known discount kinds.
func (k DiscountKind) Valid() bool {
	switch k {
	case DiscountNone, DiscountPercentage, DiscountAbsolute:
		return true
	}
	return false
}

// Receipt is one independently priced source document.
// Receipts in a session are ordered; the position is used both for labels
// ("Receipt 1", "Receipt 2", ...) and to route per-receipt edits.
type Receipt struct {
	// FileName is the uploaded image name, or a synthetic name for demo data.
	FileName string

	// Items are the purchased products, in receipt order.
	Items []Item

	// Taxes are taxes and fees charged on top of the items.
	Taxes []Tax

	// Discount applies to this receipt only.
	Discount Discount
}

// Item is a purchased product on a receipt.
type Item struct {
	Name  string
	Price Amount
}

// Tax is a tax or fee line on a receipt.
type Tax struct {
	Name   string
	Amount Amount
}

// Discount is a receipt-level discount.
// Value is a percentage for DiscountPercentage and a money amount for DiscountAbsolute.
type Discount struct {
	Kind  DiscountKind
	Value Amount
}

// Active reports whether the discount produces a discount line.
func (d Discount) Active() bool {
	return d.Kind != "" && d.Kind != DiscountNone && d.Value.Float() > 0
}

// Clone returns a deep copy of the receipt.
func (r Receipt) Clone() Receipt {
	out := r
	out.Items = append([]Item(nil), r.Items...)
	out.Taxes = append([]Tax(nil), r.Taxes...)
	return out
}

package models

// LineKind identifies what produced a line item.
type LineKind string

const (
	KindItem     LineKind = "item"
	KindTax      LineKind = "tax"
	KindDiscount LineKind = "discount"
)

// SplitMode controls how contributions on a line are maintained.
type SplitMode string

const (
	// ModeEqual keeps every contributor at amount / len(contributors).
	ModeEqual SplitMode = "equal"

	// ModeCustom lets each contributor hold a user-supplied amount.
	ModeCustom SplitMode = "custom"
)

// LineItem is one billable line and the people contributing to it.
type LineItem struct {
	// Label is derived from the source item, tax or discount.
	Label string

	// Amount is positive for items and taxes and negative for discounts.
	Amount float64

	Kind LineKind

	// ReceiptIndex is the position of the source receipt in the session.
	ReceiptIndex int

	Mode SplitMode

	// Contributors maps participant name to contribution.
	// A participant missing from the map does not contribute to this line.
	// In custom mode a present contributor may hold Unset while the amount is being typed.
	Contributors map[string]Amount
}

// Clone returns a copy of the line with its own contributor map.
func (l LineItem) Clone() LineItem {
	out := l
	out.Contributors = make(map[string]Amount, len(l.Contributors))
	for p, a := range l.Contributors {
		out.Contributors[p] = a
	}
	return out
}

// PersonAmount pairs a participant with a money amount.
type PersonAmount struct {
	Person string
	Amount float64
}

package extract

import "context"

// DemoExtractor returns a fixed grocery receipt for every image.
// It backs the demo flow and local development without an API key.
type DemoExtractor struct{}

func (DemoExtractor) Extract(ctx context.Context, img Image) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return DemoResult(), nil
}

// DemoResult is the canned receipt: six grocery items and a handling fee.
func DemoResult() *Result {
	price := func(v float64) *float64 { return &v }
	return &Result{
		IsReceipt: true,
		FileName:  "instamart_order",
		Topics:    []string{"Instamart Order", "Grocery Delivery"},
		Languages: []string{"English"},
		Contents: Contents{
			Items: []ResultItem{
				{Name: "Coriander Leaves (Kothimbir)", Price: price(17)},
				{Name: "Nandini GoodLife Toned Milk", Price: price(146)},
				{Name: "Epigamia Greek Yogurt - Raspberry", Price: price(60)},
				{Name: "Beetroot", Price: price(18)},
				{Name: "Carrot (Gajar)", Price: price(28)},
				{Name: "Curry Leaves (Kadi Patta)", Price: price(9)},
			},
			BillDetails: BillDetails{
				TotalBill: 289,
				Taxes:     []ResultTax{{Name: "Handling Fee", Amount: price(10.5)}},
			},
		},
	}
}

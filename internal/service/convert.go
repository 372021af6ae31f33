package service

import (
	"github.com/mmynk/receiptsplit/internal/calculator"
	"github.com/mmynk/receiptsplit/internal/events"
	"github.com/mmynk/receiptsplit/internal/extract"
	"github.com/mmynk/receiptsplit/internal/models"
	"github.com/mmynk/receiptsplit/pkg/splitapi"
)

func toAPISession(s models.Session) *splitapi.Session {
	out := &splitapi.Session{
		ID:            s.ID,
		Title:         s.Title,
		Version:       s.Version,
		Participants:  append([]string{}, s.Participants...),
		Receipts:      make([]splitapi.Receipt, len(s.Receipts)),
		Lines:         make([]splitapi.LineItem, len(s.Lines)),
		CombinedTotal: calculator.CombinedTotal(s.Receipts),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
	for i, r := range s.Receipts {
		out.Receipts[i] = toAPIReceipt(r)
		out.Receipts[i].Payer = s.Payers[i]
	}
	for i, l := range s.Lines {
		out.Lines[i] = toAPILine(l)
	}
	return out
}

func toAPIReceipt(r models.Receipt) splitapi.Receipt {
	out := splitapi.Receipt{
		FileName: r.FileName,
		Items:    make([]splitapi.Item, len(r.Items)),
		Taxes:    make([]splitapi.Tax, len(r.Taxes)),
		Discount: splitapi.Discount{Kind: string(r.Discount.Kind), Value: r.Discount.Value.Ptr()},
		Total:    calculator.ReceiptTotal(r),
	}
	if out.Discount.Kind == "" {
		out.Discount.Kind = string(models.DiscountNone)
	}
	for i, item := range r.Items {
		out.Items[i] = splitapi.Item{Name: item.Name, Price: item.Price.Ptr()}
	}
	for i, tax := range r.Taxes {
		out.Taxes[i] = splitapi.Tax{Name: tax.Name, Amount: tax.Amount.Ptr()}
	}
	return out
}

func toAPILine(l models.LineItem) splitapi.LineItem {
	contributors := make(map[string]*float64, len(l.Contributors))
	for p, a := range l.Contributors {
		contributors[p] = a.Ptr()
	}
	return splitapi.LineItem{
		Label:        l.Label,
		Amount:       l.Amount,
		Kind:         string(l.Kind),
		ReceiptIndex: l.ReceiptIndex,
		Mode:         string(l.Mode),
		Contributors: contributors,
		Valid:        calculator.IsValid(l),
		Complete:     calculator.HasContributors(l),
	}
}

func fromAPIItem(i splitapi.Item) models.Item {
	return models.Item{Name: i.Name, Price: models.AmountFromPtr(i.Price)}
}

func fromAPITax(t splitapi.Tax) models.Tax {
	return models.Tax{Name: t.Name, Amount: models.AmountFromPtr(t.Amount)}
}

func fromAPIDiscount(d splitapi.Discount) models.Discount {
	return models.Discount{Kind: models.DiscountKind(d.Kind), Value: models.AmountFromPtr(d.Value)}
}

func fromAPIImages(images []splitapi.Image) []extract.Image {
	out := make([]extract.Image, len(images))
	for i, img := range images {
		out[i] = extract.Image{FileName: img.FileName, MimeType: img.MimeType, Data: img.Data}
	}
	return out
}

func toAPIFailures(failures []extract.Failure) []splitapi.ExtractionFailure {
	if len(failures) == 0 {
		return nil
	}
	out := make([]splitapi.ExtractionFailure, len(failures))
	for i, f := range failures {
		out[i] = splitapi.ExtractionFailure{FileName: f.FileName, Reason: f.Reason}
	}
	return out
}

func toAPIAmounts(amounts []models.PersonAmount) []splitapi.PersonAmount {
	out := make([]splitapi.PersonAmount, len(amounts))
	for i, a := range amounts {
		out[i] = splitapi.PersonAmount{Person: a.Person, Amount: a.Amount}
	}
	return out
}

func toEventAmounts(amounts []models.PersonAmount) []events.PersonAmount {
	out := make([]events.PersonAmount, len(amounts))
	for i, a := range amounts {
		out[i] = events.PersonAmount{Person: a.Person, Amount: a.Amount}
	}
	return out
}

// orderedPaid lists paid totals in participant order, skipping people who paid nothing.
func orderedPaid(paid map[string]float64, participants []string) []models.PersonAmount {
	out := make([]models.PersonAmount, 0, len(paid))
	for _, p := range participants {
		if amount, ok := paid[p]; ok {
			out = append(out, models.PersonAmount{Person: p, Amount: amount})
		}
	}
	return out
}

// Package extract turns receipt images into structured receipts.
package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mmynk/receiptsplit/internal/models"
)

var (
	// ErrNotReceipt is returned when the image does not look like a receipt.
	ErrNotReceipt = errors.New("image is not a receipt")

	// ErrNoValidReceipts is returned when every image in a batch failed.
	ErrNoValidReceipts = errors.New("no valid receipts could be extracted")
)

// Image is one uploaded receipt image.
type Image struct {
	FileName string
	MimeType string
	Data     []byte
}

// Extractor reads a single receipt image.
type Extractor interface {
	Extract(ctx context.Context, img Image) (*Result, error)
}

// Result is the structured output of one extraction.
type Result struct {
	IsReceipt bool     `json:"is_receipt"`
	Reason    string   `json:"reason,omitempty"`
	FileName  string   `json:"file_name"`
	Topics    []string `json:"topics,omitempty"`
	Languages []string `json:"languages,omitempty"`
	Contents  Contents `json:"ocr_contents"`
}

type Contents struct {
	Items       []ResultItem `json:"items"`
	BillDetails BillDetails  `json:"total_order_bill_details"`
}

type ResultItem struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
}

type BillDetails struct {
	TotalBill float64     `json:"total_bill"`
	Taxes     []ResultTax `json:"taxes"`
}

type ResultTax struct {
	Name   string   `json:"name"`
	Amount *float64 `json:"amount"`
}

// Receipt converts the result into an editable receipt with no discount.
// Missing prices become blank amounts.
func (r *Result) Receipt() models.Receipt {
	out := models.Receipt{
		FileName: r.FileName,
		Items:    make([]models.Item, 0, len(r.Contents.Items)),
		Taxes:    make([]models.Tax, 0, len(r.Contents.BillDetails.Taxes)),
		Discount: models.Discount{Kind: models.DiscountNone},
	}
	for _, item := range r.Contents.Items {
		out.Items = append(out.Items, models.Item{
			Name:  strings.TrimSpace(item.Name),
			Price: models.AmountFromPtr(item.Price),
		})
	}
	for _, tax := range r.Contents.BillDetails.Taxes {
		out.Taxes = append(out.Taxes, models.Tax{
			Name:   strings.TrimSpace(tax.Name),
			Amount: models.AmountFromPtr(tax.Amount),
		})
	}
	return out
}

// Failure records why one image in a batch was skipped.
type Failure struct {
	FileName string
	Reason   string
}

// PartialFailure is returned by ExtractAll when no image succeeded.
type PartialFailure struct {
	Failures []Failure
}

func (e *PartialFailure) Error() string {
	names := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		names = append(names, fmt.Sprintf("%s: %s", f.FileName, f.Reason))
	}
	return fmt.Sprintf("%s (%s)", ErrNoValidReceipts, strings.Join(names, "; "))
}

func (e *PartialFailure) Unwrap() error {
	return ErrNoValidReceipts
}

// Options bound a batch extraction.
type Options struct {
	// Concurrency is the maximum number of images processed at once. Zero means unbounded.
	Concurrency int

	// Timeout applies to each image separately. Zero means no timeout.
	Timeout time.Duration
}

// ExtractAll runs ex over every image concurrently.
// Successful receipts are returned in image order. Failed images are skipped
// and reported in the failure list; they never block the others. If every
// image fails the error is a *PartialFailure.
func ExtractAll(ctx context.Context, ex Extractor, images []Image, opts Options) ([]models.Receipt, []Failure, error) {
	results := make([]*Result, len(images))
	errs := make([]error, len(images))

	var g errgroup.Group
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}
	for i, img := range images {
		i, img := i, img
		g.Go(func() error {
			imgCtx := ctx
			if opts.Timeout > 0 {
				var cancel context.CancelFunc
				imgCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
				defer cancel()
			}
			results[i], errs[i] = ex.Extract(imgCtx, img)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("extraction cancelled: %w", err)
	}

	var receipts []models.Receipt
	var failures []Failure
	for i, img := range images {
		if errs[i] != nil {
			slog.Warn("Receipt extraction failed", "file_name", img.FileName, "error", errs[i])
			failures = append(failures, Failure{FileName: img.FileName, Reason: errs[i].Error()})
			continue
		}
		r := results[i]
		if r.FileName == "" {
			r.FileName = img.FileName
		}
		receipts = append(receipts, r.Receipt())
	}

	if len(receipts) == 0 {
		return nil, failures, &PartialFailure{Failures: failures}
	}
	return receipts, failures, nil
}

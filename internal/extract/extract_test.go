package extract

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/receiptsplit/internal/models"
)

// fakeExtractor fails for file names listed in fail and tracks peak concurrency.
type fakeExtractor struct {
	fail    map[string]error
	delay   time.Duration
	running atomic.Int32
	peak    atomic.Int32
}

func (f *fakeExtractor) Extract(ctx context.Context, img Image) (*Result, error) {
	n := f.running.Add(1)
	defer f.running.Add(-1)
	for {
		p := f.peak.Load()
		if n <= p || f.peak.CompareAndSwap(p, n) {
			break
		}
	}

	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.delay):
		}
	}
	if err, ok := f.fail[img.FileName]; ok {
		return nil, err
	}
	price := 10.0
	return &Result{
		IsReceipt: true,
		Contents:  Contents{Items: []ResultItem{{Name: img.FileName + " item", Price: &price}}},
	}, nil
}

func images(names ...string) []Image {
	out := make([]Image, len(names))
	for i, n := range names {
		out[i] = Image{FileName: n, Data: []byte("img")}
	}
	return out
}

func TestExtractAll_KeepsOrderAndSkipsFailures(t *testing.T) {
	ex := &fakeExtractor{fail: map[string]error{
		"b.jpg": ErrNotReceipt,
	}}

	receipts, failures, err := ExtractAll(context.Background(), ex, images("a.jpg", "b.jpg", "c.jpg"), Options{Concurrency: 2})

	require.NoError(t, err)
	require.Len(t, receipts, 2)
	assert.Equal(t, "a.jpg", receipts[0].FileName)
	assert.Equal(t, "c.jpg", receipts[1].FileName)
	require.Len(t, failures, 1)
	assert.Equal(t, "b.jpg", failures[0].FileName)
	assert.Contains(t, failures[0].Reason, "not a receipt")
}

func TestExtractAll_AllFailed(t *testing.T) {
	ex := &fakeExtractor{fail: map[string]error{
		"a.jpg": ErrNotReceipt,
		"b.jpg": errors.New("boom"),
	}}

	receipts, failures, err := ExtractAll(context.Background(), ex, images("a.jpg", "b.jpg"), Options{})

	assert.Nil(t, receipts)
	assert.Len(t, failures, 2)
	assert.ErrorIs(t, err, ErrNoValidReceipts)
	var partial *PartialFailure
	require.ErrorAs(t, err, &partial)
	assert.Len(t, partial.Failures, 2)
	assert.Contains(t, err.Error(), "boom")
}

func TestExtractAll_RespectsConcurrencyLimit(t *testing.T) {
	ex := &fakeExtractor{delay: 20 * time.Millisecond}

	receipts, _, err := ExtractAll(context.Background(), ex, images("1", "2", "3", "4", "5", "6"), Options{Concurrency: 2})

	require.NoError(t, err)
	assert.Len(t, receipts, 6)
	assert.LessOrEqual(t, ex.peak.Load(), int32(2))
}

func TestExtractAll_PerImageTimeout(t *testing.T) {
	ex := &fakeExtractor{delay: time.Second}

	_, failures, err := ExtractAll(context.Background(), ex, images("slow.jpg"), Options{Timeout: 10 * time.Millisecond})

	assert.ErrorIs(t, err, ErrNoValidReceipts)
	require.Len(t, failures, 1)
	assert.Contains(t, failures[0].Reason, "deadline exceeded")
}

func TestExtractAll_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := ExtractAll(ctx, &fakeExtractor{}, images("a.jpg"), Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResult_Receipt(t *testing.T) {
	price := 12.5
	r := &Result{
		FileName: "lunch.jpg",
		Contents: Contents{
			Items: []ResultItem{
				{Name: " Soup ", Price: &price},
				{Name: "Bread", Price: nil},
			},
		},
	}

	got := r.Receipt()

	assert.Equal(t, "lunch.jpg", got.FileName)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "Soup", got.Items[0].Name)
	assert.Equal(t, models.Number(12.5), got.Items[0].Price)
	assert.False(t, got.Items[1].Price.IsSet())
	assert.NotNil(t, got.Taxes, "missing taxes become an empty list")
	assert.Empty(t, got.Taxes)
	assert.Equal(t, models.DiscountNone, got.Discount.Kind)
}

func TestDemoExtractor(t *testing.T) {
	res, err := DemoExtractor{}.Extract(context.Background(), Image{})
	require.NoError(t, err)

	r := res.Receipt()
	assert.Len(t, r.Items, 6)
	require.Len(t, r.Taxes, 1)
	assert.Equal(t, "Handling Fee", r.Taxes[0].Name)
	assert.Equal(t, 289.0, res.Contents.BillDetails.TotalBill)

	var sum float64
	for _, item := range r.Items {
		sum += item.Price.Float()
	}
	assert.Equal(t, 278.0, sum)
}

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/receiptsplit/internal/auth"
	"github.com/mmynk/receiptsplit/internal/calculator"
	"github.com/mmynk/receiptsplit/internal/events"
	"github.com/mmynk/receiptsplit/internal/extract"
	"github.com/mmynk/receiptsplit/internal/middleware"
	"github.com/mmynk/receiptsplit/internal/session"
	"github.com/mmynk/receiptsplit/internal/storage"
	"github.com/mmynk/receiptsplit/internal/storage/sqlite"
	"github.com/mmynk/receiptsplit/pkg/splitapi"
	"github.com/mmynk/receiptsplit/pkg/splitapi/splitapiconnect"
)

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*events.SettlementComputed
	err    error
}

func (p *recordingPublisher) PublishSettlement(_ context.Context, msg *events.SettlementComputed) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, msg)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) failWith(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

func (p *recordingPublisher) published() []*events.SettlementComputed {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*events.SettlementComputed(nil), p.events...)
}

// pickyExtractor rejects the listed file names and returns the demo receipt for the rest.
type pickyExtractor struct {
	reject map[string]bool
}

func (e pickyExtractor) Extract(ctx context.Context, img extract.Image) (*extract.Result, error) {
	if e.reject[img.FileName] {
		return nil, fmt.Errorf("%w: blurry photo", extract.ErrNotReceipt)
	}
	r := extract.DemoResult()
	r.FileName = img.FileName
	return r, nil
}

type testServer struct {
	client    splitapiconnect.SessionServiceClient
	publisher *recordingPublisher
}

// setupTestServer runs the service behind the real interceptors with a temp SQLite database.
func setupTestServer(t *testing.T, opts ...Option) *testServer {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "receiptsplit-service-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	publisher := &recordingPublisher{}
	jwtManager := auth.NewJWTManager("test-secret-key-0123456789", time.Hour)
	svc := NewSessionService(store, jwtManager, append([]Option{WithPublisher(publisher)}, opts...)...)

	interceptors := connect.WithInterceptors(
		middleware.RequireSession(jwtManager, splitapiconnect.SessionServiceCreateSessionProcedure),
		middleware.LoggingInterceptor(),
	)
	path, handler := splitapiconnect.NewSessionServiceHandler(svc, interceptors)

	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return &testServer{
		client:    splitapiconnect.NewSessionServiceClient(http.DefaultClient, server.URL),
		publisher: publisher,
	}
}

func withToken[T any](token string, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

func wantCode(t *testing.T, err error, code connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", code)
	}
	if got := connect.CodeOf(err); got != code {
		t.Fatalf("expected code %v, got %v (%v)", code, got, err)
	}
}

// createSession starts a session for people and returns its ID and token.
func (ts *testServer) createSession(t *testing.T, people string) (string, string) {
	t.Helper()
	resp, err := ts.client.CreateSession(context.Background(), connect.NewRequest(&splitapi.CreateSessionRequest{
		ParticipantsText: people,
	}))
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if resp.Msg.Token == "" {
		t.Fatal("expected a session token")
	}
	return resp.Msg.Session.ID, resp.Msg.Token
}

// demoSession creates a session with the demo receipt assigned to everyone.
func (ts *testServer) demoSession(t *testing.T, people string) (*splitapi.Session, string) {
	t.Helper()
	ctx := context.Background()
	_, token := ts.createSession(t, people)

	if _, err := ts.client.LoadDemoReceipt(ctx, withToken(token, &splitapi.LoadDemoReceiptRequest{})); err != nil {
		t.Fatalf("LoadDemoReceipt failed: %v", err)
	}
	resp, err := ts.client.AssignLines(ctx, withToken(token, &splitapi.AssignLinesRequest{}))
	if err != nil {
		t.Fatalf("AssignLines failed: %v", err)
	}
	return resp.Msg.Session, token
}

func TestCreateSession(t *testing.T) {
	ts := setupTestServer(t)

	resp, err := ts.client.CreateSession(context.Background(), connect.NewRequest(&splitapi.CreateSessionRequest{
		Participants:     []string{"Alice"},
		ParticipantsText: " Bob, Alice ,, Charlie",
	}))
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	s := resp.Msg.Session
	if s.ID == "" {
		t.Error("expected session ID to be generated")
	}
	if s.Version != 1 {
		t.Errorf("expected version 1, got %d", s.Version)
	}
	want := []string{"Alice", "Bob", "Charlie"}
	if fmt.Sprint(s.Participants) != fmt.Sprint(want) {
		t.Errorf("expected participants %v, got %v", want, s.Participants)
	}
	if s.Title != "Split with Alice, Bob, Charlie" {
		t.Errorf("unexpected title %q", s.Title)
	}
}

func TestSessionTokens(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()
	idA, tokenA := ts.createSession(t, "Alice, Bob")
	idB, _ := ts.createSession(t, "Carol, Dan")

	t.Run("missing token", func(t *testing.T) {
		_, err := ts.client.GetSession(ctx, connect.NewRequest(&splitapi.GetSessionRequest{
			SessionRef: splitapi.SessionRef{SessionID: idA},
		}))
		wantCode(t, err, connect.CodeUnauthenticated)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := ts.client.GetSession(ctx, withToken("not-a-jwt", &splitapi.GetSessionRequest{}))
		wantCode(t, err, connect.CodeUnauthenticated)
	})

	t.Run("token for another session", func(t *testing.T) {
		_, err := ts.client.GetSession(ctx, withToken(tokenA, &splitapi.GetSessionRequest{
			SessionRef: splitapi.SessionRef{SessionID: idB},
		}))
		wantCode(t, err, connect.CodePermissionDenied)
	})

	t.Run("token alone names the session", func(t *testing.T) {
		resp, err := ts.client.GetSession(ctx, withToken(tokenA, &splitapi.GetSessionRequest{}))
		if err != nil {
			t.Fatalf("GetSession failed: %v", err)
		}
		if resp.Msg.Session.ID != idA {
			t.Errorf("expected session %s, got %s", idA, resp.Msg.Session.ID)
		}
	})
}

func TestDemoFlow_EqualSplit(t *testing.T) {
	ts := setupTestServer(t)
	s, token := ts.demoSession(t, "Alice, Bob")

	if len(s.Receipts) != 1 {
		t.Fatalf("expected 1 receipt, got %d", len(s.Receipts))
	}
	if s.Receipts[0].FileName != "instamart_order" {
		t.Errorf("unexpected file name %q", s.Receipts[0].FileName)
	}
	// six items and the handling fee
	if len(s.Lines) != 7 {
		t.Fatalf("expected 7 lines, got %d", len(s.Lines))
	}
	if s.CombinedTotal != 288.5 {
		t.Errorf("expected combined total 288.5, got %v", s.CombinedTotal)
	}

	resp, err := ts.client.CalculateSplit(context.Background(), withToken(token, &splitapi.CalculateSplitRequest{}))
	if err != nil {
		t.Fatalf("CalculateSplit failed: %v", err)
	}
	for i, want := range []string{"Alice", "Bob"} {
		got := resp.Msg.Breakdown[i]
		if got.Person != want || got.Amount != 144.25 {
			t.Errorf("breakdown[%d] = %+v, want %s 144.25", i, got, want)
		}
	}

	published := ts.publisher.published()
	if len(published) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(published))
	}
	if published[0].SessionID != s.ID || published[0].Total != 288.5 {
		t.Errorf("unexpected event %+v", published[0])
	}
}

func TestCalculateSplit_OverrideTotalAndPayers(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()
	_, token := ts.demoSession(t, "Alice, Bob")

	// Alice alone takes the milk.
	if _, err := ts.client.ToggleContributor(ctx, withToken(token, &splitapi.ToggleContributorRequest{
		LineIndex: 1, Participant: "Bob",
	})); err != nil {
		t.Fatalf("ToggleContributor failed: %v", err)
	}
	if _, err := ts.client.SetPayer(ctx, withToken(token, &splitapi.SetPayerRequest{
		ReceiptIndex: 0, Participant: "Bob",
	})); err != nil {
		t.Fatalf("SetPayer failed: %v", err)
	}

	total := 300.0
	resp, err := ts.client.CalculateSplit(ctx, withToken(token, &splitapi.CalculateSplitRequest{Total: &total}))
	if err != nil {
		t.Fatalf("CalculateSplit failed: %v", err)
	}

	var sum float64
	for _, b := range resp.Msg.Breakdown {
		sum += b.Amount
	}
	if math.Abs(sum-total) > 0.02 {
		t.Errorf("breakdown sums to %v, want %v", sum, total)
	}
	if resp.Msg.Breakdown[0].Amount <= resp.Msg.Breakdown[1].Amount {
		t.Errorf("expected Alice to owe more than Bob: %+v", resp.Msg.Breakdown)
	}
	if len(resp.Msg.PaidTotals) != 1 || resp.Msg.PaidTotals[0].Person != "Bob" || resp.Msg.PaidTotals[0].Amount != 288.5 {
		t.Errorf("unexpected paid totals %+v", resp.Msg.PaidTotals)
	}

	paid, err := ts.client.GetPaidTotals(ctx, withToken(token, &splitapi.GetPaidTotalsRequest{}))
	if err != nil {
		t.Fatalf("GetPaidTotals failed: %v", err)
	}
	if len(paid.Msg.PaidTotals) != 1 || paid.Msg.PaidTotals[0].Amount != 288.5 {
		t.Errorf("unexpected paid totals %+v", paid.Msg.PaidTotals)
	}
}

func TestCalculateSplit_Rejections(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()

	t.Run("no lines yet", func(t *testing.T) {
		_, token := ts.createSession(t, "Alice")
		_, err := ts.client.CalculateSplit(ctx, withToken(token, &splitapi.CalculateSplitRequest{}))
		wantCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("line without contributors", func(t *testing.T) {
		_, token := ts.demoSession(t, "Alice, Bob")
		if _, err := ts.client.ToggleAllContributors(ctx, withToken(token, &splitapi.ToggleAllContributorsRequest{LineIndex: 2})); err != nil {
			t.Fatalf("ToggleAllContributors failed: %v", err)
		}
		_, err := ts.client.CalculateSplit(ctx, withToken(token, &splitapi.CalculateSplitRequest{}))
		wantCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("custom line that does not add up", func(t *testing.T) {
		_, token := ts.demoSession(t, "Alice, Bob")
		if _, err := ts.client.ToggleCustomMode(ctx, withToken(token, &splitapi.ToggleCustomModeRequest{LineIndex: 0})); err != nil {
			t.Fatalf("ToggleCustomMode failed: %v", err)
		}
		resp, err := ts.client.SetCustomAmount(ctx, withToken(token, &splitapi.SetCustomAmountRequest{
			LineIndex: 0, Participant: "Alice", Value: "1",
		}))
		if err != nil {
			t.Fatalf("SetCustomAmount failed: %v", err)
		}
		if resp.Msg.Session.Lines[0].Valid {
			t.Error("expected line 0 to be flagged invalid")
		}
		_, err = ts.client.CalculateSplit(ctx, withToken(token, &splitapi.CalculateSplitRequest{}))
		wantCode(t, err, connect.CodeInvalidArgument)
	})

	if n := len(ts.publisher.published()); n != 0 {
		t.Errorf("rejected settlements must not publish, got %d events", n)
	}
}

func TestReceiptEdits(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()
	_, token := ts.demoSession(t, "Alice, Bob")

	price := 20.0
	resp, err := ts.client.UpdateItem(ctx, withToken(token, &splitapi.UpdateItemRequest{
		ReceiptIndex: 0, ItemIndex: 0, Item: splitapi.Item{Name: "Coriander", Price: &price},
	}))
	if err != nil {
		t.Fatalf("UpdateItem failed: %v", err)
	}
	if len(resp.Msg.Session.Lines) != 0 {
		t.Error("editing a receipt must clear the line items")
	}
	if resp.Msg.Session.Receipts[0].Total != 291.5 {
		t.Errorf("expected receipt total 291.5, got %v", resp.Msg.Session.Receipts[0].Total)
	}

	resp, err = ts.client.AddTax(ctx, withToken(token, &splitapi.AddTaxRequest{ReceiptIndex: 0}))
	if err != nil {
		t.Fatalf("AddTax failed: %v", err)
	}
	taxes := resp.Msg.Session.Receipts[0].Taxes
	if len(taxes) != 2 || taxes[1].Name != "New Tax/Fee" {
		t.Fatalf("unexpected taxes %+v", taxes)
	}

	resp, err = ts.client.UpdateTax(ctx, withToken(token, &splitapi.UpdateTaxRequest{
		ReceiptIndex: 0, TaxIndex: 1, Tax: splitapi.Tax{Name: "Tip", Amount: nil},
	}))
	if err != nil {
		t.Fatalf("UpdateTax failed: %v", err)
	}
	if tax := resp.Msg.Session.Receipts[0].Taxes[1]; tax.Name != "Tip" || tax.Amount != nil {
		t.Errorf("expected blank Tip, got %+v", tax)
	}

	resp, err = ts.client.RemoveTax(ctx, withToken(token, &splitapi.RemoveTaxRequest{ReceiptIndex: 0, TaxIndex: 1}))
	if err != nil {
		t.Fatalf("RemoveTax failed: %v", err)
	}
	if len(resp.Msg.Session.Receipts[0].Taxes) != 1 {
		t.Errorf("expected 1 tax after removal")
	}

	ten := 10.0
	resp, err = ts.client.SetDiscount(ctx, withToken(token, &splitapi.SetDiscountRequest{
		ReceiptIndex: 0, Discount: splitapi.Discount{Kind: "percentage", Value: &ten},
	}))
	if err != nil {
		t.Fatalf("SetDiscount failed: %v", err)
	}
	if got := resp.Msg.Session.Receipts[0].Total; math.Abs(got-262.35) > 1e-9 {
		t.Errorf("expected discounted total 262.35, got %v", got)
	}

	_, err = ts.client.SetDiscount(ctx, withToken(token, &splitapi.SetDiscountRequest{
		ReceiptIndex: 0, Discount: splitapi.Discount{Kind: "bogus"},
	}))
	wantCode(t, err, connect.CodeInvalidArgument)

	resp, err = ts.client.RemoveReceipt(ctx, withToken(token, &splitapi.RemoveReceiptRequest{ReceiptIndex: 0}))
	if err != nil {
		t.Fatalf("RemoveReceipt failed: %v", err)
	}
	if len(resp.Msg.Session.Receipts) != 0 {
		t.Error("expected no receipts left")
	}
}

func TestIndexErrorsAreInvalidArgument(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()
	_, token := ts.demoSession(t, "Alice, Bob")

	_, err := ts.client.ToggleContributor(ctx, withToken(token, &splitapi.ToggleContributorRequest{LineIndex: 99, Participant: "Alice"}))
	wantCode(t, err, connect.CodeInvalidArgument)

	_, err = ts.client.ToggleContributor(ctx, withToken(token, &splitapi.ToggleContributorRequest{LineIndex: 0, Participant: "Mallory"}))
	wantCode(t, err, connect.CodeInvalidArgument)

	_, err = ts.client.RemoveTax(ctx, withToken(token, &splitapi.RemoveTaxRequest{ReceiptIndex: 0, TaxIndex: 5}))
	wantCode(t, err, connect.CodeInvalidArgument)

	_, err = ts.client.SetPayer(ctx, withToken(token, &splitapi.SetPayerRequest{ReceiptIndex: 3, Participant: "Alice"}))
	wantCode(t, err, connect.CodeInvalidArgument)
}

func TestSetParticipants_ResplitsLines(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()
	_, token := ts.demoSession(t, "Alice, Bob, Charlie")

	resp, err := ts.client.SetParticipants(ctx, withToken(token, &splitapi.SetParticipantsRequest{
		ParticipantsText: "Alice, Bob",
	}))
	if err != nil {
		t.Fatalf("SetParticipants failed: %v", err)
	}
	for _, line := range resp.Msg.Session.Lines {
		if _, ok := line.Contributors["Charlie"]; ok {
			t.Errorf("%q still lists Charlie", line.Label)
		}
		if got := *line.Contributors["Alice"]; math.Abs(got-line.Amount/2) > 1e-9 {
			t.Errorf("%q: Alice share %v, want %v", line.Label, got, line.Amount/2)
		}
	}
}

func TestStaleVersionIsAborted(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()
	s, token := ts.demoSession(t, "Alice, Bob")

	// The first writer wins and bumps the version.
	ref := splitapi.SessionRef{SessionID: s.ID, Version: s.Version}
	resp, err := ts.client.ToggleContributor(ctx, withToken(token, &splitapi.ToggleContributorRequest{
		SessionRef: ref, LineIndex: 0, Participant: "Bob",
	}))
	if err != nil {
		t.Fatalf("ToggleContributor failed: %v", err)
	}
	if resp.Msg.Session.Version != s.Version+1 {
		t.Errorf("expected version %d, got %d", s.Version+1, resp.Msg.Session.Version)
	}

	_, err = ts.client.ToggleContributor(ctx, withToken(token, &splitapi.ToggleContributorRequest{
		SessionRef: ref, LineIndex: 1, Participant: "Bob",
	}))
	wantCode(t, err, connect.CodeAborted)
}

func TestUploadReceipts(t *testing.T) {
	ts := setupTestServer(t, WithExtractor(
		pickyExtractor{reject: map[string]bool{"blurry.jpg": true}},
		extract.Options{Concurrency: 2, Timeout: time.Second},
	))
	ctx := context.Background()
	_, token := ts.createSession(t, "Alice, Bob")

	t.Run("partial success keeps the good receipts", func(t *testing.T) {
		resp, err := ts.client.UploadReceipts(ctx, withToken(token, &splitapi.UploadReceiptsRequest{
			Images: []splitapi.Image{
				{FileName: "lunch.jpg", Data: []byte{0xff, 0xd8}},
				{FileName: "blurry.jpg", Data: []byte{0xff, 0xd8}},
				{FileName: "dinner.jpg", Data: []byte{0xff, 0xd8}},
			},
		}))
		if err != nil {
			t.Fatalf("UploadReceipts failed: %v", err)
		}
		receipts := resp.Msg.Session.Receipts
		if len(receipts) != 2 || receipts[0].FileName != "lunch.jpg" || receipts[1].FileName != "dinner.jpg" {
			t.Errorf("unexpected receipts %+v", receipts)
		}
		if len(resp.Msg.Failures) != 1 || resp.Msg.Failures[0].FileName != "blurry.jpg" {
			t.Errorf("unexpected failures %+v", resp.Msg.Failures)
		}
	})

	t.Run("every image failing is an error", func(t *testing.T) {
		_, err := ts.client.UploadReceipts(ctx, withToken(token, &splitapi.UploadReceiptsRequest{
			Images: []splitapi.Image{{FileName: "blurry.jpg"}},
		}))
		wantCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("no images", func(t *testing.T) {
		_, err := ts.client.UploadReceipts(ctx, withToken(token, &splitapi.UploadReceiptsRequest{}))
		wantCode(t, err, connect.CodeInvalidArgument)
	})
}

func TestUploadReceipts_NoExtractorConfigured(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()
	_, token := ts.createSession(t, "Alice")

	_, err := ts.client.UploadReceipts(ctx, withToken(token, &splitapi.UploadReceiptsRequest{
		Images: []splitapi.Image{{FileName: "lunch.jpg", Data: []byte{0xff, 0xd8}}},
	}))
	wantCode(t, err, connect.CodeFailedPrecondition)
}

func TestUploadReceipts_DemoExtractorWarns(t *testing.T) {
	ts := setupTestServer(t, WithExtractor(extract.DemoExtractor{}, extract.Options{}))
	ctx := context.Background()
	_, token := ts.createSession(t, "Alice")

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	for i := 0; i < 2; i++ {
		_, err := ts.client.UploadReceipts(ctx, withToken(token, &splitapi.UploadReceiptsRequest{
			Images: []splitapi.Image{{FileName: "lunch.jpg", Data: []byte{0xff, 0xd8}}},
		}))
		if err != nil {
			t.Fatalf("UploadReceipts %d failed: %v", i, err)
		}
	}

	if n := strings.Count(buf.String(), "Demo extractor configured"); n != 2 {
		t.Errorf("expected a demo warning per upload, got %d in %q", n, buf.String())
	}
}

func TestDeleteSession(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()
	_, token := ts.createSession(t, "Alice")

	if _, err := ts.client.DeleteSession(ctx, withToken(token, &splitapi.DeleteSessionRequest{})); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}

	_, err := ts.client.GetSession(ctx, withToken(token, &splitapi.GetSessionRequest{}))
	wantCode(t, err, connect.CodeNotFound)

	_, err = ts.client.DeleteSession(ctx, withToken(token, &splitapi.DeleteSessionRequest{}))
	wantCode(t, err, connect.CodeNotFound)
}

func TestPublishFailureDoesNotFailRequest(t *testing.T) {
	ts := setupTestServer(t)
	ts.publisher.failWith(errors.New("broker down"))
	_, token := ts.demoSession(t, "Alice")

	if _, err := ts.client.CalculateSplit(context.Background(), withToken(token, &splitapi.CalculateSplitRequest{})); err != nil {
		t.Fatalf("CalculateSplit failed: %v", err)
	}
}

func TestToConnectError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want connect.Code
	}{
		{"not found", fmt.Errorf("%w: abc", storage.ErrNotFound), connect.CodeNotFound},
		{"version conflict", storage.ErrVersionConflict, connect.CodeAborted},
		{"degenerate totals", calculator.ErrDegenerateTotals, connect.CodeFailedPrecondition},
		{"incomplete line", &calculator.IncompleteAllocationError{Label: "Milk"}, connect.CodeInvalidArgument},
		{"invalid custom line", &calculator.InvalidCustomAllocationError{Label: "Wine"}, connect.CodeInvalidArgument},
		{"index", fmt.Errorf("%w: 9", session.ErrLineIndex), connect.CodeInvalidArgument},
		{"no participants", session.ErrNoParticipants, connect.CodeInvalidArgument},
		{"extraction", &extract.PartialFailure{}, connect.CodeInvalidArgument},
		{"cancelled", fmt.Errorf("extraction cancelled: %w", context.Canceled), connect.CodeCanceled},
		{"unknown", errors.New("disk on fire"), connect.CodeInternal},
		{"already mapped", connect.NewError(connect.CodeUnauthenticated, errors.New("x")), connect.CodeUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := connect.CodeOf(toConnectError(tt.err)); got != tt.want {
				t.Errorf("toConnectError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

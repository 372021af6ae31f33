package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/receiptsplit/internal/extract"
	"github.com/mmynk/receiptsplit/internal/models"
	"github.com/mmynk/receiptsplit/internal/session"
	"github.com/mmynk/receiptsplit/pkg/splitapi"
)

var errNoExtractor = errors.New("receipt extraction is not configured")

// UploadReceipts extracts every image and appends the receipts that were read.
// Images that fail are reported alongside the updated session; the call only
// fails when none of them could be read.
func (s *SessionService) UploadReceipts(ctx context.Context, req *connect.Request[splitapi.UploadReceiptsRequest]) (*connect.Response[splitapi.UploadReceiptsResponse], error) {
	if s.extractor == nil {
		return nil, connect.NewError(connect.CodeFailedPrecondition, errNoExtractor)
	}
	if len(req.Msg.Images) == 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("at least one image is required"))
	}
	// Fail fast before spending extraction calls on a missing or stale session.
	if _, err := s.load(ctx, req.Msg.SessionRef); err != nil {
		return nil, err
	}

	if _, canned := s.extractor.(extract.DemoExtractor); canned {
		slog.Warn("Demo extractor configured, uploaded images are ignored and replaced with the demo receipt",
			"images", len(req.Msg.Images))
	}

	receipts, failures, err := extract.ExtractAll(ctx, s.extractor, fromAPIImages(req.Msg.Images), s.extractOpts)
	s.metrics.ExtractionsCompleted(len(receipts), len(failures))
	if err != nil {
		return nil, toConnectError(err)
	}

	sess, err := s.mutate(ctx, req.Msg.SessionRef, func(cur models.Session) (models.Session, error) {
		return session.AddReceipts(cur, receipts...), nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Receipts uploaded", "session_id", sess.ID, "added", len(receipts), "failed", len(failures))
	return connect.NewResponse(&splitapi.UploadReceiptsResponse{
		Session:  toAPISession(*sess),
		Failures: toAPIFailures(failures),
	}), nil
}

// LoadDemoReceipt replaces the session's receipts with the canned demo receipt.
func (s *SessionService) LoadDemoReceipt(ctx context.Context, req *connect.Request[splitapi.LoadDemoReceiptRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	result, err := s.demo.Extract(ctx, extract.Image{FileName: "demo-receipt.jpeg"})
	if err != nil {
		return nil, toConnectError(err)
	}
	sess, err := s.mutate(ctx, req.Msg.SessionRef, func(cur models.Session) (models.Session, error) {
		return session.ReplaceReceipts(cur, result.Receipt()), nil
	})
	if err != nil {
		return nil, err
	}
	return sessionResponse(sess), nil
}

func (s *SessionService) RemoveReceipt(ctx context.Context, req *connect.Request[splitapi.RemoveReceiptRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	sess, err := s.mutate(ctx, req.Msg.SessionRef, func(cur models.Session) (models.Session, error) {
		return session.RemoveReceipt(cur, req.Msg.ReceiptIndex)
	})
	if err != nil {
		return nil, err
	}
	return sessionResponse(sess), nil
}

func (s *SessionService) UpdateItem(ctx context.Context, req *connect.Request[splitapi.UpdateItemRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	sess, err := s.mutate(ctx, req.Msg.SessionRef, func(cur models.Session) (models.Session, error) {
		return session.UpdateItem(cur, req.Msg.ReceiptIndex, req.Msg.ItemIndex, fromAPIItem(req.Msg.Item))
	})
	if err != nil {
		return nil, err
	}
	return sessionResponse(sess), nil
}

func (s *SessionService) UpdateTax(ctx context.Context, req *connect.Request[splitapi.UpdateTaxRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	sess, err := s.mutate(ctx, req.Msg.SessionRef, func(cur models.Session) (models.Session, error) {
		return session.UpdateTax(cur, req.Msg.ReceiptIndex, req.Msg.TaxIndex, fromAPITax(req.Msg.Tax))
	})
	if err != nil {
		return nil, err
	}
	return sessionResponse(sess), nil
}

func (s *SessionService) AddTax(ctx context.Context, req *connect.Request[splitapi.AddTaxRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	sess, err := s.mutate(ctx, req.Msg.SessionRef, func(cur models.Session) (models.Session, error) {
		return session.AddTax(cur, req.Msg.ReceiptIndex)
	})
	if err != nil {
		return nil, err
	}
	return sessionResponse(sess), nil
}

func (s *SessionService) RemoveTax(ctx context.Context, req *connect.Request[splitapi.RemoveTaxRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	sess, err := s.mutate(ctx, req.Msg.SessionRef, func(cur models.Session) (models.Session, error) {
		return session.RemoveTax(cur, req.Msg.ReceiptIndex, req.Msg.TaxIndex)
	})
	if err != nil {
		return nil, err
	}
	return sessionResponse(sess), nil
}

func (s *SessionService) SetDiscount(ctx context.Context, req *connect.Request[splitapi.SetDiscountRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	sess, err := s.mutate(ctx, req.Msg.SessionRef, func(cur models.Session) (models.Session, error) {
		return session.SetDiscount(cur, req.Msg.ReceiptIndex, fromAPIDiscount(req.Msg.Discount))
	})
	if err != nil {
		return nil, err
	}
	return sessionResponse(sess), nil
}

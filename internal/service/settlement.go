package service

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/receiptsplit/internal/events"
	"github.com/mmynk/receiptsplit/internal/models"
	"github.com/mmynk/receiptsplit/internal/session"
	"github.com/mmynk/receiptsplit/pkg/splitapi"
)

// CalculateSplit computes who consumed what, scaled to the bill total, and
// reports who paid what next to it. The two are independent; no transfers
// between people are derived.
func (s *SessionService) CalculateSplit(ctx context.Context, req *connect.Request[splitapi.CalculateSplitRequest]) (*connect.Response[splitapi.CalculateSplitResponse], error) {
	sess, err := s.load(ctx, req.Msg.SessionRef)
	if err != nil {
		return nil, err
	}

	settlement, err := session.Settle(*sess, req.Msg.Total)
	if err != nil {
		s.metrics.SettlementRejected(err)
		slog.Debug("Settlement rejected", "session_id", sess.ID, "error", err)
		return nil, toConnectError(err)
	}
	s.metrics.SettlementComputed()

	breakdown := settlement.Breakdown()
	paid := orderedPaid(session.PaidTotals(*sess), sess.Participants)

	for _, b := range breakdown {
		slog.Debug("Person amount", "session_id", sess.ID, "person", b.Person, "amount", b.Amount)
	}

	s.publish(ctx, &events.SettlementComputed{
		SessionID:   sess.ID,
		Version:     sess.Version,
		Total:       settlement.Total,
		ScaleFactor: settlement.ScaleFactor,
		Consumed:    toEventAmounts(breakdown),
		Paid:        toEventAmounts(paid),
		ComputedAt:  time.Now().UTC(),
	})

	return connect.NewResponse(&splitapi.CalculateSplitResponse{
		Breakdown:   toAPIAmounts(breakdown),
		PaidTotals:  toAPIAmounts(paid),
		ScaleFactor: settlement.ScaleFactor,
		RawTotal:    settlement.RawTotal,
		Total:       settlement.Total,
	}), nil
}

// SetPayer records who paid a receipt. An empty participant clears it.
func (s *SessionService) SetPayer(ctx context.Context, req *connect.Request[splitapi.SetPayerRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	sess, err := s.mutate(ctx, req.Msg.SessionRef, func(cur models.Session) (models.Session, error) {
		return session.SetPayer(cur, req.Msg.ReceiptIndex, req.Msg.Participant)
	})
	if err != nil {
		return nil, err
	}
	return sessionResponse(sess), nil
}

func (s *SessionService) GetPaidTotals(ctx context.Context, req *connect.Request[splitapi.GetPaidTotalsRequest]) (*connect.Response[splitapi.GetPaidTotalsResponse], error) {
	sess, err := s.load(ctx, req.Msg.SessionRef)
	if err != nil {
		return nil, err
	}
	paid := orderedPaid(session.PaidTotals(*sess), sess.Participants)
	return connect.NewResponse(&splitapi.GetPaidTotalsResponse{PaidTotals: toAPIAmounts(paid)}), nil
}

// publish sends the event without failing the request.
func (s *SessionService) publish(ctx context.Context, msg *events.SettlementComputed) {
	if err := s.publisher.PublishSettlement(ctx, msg); err != nil {
		slog.Warn("Failed to publish settlement event", "session_id", msg.SessionID, "error", err)
	}
}

package service

import (
	"context"

	"connectrpc.com/connect"

	"github.com/mmynk/receiptsplit/internal/models"
	"github.com/mmynk/receiptsplit/internal/session"
	"github.com/mmynk/receiptsplit/pkg/splitapi"
)

// SetParticipants replaces the participant list. Names from Participants come
// first, followed by the comma separated ParticipantsText.
func (s *SessionService) SetParticipants(ctx context.Context, req *connect.Request[splitapi.SetParticipantsRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	names := append([]string{}, req.Msg.Participants...)
	names = append(names, session.ParseParticipants(req.Msg.ParticipantsText)...)

	sess, err := s.mutate(ctx, req.Msg.SessionRef, func(cur models.Session) (models.Session, error) {
		return session.SetParticipants(cur, names), nil
	})
	if err != nil {
		return nil, err
	}
	return sessionResponse(sess), nil
}

// AssignLines rebuilds the line items from the receipts, split equally across everyone.
func (s *SessionService) AssignLines(ctx context.Context, req *connect.Request[splitapi.AssignLinesRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	sess, err := s.mutate(ctx, req.Msg.SessionRef, session.AssignLines)
	if err != nil {
		return nil, err
	}
	return sessionResponse(sess), nil
}

func (s *SessionService) ToggleContributor(ctx context.Context, req *connect.Request[splitapi.ToggleContributorRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	sess, err := s.mutate(ctx, req.Msg.SessionRef, func(cur models.Session) (models.Session, error) {
		return session.ToggleContributor(cur, req.Msg.LineIndex, req.Msg.Participant)
	})
	if err != nil {
		return nil, err
	}
	return sessionResponse(sess), nil
}

func (s *SessionService) ToggleCustomMode(ctx context.Context, req *connect.Request[splitapi.ToggleCustomModeRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	sess, err := s.mutate(ctx, req.Msg.SessionRef, func(cur models.Session) (models.Session, error) {
		return session.ToggleMode(cur, req.Msg.LineIndex)
	})
	if err != nil {
		return nil, err
	}
	return sessionResponse(sess), nil
}

func (s *SessionService) SetCustomAmount(ctx context.Context, req *connect.Request[splitapi.SetCustomAmountRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	sess, err := s.mutate(ctx, req.Msg.SessionRef, func(cur models.Session) (models.Session, error) {
		return session.SetCustomAmount(cur, req.Msg.LineIndex, req.Msg.Participant, req.Msg.Value)
	})
	if err != nil {
		return nil, err
	}
	return sessionResponse(sess), nil
}

func (s *SessionService) ToggleAllContributors(ctx context.Context, req *connect.Request[splitapi.ToggleAllContributorsRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	sess, err := s.mutate(ctx, req.Msg.SessionRef, func(cur models.Session) (models.Session, error) {
		return session.ToggleAll(cur, req.Msg.LineIndex)
	})
	if err != nil {
		return nil, err
	}
	return sessionResponse(sess), nil
}

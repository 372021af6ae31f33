package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/receiptsplit/internal/auth"
	"github.com/mmynk/receiptsplit/internal/events"
	"github.com/mmynk/receiptsplit/internal/extract"
	"github.com/mmynk/receiptsplit/internal/metrics"
	"github.com/mmynk/receiptsplit/internal/middleware"
	"github.com/mmynk/receiptsplit/internal/models"
	"github.com/mmynk/receiptsplit/internal/session"
	"github.com/mmynk/receiptsplit/internal/storage"
	"github.com/mmynk/receiptsplit/pkg/splitapi"
	"github.com/mmynk/receiptsplit/pkg/splitapi/splitapiconnect"
)

// SessionService implements the Connect SessionService.
//
// Every edit follows the same path: load the session, apply a pure function
// from internal/session, and write it back with a compare-and-swap on Version.
type SessionService struct {
	splitapiconnect.UnimplementedSessionServiceHandler
	store       storage.Store
	tokens      *auth.JWTManager
	extractor   extract.Extractor
	demo        extract.Extractor
	extractOpts extract.Options
	publisher   events.Publisher
	metrics     *metrics.Metrics
}

// Option configures a SessionService.
type Option func(*SessionService)

// WithExtractor sets the extractor used by UploadReceipts. Passing the demo
// extractor is allowed for local runs; every upload is then logged as canned.
func WithExtractor(ex extract.Extractor, opts extract.Options) Option {
	return func(s *SessionService) {
		s.extractor = ex
		s.extractOpts = opts
	}
}

func WithPublisher(p events.Publisher) Option {
	return func(s *SessionService) { s.publisher = p }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *SessionService) { s.metrics = m }
}

// NewSessionService creates a SessionService. Without options it rejects
// uploads, publishes nothing and records metrics to a private registry.
func NewSessionService(store storage.Store, tokens *auth.JWTManager, opts ...Option) *SessionService {
	s := &SessionService{
		store:     store,
		tokens:    tokens,
		demo:      extract.DemoExtractor{},
		publisher: events.NopPublisher{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = metrics.New(prometheus.NewRegistry())
	}
	return s
}

// CreateSession starts a new split and returns the token that grants access to it.
func (s *SessionService) CreateSession(ctx context.Context, req *connect.Request[splitapi.CreateSessionRequest]) (*connect.Response[splitapi.CreateSessionResponse], error) {
	names := append([]string{}, req.Msg.Participants...)
	names = append(names, session.ParseParticipants(req.Msg.ParticipantsText)...)

	sess := session.SetParticipants(models.Session{Title: req.Msg.Title}, names)
	if err := s.store.CreateSession(ctx, &sess); err != nil {
		slog.Error("CreateSession failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	token, err := s.tokens.Generate(sess.ID)
	if err != nil {
		slog.Error("CreateSession token generation failed", "session_id", sess.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Session created", "session_id", sess.ID, "participants", len(sess.Participants))
	return connect.NewResponse(&splitapi.CreateSessionResponse{
		Session: toAPISession(sess),
		Token:   token,
	}), nil
}

func (s *SessionService) GetSession(ctx context.Context, req *connect.Request[splitapi.GetSessionRequest]) (*connect.Response[splitapi.SessionResponse], error) {
	sess, err := s.load(ctx, req.Msg.SessionRef)
	if err != nil {
		return nil, err
	}
	return sessionResponse(sess), nil
}

// DeleteSession resets a split by removing it and everything in it.
func (s *SessionService) DeleteSession(ctx context.Context, req *connect.Request[splitapi.DeleteSessionRequest]) (*connect.Response[splitapi.DeleteSessionResponse], error) {
	id, err := sessionID(ctx, req.Msg.SessionRef)
	if err != nil {
		return nil, err
	}
	if err := s.store.DeleteSession(ctx, id); err != nil {
		return nil, toConnectError(err)
	}
	slog.Info("Session deleted", "session_id", id)
	return connect.NewResponse(&splitapi.DeleteSessionResponse{}), nil
}

// sessionID resolves the target session: the request's own ID, or the one
// granted by the caller's token.
func sessionID(ctx context.Context, ref splitapi.SessionRef) (string, error) {
	if ref.SessionID != "" {
		return ref.SessionID, nil
	}
	if id := middleware.GetSessionID(ctx); id != "" {
		return id, nil
	}
	return "", connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("session_id is required"))
}

// load fetches the session and enforces the caller's expected version, if any.
func (s *SessionService) load(ctx context.Context, ref splitapi.SessionRef) (*models.Session, error) {
	id, err := sessionID(ctx, ref)
	if err != nil {
		return nil, err
	}
	sess, err := s.store.GetSession(ctx, id)
	if err != nil {
		return nil, toConnectError(err)
	}
	if ref.Version != 0 && ref.Version != sess.Version {
		return nil, connect.NewError(connect.CodeAborted, fmt.Errorf("%w: expected version %d, session is at %d",
			storage.ErrVersionConflict, ref.Version, sess.Version))
	}
	return sess, nil
}

// mutate applies fn to the stored session and saves the result.
func (s *SessionService) mutate(ctx context.Context, ref splitapi.SessionRef, fn func(models.Session) (models.Session, error)) (*models.Session, error) {
	current, err := s.load(ctx, ref)
	if err != nil {
		return nil, err
	}

	next, err := fn(*current)
	if err != nil {
		return nil, toConnectError(err)
	}
	next.ID = current.ID
	next.Version = current.Version

	if err := s.store.UpdateSession(ctx, &next); err != nil {
		return nil, toConnectError(err)
	}
	return &next, nil
}

func sessionResponse(sess *models.Session) *connect.Response[splitapi.SessionResponse] {
	return connect.NewResponse(&splitapi.SessionResponse{Session: toAPISession(*sess)})
}

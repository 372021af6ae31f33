package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// LoggingInterceptor returns a Connect interceptor that logs every RPC call
// with the session it touched. When the request pins a session version the
// log carries it, and a rejected stale write is reported as such.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			attrs := []any{"procedure", req.Spec().Procedure}

			// The token's session is in ctx; before CreateSession there is none.
			sessionID := GetSessionID(ctx)
			if scoped, ok := req.Any().(sessionScoped); ok {
				ref := scoped.GetSessionRef()
				if ref.SessionID != "" {
					sessionID = ref.SessionID
				}
				if ref.Version != 0 {
					attrs = append(attrs, "expected_version", ref.Version)
				}
			}
			if sessionID != "" {
				attrs = append(attrs, "session_id", sessionID)
			}

			resp, err := next(ctx, req)
			attrs = append(attrs, "duration_ms", time.Since(start).Milliseconds())

			var connectErr *connect.Error
			switch {
			case err == nil:
				slog.Info("RPC ok", attrs...)
			case errors.As(err, &connectErr) && connectErr.Code() == connect.CodeAborted:
				slog.Info("Stale session write rejected", append(attrs, "error", connectErr.Message())...)
			case errors.As(err, &connectErr):
				slog.Warn("RPC error", append(attrs, "code", connectErr.Code(), "error", connectErr.Message())...)
			default:
				slog.Error("RPC error", append(attrs, "error", err)...)
			}
			return resp, err
		}
	}
}

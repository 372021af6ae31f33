package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/receiptsplit/internal/calculator"
	"github.com/mmynk/receiptsplit/internal/extract"
	"github.com/mmynk/receiptsplit/internal/session"
	"github.com/mmynk/receiptsplit/internal/storage"
)

// invalidArgument lists the errors caused by a bad request rather than by the server.
var invalidArgument = []error{
	session.ErrLineIndex,
	session.ErrReceiptIndex,
	session.ErrItemIndex,
	session.ErrTaxIndex,
	session.ErrUnknownParticipant,
	session.ErrNoLines,
	session.ErrInvalidDiscount,
	session.ErrNoReceipts,
	session.ErrNotCustomMode,
	session.ErrNoParticipants,
	extract.ErrNoValidReceipts,
	extract.ErrNotReceipt,
}

// toConnectError maps domain and storage errors to Connect status codes.
func toConnectError(err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return err
	}

	var incomplete *calculator.IncompleteAllocationError
	var invalid *calculator.InvalidCustomAllocationError
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrVersionConflict):
		return connect.NewError(connect.CodeAborted, err)
	case errors.Is(err, calculator.ErrDegenerateTotals):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.As(err, &incomplete), errors.As(err, &invalid):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	}

	for _, target := range invalidArgument {
		if errors.Is(err, target) {
			return connect.NewError(connect.CodeInvalidArgument, err)
		}
	}

	slog.Error("Unexpected error", "error", err)
	return connect.NewError(connect.CodeInternal, err)
}

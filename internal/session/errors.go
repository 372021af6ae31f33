package session

import (
	"errors"

	"github.com/mmynk/receiptsplit/internal/calculator"
)

var (
	ErrLineIndex          = errors.New("line index out of range")
	ErrReceiptIndex       = errors.New("receipt index out of range")
	ErrItemIndex          = errors.New("item index out of range")
	ErrTaxIndex           = errors.New("tax index out of range")
	ErrUnknownParticipant = errors.New("participant is not part of this split")
	ErrNoLines            = errors.New("no line items to split, assign receipts first")
	ErrInvalidDiscount    = errors.New("unknown discount type")
	ErrNoReceipts         = errors.New("no receipts in session")
	ErrNotCustomMode      = errors.New("line is not in custom split mode")

	// ErrNoParticipants is shared with the calculator so callers can match either.
	ErrNoParticipants = calculator.ErrNoParticipants
)

package models

// Session is the complete state of one split: who is splitting, what was
// bought, how each line is allocated, and who paid which receipt.
//
// A Session is treated as a value. Workflow functions take a session and
// return a new one; the store persists it with a compare-and-swap on Version.
type Session struct {
	// ID is the unique identifier for the session (UUID format).
	ID string

	// Title is a human-readable name, auto-generated when empty.
	Title string

	// Version increases by one on every successful update.
	Version int64

	// Participants is the canonical ordered list of people splitting the bill.
	Participants []string

	// Receipts are the source documents, in upload order.
	Receipts []Receipt

	// Lines is the flat allocation set produced by aggregating Receipts.
	// It is cleared whenever a receipt is edited and must be re-aggregated.
	Lines []LineItem

	// Payers maps receipt index to the participant who paid that receipt.
	// Receipts without a payer are absent.
	Payers map[int]string

	// CreatedAt and UpdatedAt are Unix timestamps.
	CreatedAt int64
	UpdatedAt int64
}

// Clone returns a deep copy, so callers can derive a new state without
// touching the original.
func (s Session) Clone() Session {
	out := s
	out.Participants = append([]string(nil), s.Participants...)
	out.Receipts = make([]Receipt, len(s.Receipts))
	for i, r := range s.Receipts {
		out.Receipts[i] = r.Clone()
	}
	out.Lines = make([]LineItem, len(s.Lines))
	for i, l := range s.Lines {
		out.Lines[i] = l.Clone()
	}
	out.Payers = make(map[int]string, len(s.Payers))
	for k, v := range s.Payers {
		out.Payers[k] = v
	}
	return out
}

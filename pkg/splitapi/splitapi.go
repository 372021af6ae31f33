// Package splitapi defines the wire messages of the splitapi.v1.SessionService.
//
// Messages are plain structs encoded as JSON. Money values that may be left
// blank by the user are *float64, where null means blank.
package splitapi

// SessionRef identifies the session a request operates on.
// SessionID may be omitted when the session token already names the session.
// A non-zero Version makes the request fail with CodeAborted if the session
// has changed since the caller last read it.
type SessionRef struct {
	SessionID string `json:"session_id,omitempty"`
	Version   int64  `json:"version,omitempty"`
}

// GetSessionRef lets interceptors find the target session on any request.
func (r SessionRef) GetSessionRef() SessionRef {
	return r
}

type Item struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
}

type Tax struct {
	Name   string   `json:"name"`
	Amount *float64 `json:"amount"`
}

type Discount struct {
	// Kind is one of "none", "percentage" or "absolute".
	Kind  string   `json:"kind"`
	Value *float64 `json:"value"`
}

type Receipt struct {
	FileName string   `json:"file_name"`
	Items    []Item   `json:"items"`
	Taxes    []Tax    `json:"taxes"`
	Discount Discount `json:"discount"`
	Total    float64  `json:"total"`
	Payer    string   `json:"payer,omitempty"`
}

type LineItem struct {
	Label        string              `json:"label"`
	Amount       float64             `json:"amount"`
	Kind         string              `json:"kind"`
	ReceiptIndex int                 `json:"receipt_index"`
	Mode         string              `json:"mode"`
	Contributors map[string]*float64 `json:"contributors"`

	// Valid is false for custom lines whose contributions do not add up.
	Valid bool `json:"valid"`

	// Complete is false when nobody contributes to the line.
	Complete bool `json:"complete"`
}

type Session struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Version       int64      `json:"version"`
	Participants  []string   `json:"participants"`
	Receipts      []Receipt  `json:"receipts"`
	Lines         []LineItem `json:"lines"`
	CombinedTotal float64    `json:"combined_total"`
	CreatedAt     int64      `json:"created_at"`
	UpdatedAt     int64      `json:"updated_at"`
}

type PersonAmount struct {
	Person string  `json:"person"`
	Amount float64 `json:"amount"`
}

// Image is one uploaded receipt image. Data is base64 in JSON.
type Image struct {
	FileName string `json:"file_name"`
	MimeType string `json:"mime_type,omitempty"`
	Data     []byte `json:"data"`
}

type ExtractionFailure struct {
	FileName string `json:"file_name"`
	Reason   string `json:"reason"`
}

// SessionResponse is returned by every RPC that edits a session.
type SessionResponse struct {
	Session *Session `json:"session"`
}

type CreateSessionRequest struct {
	Title        string   `json:"title,omitempty"`
	Participants []string `json:"participants,omitempty"`

	// ParticipantsText is a comma separated list, merged after Participants.
	ParticipantsText string `json:"participants_text,omitempty"`
}

type CreateSessionResponse struct {
	Session *Session `json:"session"`

	// Token must be sent as "Authorization: Bearer <token>" on every other call.
	Token string `json:"token"`
}

type GetSessionRequest struct {
	SessionRef
}

type DeleteSessionRequest struct {
	SessionRef
}

type DeleteSessionResponse struct{}

type UploadReceiptsRequest struct {
	SessionRef
	Images []Image `json:"images"`
}

type UploadReceiptsResponse struct {
	Session  *Session            `json:"session"`
	Failures []ExtractionFailure `json:"failures,omitempty"`
}

type LoadDemoReceiptRequest struct {
	SessionRef
}

type RemoveReceiptRequest struct {
	SessionRef
	ReceiptIndex int `json:"receipt_index"`
}

type UpdateItemRequest struct {
	SessionRef
	ReceiptIndex int  `json:"receipt_index"`
	ItemIndex    int  `json:"item_index"`
	Item         Item `json:"item"`
}

type UpdateTaxRequest struct {
	SessionRef
	ReceiptIndex int `json:"receipt_index"`
	TaxIndex     int `json:"tax_index"`
	Tax          Tax `json:"tax"`
}

type AddTaxRequest struct {
	SessionRef
	ReceiptIndex int `json:"receipt_index"`
}

type RemoveTaxRequest struct {
	SessionRef
	ReceiptIndex int `json:"receipt_index"`
	TaxIndex     int `json:"tax_index"`
}

type SetDiscountRequest struct {
	SessionRef
	ReceiptIndex int      `json:"receipt_index"`
	Discount     Discount `json:"discount"`
}

type SetParticipantsRequest struct {
	SessionRef
	Participants     []string `json:"participants,omitempty"`
	ParticipantsText string   `json:"participants_text,omitempty"`
}

type AssignLinesRequest struct {
	SessionRef
}

type ToggleContributorRequest struct {
	SessionRef
	LineIndex   int    `json:"line_index"`
	Participant string `json:"participant"`
}

type ToggleCustomModeRequest struct {
	SessionRef
	LineIndex int `json:"line_index"`
}

type SetCustomAmountRequest struct {
	SessionRef
	LineIndex   int    `json:"line_index"`
	Participant string `json:"participant"`

	// Value is the raw user input; blank keeps the amount blank.
	Value string `json:"value"`
}

type ToggleAllContributorsRequest struct {
	SessionRef
	LineIndex int `json:"line_index"`
}

type CalculateSplitRequest struct {
	SessionRef

	// Total overrides the combined receipt total when set.
	Total *float64 `json:"total,omitempty"`
}

type CalculateSplitResponse struct {
	Breakdown   []PersonAmount `json:"breakdown"`
	PaidTotals  []PersonAmount `json:"paid_totals"`
	ScaleFactor float64        `json:"scale_factor"`
	RawTotal    float64        `json:"raw_total"`
	Total       float64        `json:"total"`
}

type SetPayerRequest struct {
	SessionRef
	ReceiptIndex int `json:"receipt_index"`

	// Participant is empty to clear the payer.
	Participant string `json:"participant"`
}

type GetPaidTotalsRequest struct {
	SessionRef
}

type GetPaidTotalsResponse struct {
	PaidTotals []PersonAmount `json:"paid_totals"`
}

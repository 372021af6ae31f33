// Package events publishes notifications about computed settlements.
package events

import (
	"context"
	"encoding/json"
	"time"
)

// SettlementComputed is emitted after every successful CalculateSplit.
type SettlementComputed struct {
	SessionID   string         `json:"session_id"`
	Version     int64          `json:"version"`
	Total       float64        `json:"total"`
	ScaleFactor float64        `json:"scale_factor"`
	Consumed    []PersonAmount `json:"consumed"`
	Paid        []PersonAmount `json:"paid"`
	ComputedAt  time.Time      `json:"computed_at"`
}

type PersonAmount struct {
	Person string  `json:"person"`
	Amount float64 `json:"amount"`
}

func (m *SettlementComputed) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func SettlementComputedFromJSON(data []byte) (*SettlementComputed, error) {
	var msg SettlementComputed
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// Publisher delivers settlement events. Publishing is best effort; callers
// log failures instead of failing the request.
type Publisher interface {
	PublishSettlement(ctx context.Context, msg *SettlementComputed) error
	Close() error
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishSettlement(context.Context, *SettlementComputed) error { return nil }

func (NopPublisher) Close() error { return nil }

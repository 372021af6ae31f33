package splitapiconnect

import "encoding/json"

// Codec encodes splitapi messages with encoding/json.
// It is registered under "json", so it serves both application/json and
// application/connect+json.
type Codec struct{}

func (Codec) Name() string {
	return "json"
}

func (Codec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (Codec) Unmarshal(data []byte, msg any) error {
	return json.Unmarshal(data, msg)
}

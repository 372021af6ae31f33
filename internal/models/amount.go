package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Amount is a money value that may be intentionally left blank while a user
// is still editing it. The zero value is Unset, which is distinct from Number(0).
type Amount struct {
	value float64
	set   bool
}

// Unset returns a blank amount.
func Unset() Amount {
	return Amount{}
}

// Number returns an amount holding n.
func Number(n float64) Amount {
	return Amount{value: n, set: true}
}

// ParseAmount converts raw user input into an Amount.
// An empty string stays Unset; anything that fails to parse becomes Number(0).
func ParseAmount(raw string) Amount {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Unset()
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Number(0)
	}
	return Number(n)
}

// IsSet reports whether the amount holds a number.
func (a Amount) IsSet() bool {
	return a.set
}

// Float returns the numeric value, treating Unset as zero.
func (a Amount) Float() float64 {
	if !a.set {
		return 0
	}
	return a.value
}

// Ptr returns nil for Unset, which is how blank amounts cross the API and the database.
func (a Amount) Ptr() *float64 {
	if !a.set {
		return nil
	}
	v := a.value
	return &v
}

// AmountFromPtr is the inverse of Ptr.
func AmountFromPtr(p *float64) Amount {
	if p == nil {
		return Unset()
	}
	return Number(*p)
}

func (a Amount) String() string {
	if !a.set {
		return ""
	}
	return strconv.FormatFloat(a.value, 'f', -1, 64)
}

// MarshalJSON encodes Unset as null.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.set {
		return []byte("null"), nil
	}
	return json.Marshal(a.value)
}

// UnmarshalJSON accepts null, a number, or a string (parsed like user input).
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = Unset()
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = ParseAmount(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = Number(n)
	return nil
}

package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

var errAmountType = errors.New("amount must be a string or a number")

// Amount accepts a JSON string ("100.50") or number (100.5) and keeps the literal
// text, so no precision is lost to float parsing before the domain validates it
type Amount string

// UnmarshalJSON implements json.Unmarshaler
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*a = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errAmountType
	}
	*a = Amount(n.String())
	return nil
}

// String returns the literal amount
func (a Amount) String() string {
	return string(a)
}

package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		input    string
		expected Amount
	}{
		{`{"amount": "100.50"}`, "100.50"},
		{`{"amount": " 7 "}`, "7"},
		{`{"amount": 100.5}`, "100.5"},
		{`{"amount": 0.1}`, "0.1"},
		{`{"amount": -5}`, "-5"},
		{`{"amount": null}`, ""},
		{`{}`, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			var req TransferRequest
			require.NoError(t, json.Unmarshal([]byte(tc.input), &req))
			assert.Equal(t, tc.expected, req.Amount)
		})
	}

	var req TransferRequest
	assert.Error(t, json.Unmarshal([]byte(`{"amount": true}`), &req))
	assert.Error(t, json.Unmarshal([]byte(`{"amount": [1]}`), &req))
}

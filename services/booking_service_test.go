package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeGuestList(t *testing.T) {
	in := []map[string]interface{}{
		{"name": "  Ann Lee ", "type": "Adult"},
		{"fullName": "Bo Chan", "guestType": "Child"},
		{"full_name": "Cy Dee"},
		{"name": "", "type": "Adult"},
		{"type": "Adult"},
	}

	out := normalizeGuestList(in)
	require.Len(t, out, 3, "nameless entries are dropped")
	assert.Equal(t, map[string]interface{}{"fullName": "Ann Lee", "type": "Adult"}, out[0])
	assert.Equal(t, map[string]interface{}{"fullName": "Bo Chan", "type": "Child"}, out[1])
	assert.Equal(t, map[string]interface{}{"fullName": "Cy Dee", "type": "Adult"}, out[2])
}

func TestNormalizeGuestListEncodesAnyInput(t *testing.T) {
	// normalization flattens arbitrary values to strings, so the stored
	// JSON column never sees an unencodable value
	in := []map[string]interface{}{
		{"name": nil, "type": "Adult"},
		{"name": "Ed Fox", "type": 2},
	}

	raw, err := json.Marshal(normalizeGuestList(in))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"fullName":"Ed Fox","type":"2"}]`, string(raw))
}

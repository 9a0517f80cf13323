package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTimeMarshal(t *testing.T) {
	d := NewDateTime(time.Date(2026, 10, 1, 10, 30, 0, 0, time.UTC))

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-10-01 10:30:00"`, string(raw))
}

func TestDateTimeUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want time.Time
	}{
		{"api layout", `"2026-10-01 10:30:00"`, time.Date(2026, 10, 1, 10, 30, 0, 0, time.UTC)},
		{"rfc3339", `"2026-10-01T10:30:00Z"`, time.Date(2026, 10, 1, 10, 30, 0, 0, time.UTC)},
		{"empty string", `""`, time.Time{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var d DateTime
			require.NoError(t, json.Unmarshal([]byte(tc.in), &d))
			assert.True(t, tc.want.Equal(d.Time()))
		})
	}

	var d DateTime
	assert.Error(t, json.Unmarshal([]byte(`"not a date"`), &d))
}

func TestIntValueCoercion(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want int
	}{
		{"number", `5`, 5},
		{"numeric string", `"7"`, 7},
		{"float", `3.9`, 3},
		{"float string", `"2.5"`, 2},
		{"non-numeric string", `"abc"`, 0},
		{"empty string", `""`, 0},
		{"null", `null`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var v IntValue
			require.NoError(t, json.Unmarshal([]byte(tc.in), &v))
			assert.Equal(t, tc.want, v.Int())
		})
	}
}

func TestIntValueInsideRequest(t *testing.T) {
	var req SignupRequest
	require.NoError(t, json.Unmarshal([]byte(`{"event_id":"2","volunteer_id":7}`), &req))
	assert.Equal(t, 2, req.EventID.Int())
	assert.Equal(t, 7, req.VolunteerID.Int())
}

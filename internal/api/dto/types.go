package dto

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// dateTimeLayout matches the timestamp format used throughout the API.
const dateTimeLayout = "2006-01-02 15:04:05"

// DateTime serializes as "YYYY-MM-DD HH:MM:SS".
type DateTime time.Time

// NewDateTime wraps a time value.
func NewDateTime(t time.Time) DateTime {
	return DateTime(t)
}

// Time returns the underlying time value.
func (d DateTime) Time() time.Time {
	return time.Time(d)
}

// MarshalJSON implements json.Marshaler.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(dateTimeLayout))
}

// UnmarshalJSON accepts the API layout and RFC 3339.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = DateTime(time.Time{})
		return nil
	}
	if t, err := time.Parse(dateTimeLayout, s); err == nil {
		*d = DateTime(t)
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	*d = DateTime(t)
	return nil
}

// IntValue decodes JSON numbers and numeric strings alike; anything
// non-numeric coerces to zero, which callers treat as "missing".
type IntValue int

// Int returns the plain value.
func (v IntValue) Int() int {
	return int(v)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *IntValue) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*v = 0
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		*v = IntValue(n)
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*v = IntValue(int(f))
		return nil
	}
	*v = 0
	return nil
}

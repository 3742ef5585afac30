package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexID is an identifier the upstream serializes inconsistently: sometimes a
// JSON number (1610612747), sometimes a quoted string ("1610612747"). It
// normalizes both to a string and marshals back as a string.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("flex id: %w", err)
		}
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flex id: %w", err)
	}
	*f = FlexID(n.String())
	return nil
}

func (f FlexID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

func (f FlexID) String() string { return string(f) }

func (f FlexID) IsZero() bool { return f == "" }

// FlexFloat is a numeric field the upstream may serialize as a number, a
// numeric string, or a clock string like "34:12" (minutes played). Clock
// strings keep the minutes component.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	if data[0] != '"' {
		var v float64
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("flex float: %w", err)
		}
		*f = FlexFloat(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("flex float: %w", err)
	}
	if s == "" {
		*f = 0
		return nil
	}
	if i := strings.IndexByte(s, ':'); i >= 0 {
		s = s[:i]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("flex float %q: %w", s, err)
	}
	*f = FlexFloat(v)
	return nil
}

func (f FlexFloat) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(f))
}

func (f FlexFloat) Value() float64 { return float64(f) }

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexFloat is a float64 that tolerates the backend's loose typing: the same
// field arrives sometimes as a JSON number, sometimes as a string, and price
// strings carry a currency prefix ("R$ 231.50"). History rows predating the
// relay even carry a unit suffix on distances ("8.15 km").
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = 0
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexFloat(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("value %s is neither number nor string", string(data))
	}

	v, err := parseLooseFloat(s)
	if err != nil {
		return err
	}
	*f = FlexFloat(v)
	return nil
}

// Float64 returns the underlying value.
func (f FlexFloat) Float64() float64 {
	return float64(f)
}

// parseLooseFloat strips currency markers, unit suffixes and grouping before
// parsing. "R$ 1.234,56" style decimal commas are normalized as well.
func parseLooseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)

	// Drop a trailing unit ("km", "mins").
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}

	// Decimal comma with dot grouping.
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q as number: %w", s, err)
	}
	return v, nil
}

// FlexString is a string that also accepts JSON numbers; the backend returns
// identifiers both ways depending on the endpoint.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("value %s is neither string nor number", string(data))
	}
	*f = FlexString(n.String())
	return nil
}

// String returns the underlying value.
func (f FlexString) String() string {
	return string(f)
}

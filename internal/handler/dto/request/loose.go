package request

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Reservation details arrive from browser forms, so scalars may come as either
// JSON strings or numbers. These types accept both and never fail on a
// well-formed JSON scalar. copier converts them to the domain's plain types.

// LooseString keeps a number in its literal form, e.g. 12345678 -> "12345678".
type LooseString string

// LooseInt reads a number or numeric string; anything else is 0.
type LooseInt int

// LooseFloat reads a number or numeric string; anything else is 0.
type LooseFloat float64

func (s *LooseString) UnmarshalJSON(b []byte) error {
	switch {
	case isNull(b):
		*s = ""
	case b[0] == '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = LooseString(v)
	default:
		*s = LooseString(bytes.TrimSpace(b))
	}
	return nil
}

func (n *LooseInt) UnmarshalJSON(b []byte) error {
	f, err := looseNumber(b)
	if err != nil {
		return err
	}
	*n = LooseInt(int(f))
	return nil
}

func (n *LooseFloat) UnmarshalJSON(b []byte) error {
	f, err := looseNumber(b)
	if err != nil {
		return err
	}
	*n = LooseFloat(f)
	return nil
}

func looseNumber(b []byte) (float64, error) {
	if isNull(b) {
		return 0, nil
	}
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return 0, err
	}
	switch v := raw.(type) {
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, nil
		}
		return f, nil
	default:
		return 0, nil
	}
}

func isNull(b []byte) bool {
	b = bytes.TrimSpace(b)
	return len(b) == 0 || string(b) == "null"
}

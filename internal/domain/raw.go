package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// RawTerm is a term label as it arrived from the API, e.g. "Fall 2024".
// The zero value is an absent term. Any JSON value other than a string
// decodes to an absent term.
type RawTerm struct {
	text  string
	valid bool
}

// Term wraps a string term label.
func Term(s string) RawTerm {
	return RawTerm{text: s, valid: true}
}

// Value returns the label and whether the term was a string at all.
func (t RawTerm) Value() (string, bool) {
	return t.text, t.valid
}

// Present reports whether the term is a non-empty string.
func (t RawTerm) Present() bool {
	return t.valid && t.text != ""
}

func (t RawTerm) MarshalJSON() ([]byte, error) {
	if !t.valid {
		return []byte("null"), nil
	}
	return json.Marshal(t.text)
}

func (t *RawTerm) UnmarshalJSON(data []byte) error {
	*t = RawTerm{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '"' {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	*t = Term(s)
	return nil
}

// RawYear is the numeric year field of a course. The backend stores it in
// the Persian calendar already (e.g. 1403). The zero value is absent.
type RawYear struct {
	n  int
	ok bool
}

// Year wraps a year value.
func Year(n int) RawYear {
	return RawYear{n: n, ok: true}
}

// Value returns the year and whether it was present.
func (y RawYear) Value() (int, bool) {
	return y.n, y.ok
}

// OrDefault returns the year, or def when absent.
func (y RawYear) OrDefault(def int) int {
	if !y.ok {
		return def
	}
	return y.n
}

func (y RawYear) MarshalJSON() ([]byte, error) {
	if !y.ok {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(y.n)), nil
}

// UnmarshalJSON accepts integral numbers and numeric strings. Anything
// else decodes to an absent year instead of failing the whole record.
func (y *RawYear) UnmarshalJSON(data []byte) error {
	*y = RawYear{}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}

	switch x := v.(type) {
	case float64:
		if x == math.Trunc(x) && math.Abs(x) < math.MaxInt32 {
			*y = Year(int(x))
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(x)); err == nil {
			*y = Year(n)
		}
	}
	return nil
}

package domain

import (
	"strconv"
	"strings"
)

// ValueKind identifies which variant a Value holds.
type ValueKind string

const (
	KindNumeric ValueKind = "numeric"
	KindText    ValueKind = "text"
	KindUnknown ValueKind = "unknown"
)

// Value is a single table cell: a number, free text, or the unknown marker.
// Unknown denotes "not resolved" and is distinct from a legitimate zero;
// it renders as an empty CSV field.
type Value struct {
	Kind ValueKind `json:"kind"`
	Num  float64   `json:"num,omitempty"`
	Str  string    `json:"str,omitempty"`
}

// Number returns a numeric Value.
func Number(f float64) Value {
	return Value{Kind: KindNumeric, Num: f}
}

// Text returns a text Value.
func Text(s string) Value {
	return Value{Kind: KindText, Str: s}
}

// Unknown returns the unknown marker.
func Unknown() Value {
	return Value{Kind: KindUnknown}
}

// IsUnknown reports whether the value is the unknown marker.
func (v Value) IsUnknown() bool {
	return v.Kind == KindUnknown
}

// Float64 returns the numeric payload. ok is false for text and unknown
// values.
func (v Value) Float64() (float64, bool) {
	if v.Kind != KindNumeric {
		return 0, false
	}
	return v.Num, true
}

// Coerce attempts a best-effort numeric parse. Numeric and unknown values
// pass through unchanged, so coercion is idempotent. Text that does not
// parse as a number stays text; empty text becomes unknown.
func (v Value) Coerce() Value {
	if v.Kind != KindText {
		return v
	}
	s := strings.TrimSpace(v.Str)
	if s == "" {
		return Unknown()
	}
	if f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64); err == nil {
		return Number(f)
	}
	return v
}

// String renders the value for output: plain decimal for numbers, the raw
// text for text values, and the empty string for unknown.
func (v Value) String() string {
	switch v.Kind {
	case KindNumeric:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindText:
		return v.Str
	default:
		return ""
	}
}

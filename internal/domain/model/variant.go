package model

import (
	"fmt"
	"strings"
)

// Variant selects one of the preset computer configurations.
type Variant int

const (
	// Gaming is the high-end preset.
	Gaming Variant = iota + 1
	// Office is the entry-level preset.
	Office
)

// Variants lists every known variant in display order.
var Variants = []Variant{Gaming, Office}

func (v Variant) String() string {
	switch v {
	case Gaming:
		return "gaming"
	case Office:
		return "office"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// Valid reports whether v is a known variant.
func (v Variant) Valid() bool {
	return v == Gaming || v == Office
}

// ParseVariant converts a case-insensitive name into a Variant.
func ParseVariant(s string) (Variant, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gaming":
		return Gaming, true
	case "office":
		return Office, true
	}
	return 0, false
}

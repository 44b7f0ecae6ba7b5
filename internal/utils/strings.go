package utils

import (
	"strings"
	"time"
)

// DigitsOnly strips everything but digits. WhatsApp numbers are stored
// verbatim and normalized only when building wa.me links.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func StringPtr(s string) *string {
	return &s
}

func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func TimePtr(t time.Time) *time.Time {
	return &t
}

// PrefixSliceOfStrings qualifies column names with a table alias for
// join queries, skipping any ignored columns.
func PrefixSliceOfStrings(prefix string, input []string, ignore ...string) []string {
	out := make([]string, 0, len(input))

inputloop:
	for _, v := range input {
		for _, ignored := range ignore {
			if v == ignored {
				continue inputloop
			}
		}

		out = append(out, prefix+"."+v)
	}
	return out
}

package services

import (
	"strings"
	"time"
)

// isoLayout matches the original contract: ISO-8601 without a zone suffix.
const isoLayout = "2006-01-02T15:04:05"

// isoTime renders a nullable timestamp as an ISO-8601 string, or nil.
func isoTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(isoLayout)
	return &s
}

// fullName space-joins the present name parts. When both parts are missing
// the result is nil rather than a whitespace string.
func fullName(first, last *string) *string {
	parts := make([]string, 0, 2)
	if first != nil {
		parts = append(parts, *first)
	}
	if last != nil {
		parts = append(parts, *last)
	}
	if len(parts) == 0 {
		return nil
	}
	s := strings.Join(parts, " ")
	return &s
}

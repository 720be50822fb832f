// Package schedule contains the pure scheduling core: clock-time
// normalization, query-window resolution and recurrence expansion.
// Nothing in this package touches persistence; idempotence of
// materialization is the repository layer's concern.
package schedule

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NormalizeClock canonicalizes a flexible time-of-day string into 24-hour
// "HH:MM" form. Accepted shapes: "H:MM", "HH:MM", "Ham"/"Hpm" and
// "H:MM am/pm", case-insensitive, with dots around the meridiem marker
// ignored ("8 p.m." works).
//
// The function never fails: digits are extracted positionally, a missing
// minute defaults to "00", and the hour/minute are clamped to [0,23] and
// [0,59] after 12-hour conversion. Malformed input degrades to a
// best-effort canonical value instead of an error; "25:99" becomes
// "23:59". Callers that need stricter validation must do it upstream.
func NormalizeClock(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, ".", "")

	var meridiem string
	if strings.HasSuffix(s, "am") || strings.HasSuffix(s, "pm") {
		meridiem = s[len(s)-2:]
		s = strings.TrimSpace(s[:len(s)-2])
	}

	hourPart, minutePart := s, ""
	if idx := strings.Index(s, ":"); idx >= 0 {
		hourPart, minutePart = s[:idx], s[idx+1:]
	}

	hour := extractDigits(hourPart)
	minute := extractDigits(minutePart)

	switch meridiem {
	case "am":
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour != 12 {
			hour += 12
		}
	}

	hour = clamp(hour, 0, 23)
	minute = clamp(minute, 0, 59)

	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// CoerceTimes turns any of the three accepted recurrence-time input shapes
// into the canonical ordered sequence: a slice of strings, a JSON-encoded
// array of strings, or a comma-separated string all yield the same result.
// Each entry is normalized via NormalizeClock, duplicates are removed and
// the sequence is sorted ascending. This is the single ingestion-boundary
// coercion; entities only ever carry the canonical form.
func CoerceTimes(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case []string:
		return canonicalize(v)
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		return canonicalize(parts)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		var parsed []any
		if err := json.Unmarshal([]byte(s), &parsed); err == nil {
			return CoerceTimes(parsed)
		}
		return canonicalize(strings.Split(s, ","))
	default:
		return canonicalize([]string{fmt.Sprint(v)})
	}
}

func canonicalize(parts []string) []string {
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		normalized := NormalizeClock(part)
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	// Canonical "HH:MM" sorts correctly as plain strings.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	if len(out) == 0 {
		return nil
	}

	return out
}

func extractDigits(s string) int {
	value, found := 0, false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			found = true
			if value < 1000 {
				value = value*10 + int(r-'0')
			}
		}
	}
	if !found {
		return 0
	}

	return value
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

package schedule

import (
	"reflect"
	"testing"
)

func TestNormalizeClock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "already canonical", input: "08:00", expected: "08:00"},
		{name: "single digit hour", input: "8:00", expected: "08:00"},
		{name: "morning meridiem", input: "8am", expected: "08:00"},
		{name: "evening meridiem with minutes", input: "8:00 PM", expected: "20:00"},
		{name: "dotted meridiem", input: "9 p.m.", expected: "21:00"},
		{name: "noon stays twelve", input: "12pm", expected: "12:00"},
		{name: "midnight wraps to zero", input: "12am", expected: "00:00"},
		{name: "missing minutes default", input: "7", expected: "07:00"},
		{name: "surrounding whitespace", input: "  6:30  ", expected: "06:30"},
		{name: "out of range clamps", input: "25:99", expected: "23:59"},
		{name: "pm past noon clamps", input: "13:00 pm", expected: "23:00"},
		{name: "no digits degrades to midnight", input: "whenever", expected: "00:00"},
		{name: "empty string degrades to midnight", input: "", expected: "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NormalizeClock(tt.input); got != tt.expected {
				t.Fatalf("NormalizeClock(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCoerceTimes_AllInputShapesAgree(t *testing.T) {
	t.Parallel()

	expected := []string{"08:00", "20:00"}

	shapes := []struct {
		name  string
		input any
	}{
		{name: "string slice", input: []string{"8:00", "8pm"}},
		{name: "json array string", input: `["8:00","8pm"]`},
		{name: "comma separated string", input: "8:00, 8pm"},
		{name: "any slice", input: []any{"8:00", "8pm"}},
	}

	for _, tt := range shapes {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := CoerceTimes(tt.input); !reflect.DeepEqual(got, expected) {
				t.Fatalf("CoerceTimes(%v) = %v, want %v", tt.input, got, expected)
			}
		})
	}
}

func TestCoerceTimes_Canonicalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    any
		expected []string
	}{
		{name: "nil input", input: nil, expected: nil},
		{name: "empty string", input: "   ", expected: nil},
		{name: "blank entries dropped", input: "8:00,, ,20:00", expected: []string{"08:00", "20:00"}},
		{name: "duplicates removed after normalization", input: []string{"8am", "08:00", "8:00"}, expected: []string{"08:00"}},
		{name: "sorted ascending", input: []string{"9pm", "7:30", "noon-ish 12pm"}, expected: []string{"07:30", "12:00", "21:00"}},
		{name: "malformed json falls back to csv", input: `["8:00",`, expected: []string{"08:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := CoerceTimes(tt.input); !reflect.DeepEqual(got, tt.expected) {
				t.Fatalf("CoerceTimes(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		ok       bool
	}{
		{name: "plain morning time", input: "08:00", expected: 8 * time.Hour, ok: true},
		{name: "single digit hour", input: "8:30", expected: 8*time.Hour + 30*time.Minute, ok: true},
		{name: "midnight", input: "00:00", expected: 0, ok: true},
		{name: "last minute of day", input: "23:59", expected: 23*time.Hour + 59*time.Minute, ok: true},
		{name: "surrounding whitespace", input: " 17:30 ", expected: 17*time.Hour + 30*time.Minute, ok: true},
		{name: "hour out of range", input: "24:00", ok: false},
		{name: "minute out of range", input: "10:60", ok: false},
		{name: "missing minutes", input: "10", ok: false},
		{name: "not a time", input: "abc", ok: false},
		{name: "empty string", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := ParseClock(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, d)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Duration
		expected string
	}{
		{name: "morning", input: 8 * time.Hour, expected: "08:00"},
		{name: "with minutes", input: 17*time.Hour + 30*time.Minute, expected: "17:30"},
		{name: "midnight", input: 0, expected: "00:00"},
		{name: "single digit minute", input: 9*time.Hour + 5*time.Minute, expected: "09:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatClock(tt.input))
		})
	}
}

func TestParseClockRoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "06:15", "12:00", "23:59"} {
		d, ok := ParseClock(s)
		assert.True(t, ok)
		assert.Equal(t, s, FormatClock(d))
	}
}

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{name: "valid date", input: "2024-03-05", ok: true},
		{name: "leap day", input: "2024-02-29", ok: true},
		{name: "invalid day", input: "2023-02-29", ok: false},
		{name: "wrong format", input: "05/03/2024", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := IsValidDate(tt.input)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestIsValidDateTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{name: "UTC timestamp", input: "2024-01-15T10:30:00Z", ok: true},
		{name: "timestamp with offset", input: "2024-01-15T10:30:00-03:00", ok: true},
		{name: "timestamp with nanos", input: "2024-01-15T10:30:00.123456789Z", ok: true},
		{name: "date only", input: "2024-01-15", ok: false},
		{name: "garbage", input: "not-a-timestamp", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := IsValidDateTime(tt.input)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

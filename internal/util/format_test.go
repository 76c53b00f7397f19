package util

import (
	"math"
	"testing"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes uint64
		want  string
	}{
		{512, "512 B"},
		{1024, "1.00 KiB"},
		{1536, "1.50 KiB"},
		{5 * MiB, "5.00 MiB"},
		{2 * GiB, "2.00 GiB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.bytes); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00"},
		{61.9, "00:01:01"},
		{3661, "01:01:01"},
		{-5, "??:??:??"},
		{math.NaN(), "??:??:??"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.seconds); got != tt.want {
			t.Errorf("FormatDuration(%g) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatTimeRange(t *testing.T) {
	if got := FormatTimeRange(12.5, 18.25); got != "12.50s - 18.25s (5.75s)" {
		t.Errorf("FormatTimeRange() = %q", got)
	}
}

func TestParseFFmpegTime(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"00:01:30.50", 90.5, true},
		{"01:00:00", 3600, true},
		{"90", 0, false},
		{"aa:bb:cc", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseFFmpegTime(tt.input)
		if ok != tt.ok || (ok && math.Abs(got-tt.want) > 1e-9) {
			t.Errorf("ParseFFmpegTime(%q) = (%g, %v), want (%g, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseRational(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"30000/1001", 29.97002997002997, true},
		{"25/1", 25, true},
		{"24", 24, true},
		{"0/0", 0, false},
		{"", 0, false},
		{"x/1", 0, false},
		{"1/0", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseRational(tt.input)
		if ok != tt.ok || (ok && math.Abs(got-tt.want) > 1e-9) {
			t.Errorf("ParseRational(%q) = (%g, %v), want (%g, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRound3(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{1.23456, 1.235},
		{1.2344, 1.234},
		{0, 0},
		{-2.0004, -2},
	}
	for _, tt := range tests {
		if got := Round3(tt.input); got != tt.want {
			t.Errorf("Round3(%g) = %g, want %g", tt.input, got, tt.want)
		}
	}
}

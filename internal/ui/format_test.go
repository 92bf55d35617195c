package ui

import "testing"

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0B"},
		{512, "512B"},
		{1024, "1.0KB"},
		{1536, "1.5KB"},
		{1048576, "1.0MB"},
		{5 * 1024 * 1024 * 1024, "5.0GB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.n); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatMB(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0.00 MB"},
		{1048576, "1.00 MB"},
		{1572864, "1.50 MB"},
		{123456789, "117.74 MB"},
	}
	for _, tt := range tests {
		if got := FormatMB(tt.n); got != tt.want {
			t.Errorf("FormatMB(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatSpeed(t *testing.T) {
	if got := FormatSpeed(2048); got != "2.0KB/s" {
		t.Errorf("FormatSpeed(2048) = %q, want 2.0KB/s", got)
	}
}

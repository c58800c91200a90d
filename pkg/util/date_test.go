package util

import (
	"testing"
	"time"
)

func TestDateRange(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)
	from, to := DateRange(now, 7)
	if from != "2025-06-03" {
		t.Fatalf("unexpected from %s", from)
	}
	if to != "2025-06-10" {
		t.Fatalf("unexpected to %s", to)
	}
}

func TestUnixRange(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)
	from, to := UnixRange(now, 400)
	if to != now.Unix() {
		t.Fatalf("unexpected to %d", to)
	}
	if to-from != 400*24*3600 {
		t.Fatalf("unexpected window %d", to-from)
	}
}

func TestNormalizeSymbol(t *testing.T) {
	if got := NormalizeSymbol("  aapl "); got != "AAPL" {
		t.Fatalf("expected AAPL, got %q", got)
	}
	if got := NormalizeSymbol(" \t "); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestParseIntDefault(t *testing.T) {
	if got := ParseIntDefault("", 8080); got != 8080 {
		t.Fatalf("expected default, got %d", got)
	}
	if got := ParseIntDefault("9000", 8080); got != 9000 {
		t.Fatalf("expected 9000, got %d", got)
	}
	if got := ParseIntDefault("x", 8080); got != 8080 {
		t.Fatalf("expected default on invalid, got %d", got)
	}
}

package utils

import (
	"testing"
	"time"
)

func mustET(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", value, ET)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return ts
}

func TestIsMarketOpenAt(t *testing.T) {
	tests := []struct {
		name string
		at   string
		want bool
	}{
		{"weekday mid-session", "2026-01-06 12:00", true},
		{"weekday at open", "2026-01-06 09:30", true},
		{"weekday before open", "2026-01-06 09:29", false},
		{"weekday at close", "2026-01-06 16:00", false},
		{"saturday", "2026-01-03 12:00", false},
		{"sunday", "2026-01-04 12:00", false},
		{"new year's day", "2026-01-01 12:00", false},
		{"thanksgiving 2025", "2025-11-27 12:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMarketOpenAt(mustET(t, tt.at)); got != tt.want {
				t.Errorf("IsMarketOpenAt(%s): got %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestMarketStatusAt(t *testing.T) {
	tests := []struct {
		name string
		at   string
		want string
	}{
		{"open", "2026-01-06 10:00", "open"},
		{"pre-market", "2026-01-06 05:00", "pre-market"},
		{"after-hours", "2026-01-06 17:30", "after-hours"},
		{"overnight", "2026-01-06 02:00", "closed"},
		{"late night", "2026-01-06 21:00", "closed"},
		{"weekend", "2026-01-04 10:00", "closed"},
		{"holiday", "2026-12-25 10:00", "closed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MarketStatusAt(mustET(t, tt.at)); got != tt.want {
				t.Errorf("MarketStatusAt(%s): got %q, want %q", tt.at, got, tt.want)
			}
		})
	}
}

func TestIsTradingDay(t *testing.T) {
	if IsTradingDay(mustET(t, "2026-01-03 12:00")) {
		t.Error("saturday should not be a trading day")
	}
	if !IsTradingDay(mustET(t, "2026-01-06 12:00")) {
		t.Error("regular tuesday should be a trading day")
	}
	if IsTradingDay(mustET(t, "2025-07-04 12:00")) {
		t.Error("july 4th 2025 should be a holiday")
	}
}

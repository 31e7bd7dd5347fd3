package timeutil

import (
	"testing"
	"time"
)

func TestResolveRunDateKeepsValidArgument(t *testing.T) {
	now := time.Date(2025, 11, 20, 8, 0, 0, 0, time.UTC)
	date, err := ResolveRunDate("20251115", now)
	if err != nil {
		t.Fatalf("expected valid date to resolve, got %v", err)
	}
	if date != "20251115" {
		t.Fatalf("expected 20251115, got %s", date)
	}
}

func TestResolveRunDateDefaultsToToday(t *testing.T) {
	now := time.Date(2025, 11, 20, 8, 0, 0, 0, time.UTC)
	date, err := ResolveRunDate("", now)
	if err != nil {
		t.Fatalf("expected empty argument to resolve, got %v", err)
	}
	if date != "20251120" {
		t.Fatalf("expected today 20251120, got %s", date)
	}
}

func TestResolveRunDateFallsBackOnMalformedArgument(t *testing.T) {
	now := time.Date(2025, 11, 20, 8, 0, 0, 0, time.UTC)
	date, err := ResolveRunDate("2025-11-15", now)
	if err == nil {
		t.Fatalf("expected malformed date to report an error")
	}
	if date != "20251120" {
		t.Fatalf("expected fallback to today 20251120, got %s", date)
	}
}

func TestFormatKickoff(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "evening game", raw: "2025-11-15T19:30Z", want: "1:30 PM CT"},
		{name: "no leading zero", raw: "2025-11-15T15:05Z", want: "9:05 AM CT"},
		{name: "noon central", raw: "2025-11-15T18:00Z", want: "12:00 PM CT"},
		{name: "wraps past midnight", raw: "2025-11-15T03:00Z", want: "9:00 PM CT"},
		{name: "empty", raw: "", want: KickoffTBD},
		{name: "with seconds", raw: "2025-11-15T19:30:00Z", want: KickoffTBD},
		{name: "garbage", raw: "tonight", want: KickoffTBD},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatKickoff(tc.raw); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

package helpers

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	if d := ParseDuration("15m", time.Hour); d != 15*time.Minute {
		t.Errorf("expected 15m, got %v", d)
	}
	if d := ParseDuration("not-a-duration", time.Hour); d != time.Hour {
		t.Errorf("expected fallback to 1h, got %v", d)
	}
	if d := ParseDuration("", 30*time.Second); d != 30*time.Second {
		t.Errorf("expected fallback to 30s, got %v", d)
	}
}

func TestParseTurkishDate(t *testing.T) {
	parsed, err := ParseTurkishDate("15.07.2025")
	if err != nil {
		t.Fatalf("ParseTurkishDate failed: %v", err)
	}
	if parsed.Day() != 15 || parsed.Month() != time.July || parsed.Year() != 2025 {
		t.Errorf("unexpected date: %v", parsed)
	}

	for _, bad := range []string{"2025-07-15", "15/07/2025", "31.02.2025", ""} {
		if _, err := ParseTurkishDate(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestNormalizeTurkishDate(t *testing.T) {
	iso, err := NormalizeTurkishDate("01.09.2025")
	if err != nil {
		t.Fatalf("NormalizeTurkishDate failed: %v", err)
	}
	if iso != "2025-09-01" {
		t.Errorf("expected 2025-09-01, got %s", iso)
	}

	if _, err := NormalizeTurkishDate("1.9.25"); err == nil {
		t.Error("expected error for short form date")
	}
}

func TestToISODate(t *testing.T) {
	d := time.Date(2025, time.June, 1, 13, 45, 0, 0, time.UTC)
	if got := ToISODate(d); got != "2025-06-01" {
		t.Errorf("expected 2025-06-01, got %s", got)
	}
}

package timezone

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-06-02")
	if err != nil {
		t.Fatal(err)
	}

	if got.Hour() != 0 || got.Minute() != 0 {
		t.Fatalf("expected midnight, got %s", got)
	}
	if got.Location().String() != DefaultTimezone {
		t.Fatalf("location = %s, want %s", got.Location(), DefaultTimezone)
	}

	if _, err := ParseDate("02.06.2025"); err == nil {
		t.Fatal("expected error for non-ISO date")
	}
}

func TestFormatDate(t *testing.T) {
	// İstanbul UTC+3: 21:30 UTC ertesi güne düşer
	utc := time.Date(2025, 6, 1, 21, 30, 0, 0, time.UTC)
	if got := FormatDate(utc); got != "02.06.2025" {
		t.Fatalf("FormatDate = %q, want 02.06.2025", got)
	}
}

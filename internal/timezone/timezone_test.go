package timezone

import (
	"testing"
	"time"
)

func TestLocationFallsBackToUTC(t *testing.T) {
	if Location("Not/AZone") != time.UTC {
		t.Fatal("unknown zone should fall back to UTC")
	}
	if Location("") != time.UTC {
		t.Fatal("empty zone should fall back to UTC")
	}
}

func TestDayBoundsUTC(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)
	start, end := DayBounds(now, "UTC")

	if !start.Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("start = %v", start)
	}
	if !end.Equal(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("end = %v", end)
	}
}

func TestDayBoundsFollowsZone(t *testing.T) {
	if !IsValid("America/Sao_Paulo") {
		t.Skip("tzdata not available")
	}

	// 01:00 UTC on the 11th is still the 10th in Sao Paulo (UTC-3).
	now := time.Date(2024, 3, 11, 1, 0, 0, 0, time.UTC)
	start, end := DayBounds(now, "America/Sao_Paulo")

	if !start.Equal(time.Date(2024, 3, 10, 3, 0, 0, 0, time.UTC)) {
		t.Fatalf("start = %v", start)
	}
	if !end.Equal(time.Date(2024, 3, 11, 3, 0, 0, 0, time.UTC)) {
		t.Fatalf("end = %v", end)
	}
}

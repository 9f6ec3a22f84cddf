package table

import (
	"regexp"
	"testing"
)

func TestNewCodeShape(t *testing.T) {
	re := regexp.MustCompile(`^[A-Z0-9]{8}$`)
	seen := map[string]bool{}

	for i := 0; i < 50; i++ {
		code, err := NewCode()
		if err != nil {
			t.Fatalf("new code: %v", err)
		}
		if !re.MatchString(code) {
			t.Fatalf("bad code %q", code)
		}
		seen[code] = true
	}
	if len(seen) < 45 {
		t.Fatalf("codes repeat too often: %d distinct of 50", len(seen))
	}
}

func TestQRURL(t *testing.T) {
	got := QRURL("https://example.com/", "r-1", "ABCD1234")
	if got != "https://example.com/m/r-1/ABCD1234" {
		t.Fatalf("got %s", got)
	}
}

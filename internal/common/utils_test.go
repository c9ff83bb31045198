package common

import "testing"

func TestFirstNonEmpty(t *testing.T) {
	if got := FirstNonEmpty("", "  ", "city not found", "fallback"); got != "city not found" {
		t.Errorf("got %q", got)
	}
	if got := FirstNonEmpty("", " "); got != "" {
		t.Errorf("expected empty result, got %q", got)
	}
}

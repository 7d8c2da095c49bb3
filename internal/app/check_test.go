package app

import "testing"

func TestSanitizeInline(t *testing.T) {
	if got := sanitizeInline("multi\nline\rvalue"); got != "multi line value" {
		t.Fatalf("line breaks should flatten to spaces, got %q", got)
	}
	if got := sanitizeInline("plain"); got != "plain" {
		t.Fatalf("plain values should pass through, got %q", got)
	}
}

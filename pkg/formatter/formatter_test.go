package formatter

import "testing"

func TestDateLabel(t *testing.T) {
	if got := DateLabel("2024-01-01"); got != "Date: 2024-01-01" {
		t.Fatalf("unexpected label: got %q", got)
	}
	if got := DateLabel(" 2024-01-02\n"); got != "Date: 2024-01-02" {
		t.Fatalf("label not trimmed: got %q", got)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := FirstNonEmpty("", "  ", "b", "c"); got != "b" {
		t.Fatalf("unexpected value: got %q want %q", got, "b")
	}
	if got := FirstNonEmpty(); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

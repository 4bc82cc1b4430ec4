package id

import (
	"strings"
	"testing"
)

func TestNewIDShape(t *testing.T) {
	generated, err := NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	if len(generated) != 26 {
		t.Fatalf("expected 26 characters, got %d (%q)", len(generated), generated)
	}
	if generated != strings.ToLower(generated) {
		t.Fatalf("expected lowercase id, got %q", generated)
	}
	if strings.Contains(generated, "=") {
		t.Fatalf("expected no padding, got %q", generated)
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		generated, err := NewID()
		if err != nil {
			t.Fatalf("new id: %v", err)
		}
		if seen[generated] {
			t.Fatalf("duplicate id generated: %q", generated)
		}
		seen[generated] = true
	}
}

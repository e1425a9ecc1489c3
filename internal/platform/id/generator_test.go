package id

import (
	"strings"
	"testing"
)

func TestRandomGenerator_NewID(t *testing.T) {
	t.Parallel()

	gen := NewRandomGenerator("bf")
	first, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	second, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}

	if !strings.HasPrefix(first, "bf_") || len(first) != len("bf_")+16 {
		t.Fatalf("unexpected id format: %q", first)
	}
	if first == second {
		t.Fatalf("expected distinct ids, got %q twice", first)
	}

	bare, err := NewRandomGenerator("").NewID()
	if err != nil || len(bare) != 16 {
		t.Fatalf("unexpected bare id: %q err=%v", bare, err)
	}
}

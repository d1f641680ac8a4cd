package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator(t *testing.T) {
	g := NewUUIDGenerator()

	v7, err := uuid.Parse(g.Generate())
	if err != nil {
		t.Fatalf("Generate returned an invalid uuid: %v", err)
	}
	if v7.Version() != 7 {
		t.Errorf("expected version 7, got %d", v7.Version())
	}

	a, b := g.Random(), g.Random()
	if a == b {
		t.Fatal("expected distinct random values")
	}
	v4, err := uuid.Parse(a)
	if err != nil {
		t.Fatalf("Random returned an invalid uuid: %v", err)
	}
	if v4.Version() != 4 {
		t.Errorf("expected version 4, got %d", v4.Version())
	}
}

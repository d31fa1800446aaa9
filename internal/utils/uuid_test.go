package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_Generate_Parseable(t *testing.T) {
	g := NewUUIDGenerator()

	id := g.Generate()
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("Generate returned unparseable UUID %q: %v", id, err)
	}
}

func TestUUIDGenerator_Generate_Unique(t *testing.T) {
	g := NewUUIDGenerator()

	if g.Generate() == g.Generate() {
		t.Fatal("expected consecutive UUIDs to differ")
	}
}

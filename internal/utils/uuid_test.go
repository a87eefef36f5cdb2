package utils

import (
	"sort"
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_Version7(t *testing.T) {
	id := NewUUIDGenerator().Generate()

	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("generated id is not a uuid: %v", err)
	}
	if parsed.Version() != 7 {
		t.Fatalf("expected version 7, got %d", parsed.Version())
	}
}

func TestUUIDGenerator_Ordered(t *testing.T) {
	g := NewUUIDGenerator()

	ids := make([]string, 100)
	for i := range ids {
		ids[i] = g.Generate()
	}

	if !sort.StringsAreSorted(ids) {
		t.Fatal("expected ids to sort in creation order")
	}
}

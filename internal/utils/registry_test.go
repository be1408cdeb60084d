package utils

import (
	"fmt"
	"testing"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := NewRegistry[string, int]("test", "entry name")

	if err := registry.Register("one", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	value, exists := registry.Get("one")
	if !exists || value != 1 {
		t.Errorf("expected (1, true), got (%d, %v)", value, exists)
	}

	if _, exists := registry.Get("missing"); exists {
		t.Error("expected missing key to report false")
	}
}

func TestRegistry_GetOrError(t *testing.T) {
	registry := NewRegistry[string, int]("test", "entry name")

	_, err := registry.GetOrError("missing")
	if err == nil {
		t.Fatal("expected error for missing key")
	}
}

func TestRegistry_ListPreservesRegistrationOrder(t *testing.T) {
	registry := NewRegistry[string, int]("test", "entry name")

	keys := []string{"charlie", "alpha", "bravo"}
	for i, key := range keys {
		if err := registry.Register(key, i); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	// Re-registering must not duplicate the key in the order
	if err := registry.Register("alpha", 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	listed := registry.List()
	if len(listed) != 3 {
		t.Fatalf("expected 3 keys, got %d", len(listed))
	}
	for i, key := range keys {
		if listed[i] != key {
			t.Errorf("position %d: expected %q, got %q", i, key, listed[i])
		}
	}
}

func TestRegistry_Validator(t *testing.T) {
	registry := NewRegistry[string, int]("test", "entry name")
	registry.SetValidator(func(key string, value int, existing map[string]int) error {
		if _, exists := existing[key]; exists {
			return fmt.Errorf("'%s' is already registered", key)
		}
		return nil
	})

	if err := registry.Register("one", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := registry.Register("one", 2); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
}

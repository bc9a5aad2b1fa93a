package id

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestGenerate(t *testing.T) {
	gen := NewGenerator()

	id1 := gen.Generate()
	id2 := gen.Generate()

	if id1.String() == id2.String() {
		t.Error("Generated IDs should be unique")
	}
	if id2.Compare(id1) <= 0 {
		t.Error("IDs from one generator should increase")
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	gen := NewGenerator()

	for _, prefix := range []string{"req", "conn"} {
		id := gen.GenerateWithPrefix(prefix)

		if !strings.HasPrefix(id, prefix+"_") {
			t.Errorf("ID should start with '%s_', got: %s", prefix, id)
		}

		parts := strings.Split(id, "_")
		if len(parts) != 2 {
			t.Fatalf("Prefixed ID should have format 'prefix_ulid', got: %s", id)
		}
		if !IsValid(parts[1]) {
			t.Errorf("ULID part should be valid: %s", parts[1])
		}
	}
}

func TestInstanceID(t *testing.T) {
	tests := []string{"terminal", "image_viewer", "game_2048"}

	for _, app := range tests {
		key := NewInstanceID(app)
		if !strings.HasPrefix(key, app+"-") {
			t.Errorf("instance id should start with %q, got %s", app+"-", key)
		}

		gotApp, suffix, ok := SplitInstanceID(key)
		if !ok {
			t.Fatalf("instance id should split: %s", key)
		}
		if gotApp != app {
			t.Errorf("expected app %s, got %s", app, gotApp)
		}
		if len(suffix) != 26 {
			t.Errorf("ULID suffix should be 26 characters, got %d", len(suffix))
		}
	}
}

func TestSplitInstanceIDRejectsMalformed(t *testing.T) {
	for _, key := range []string{"", "terminal", "terminal-", "-01ARZ3NDEKTSV4RRFFQ69G5FAV", "terminal-notaulid"} {
		if _, _, ok := SplitInstanceID(key); ok {
			t.Errorf("expected %q to be rejected", key)
		}
	}
}

func TestTypedIDGeneration(t *testing.T) {
	if connID := NewConnectionID(); !strings.HasPrefix(connID.String(), "conn_") {
		t.Errorf("ConnectionID should start with 'conn_', got: %s", connID)
	}
}

func TestIsValid(t *testing.T) {
	gen := NewGenerator()

	if !IsValid(gen.GenerateString()) {
		t.Error("Generated ULID should be valid")
	}

	for _, id := range []string{"", "invalid", "1234567890", "zzzzzzzzzzzzzzzzzzzzzzzzzzz"} {
		if IsValid(id) {
			t.Errorf("ID should be invalid: %s", id)
		}
	}
}

func TestTimestamp(t *testing.T) {
	gen := NewGenerator()

	before := time.Now()
	id := gen.GenerateString()
	after := time.Now()

	ts, err := Timestamp(id)
	if err != nil {
		t.Fatalf("Failed to extract timestamp: %v", err)
	}

	// millisecond precision
	if ts.UnixMilli() < before.UnixMilli() || ts.UnixMilli() > after.UnixMilli() {
		t.Errorf("Timestamp should be between %d and %d ms, got %d ms", before.UnixMilli(), after.UnixMilli(), ts.UnixMilli())
	}
}

func TestConcurrentGeneration(t *testing.T) {
	gen := NewGenerator()

	const goroutines = 50
	const idsPerGoroutine = 100

	var wg sync.WaitGroup
	idChan := make(chan string, goroutines*idsPerGoroutine)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < idsPerGoroutine; j++ {
				idChan <- gen.InstanceID("terminal")
			}
		}()
	}

	wg.Wait()
	close(idChan)

	seen := make(map[string]bool)
	for id := range idChan {
		if seen[id] {
			t.Errorf("Duplicate ID found in concurrent generation: %s", id)
		}
		seen[id] = true
	}

	if len(seen) != goroutines*idsPerGoroutine {
		t.Errorf("Expected %d unique IDs, got %d", goroutines*idsPerGoroutine, len(seen))
	}
}

func TestDefaultGenerator(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() should return the same instance")
	}
}

func BenchmarkInstanceID(b *testing.B) {
	gen := NewGenerator()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gen.InstanceID("terminal")
	}
}

package arena

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestGlobPoolCheckpointRelease(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.c", "b.c"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("seeding fixture: %v", err)
		}
	}

	pool := NewGlobPool(4)
	checkpoint := pool.Checkpoint()

	matches, err := pool.Glob(filepath.Join(dir, "*.c"))
	if err != nil {
		t.Fatalf("Glob: %v", err)
	}
	sort.Strings(matches)
	if len(matches) != 2 {
		t.Fatalf("Glob matched %v, want 2 entries", matches)
	}
	if pool.Len() != checkpoint+1 {
		t.Fatalf("pool.Len() = %d, want %d", pool.Len(), checkpoint+1)
	}

	pool.ReleaseTo(checkpoint)
	if pool.Len() != checkpoint {
		t.Errorf("after ReleaseTo, pool.Len() = %d, want %d", pool.Len(), checkpoint)
	}
}

func TestGlobPoolCapacity(t *testing.T) {
	pool := NewGlobPool(1)
	if _, err := pool.Glob("*"); err != nil {
		t.Fatalf("first Glob: %v", err)
	}
	if _, err := pool.Glob("*"); err == nil {
		t.Fatal("expected capacity error on second Glob, got nil")
	}
}

func TestGlobPoolNoMatchIsNotError(t *testing.T) {
	pool := NewGlobPool(1)
	matches, err := pool.Glob(filepath.Join(t.TempDir(), "*.nonexistent"))
	if err != nil {
		t.Fatalf("Glob with no matches returned error: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("expected zero matches, got %v", matches)
	}
}

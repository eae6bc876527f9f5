package session

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	pkgerrors "github.com/1Percent-hub/ScholarHub/pkg/errors"
)

// storeUnderTest builds each backend that tests can run without external
// services.
func storesUnderTest(t *testing.T) map[string]Store {
	t.Helper()
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "sessions.json"))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   fs,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			s := NewSession()
			s.SetFact("name", "alex")
			s.AddExchange("hi", "hello", "greeting")
			if err := store.Put(ctx, "s1", s); err != nil {
				t.Fatalf("Put: %v", err)
			}
			got, err := store.Get(ctx, "s1")
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if got.Fact("name") != "alex" {
				t.Errorf("Fact(name) = %q, want alex", got.Fact("name"))
			}
			if len(got.Recent) != 1 || got.Recent[0].User != "hi" {
				t.Errorf("Recent = %+v", got.Recent)
			}
			if got.LastTopic() != "greeting" {
				t.Errorf("LastTopic = %q", got.LastTopic())
			}
		})
	}
}

func TestStoreIsolation(t *testing.T) {
	ctx := context.Background()
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			s := NewSession()
			s.SetFact("name", "alex")
			if err := store.Put(ctx, "s1", s); err != nil {
				t.Fatalf("Put: %v", err)
			}
			s.SetFact("name", "mutated-after-put")
			got, _ := store.Get(ctx, "s1")
			if got.Fact("name") != "alex" {
				t.Errorf("Put aliased caller's session")
			}
			got.SetFact("name", "mutated-after-get")
			again, _ := store.Get(ctx, "s1")
			if again.Fact("name") != "alex" {
				t.Errorf("Get returned aliased session")
			}
		})
	}
}

func TestStoreMissingAndDelete(t *testing.T) {
	ctx := context.Background()
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := store.Get(ctx, "nope"); !stderrors.Is(err, pkgerrors.ErrSessionNotFound) {
				t.Errorf("Get(unknown) = %v, want ErrSessionNotFound", err)
			}
			if err := store.Delete(ctx, "nope"); err != nil {
				t.Errorf("Delete(unknown) = %v, want nil", err)
			}
			s := NewSession()
			s.SetFact("name", "alex")
			if err := store.Put(ctx, "s1", s); err != nil {
				t.Fatalf("Put: %v", err)
			}
			if err := store.Delete(ctx, "s1"); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if _, err := store.Get(ctx, "s1"); !stderrors.Is(err, pkgerrors.ErrSessionNotFound) {
				t.Errorf("Get after Delete = %v, want ErrSessionNotFound", err)
			}
		})
	}
}

func TestFileStorePersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "sessions.json")

	fs, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	s := NewSession()
	s.SetFact("name", "alex")
	s.SetFact("likes", "dogs")
	if err := fs.Put(ctx, "s1", s); err != nil {
		t.Fatalf("Put: %v", err)
	}

	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("reopening: %v", err)
	}
	got, err := reopened.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if got.Fact("name") != "alex" || got.Fact("likes") != "dogs" {
		t.Errorf("facts lost across reopen: %v", got.Facts)
	}
	if len(got.FactKeys) != 2 || got.FactKeys[0] != "name" {
		t.Errorf("fact order lost across reopen: %v", got.FactKeys)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind after save")
	}
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileStore(path); err == nil {
		t.Errorf("NewFileStore accepted corrupt file")
	}
}

package labelstore

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/curadolabs/labelgen/pkg/label"
)

func testRecord(id string) *Record {
	return &Record{
		ID: id,
		Model: &label.Model{
			RecipeTitle: "Tamarind Agua Fresca",
			LabelType:   label.TypeUSDAVertical,
			Style:       label.Style{Language: "english", Width: 300},
		},
		Artifacts: map[string][]byte{
			"html": []byte("<!DOCTYPE html>"),
			"pdf":  {0x25, 0x50, 0x44, 0x46},
		},
		CreatedAt: time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
	}
}

// storeContract runs the shared Store behavior against a backend.
func storeContract(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Get(ctx, "missing"); !IsNotFound(err) {
		t.Fatalf("Get(missing) error = %v, want not found", err)
	}

	rec := testRecord("lbl-1")
	if err := s.Put(ctx, rec); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := s.Get(ctx, "lbl-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Model.RecipeTitle != rec.Model.RecipeTitle {
		t.Errorf("Model.RecipeTitle = %q, want %q", got.Model.RecipeTitle, rec.Model.RecipeTitle)
	}
	if !bytes.Equal(got.Artifacts["pdf"], rec.Artifacts["pdf"]) {
		t.Errorf("Artifacts[pdf] = %v, want %v", got.Artifacts["pdf"], rec.Artifacts["pdf"])
	}
	if !got.CreatedAt.Equal(rec.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, rec.CreatedAt)
	}

	// Put overwrites.
	rec2 := testRecord("lbl-1")
	rec2.Artifacts["html"] = []byte("<html>v2</html>")
	if err := s.Put(ctx, rec2); err != nil {
		t.Fatalf("Put() overwrite error = %v", err)
	}
	got, err = s.Get(ctx, "lbl-1")
	if err != nil {
		t.Fatalf("Get() after overwrite error = %v", err)
	}
	if string(got.Artifacts["html"]) != "<html>v2</html>" {
		t.Errorf("Artifacts[html] after overwrite = %q", got.Artifacts["html"])
	}

	if err := s.Delete(ctx, "lbl-1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Get(ctx, "lbl-1"); !IsNotFound(err) {
		t.Errorf("Get() after delete error = %v, want not found", err)
	}
	// Deleting a missing ID is not an error.
	if err := s.Delete(ctx, "lbl-1"); err != nil {
		t.Errorf("Delete(missing) error = %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	storeContract(t, s)
}

func TestMemoryStoreIsolation(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close()

	rec := testRecord("lbl-iso")
	if err := s.Put(ctx, rec); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	rec.Artifacts["pdf"][0] = 0x00

	got, err := s.Get(ctx, "lbl-iso")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Artifacts["pdf"][0] != 0x25 {
		t.Error("caller mutation leaked into stored record")
	}
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	defer s.Close()
	storeContract(t, s)
}

func TestFileStoreRejectsPathEscape(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	defer s.Close()

	for _, id := range []string{"", "../escape", "a/b", `a\b`, "dotted.id"} {
		if _, err := s.Get(context.Background(), id); !IsNotFound(err) {
			t.Errorf("Get(%q) error = %v, want not found", id, err)
		}
	}
}

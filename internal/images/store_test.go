package images

import (
	"os"
	"strings"
	"testing"
)

func TestNewStoreRequiresDir(t *testing.T) {
	if _, err := NewStore(""); err == nil {
		t.Fatal("expected error for empty directory")
	}
}

func TestSaveAndExists(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	name, err := store.Save([]byte("payload"), ".png")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasSuffix(name, ".png") {
		t.Fatalf("name = %q, want .png suffix", name)
	}
	if !store.Exists(name) {
		t.Fatalf("saved image %s not found", name)
	}

	data, err := os.ReadFile(store.Path(name))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("content = %q", data)
	}
}

func TestSaveDefaultsExtension(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	name, err := store.Save([]byte("x"), "")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasSuffix(name, ".jpg") {
		t.Fatalf("name = %q, want .jpg fallback", name)
	}
}

func TestRemove(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	name, err := store.Save([]byte("x"), ".jpg")
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := store.Remove(name); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if store.Exists(name) {
		t.Fatalf("image %s still present after remove", name)
	}

	// Double remove and unknown names are tolerated.
	if err := store.Remove(name); err != nil {
		t.Fatalf("remove missing: %v", err)
	}
	if err := store.Remove(""); err != nil {
		t.Fatalf("remove empty name: %v", err)
	}
}

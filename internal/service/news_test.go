package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rabotyaga1336/doc-helper/internal/models"
	"github.com/rabotyaga1336/doc-helper/internal/storage"
)

type fakeNewsStore struct {
	items     map[int64]models.News
	nextID    int64
	createErr error
}

func newFakeNewsStore() *fakeNewsStore {
	return &fakeNewsStore{items: make(map[int64]models.News)}
}

func (f *fakeNewsStore) CreateNews(_ context.Context, n models.NewNews) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.nextID++
	f.items[f.nextID] = models.News{ID: f.nextID, Title: n.Title, Content: n.Content, ImagePath: n.ImagePath}
	return f.nextID, nil
}

func (f *fakeNewsStore) ListNews(_ context.Context, limit int) ([]models.News, error) {
	out := make([]models.News, 0, limit)
	for id := f.nextID; id > 0 && len(out) < limit; id-- {
		if n, ok := f.items[id]; ok {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNewsStore) GetNews(_ context.Context, id int64) (models.News, error) {
	n, ok := f.items[id]
	if !ok {
		return models.News{}, storage.ErrNotFound
	}
	return n, nil
}

func (f *fakeNewsStore) DeleteNews(_ context.Context, id int64) (*string, error) {
	n, ok := f.items[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	delete(f.items, id)
	return n.ImagePath, nil
}

type fakeRemover struct {
	removed []string
	err     error
}

func (f *fakeRemover) Remove(name string) error {
	if f.err != nil {
		return f.err
	}
	f.removed = append(f.removed, name)
	return nil
}

func strPtr(s string) *string { return &s }

func TestDeleteRemovesImage(t *testing.T) {
	store := newFakeNewsStore()
	remover := &fakeRemover{}
	svc := NewNews(store, remover, 5, nil)
	ctx := context.Background()

	id, err := svc.Create(ctx, models.NewNews{Title: "t", Content: "c", ImagePath: strPtr("123.png")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, id); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if len(remover.removed) != 1 || remover.removed[0] != "123.png" {
		t.Fatalf("removed = %v, want [123.png]", remover.removed)
	}
}

func TestDeleteWithoutImageSkipsRemover(t *testing.T) {
	store := newFakeNewsStore()
	remover := &fakeRemover{}
	svc := NewNews(store, remover, 5, nil)
	ctx := context.Background()

	id, err := svc.Create(ctx, models.NewNews{Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(remover.removed) != 0 {
		t.Fatalf("remover called for image-less post: %v", remover.removed)
	}
}

func TestDeleteToleratesImageRemovalFailure(t *testing.T) {
	store := newFakeNewsStore()
	remover := &fakeRemover{err: errors.New("busy")}
	svc := NewNews(store, remover, 5, nil)
	ctx := context.Background()

	id, err := svc.Create(ctx, models.NewNews{Title: "t", Content: "c", ImagePath: strPtr("x.jpg")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, id); err != nil {
		t.Fatalf("delete must succeed despite file cleanup failure: %v", err)
	}
	if _, err := svc.Get(ctx, id); !errors.Is(err, storage.ErrNotFound) {
		t.Fatal("row must be gone even when file cleanup fails")
	}
}

func TestDeleteUnknownID(t *testing.T) {
	svc := NewNews(newFakeNewsStore(), &fakeRemover{}, 5, nil)
	if err := svc.Delete(context.Background(), 42); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListHonorsLimit(t *testing.T) {
	store := newFakeNewsStore()
	svc := NewNews(store, &fakeRemover{}, 2, nil)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		if _, err := svc.Create(ctx, models.NewNews{Title: "t", Content: "c"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	items, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("list returned %d items, want 2", len(items))
	}
	if items[0].ID != 4 || items[1].ID != 3 {
		t.Fatalf("order = [%d %d], want newest first", items[0].ID, items[1].ID)
	}
}

func TestDefaultLimit(t *testing.T) {
	svc := NewNews(newFakeNewsStore(), &fakeRemover{}, 0, nil)
	if svc.Limit() != 5 {
		t.Fatalf("limit = %d, want 5", svc.Limit())
	}
}

package service

import (
	"context"
	"log/slog"

	"github.com/rabotyaga1336/doc-helper/internal/models"
)

// DocumentStore is the slice of the Content Store used by the docs service.
type DocumentStore interface {
	ListDocuments(ctx context.Context, category string) ([]models.Document, error)
	GetDocument(ctx context.Context, id int64) (models.Document, error)
}

// Docs exposes read-only access to downloadable documents.
type Docs struct {
	store DocumentStore
	log   *slog.Logger
}

// NewDocs builds the docs service; log may be nil.
func NewDocs(store DocumentStore, log *slog.Logger) *Docs {
	if log == nil {
		log = slog.Default()
	}
	return &Docs{store: store, log: log}
}

// ListByCategory returns the documents of one category. A category with no
// matches yields an empty list.
func (s *Docs) ListByCategory(ctx context.Context, category string) ([]models.Document, error) {
	docs, err := s.store.ListDocuments(ctx, category)
	if err != nil {
		s.log.Error("documents list failed",
			slog.String("event", "docs.list"),
			slog.String("category", category),
			slog.String("err", err.Error()),
		)
		return nil, err
	}
	return docs, nil
}

// Get fetches one document; storage.ErrNotFound passes through.
func (s *Docs) Get(ctx context.Context, id int64) (models.Document, error) {
	return s.store.GetDocument(ctx, id)
}

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rabotyaga1336/doc-helper/internal/models"
)

// ListDocuments returns all documents in a category, alphabetically.
// An unknown or empty category yields an empty list, not an error.
func (s *Store) ListDocuments(ctx context.Context, category string) ([]models.Document, error) {
	var docs []models.Document
	err := s.db.SelectContext(ctx, &docs,
		`SELECT id, name, category, file_path FROM documents WHERE category = $1 ORDER BY name ASC`,
		category,
	)
	if err != nil {
		return nil, fmt.Errorf("list documents %q: %w", category, err)
	}
	return docs, nil
}

// GetDocument fetches a single document by id.
func (s *Store) GetDocument(ctx context.Context, id int64) (models.Document, error) {
	var doc models.Document
	err := s.db.GetContext(ctx, &doc,
		`SELECT id, name, category, file_path FROM documents WHERE id = $1`,
		id,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Document{}, ErrNotFound
	}
	if err != nil {
		return models.Document{}, fmt.Errorf("get document %d: %w", id, err)
	}
	return doc, nil
}

// CountDocuments reports the total number of documents across categories.
func (s *Store) CountDocuments(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM documents`); err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return n, nil
}

// InsertDocument adds a reference entry; used by the bootstrap seeder only.
func (s *Store) InsertDocument(ctx context.Context, d models.Document) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (name, category, file_path) VALUES ($1, $2, $3)`,
		d.Name, d.Category, d.FilePath,
	)
	if err != nil {
		return fmt.Errorf("insert document %q: %w", d.Name, err)
	}
	return nil
}

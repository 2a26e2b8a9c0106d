package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rabotyaga1336/doc-helper/internal/models"
)

// CreateNews inserts a fully collected news post and returns its id.
// The creation timestamp defaults to the database clock.
func (s *Store) CreateNews(ctx context.Context, n models.NewNews) (int64, error) {
	var id int64
	err := s.db.QueryRowxContext(ctx,
		`INSERT INTO news (title, content, image_path) VALUES ($1, $2, $3) RETURNING id`,
		n.Title, n.Content, n.ImagePath,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert news: %w", err)
	}
	return id, nil
}

// ListNews returns the most recent posts, newest first. Rows created within
// the same timestamp keep their insertion order.
func (s *Store) ListNews(ctx context.Context, limit int) ([]models.News, error) {
	if limit <= 0 {
		limit = 5
	}
	var items []models.News
	err := s.db.SelectContext(ctx, &items,
		`SELECT id, title, content, image_path, created_at
		   FROM news
		  ORDER BY created_at DESC, id ASC
		  LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	return items, nil
}

// GetNews fetches a single post by id.
func (s *Store) GetNews(ctx context.Context, id int64) (models.News, error) {
	var item models.News
	err := s.db.GetContext(ctx, &item,
		`SELECT id, title, content, image_path, created_at FROM news WHERE id = $1`,
		id,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.News{}, ErrNotFound
	}
	if err != nil {
		return models.News{}, fmt.Errorf("get news %d: %w", id, err)
	}
	return item, nil
}

// DeleteNews removes a post and reports the image path it referenced, so the
// caller can clean up the backing file. Returns ErrNotFound when no row
// matched; no other row is affected either way.
func (s *Store) DeleteNews(ctx context.Context, id int64) (*string, error) {
	var imagePath *string
	err := s.db.QueryRowxContext(ctx,
		`DELETE FROM news WHERE id = $1 RETURNING image_path`,
		id,
	).Scan(&imagePath)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("delete news %d: %w", id, err)
	}
	return imagePath, nil
}

// Package service wires the Content Store to the bot-facing operations and
// owns the per-domain logging components.
package service

import (
	"context"
	"log/slog"

	"github.com/rabotyaga1336/doc-helper/internal/models"
)

// NewsStore is the slice of the Content Store used by the news service.
type NewsStore interface {
	CreateNews(ctx context.Context, n models.NewNews) (int64, error)
	ListNews(ctx context.Context, limit int) ([]models.News, error)
	GetNews(ctx context.Context, id int64) (models.News, error)
	DeleteNews(ctx context.Context, id int64) (*string, error)
}

// ImageRemover deletes a stored image file by bare name.
type ImageRemover interface {
	Remove(name string) error
}

// News exposes listing, creation and deletion of news posts.
type News struct {
	store  NewsStore
	images ImageRemover
	limit  int
	log    *slog.Logger
}

// NewNews builds the news service. limit bounds list results; log may be nil.
func NewNews(store NewsStore, images ImageRemover, limit int, log *slog.Logger) *News {
	if limit <= 0 {
		limit = 5
	}
	if log == nil {
		log = slog.Default()
	}
	return &News{store: store, images: images, limit: limit, log: log}
}

// Create persists a fully collected post.
func (s *News) Create(ctx context.Context, n models.NewNews) (int64, error) {
	id, err := s.store.CreateNews(ctx, n)
	if err != nil {
		s.log.Error("news create failed",
			slog.String("event", "news.create"),
			slog.String("err", err.Error()),
		)
		return 0, err
	}
	s.log.Info("news created",
		slog.String("event", "news.create"),
		slog.Int64("news_id", id),
		slog.Bool("has_image", n.ImagePath != nil),
	)
	return id, nil
}

// List returns the most recent posts, newest first.
func (s *News) List(ctx context.Context) ([]models.News, error) {
	return s.store.ListNews(ctx, s.limit)
}

// Get fetches a single post; storage.ErrNotFound passes through.
func (s *News) Get(ctx context.Context, id int64) (models.News, error) {
	return s.store.GetNews(ctx, id)
}

// Delete removes the row and then the backing image file, if any. File
// removal is best-effort: its failure is logged but does not undo the
// deletion. Returns storage.ErrNotFound for an unknown id.
func (s *News) Delete(ctx context.Context, id int64) error {
	imagePath, err := s.store.DeleteNews(ctx, id)
	if err != nil {
		return err
	}
	if imagePath != nil && *imagePath != "" && s.images != nil {
		if rmErr := s.images.Remove(*imagePath); rmErr != nil {
			s.log.Warn("news image cleanup failed",
				slog.String("event", "news.delete"),
				slog.Int64("news_id", id),
				slog.String("image", *imagePath),
				slog.String("err", rmErr.Error()),
			)
		}
	}
	s.log.Info("news deleted",
		slog.String("event", "news.delete"),
		slog.Int64("news_id", id),
	)
	return nil
}

// Limit reports the configured listing limit.
func (s *News) Limit() int {
	return s.limit
}

// Package models holds the domain entities served by the bot.
package models

import "time"

// News is a single administered news post. ImagePath is the bare file name
// inside the configured image directory, not a full path.
type News struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	ImagePath *string   `db:"image_path"`
	CreatedAt time.Time `db:"created_at"`
}

// HasImage reports whether the post references an image file.
func (n News) HasImage() bool {
	return n.ImagePath != nil && *n.ImagePath != ""
}

// NewNews carries the fields collected by the authoring dialog.
type NewNews struct {
	Title     string
	Content   string
	ImagePath *string
}

// Document categories form a small fixed set administered out of band.
const (
	DocCategoryApplication = "application"
	DocCategoryTemplate    = "template"
)

// Document is a downloadable file reference. Read-only from the bot.
type Document struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Category string `db:"category"`
	FilePath string `db:"file_path"`
}

// Contact is a department contact entry. Read-only from the bot.
type Contact struct {
	ID         int64   `db:"id"`
	Department string  `db:"department"`
	Phone      string  `db:"phone"`
	Email      *string `db:"email"`
}

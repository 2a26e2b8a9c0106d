// Package images stores uploaded news images on disk. Files are named by the
// upload timestamp; two uploads within the same nanosecond would collide,
// which is accepted for a single-admin bot.
package images

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Store writes and removes image files inside one directory.
type Store struct {
	dir string
}

// NewStore creates the image directory if needed.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("images: empty directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("images: create dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Save writes data under a timestamp-derived name and returns the bare name.
func (s *Store) Save(data []byte, ext string) (string, error) {
	if ext == "" {
		ext = ".jpg"
	}
	name := strconv.FormatInt(time.Now().UnixNano(), 10) + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("images: write %s: %w", name, err)
	}
	return name, nil
}

// Remove deletes a stored image. Removing a name that no longer exists is
// not an error.
func (s *Store) Remove(name string) error {
	if name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("images: remove %s: %w", name, err)
	}
	return nil
}

// Path resolves a stored name to its full path.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Exists reports whether the named image is present on disk.
func (s *Store) Exists(name string) bool {
	if name == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(s.dir, name))
	return err == nil
}

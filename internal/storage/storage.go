// Package storage implements the Content Store on PostgreSQL via sqlx.
// All access goes through parameterized queries; the schema is created by
// migrations at bootstrap.
package storage

import (
	"errors"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when a referenced row does not exist.
var ErrNotFound = errors.New("storage: not found")

// Store provides CRUD access to news, documents and contacts.
type Store struct {
	db *sqlx.DB
}

// New wraps an open database handle.
func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

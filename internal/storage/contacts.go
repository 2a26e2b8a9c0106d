package storage

import (
	"context"
	"fmt"

	"github.com/rabotyaga1336/doc-helper/internal/models"
)

// ListContacts returns all department contacts in insertion order.
func (s *Store) ListContacts(ctx context.Context) ([]models.Contact, error) {
	var contacts []models.Contact
	err := s.db.SelectContext(ctx, &contacts,
		`SELECT id, department, phone, email FROM contacts ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

// CountContacts reports the total number of contact rows.
func (s *Store) CountContacts(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM contacts`); err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}
	return n, nil
}

// InsertContact adds a contact entry; used by the bootstrap seeder only.
func (s *Store) InsertContact(ctx context.Context, c models.Contact) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contacts (department, phone, email) VALUES ($1, $2, $3)`,
		c.Department, c.Phone, c.Email,
	)
	if err != nil {
		return fmt.Errorf("insert contact %q: %w", c.Department, err)
	}
	return nil
}

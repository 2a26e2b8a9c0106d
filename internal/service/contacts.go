package service

import (
	"context"
	"log/slog"

	"github.com/rabotyaga1336/doc-helper/internal/models"
)

// ContactStore is the slice of the Content Store used by the contacts service.
type ContactStore interface {
	ListContacts(ctx context.Context) ([]models.Contact, error)
}

// Contacts exposes the read-only department contact list.
type Contacts struct {
	store ContactStore
	log   *slog.Logger
}

// NewContacts builds the contacts service; log may be nil.
func NewContacts(store ContactStore, log *slog.Logger) *Contacts {
	if log == nil {
		log = slog.Default()
	}
	return &Contacts{store: store, log: log}
}

// List returns every contact row in insertion order.
func (s *Contacts) List(ctx context.Context) ([]models.Contact, error) {
	contacts, err := s.store.ListContacts(ctx)
	if err != nil {
		s.log.Error("contacts list failed",
			slog.String("event", "contacts.list"),
			slog.String("err", err.Error()),
		)
		return nil, err
	}
	return contacts, nil
}

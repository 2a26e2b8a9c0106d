package app

import (
	"context"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/rabotyaga1336/doc-helper/core/logger"
	"github.com/rabotyaga1336/doc-helper/internal/models"
	"github.com/rabotyaga1336/doc-helper/internal/storage"
)

func strPtr(s string) *string { return &s }

// seedReferenceData loads the initial documents and contacts when their
// tables are empty. News is never seeded: posts only come from the
// authoring dialog.
func seedReferenceData(ctx context.Context, db *sqlx.DB) error {
	store := storage.New(db)

	docCount, err := store.CountDocuments(ctx)
	if err != nil {
		return err
	}
	if docCount == 0 {
		seedDocs := []models.Document{
			{Name: "Vacation application", Category: models.DocCategoryApplication, FilePath: "docs/application_vacation.docx"},
			{Name: "Contract template", Category: models.DocCategoryTemplate, FilePath: "docs/template_contract.docx"},
		}
		for _, d := range seedDocs {
			if err := store.InsertDocument(ctx, d); err != nil {
				return err
			}
		}
		logger.SEED.Info("documents seeded",
			slog.String("event", "seed.documents"),
			slog.Int("count", len(seedDocs)),
		)
	}

	contactCount, err := store.CountContacts(ctx)
	if err != nil {
		return err
	}
	if contactCount == 0 {
		seedContacts := []models.Contact{
			{Department: "HR department", Phone: "+375 (17) 123-45-67", Email: strPtr("hr@example.com")},
			{Department: "Technical support", Phone: "+375 (17) 765-43-21", Email: strPtr("support@example.com")},
		}
		for _, entry := range seedContacts {
			if err := store.InsertContact(ctx, entry); err != nil {
				return err
			}
		}
		logger.SEED.Info("contacts seeded",
			slog.String("event", "seed.contacts"),
			slog.Int("count", len(seedContacts)),
		)
	}

	return nil
}

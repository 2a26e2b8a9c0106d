package bot

import (
	"errors"
	"os"
	"path/filepath"

	tele "gopkg.in/telebot.v4"

	"github.com/rabotyaga1336/doc-helper/core/telegram/callbacks"
	tghelpers "github.com/rabotyaga1336/doc-helper/core/telegram/helpers"
	"github.com/rabotyaga1336/doc-helper/internal/storage"
)

func (b *Bot) showDocsMenu(c tele.Context) error {
	return tghelpers.EditOrSendMD(c, "📄 Choose a document type:", docsMenuMarkup())
}

// showDocsList renders one category. An empty category renders an empty list
// with just the back button.
func (b *Bot) showDocsList(c tele.Context) error {
	category := callbacks.CallbackPayload(c)
	ctx := tghelpers.BuildContext(c)

	docs, err := b.docs.ListByCategory(ctx, category)
	if err != nil {
		_ = tghelpers.SendText(c, "⚠️ Could not load the documents, try again later.")
		return err
	}

	text := "📂 Available documents:"
	if len(docs) == 0 {
		text = "📂 No documents in this category yet."
	}
	return tghelpers.EditOrSendMD(c, text, docsListMarkup(docs))
}

// sendDocFile transmits the referenced file. A missing row or a missing file
// on disk both surface as "file not found" without failing the handler.
func (b *Bot) sendDocFile(c tele.Context) error {
	id, err := callbacks.PayloadInt64(c)
	if err != nil {
		return tghelpers.SendText(c, "❌ File not found.")
	}

	ctx := tghelpers.BuildContext(c)
	doc, err := b.docs.Get(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return tghelpers.SendText(c, "❌ File not found.")
	}
	if err != nil {
		_ = tghelpers.SendText(c, "⚠️ Could not load the document, try again later.")
		return err
	}

	if _, statErr := os.Stat(doc.FilePath); statErr != nil {
		return tghelpers.SendText(c, "❌ File not found.")
	}

	return c.Send(&tele.Document{
		File:     tele.FromDisk(doc.FilePath),
		FileName: filepath.Base(doc.FilePath),
	})
}

package bot

import (
	"fmt"
	"strconv"

	tele "gopkg.in/telebot.v4"

	"github.com/rabotyaga1336/doc-helper/core/telegram/keyboard"
	"github.com/rabotyaga1336/doc-helper/internal/models"
)

// Callback keys. Each key is registered once in the registry; payloads carry
// typed identifiers so handlers never re-split raw callback strings.
const (
	cbMainMenu      = "main_menu"
	cbHelp          = "help"
	cbDocsMenu      = "docs_menu"
	cbDocsList      = "docs_list"
	cbDocFile       = "doc_file"
	cbContacts      = "contacts"
	cbNewsMenu      = "news_menu"
	cbNewsItem      = "news_item"
	cbAddNews       = "add_news"
	cbConfirmDelete = "news_del_ask"
	cbDeleteNews    = "news_del"
	cbCancelAdd     = "add_cancel"
)

const mainMenuButton = "🏠 Main menu"

// replyMenuMarkup is the persistent reply keyboard with a single button that
// brings the user back to the main menu from anywhere.
func replyMenuMarkup() *tele.ReplyMarkup {
	return keyboard.ReplyButtons([]string{mainMenuButton})
}

func mainMenuMarkup(isAdmin bool) *tele.ReplyMarkup {
	rows := [][]keyboard.InlineBtn{
		{{Text: "📄 Documents", Unique: cbDocsMenu}},
		{{Text: "📞 Contacts", Unique: cbContacts}},
		{{Text: "📢 News", Unique: cbNewsMenu}},
		{{Text: "❓ Help", Unique: cbHelp}},
	}
	if isAdmin {
		rows = append(rows, []keyboard.InlineBtn{{Text: "➕ Add news", Unique: cbAddNews}})
	}
	return keyboard.InlineButtonsRows(rows...)
}

func backToMainMarkup() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "🔙 Back", Unique: cbMainMenu},
	})
}

func docsMenuMarkup() *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{{Text: "📝 Applications", Unique: cbDocsList, Data: models.DocCategoryApplication}},
		[]keyboard.InlineBtn{{Text: "📑 Templates", Unique: cbDocsList, Data: models.DocCategoryTemplate}},
		[]keyboard.InlineBtn{{Text: "🔙 Back", Unique: cbMainMenu}},
	)
}

func docsListMarkup(docs []models.Document) *tele.ReplyMarkup {
	rows := make([][]keyboard.InlineBtn, 0, len(docs)+1)
	for _, d := range docs {
		rows = append(rows, []keyboard.InlineBtn{
			{Text: d.Name, Unique: cbDocFile, Data: strconv.FormatInt(d.ID, 10)},
		})
	}
	rows = append(rows, []keyboard.InlineBtn{{Text: "🔙 Back", Unique: cbDocsMenu}})
	return keyboard.InlineButtonsRows(rows...)
}

func newsMenuMarkup(items []models.News, isAdmin bool) *tele.ReplyMarkup {
	rows := make([][]keyboard.InlineBtn, 0, len(items)+2)
	for _, n := range items {
		label := "📰 " + n.Title
		if isAdmin {
			label = fmt.Sprintf("%s (ID: %d)", label, n.ID)
		}
		rows = append(rows, []keyboard.InlineBtn{
			{Text: label, Unique: cbNewsItem, Data: strconv.FormatInt(n.ID, 10)},
		})
	}
	if isAdmin {
		rows = append(rows, []keyboard.InlineBtn{{Text: "➕ Add news", Unique: cbAddNews}})
	}
	rows = append(rows, []keyboard.InlineBtn{{Text: "🔙 Back", Unique: cbMainMenu}})
	return keyboard.InlineButtonsRows(rows...)
}

func newsDetailMarkup(id int64, isAdmin bool) *tele.ReplyMarkup {
	var rows [][]keyboard.InlineBtn
	if isAdmin {
		rows = append(rows, []keyboard.InlineBtn{
			{Text: "❌ Delete post", Unique: cbConfirmDelete, Data: strconv.FormatInt(id, 10)},
		})
	}
	rows = append(rows, []keyboard.InlineBtn{{Text: "🔙 Back", Unique: cbNewsMenu}})
	return keyboard.InlineButtonsRows(rows...)
}

func confirmDeleteMarkup(id int64) *tele.ReplyMarkup {
	payload := strconv.FormatInt(id, 10)
	return keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{{Text: "✅ Yes, delete", Unique: cbDeleteNews, Data: payload}},
		[]keyboard.InlineBtn{{Text: "❌ No, keep it", Unique: cbNewsItem, Data: payload}},
	)
}

func cancelAddMarkup() *tele.ReplyMarkup {
	return keyboard.SingleCancelMarkup(cbCancelAdd)
}

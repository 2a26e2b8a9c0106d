package bot

import (
	"strings"
	"testing"
	"time"

	"github.com/rabotyaga1336/doc-helper/internal/models"
)

func TestMainMenuAdminButton(t *testing.T) {
	plain := mainMenuMarkup(false)
	if got := len(plain.InlineKeyboard); got != 4 {
		t.Fatalf("regular menu has %d rows, want 4", got)
	}
	for _, row := range plain.InlineKeyboard {
		for _, btn := range row {
			if btn.Unique == cbAddNews {
				t.Fatal("regular menu must not expose the add-news button")
			}
		}
	}

	admin := mainMenuMarkup(true)
	if got := len(admin.InlineKeyboard); got != 5 {
		t.Fatalf("admin menu has %d rows, want 5", got)
	}
	last := admin.InlineKeyboard[len(admin.InlineKeyboard)-1]
	if len(last) != 1 || last[0].Unique != cbAddNews {
		t.Fatalf("admin menu last row = %+v, want add-news button", last)
	}
}

func TestNewsMenuMarkup(t *testing.T) {
	items := []models.News{
		{ID: 7, Title: "First", CreatedAt: time.Now()},
		{ID: 3, Title: "Second", CreatedAt: time.Now()},
	}

	plain := newsMenuMarkup(items, false)
	// One row per post plus the back row.
	if got := len(plain.InlineKeyboard); got != 3 {
		t.Fatalf("regular news menu has %d rows, want 3", got)
	}
	if strings.Contains(plain.InlineKeyboard[0][0].Text, "ID:") {
		t.Fatal("regular users must not see post IDs")
	}

	admin := newsMenuMarkup(items, true)
	if got := len(admin.InlineKeyboard); got != 4 {
		t.Fatalf("admin news menu has %d rows, want 4", got)
	}
	first := admin.InlineKeyboard[0][0]
	if !strings.Contains(first.Text, "(ID: 7)") {
		t.Fatalf("admin label = %q, want post ID visible", first.Text)
	}
	if first.Unique != cbNewsItem || first.Data != "7" {
		t.Fatalf("post button = unique %q data %q", first.Unique, first.Data)
	}
}

func TestNewsDetailMarkup(t *testing.T) {
	plain := newsDetailMarkup(9, false)
	if got := len(plain.InlineKeyboard); got != 1 {
		t.Fatalf("regular detail has %d rows, want back row only", got)
	}

	admin := newsDetailMarkup(9, true)
	if got := len(admin.InlineKeyboard); got != 2 {
		t.Fatalf("admin detail has %d rows, want 2", got)
	}
	del := admin.InlineKeyboard[0][0]
	if del.Unique != cbConfirmDelete || del.Data != "9" {
		t.Fatalf("delete button = unique %q data %q", del.Unique, del.Data)
	}
}

func TestConfirmDeleteMarkup(t *testing.T) {
	markup := confirmDeleteMarkup(12)
	if got := len(markup.InlineKeyboard); got != 2 {
		t.Fatalf("confirmation has %d rows, want 2", got)
	}
	yes := markup.InlineKeyboard[0][0]
	no := markup.InlineKeyboard[1][0]
	if yes.Unique != cbDeleteNews || yes.Data != "12" {
		t.Fatalf("yes button = unique %q data %q", yes.Unique, yes.Data)
	}
	// Declining routes back to the post view, not to a separate handler.
	if no.Unique != cbNewsItem || no.Data != "12" {
		t.Fatalf("no button = unique %q data %q", no.Unique, no.Data)
	}
}

func TestDocsListMarkup(t *testing.T) {
	docs := []models.Document{
		{ID: 1, Name: "Vacation application", Category: models.DocCategoryApplication},
		{ID: 2, Name: "Contract template", Category: models.DocCategoryTemplate},
	}
	markup := docsListMarkup(docs)
	if got := len(markup.InlineKeyboard); got != 3 {
		t.Fatalf("docs list has %d rows, want 3", got)
	}
	first := markup.InlineKeyboard[0][0]
	if first.Unique != cbDocFile || first.Data != "1" {
		t.Fatalf("doc button = unique %q data %q", first.Unique, first.Data)
	}
	back := markup.InlineKeyboard[2][0]
	if back.Unique != cbDocsMenu {
		t.Fatalf("back button unique = %q, want %q", back.Unique, cbDocsMenu)
	}
}

func TestReplyMenuMarkup(t *testing.T) {
	markup := replyMenuMarkup()
	if len(markup.ReplyKeyboard) != 1 || len(markup.ReplyKeyboard[0]) != 1 {
		t.Fatalf("reply keyboard layout = %+v, want single button", markup.ReplyKeyboard)
	}
	if got := markup.ReplyKeyboard[0][0].Text; got != mainMenuButton {
		t.Fatalf("reply button text = %q, want %q", got, mainMenuButton)
	}
	if !markup.ResizeKeyboard {
		t.Fatal("reply keyboard must be resizable")
	}
}

// Package bot maps inbound Telegram updates to content views and to the
// news authoring dialog. Routing happens through the shared registry; every
// callback key is registered exactly once.
package bot

import (
	"log/slog"

	tele "gopkg.in/telebot.v4"

	tg "github.com/rabotyaga1336/doc-helper/core/telegram"
	"github.com/rabotyaga1336/doc-helper/core/telegram/commands"
	tghelpers "github.com/rabotyaga1336/doc-helper/core/telegram/helpers"
	"github.com/rabotyaga1336/doc-helper/core/telegram/state"
	"github.com/rabotyaga1336/doc-helper/internal/dialog"
	"github.com/rabotyaga1336/doc-helper/internal/images"
	"github.com/rabotyaga1336/doc-helper/internal/service"
)

// Bot bundles the services behind the chat surface.
type Bot struct {
	adminID  int64
	news     *service.News
	docs     *service.Docs
	contacts *service.Contacts
	dialog   *dialog.Controller
	images   *images.Store
	log      *slog.Logger
}

// New builds the bot surface; log may be nil.
func New(adminID int64, news *service.News, docs *service.Docs, contacts *service.Contacts, dlg *dialog.Controller, imgs *images.Store, log *slog.Logger) *Bot {
	if log == nil {
		log = slog.Default()
	}
	return &Bot{
		adminID:  adminID,
		news:     news,
		docs:     docs,
		contacts: contacts,
		dialog:   dlg,
		images:   imgs,
		log:      log,
	}
}

// Dialog exposes the authoring controller for router wiring.
func (b *Bot) Dialog() *dialog.Controller {
	return b.dialog
}

// Register wires commands, callbacks and authoring stage handlers.
func (b *Bot) Register(reg *tg.Registry) {
	reg.RegisterCommand("/start", commands.Command{
		Handler:     b.handleStart,
		Description: "Show the main menu",
	})
	reg.RegisterCommand("/help", commands.Command{
		Handler:     b.handleHelp,
		Description: "How to use the bot",
	})
	reg.RegisterCommand("/add_news", commands.Command{
		Handler:     b.handleAddNews,
		Description: "Add a news post",
		AdminOnly:   true,
	})

	_ = reg.RegisterCallback(cbMainMenu, b.handleMainMenu)
	_ = reg.RegisterCallback(cbHelp, b.handleHelp)
	_ = reg.RegisterCallback(cbDocsMenu, b.showDocsMenu)
	_ = reg.RegisterCallback(cbDocsList, b.showDocsList)
	_ = reg.RegisterCallback(cbDocFile, b.sendDocFile)
	_ = reg.RegisterCallback(cbContacts, b.showContacts)
	_ = reg.RegisterCallback(cbNewsMenu, b.showNewsMenu)
	_ = reg.RegisterCallback(cbNewsItem, b.showNewsDetail)
	_ = reg.RegisterCallback(cbAddNews, b.handleAddNews)
	_ = reg.RegisterCallback(cbConfirmDelete, b.confirmDelete)
	_ = reg.RegisterCallback(cbDeleteNews, b.deleteNews)
	_ = reg.RegisterCallback(cbCancelAdd, b.handleCancelAdd)

	state.RegisterHandler(dialog.StageAwaitImage, b.fsmAwaitImage)
	state.RegisterHandler(dialog.StageAwaitTitle, b.fsmAwaitTitle)
	state.RegisterHandler(dialog.StageAwaitContent, b.fsmAwaitContent)
}

// RejectNonAdmin answers a privileged action attempted by anyone else.
func (b *Bot) RejectNonAdmin() tele.HandlerFunc {
	return func(c tele.Context) error {
		return tghelpers.SendText(c, "❌ Not enough permissions.")
	}
}

func (b *Bot) isAdmin(c tele.Context) bool {
	return c.Sender() != nil && c.Sender().ID == b.adminID
}

// tryRetract removes the message a callback originated from so stale menus
// do not pile up. Best-effort: failures are ignored.
func tryRetract(c tele.Context) {
	if c.Callback() != nil {
		_ = c.Delete()
	}
}

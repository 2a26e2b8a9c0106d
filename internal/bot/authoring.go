package bot

import (
	"errors"
	"io"
	"strings"

	tele "gopkg.in/telebot.v4"

	tghelpers "github.com/rabotyaga1336/doc-helper/core/telegram/helpers"
	"github.com/rabotyaga1336/doc-helper/internal/dialog"
)

const (
	promptImage   = "📷 Send a photo for the post, or /skip to continue without one.\nSend /cancel to abort."
	promptTitle   = "✏️ Now send the post title."
	promptContent = "📝 Now send the post text."
	cancelledText = "✖️ Post creation cancelled."
)

// handleAddNews enters the authoring dialog. Serves both the /add_news
// command and the inline button; re-entry wipes any previous attempt.
func (b *Bot) handleAddNews(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	if err := b.dialog.Start(ctx, c.Sender().ID); err != nil {
		if errors.Is(err, dialog.ErrPermissionDenied) {
			return tghelpers.SendText(c, "❌ Not enough permissions.")
		}
		return err
	}
	if err := tghelpers.SendMD(c, promptImage, cancelAddMarkup()); err != nil {
		return err
	}
	tryRetract(c)
	return nil
}

// handleCancelAdd serves the inline cancel button under authoring prompts.
func (b *Bot) handleCancelAdd(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	if b.dialog.Cancel(ctx, c.Sender().ID) {
		if err := tghelpers.SendText(c, cancelledText); err != nil {
			return err
		}
	}
	return b.sendMainMenu(c)
}

// fsmAwaitImage consumes the first dialog input: a photo, /skip, or /cancel.
// Anything else re-prompts without advancing.
func (b *Bot) fsmAwaitImage(c tele.Context) error {
	if b.interceptCancel(c) {
		return nil
	}
	ctx := tghelpers.BuildContext(c)
	userID := c.Sender().ID

	if photo := c.Message().Photo; photo != nil {
		data, err := b.downloadPhoto(c, photo)
		if err != nil {
			// Transient transport failure: keep the stage, let the admin retry.
			_ = tghelpers.SendText(c, "⚠️ Could not read the photo, please send it again.")
			return err
		}
		if err := b.dialog.AttachImage(ctx, userID, data, ".jpg"); err != nil {
			_ = tghelpers.SendText(c, "⚠️ Could not store the photo. Post creation aborted.")
			return err
		}
		return tghelpers.SendText(c, promptTitle)
	}

	if strings.TrimSpace(c.Text()) == "/skip" {
		if err := b.dialog.SkipImage(ctx, userID); err != nil {
			return err
		}
		return tghelpers.SendText(c, promptTitle)
	}

	return tghelpers.SendText(c, promptImage)
}

// fsmAwaitTitle records the title; empty input re-prompts.
func (b *Bot) fsmAwaitTitle(c tele.Context) error {
	if b.interceptCancel(c) {
		return nil
	}
	ctx := tghelpers.BuildContext(c)

	err := b.dialog.SetTitle(ctx, c.Sender().ID, c.Text())
	if errors.Is(err, dialog.ErrEmptyTitle) {
		return tghelpers.SendText(c, promptTitle)
	}
	if err != nil {
		return err
	}
	return tghelpers.SendText(c, promptContent)
}

// fsmAwaitContent takes the body and commits the post. The dialog is closed
// either way; a storage failure is reported and never leaves it stuck.
func (b *Bot) fsmAwaitContent(c tele.Context) error {
	if b.interceptCancel(c) {
		return nil
	}
	ctx := tghelpers.BuildContext(c)

	if _, err := b.dialog.Finish(ctx, c.Sender().ID, c.Text()); err != nil {
		if errors.Is(err, dialog.ErrUnexpectedInput) {
			return tghelpers.SendText(c, promptContent)
		}
		_ = tghelpers.SendText(c, "⚠️ Could not save the post, please try again later.")
		return err
	}

	if err := tghelpers.SendText(c, "✅ Post published!"); err != nil {
		return err
	}
	return b.sendMainMenu(c)
}

// interceptCancel aborts the dialog on /cancel or the main-menu button from
// any stage.
func (b *Bot) interceptCancel(c tele.Context) bool {
	text := strings.TrimSpace(c.Text())
	if text != "/cancel" && text != mainMenuButton {
		return false
	}
	ctx := tghelpers.BuildContext(c)
	if b.dialog.Cancel(ctx, c.Sender().ID) {
		_ = tghelpers.SendText(c, cancelledText)
	}
	_ = b.sendMainMenu(c)
	return true
}

func (b *Bot) downloadPhoto(c tele.Context, photo *tele.Photo) ([]byte, error) {
	rc, err := c.Bot().File(&photo.File)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

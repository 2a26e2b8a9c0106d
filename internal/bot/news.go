package bot

import (
	"errors"
	"fmt"

	tele "gopkg.in/telebot.v4"

	"github.com/rabotyaga1336/doc-helper/core/telegram/callbacks"
	"github.com/rabotyaga1336/doc-helper/core/telegram/format"
	tghelpers "github.com/rabotyaga1336/doc-helper/core/telegram/helpers"
	"github.com/rabotyaga1336/doc-helper/internal/models"
	"github.com/rabotyaga1336/doc-helper/internal/storage"
)

// showNewsMenu renders the recent news list as a fresh message and retracts
// the menu it was opened from.
func (b *Bot) showNewsMenu(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	items, err := b.news.List(ctx)
	if err != nil {
		_ = tghelpers.SendText(c, "⚠️ Could not load the news, try again later.")
		return err
	}

	text := "📢 Latest news:"
	if len(items) == 0 {
		text = "📢 No news yet."
	}
	if err := tghelpers.SendMD(c, text, newsMenuMarkup(items, b.isAdmin(c))); err != nil {
		return err
	}
	tryRetract(c)
	return nil
}

// showNewsDetail renders one post with its photo when the backing file still
// exists, and falls back to text-only otherwise.
func (b *Bot) showNewsDetail(c tele.Context) error {
	id, err := callbacks.PayloadInt64(c)
	if err != nil {
		return tghelpers.SendText(c, "⚠️ Post not found.")
	}

	ctx := tghelpers.BuildContext(c)
	item, err := b.news.Get(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return tghelpers.SendText(c, "⚠️ Post not found.")
	}
	if err != nil {
		_ = tghelpers.SendText(c, "⚠️ Could not load the post, try again later.")
		return err
	}

	caption := formatNewsDetail(item)
	markup := newsDetailMarkup(id, b.isAdmin(c))

	if item.HasImage() && b.images.Exists(*item.ImagePath) {
		photo := &tele.Photo{
			File:    tele.FromDisk(b.images.Path(*item.ImagePath)),
			Caption: caption,
		}
		err = c.Send(photo, &tele.SendOptions{ParseMode: tele.ModeMarkdown, ReplyMarkup: markup})
	} else {
		err = tghelpers.SendMD(c, caption, markup)
	}
	if err != nil {
		return err
	}
	tryRetract(c)
	return nil
}

// confirmDelete renders the yes/no confirmation; the destructive action only
// fires on the second, distinct button press.
func (b *Bot) confirmDelete(c tele.Context) error {
	id, err := callbacks.PayloadInt64(c)
	if err != nil {
		return tghelpers.SendText(c, "⚠️ Post not found.")
	}
	if err := tghelpers.SendText(c, "Are you sure you want to delete this post?", &tele.SendOptions{ReplyMarkup: confirmDeleteMarkup(id)}); err != nil {
		return err
	}
	tryRetract(c)
	return nil
}

// deleteNews performs the deletion. Identity is re-checked here: the
// confirmation view itself is not privileged, the destructive press is.
func (b *Bot) deleteNews(c tele.Context) error {
	if !b.isAdmin(c) {
		return tghelpers.SendText(c, "❌ Not enough permissions.")
	}
	id, err := callbacks.PayloadInt64(c)
	if err != nil {
		return tghelpers.SendText(c, "⚠️ Post not found.")
	}

	ctx := tghelpers.BuildContext(c)
	err = b.news.Delete(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return tghelpers.SendText(c, "⚠️ Post not found.")
	}
	if err != nil {
		_ = tghelpers.SendText(c, "⚠️ Could not delete the post, try again later.")
		return err
	}

	_ = c.Respond(&tele.CallbackResponse{Text: "✅ Post deleted"})
	return b.showNewsMenu(c)
}

func formatNewsDetail(n models.News) string {
	title, _ := format.EscapeMarkdown(n.Title, format.MarkdownV1, "")
	body, _ := format.EscapeMarkdown(n.Content, format.MarkdownV1, "")
	return fmt.Sprintf("*%s*\n\n%s\n\n_%s_", title, body, n.CreatedAt.Format("02.01.2006 15:04"))
}

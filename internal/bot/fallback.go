package bot

import (
	tele "gopkg.in/telebot.v4"

	tghelpers "github.com/rabotyaga1336/doc-helper/core/telegram/helpers"
	"github.com/rabotyaga1336/doc-helper/core/telegram/ui"
)

type fallbacks struct {
	b *Bot
}

// Fallbacks returns the handlers used when an update matches no command,
// callback or authoring stage.
func (b *Bot) Fallbacks() ui.FallbackProvider {
	return fallbacks{b: b}
}

func (f fallbacks) UnknownText() tele.HandlerFunc {
	return func(c tele.Context) error {
		if c.Text() == mainMenuButton {
			return f.b.handleStart(c)
		}
		return tghelpers.SendText(c, "🤔 I did not understand that. Use /start to open the menu.")
	}
}

func (f fallbacks) UnknownDocument() tele.HandlerFunc {
	return func(c tele.Context) error {
		return tghelpers.SendText(c, "❓ I am not expecting a file right now.")
	}
}

func (f fallbacks) UnknownPhoto() tele.HandlerFunc {
	return func(c tele.Context) error {
		return tghelpers.SendText(c, "❓ I am not expecting a photo right now. Use /add_news to create a post.")
	}
}

func (f fallbacks) UnknownCallback() tele.HandlerFunc {
	return func(c tele.Context) error {
		_ = c.Respond(&tele.CallbackResponse{Text: "Unsupported action"})
		return nil
	}
}

package bot

import (
	tele "gopkg.in/telebot.v4"

	tghelpers "github.com/rabotyaga1336/doc-helper/core/telegram/helpers"
)

const mainMenuText = "🔹 Main menu:"

const helpText = "ℹ️ *What this bot can do*\n\n" +
	"📄 *Documents* — download application forms and templates.\n" +
	"📞 *Contacts* — department phone numbers and emails.\n" +
	"📢 *News* — the latest company news.\n\n" +
	"Use the 🏠 button to return to the main menu at any time."

// handleStart resets any authoring dialog and shows the main menu together
// with the persistent reply keyboard.
func (b *Bot) handleStart(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	if c.Sender() != nil {
		b.dialog.Cancel(ctx, c.Sender().ID)
	}
	if err := tghelpers.SendText(c, "Welcome! Choose an action:", &tele.SendOptions{ReplyMarkup: replyMenuMarkup()}); err != nil {
		return err
	}
	return b.sendMainMenu(c)
}

// handleMainMenu re-renders the main menu in place of the pressed message.
func (b *Bot) handleMainMenu(c tele.Context) error {
	return tghelpers.EditOrSendMD(c, mainMenuText, mainMenuMarkup(b.isAdmin(c)))
}

func (b *Bot) handleHelp(c tele.Context) error {
	return tghelpers.EditOrSendMD(c, helpText, backToMainMarkup())
}

func (b *Bot) sendMainMenu(c tele.Context) error {
	return tghelpers.SendMD(c, mainMenuText, mainMenuMarkup(b.isAdmin(c)))
}

package bot

import (
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/rabotyaga1336/doc-helper/core/telegram/format"
	tghelpers "github.com/rabotyaga1336/doc-helper/core/telegram/helpers"
)

// showContacts renders the department contact list as a single text view.
func (b *Bot) showContacts(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	contacts, err := b.contacts.List(ctx)
	if err != nil {
		_ = tghelpers.SendText(c, "⚠️ Could not load the contacts, try again later.")
		return err
	}

	var sb strings.Builder
	sb.WriteString("📞 Department contacts:\n")
	for _, entry := range contacts {
		sb.WriteString("\n🏢 ")
		sb.WriteString(entry.Department)
		sb.WriteString("\n📱 ")
		sb.WriteString(entry.Phone)
		sb.WriteString("\n✉️ ")
		sb.WriteString(format.DerefString(entry.Email, "—"))
		sb.WriteString("\n")
	}
	if len(contacts) == 0 {
		sb.WriteString("\nNo contacts available yet.")
	}

	// Plain parse mode: phones and emails may contain markdown specials.
	return c.EditOrSend(sb.String(), backToMainMarkup())
}

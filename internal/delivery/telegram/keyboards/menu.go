package keyboards

import (
	"gopkg.in/telebot.v3"
)

const (
	KeyConfirm = "confirm"
	KeyCancel  = "cancel"
)

var (
	BtnPeriod    = telebot.Btn{Text: "📅 Pay period"}
	BtnEmployees = telebot.Btn{Text: "👥 Employees"}
	BtnRollover  = telebot.Btn{Text: "🔁 New pay period"}
	BtnExport    = telebot.Btn{Text: "📄 Export PDF"}
)

// Confirm asks to confirm or cancel the action stored under token.
func Confirm(token string) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	yes := markup.Data("✅ Confirm", KeyConfirm, token)
	no := markup.Data("✖ Cancel", KeyCancel, token)
	markup.Inline(markup.Row(yes, no))
	return markup
}

func MainMenu() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{ResizeKeyboard: true}
	markup.Reply(
		markup.Row(markup.Text(BtnPeriod.Text), markup.Text(BtnEmployees.Text)),
		markup.Row(markup.Text(BtnRollover.Text), markup.Text(BtnExport.Text)),
	)
	return markup
}

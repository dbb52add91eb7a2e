package middleware

import (
	"gopkg.in/telebot.v3"
)

// EditOrSend edits the message behind a callback, falling back to a new
// message when there is nothing to edit.
func EditOrSend(c telebot.Context, text string, opts ...interface{}) error {
	if c.Callback() != nil {
		if err := c.Edit(text, opts...); err == nil {
			return nil
		}
	}
	return c.Send(text, opts...)
}

package middleware

import (
	"log"

	"gopkg.in/telebot.v3"
)

// AdminOnly lets through updates from the listed chats. An empty list
// allows everyone.
func AdminOnly(chatIDs []int64) telebot.MiddlewareFunc {
	allowed := make(map[int64]struct{}, len(chatIDs))
	for _, id := range chatIDs {
		allowed[id] = struct{}{}
	}
	return func(next telebot.HandlerFunc) telebot.HandlerFunc {
		return func(c telebot.Context) error {
			if Allowed(allowed, c) {
				return next(c)
			}
			log.Printf("[auth] rejected update from chat=%d", chatID(c))
			if c.Callback() != nil {
				return c.Respond(&telebot.CallbackResponse{Text: "Not allowed."})
			}
			return c.Send("You are not allowed to use this bot.")
		}
	}
}

func Allowed(allowed map[int64]struct{}, c telebot.Context) bool {
	if len(allowed) == 0 {
		return true
	}
	_, ok := allowed[chatID(c)]
	return ok
}

func chatID(c telebot.Context) int64 {
	if chat := c.Chat(); chat != nil {
		return chat.ID
	}
	if u := c.Sender(); u != nil {
		return u.ID
	}
	return 0
}

package router

import (
	"log"
	"strings"

	"gopkg.in/telebot.v3"
)

type HandlerFunc func(c telebot.Context, payload string) error

// CallbackRouter dispatches inline button callbacks by their unique key.
// Keys starting with "cal_" go to CalDelegate.
type CallbackRouter struct {
	handlers    map[string]HandlerFunc
	CalDelegate func(c telebot.Context, key, payload string) error
}

func New() *CallbackRouter {
	return &CallbackRouter{handlers: make(map[string]HandlerFunc)}
}

func (r *CallbackRouter) Register(key string, h HandlerFunc) {
	r.handlers[key] = h
}

func (r *CallbackRouter) Attach(bot *telebot.Bot) {
	bot.Handle(telebot.OnCallback, func(c telebot.Context) error {
		_, err := r.Dispatch(c)
		return err
	})
}

// Dispatch reports whether a handler took the callback.
func (r *CallbackRouter) Dispatch(c telebot.Context) (bool, error) {
	key, payload := Split(c.Data())
	log.Printf("[callback] key=%q payload=%q", key, payload)
	_ = c.Respond()
	return r.dispatch(c, key, payload)
}

func (r *CallbackRouter) dispatch(c telebot.Context, key, payload string) (bool, error) {
	if strings.HasPrefix(key, "cal_") {
		if r.CalDelegate != nil {
			return true, r.CalDelegate(c, key, payload)
		}
		return true, nil
	}
	if h, ok := r.handlers[key]; ok {
		return true, h(c, payload)
	}
	return false, nil
}

// Split separates raw callback data into key and payload. Telebot prefixes
// inline button data with "\f" and joins them with '|'.
func Split(raw string) (key, payload string) {
	raw = strings.TrimPrefix(raw, "\f")
	key, payload, _ = strings.Cut(raw, "|")
	return key, payload
}

// Package flows holds multi-step bot conversations built on callbacks.
package flows

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/telebot.v3"

	"timesheet-bot/internal/delivery/telegram/keyboards"
	"timesheet-bot/internal/delivery/telegram/middleware"
	"timesheet-bot/internal/delivery/telegram/router"
)

const DefaultConfirmTTL = 10 * time.Minute

// Action runs once the operator confirms it.
type Action func(c telebot.Context) error

type pending struct {
	chatID  int64
	action  Action
	expires time.Time
}

// Confirmations keeps destructive actions until they are confirmed or
// cancelled. Tokens are single use and bound to the chat that asked.
type Confirmations struct {
	mu      sync.Mutex
	pending map[string]pending
	ttl     time.Duration
	now     func() time.Time
}

func NewConfirmations(ttl time.Duration) *Confirmations {
	if ttl <= 0 {
		ttl = DefaultConfirmTTL
	}
	return &Confirmations{pending: make(map[string]pending), ttl: ttl, now: time.Now}
}

// Put stores action and returns its token.
func (s *Confirmations) Put(chatID int64, action Action) string {
	token := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for t, p := range s.pending {
		if now.After(p.expires) {
			delete(s.pending, t)
		}
	}
	s.pending[token] = pending{chatID: chatID, action: action, expires: now.Add(s.ttl)}
	return token
}

// Take removes the token and returns its action when it belongs to chatID
// and has not expired.
func (s *Confirmations) Take(token string, chatID int64) (Action, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pending[token]
	if !ok {
		return nil, false
	}
	if p.chatID != chatID {
		return nil, false
	}
	delete(s.pending, token)
	if s.now().After(p.expires) {
		return nil, false
	}
	return p.action, true
}

// Ask stores action and shows prompt with confirm and cancel buttons.
func (s *Confirmations) Ask(c telebot.Context, prompt string, action Action) error {
	token := s.Put(c.Chat().ID, action)
	return middleware.EditOrSend(c, prompt, keyboards.Confirm(token))
}

func RegisterConfirm(r *router.CallbackRouter, s *Confirmations) {
	r.Register(keyboards.KeyConfirm, func(c telebot.Context, payload string) error {
		action, ok := s.Take(payload, c.Chat().ID)
		if !ok {
			return middleware.EditOrSend(c, "This confirmation has expired.")
		}
		log.Printf("[confirm] chat=%d confirmed", c.Chat().ID)
		return action(c)
	})
	r.Register(keyboards.KeyCancel, func(c telebot.Context, payload string) error {
		s.Take(payload, c.Chat().ID)
		return middleware.EditOrSend(c, "Cancelled.")
	})
}

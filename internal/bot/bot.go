package bot

import (
	"context"
	"errors"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Ponivzagone/mailbox-poll/internal/logging"
	"github.com/Ponivzagone/mailbox-poll/internal/relay"
	"github.com/Ponivzagone/mailbox-poll/internal/timers"
)

const (
	helpText          = "Hi! Use /set <seconds> to set a timer"
	usageText         = "Usage: /set <seconds>"
	negativeText      = "Sorry we can not go back to future!"
	setText           = "Timer successfully set!"
	replacedText      = " Old one was removed."
	cancelledText     = "Timer successfully cancelled!"
	noActiveTimerText = "You have no active timer."
)

// Bot wires the chat commands to the timer registry. Commands from any chat
// other than the authorized one are dropped before dispatch.
type Bot struct {
	api      *tgbotapi.BotAPI
	chatID   int64
	registry *timers.Registry
	action   func()
}

func New(token string, chatID int64, registry *timers.Registry) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{api: api, chatID: chatID, registry: registry}, nil
}

// Bind sets the action installed by /set timers. Must be called before Run.
func (b *Bot) Bind(action func()) {
	b.action = action
}

// Sink returns the delivery destination for forwarded mail bodies: the
// authorized chat.
func (b *Bot) Sink() relay.Sink {
	return &chatSink{api: b.api, chatID: b.chatID}
}

// Run consumes updates over long polling until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		msg := update.Message
		if msg == nil || !msg.IsCommand() {
			continue
		}

		reply, ok := b.dispatch(msg.Chat.ID, msg.Command(), msg.CommandArguments())
		if !ok {
			continue
		}

		if _, err := b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, reply)); err != nil {
			logging.Log.Errorf("Error sending reply: %v", err)
		}
	}
}

// dispatch handles one command and composes the reply text. The second
// return reports whether the command was accepted for this chat at all.
func (b *Bot) dispatch(chatID int64, command, args string) (string, bool) {
	if chatID != b.chatID {
		return "", false
	}

	key := strconv.FormatInt(chatID, 10)

	switch command {
	case "start", "help":
		return helpText, true
	case "set":
		return b.setTimer(key, args), true
	case "unset":
		if b.registry.Unset(key) {
			return cancelledText, true
		}
		return noActiveTimerText, true
	default:
		return "", false
	}
}

func (b *Bot) setTimer(key, args string) string {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return usageText
	}

	seconds, err := strconv.Atoi(fields[0])
	if err != nil {
		return usageText
	}

	replaced, err := b.registry.Set(key, seconds, b.action)
	if errors.Is(err, timers.ErrNegativeInterval) {
		return negativeText
	} else if err != nil {
		return usageText
	}

	text := setText
	if replaced {
		text += replacedText
	}
	return text
}

type chatSink struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func (s *chatSink) Send(text string) error {
	_, err := s.api.Send(tgbotapi.NewMessage(s.chatID, text))
	return err
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Ponivzagone/mailbox-poll/internal/bot"
	"github.com/Ponivzagone/mailbox-poll/internal/config"
	imapclient "github.com/Ponivzagone/mailbox-poll/internal/imap"
	"github.com/Ponivzagone/mailbox-poll/internal/logging"
	"github.com/Ponivzagone/mailbox-poll/internal/models"
	"github.com/Ponivzagone/mailbox-poll/internal/relay"
	"github.com/Ponivzagone/mailbox-poll/internal/timers"
)

func main() {
	settings, err := config.FromArgs("mailbox-poll", os.Args[1:])
	if err != nil {
		logging.Log.Fatalf("Error parsing flags: %v", err)
	}

	if settings.Folder == "" {
		folder, err := selectFolder(settings)
		if err != nil {
			logging.Log.Fatalf("Error selecting folder: %v", err)
		}
		settings.Folder = folder
	}

	display, err := imapclient.DecodeFolderName(settings.Folder)
	if err != nil {
		display = settings.Folder
	}
	logging.Log.Infof("Relaying unseen mail from folder %q on %s to chat %d",
		display, settings.Mail, settings.ChatID)

	registry := timers.NewRegistry()

	b, err := bot.New(settings.Token, settings.ChatID, registry)
	if err != nil {
		logging.Log.Fatalf("Error creating telegram bot: %v", err)
	}

	sink := b.Sink()
	b.Bind(func() {
		relay.PollOnce(settings, sink)
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b.Run(ctx)
	registry.StopAll()
}

// selectFolder lists the mailbox folders and asks the operator to pick one,
// using a throwaway session. The chosen name keeps its wire form.
func selectFolder(settings *models.Settings) (string, error) {
	c := imapclient.NewStandardClient()
	if err := c.Connect(settings.Mail); err != nil {
		return "", err
	}
	defer func() {
		_ = c.Release()
	}()

	if err := c.Login(settings.Login, settings.Password); err != nil {
		return "", err
	}

	folders, err := c.ListFolders()
	if err != nil {
		return "", err
	}

	return imapclient.PickFolder(folders, os.Stdin, os.Stdout), nil
}

package config

import (
	"fmt"

	"github.com/spf13/pflag"

	imapclient "github.com/Ponivzagone/mailbox-poll/internal/imap"
	"github.com/Ponivzagone/mailbox-poll/internal/models"
)

// FromArgs builds Settings from command-line arguments. Every flag except
// --folder is required; a missing folder is left empty so the caller can
// resolve it interactively. The folder name is converted to its wire
// (modified UTF-7) form at parse time.
func FromArgs(name string, args []string) (*models.Settings, error) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)

	token := fs.StringP("token", "t", "", "telegram bot token")
	chat := fs.Int64P("chat", "c", 0, "private telegram chat id")
	mail := fs.StringP("mail", "m", "", "mailbox host:port")
	login := fs.StringP("login", "l", "", "mailbox login")
	password := fs.StringP("password", "p", "", "mailbox password")
	folder := fs.StringP("folder", "f", "", "mailbox folder to poll")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	settings := &models.Settings{
		Token:    *token,
		ChatID:   *chat,
		Mail:     *mail,
		Login:    *login,
		Password: *password,
	}

	switch {
	case settings.Token == "":
		return nil, fmt.Errorf("missing required flag --token")
	case settings.ChatID == 0:
		return nil, fmt.Errorf("missing required flag --chat")
	case settings.Mail == "":
		return nil, fmt.Errorf("missing required flag --mail")
	case settings.Login == "":
		return nil, fmt.Errorf("missing required flag --login")
	case settings.Password == "":
		return nil, fmt.Errorf("missing required flag --password")
	}

	if *folder != "" {
		encoded, err := imapclient.EncodeFolderName(*folder)
		if err != nil {
			return nil, fmt.Errorf("encoding folder name: %w", err)
		}
		settings.Folder = encoded
	}

	return settings, nil
}

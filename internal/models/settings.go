package models

// Settings holds the relay configuration assembled from command-line flags.
// It is built once at startup and never mutated afterwards.
type Settings struct {
	Token    string // Telegram bot token
	ChatID   int64  // the only chat allowed to drive the bot
	Mail     string // IMAP server host:port
	Login    string
	Password string
	Folder   string // mailbox folder name in IMAP modified UTF-7 form
}

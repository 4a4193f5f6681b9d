package relay

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	imapclient "github.com/Ponivzagone/mailbox-poll/internal/imap"
	"github.com/Ponivzagone/mailbox-poll/internal/logging"
	"github.com/Ponivzagone/mailbox-poll/internal/mailparse"
	"github.com/Ponivzagone/mailbox-poll/internal/models"
)

// Sink is the outbound delivery destination, a single chat.
type Sink interface {
	Send(text string) error
}

// Scan runs one scan-and-forward pass over folder on an already-open client:
// select, search unseen, then fetch/parse/forward each message in server
// order. Each body is sent as soon as it is extracted; nothing is buffered.
//
// A search failure is forwarded to the sink as a diagnostic message instead
// of mailbox content. A message without a text/plain part aborts the rest of
// the pass; the remaining messages stay unseen and are picked up whole on
// the next cycle.
func Scan(c imapclient.Client, folder string, sink Sink, log *logrus.Entry) error {
	if err := c.SelectFolder(folder); err != nil {
		return err
	}

	ids, err := c.SearchUnseen()
	if err != nil {
		log.Warnf("Search failed, forwarding diagnostic: %v", err)
		if sendErr := sink.Send(err.Error()); sendErr != nil {
			log.Errorf("Error forwarding search diagnostic: %v", sendErr)
		}
		return nil
	}

	for _, id := range ids {
		msg, err := c.FetchMessage(id)
		if err != nil {
			return err
		}

		email, err := mailparse.Parse(msg)
		if err != nil {
			return err
		}

		if err := sink.Send(email.BodyText); err != nil {
			return err
		}
		log.WithField("msg_trace_id", email.TraceID).
			Infof("Forwarded message %d from %s", id, email.From)
	}

	return nil
}

// PollOnce opens a mailbox session, scans the configured folder once and
// releases the session. One invocation owns the whole connection lifecycle;
// any failure terminates only this invocation.
func PollOnce(settings *models.Settings, sink Sink) {
	locallog := logging.Log.WithField("trace_id", uuid.New().String())

	c := imapclient.NewStandardClient()
	if err := c.Connect(settings.Mail); err != nil {
		locallog.Errorf("IMAP connection error: %v", err)
		return
	}
	defer func() {
		if err := c.Release(); err != nil {
			locallog.Errorf("Logout error: %v", err)
		}
	}()

	if err := c.Login(settings.Login, settings.Password); err != nil {
		locallog.Errorf("Login error: %v", err)
		return
	}

	if err := Scan(c, settings.Folder, sink, locallog); err != nil {
		locallog.Errorf("Scan error: %v", err)
	}
}

package imap

import (
	"fmt"
	"time"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
)

type StandardClient struct {
	conn    *client.Client
	timeout time.Duration
}

// NewStandardClient creates a new StandardClient with a default timeout of 30 seconds for IMAP operations
func NewStandardClient() *StandardClient {
	return &StandardClient{
		timeout: 30 * time.Second,
	}
}

// Connect establishes a secure connection to the IMAP server using TLS. It returns an error wrapping ErrConnection if the server cannot be reached.
func (c *StandardClient) Connect(server string) error {
	conn, err := client.DialTLS(server, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	conn.Timeout = c.timeout
	c.conn = conn
	return nil
}

// Login authenticates with the given credentials. A rejection wraps ErrAuthentication.
func (c *StandardClient) Login(user, password string) error {
	if c.conn == nil {
		return fmt.Errorf("%w: not connected", ErrConnection)
	}
	if err := c.conn.Login(user, password); err != nil {
		return fmt.Errorf("%w: %v", ErrAuthentication, err)
	}
	return nil
}

// SelectFolder selects the folder for subsequent operations. The name is
// given in its wire (modified UTF-7) form; go-imap encodes names itself, so
// it is decoded here before issuing SELECT.
func (c *StandardClient) SelectFolder(name string) error {
	if c.conn == nil {
		return fmt.Errorf("%w: not connected", ErrConnection)
	}
	decoded, err := DecodeFolderName(name)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrFolder, name, err)
	}
	if _, err := c.conn.Select(decoded, false); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrFolder, name, err)
	}
	return nil
}

// SearchUnseen returns the sequence numbers of all unseen messages in the
// selected folder, in the order the server supplies them.
func (c *StandardClient) SearchUnseen() ([]uint32, error) {
	if c.conn == nil {
		return nil, fmt.Errorf("%w: not connected", ErrConnection)
	}

	criteria := imap.NewSearchCriteria()
	criteria.WithoutFlags = []string{imap.SeenFlag}

	ids, err := c.conn.Search(criteria)
	if err != nil {
		return nil, fmt.Errorf("error searching for unseen messages: %w", err)
	}

	return ids, nil
}

// FetchMessage retrieves the full message with the given sequence number.
// The fetch is non-peek, so the server marks the message seen as a side effect.
func (c *StandardClient) FetchMessage(seqNum uint32) (*imap.Message, error) {
	if c.conn == nil {
		return nil, fmt.Errorf("%w: not connected", ErrConnection)
	}

	seqSet := new(imap.SeqSet)
	seqSet.AddNum(seqNum)

	section := &imap.BodySectionName{}
	items := []imap.FetchItem{section.FetchItem(), imap.FetchInternalDate}

	messages := make(chan *imap.Message, 1)
	done := make(chan error, 1)

	go func() {
		done <- c.conn.Fetch(seqSet, items, messages)
	}()

	var msg *imap.Message
	for m := range messages {
		msg = m
	}

	if err := <-done; err != nil {
		return nil, fmt.Errorf("error fetching message %d: %w", seqNum, err)
	}

	if msg == nil {
		return nil, fmt.Errorf("no message retrieved for %d", seqNum)
	}

	return msg, nil
}

// ListFolders returns every folder name on the server, in wire (modified
// UTF-7) form.
func (c *StandardClient) ListFolders() ([]string, error) {
	if c.conn == nil {
		return nil, fmt.Errorf("%w: not connected", ErrConnection)
	}

	mailboxes := make(chan *imap.MailboxInfo, 10)
	done := make(chan error, 1)

	go func() {
		done <- c.conn.List("", "*", mailboxes)
	}()

	var names []string
	for m := range mailboxes {
		// go-imap hands back decoded names; keep the wire form as the
		// canonical representation.
		encoded, err := EncodeFolderName(m.Name)
		if err != nil {
			encoded = m.Name
		}
		names = append(names, encoded)
	}

	if err := <-done; err != nil {
		return nil, fmt.Errorf("error listing folders: %w", err)
	}

	return names, nil
}

// Release gracefully closes the selected folder, then logs out. A close
// failure must not prevent the logout, so its error is discarded. Call
// exactly once per successful Connect.
func (c *StandardClient) Release() error {
	if c.conn == nil {
		return nil
	}
	_ = c.conn.Close()
	return c.conn.Logout()
}

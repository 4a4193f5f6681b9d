package imap

import (
	"errors"

	"github.com/emersion/go-imap"
)

var (
	// ErrConnection marks transport or host failures while reaching the server.
	ErrConnection = errors.New("imap: connection failed")
	// ErrAuthentication marks a credential rejection during login.
	ErrAuthentication = errors.New("imap: authentication rejected")
	// ErrFolder marks a folder that does not exist or cannot be selected.
	ErrFolder = errors.New("imap: folder selection failed")
)

type Client interface {
	Connect(server string) error
	Login(user, password string) error
	SelectFolder(name string) error
	SearchUnseen() ([]uint32, error)
	FetchMessage(seqNum uint32) (*imap.Message, error)
	ListFolders() ([]string, error)
	Release() error
}

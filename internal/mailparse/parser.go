package mailparse

import (
	"fmt"
	"io"
	"mime"
	"regexp"
	"strings"

	"github.com/Ponivzagone/mailbox-poll/internal/models"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-message/mail"
	"github.com/google/uuid"

	_ "github.com/emersion/go-message/charset"
)

// MissingBodyError reports a fetched message carrying no text/plain part.
// The relay forwards only plain text, so such a message cannot be delivered.
type MissingBodyError struct {
	SeqNum    uint32
	PartTypes []string
}

func (e *MissingBodyError) Error() string {
	return fmt.Sprintf("message %d has no text/plain part (parts: %s)",
		e.SeqNum, strings.Join(e.PartTypes, ", "))
}

// Parse converts a fetched IMAP message into a normalized Email. It returns
// a *MissingBodyError when no inline text/plain part exists.
func Parse(msg *imap.Message) (*models.Email, error) {
	section := &imap.BodySectionName{}
	r := msg.GetBody(section)
	if r == nil {
		return nil, io.EOF
	}

	mr, err := mail.CreateReader(r)
	if err != nil {
		return nil, err
	}

	email := &models.Email{
		SeqNum:       msg.SeqNum,
		InternalDate: msg.InternalDate,
		TraceID:      uuid.New().String(),
	}

	header := mr.Header
	email.From = extractEmailAddress(header.Get("From"))

	decodedSubject, err := DecodeHeader(header.Get("Subject"))
	if err != nil {
		return nil, err
	}
	email.Subject = decodedSubject

	hasPlain := false
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		switch h := p.Header.(type) {
		case *mail.InlineHeader:
			contentType, _, err := h.ContentType()
			if err != nil {
				continue
			}
			email.PartTypes = append(email.PartTypes, contentType)
			if contentType == "text/plain" {
				body, err := io.ReadAll(p.Body)
				if err != nil {
					return nil, err
				}
				email.BodyText = string(body)
				hasPlain = true
			}
		}
	}

	if !hasPlain {
		return nil, &MissingBodyError{SeqNum: msg.SeqNum, PartTypes: email.PartTypes}
	}

	return email, nil
}

// Simple regex to extract email address from "From" header, which may contain name and email
func extractEmailAddress(fromHeader string) string {
	re := regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	return re.FindString(fromHeader)
}

// DecodeHeader decodes MIME-encoded headers (e.g., "=?UTF-8?B?...?=") to plain text
func DecodeHeader(encoded string) (string, error) {
	decoder := new(mime.WordDecoder)
	decoded, err := decoder.DecodeHeader(encoded)
	if err != nil {
		return "", err
	}
	return decoded, nil
}

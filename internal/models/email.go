package models

import "time"

// Email represents a normalized parsed email message
type Email struct {
	SeqNum       uint32
	From         string
	Subject      string
	BodyText     string
	PartTypes    []string // MIME content types of the message parts, in walk order
	InternalDate time.Time
	TraceID      string
}

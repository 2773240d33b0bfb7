package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a requested entry doesn't exist
	ErrNotFound = errors.New("not found")
	// ErrInvalidEmail is returned when an email cannot be composed
	ErrInvalidEmail = errors.New("invalid email")
)

// Storage is the read/write capability behind the documentation and email tools.
type Storage interface {
	// GetDocumentation returns the project documentation entry.
	GetDocumentation(ctx context.Context) (*Entry, error)

	// GetEmails returns the current email entry.
	GetEmails(ctx context.Context) (*Entry, error)

	// WriteEmail accepts an outgoing email. Implementations may discard it.
	WriteEmail(ctx context.Context, email *Email) error

	Close() error
}

// Entry is a stored documentation or email record as returned to tools.
type Entry struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Source string `json:"source"`
}

// Email is an outgoing message written through the write_email tool.
type Email struct {
	ID        string // set by stores that persist
	MessageID string // RFC 5322 Message-ID, set by stores that compose
	Recipient string
	Subject   string
	Body      string // markdown
	CreatedAt time.Time
}

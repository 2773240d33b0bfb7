package storage

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-message/mail"
	"github.com/yuin/goldmark"
)

// ComposeOptions holds what is needed to build an RFC 5322 message.
type ComposeOptions struct {
	From    string // "Name <addr@host>" or "addr@host"
	To      string
	Subject string
	Body    string // markdown
	Date    time.Time
}

// ComposeMessage builds a multipart/alternative message with a text/plain
// part holding the markdown source and a text/html rendering of it. It
// returns the message bytes and its Message-ID.
func ComposeMessage(opts ComposeOptions) ([]byte, string, error) {
	var h mail.Header

	date := opts.Date
	if date.IsZero() {
		date = time.Now()
	}
	h.SetDate(date)
	if err := h.GenerateMessageID(); err != nil {
		return nil, "", fmt.Errorf("generate message-id: %w", err)
	}
	h.SetSubject(opts.Subject)

	from, err := mail.ParseAddress(opts.From)
	if err != nil {
		return nil, "", fmt.Errorf("%w: from address %q: %v", ErrInvalidEmail, opts.From, err)
	}
	h.SetAddressList("From", []*mail.Address{from})

	to, err := mail.ParseAddress(strings.TrimSpace(opts.To))
	if err != nil {
		return nil, "", fmt.Errorf("%w: recipient %q: %v", ErrInvalidEmail, opts.To, err)
	}
	h.SetAddressList("To", []*mail.Address{to})

	messageID, err := h.MessageID()
	if err != nil {
		return nil, "", fmt.Errorf("read message-id: %w", err)
	}

	var buf bytes.Buffer
	mw, err := mail.CreateWriter(&buf, h)
	if err != nil {
		return nil, "", fmt.Errorf("create mail writer: %w", err)
	}

	tw, err := mw.CreateInline()
	if err != nil {
		return nil, "", fmt.Errorf("create inline writer: %w", err)
	}

	if err := writePart(tw, "text/plain; charset=utf-8", opts.Body); err != nil {
		return nil, "", fmt.Errorf("write plain text: %w", err)
	}

	var html bytes.Buffer
	if err := goldmark.Convert([]byte(opts.Body), &html); err != nil {
		return nil, "", fmt.Errorf("render markdown to HTML: %w", err)
	}
	if err := writePart(tw, "text/html; charset=utf-8", html.String()); err != nil {
		return nil, "", fmt.Errorf("write html: %w", err)
	}

	if err := tw.Close(); err != nil {
		return nil, "", fmt.Errorf("close inline writer: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("close mail writer: %w", err)
	}

	return buf.Bytes(), messageID, nil
}

func writePart(tw *mail.InlineWriter, contentType, content string) error {
	var ph mail.InlineHeader
	ph.Set("Content-Type", contentType)
	pw, err := tw.CreatePart(ph)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(pw, content); err != nil {
		return err
	}
	return pw.Close()
}

// normalizeAddress reduces "Name <Addr@Host>" to "addr@host" so stored
// recipients compare equal however they were written.
func normalizeAddress(s string) string {
	s = strings.TrimSpace(s)
	if addr, err := mail.ParseAddress(s); err == nil {
		s = addr.Address
	}
	return strings.ToLower(s)
}

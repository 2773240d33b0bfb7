package storage

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-message/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeMessage(t *testing.T) {
	date := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	raw, messageID, err := ComposeMessage(ComposeOptions{
		From:    "Workspace <workspace@localhost>",
		To:      "grace@example.com",
		Subject: "Release notes",
		Body:    "# v1.2\n\n- faster *search*",
		Date:    date,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, messageID)

	mr, err := mail.CreateReader(bytes.NewReader(raw))
	require.NoError(t, err)

	subject, err := mr.Header.Subject()
	require.NoError(t, err)
	assert.Equal(t, "Release notes", subject)

	to, err := mr.Header.AddressList("To")
	require.NoError(t, err)
	require.Len(t, to, 1)
	assert.Equal(t, "grace@example.com", to[0].Address)

	gotDate, err := mr.Header.Date()
	require.NoError(t, err)
	assert.True(t, date.Equal(gotDate))

	parts := map[string]string{}
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)

		h, ok := p.Header.(*mail.InlineHeader)
		require.True(t, ok)
		ct, _, err := h.ContentType()
		require.NoError(t, err)
		body, err := io.ReadAll(p.Body)
		require.NoError(t, err)
		parts[ct] = strings.ReplaceAll(string(body), "\r\n", "\n")
	}

	assert.Equal(t, "# v1.2\n\n- faster *search*", parts["text/plain"])
	assert.True(t, strings.Contains(parts["text/html"], "<h1>v1.2</h1>"))
	assert.True(t, strings.Contains(parts["text/html"], "<em>search</em>"))
}

func TestComposeMessageInvalidAddresses(t *testing.T) {
	_, _, err := ComposeMessage(ComposeOptions{From: "bad", To: "ok@example.com"})
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, _, err = ComposeMessage(ComposeOptions{From: DefaultSender, To: ""})
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

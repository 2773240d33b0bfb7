package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/gnews-mcp/internal/config"
	"github.com/dshills/gnews-mcp/internal/gnews"
	"github.com/dshills/gnews-mcp/internal/storage"
)

func TestVersionCmd(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Version: dev")
	assert.Contains(t, out.String(), "SQLite Driver:")
}

func TestServeCmd_MissingAPIKey(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "")
	t.Setenv(config.EnvLogLevel, "error")

	root := newRootCmd()
	root.SetArgs([]string{"serve"})
	err := root.Execute()
	assert.ErrorIs(t, err, gnews.ErrMissingAPIKey)
}

func TestServeCmd_UnknownTransport(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "k")
	t.Setenv(config.EnvLogLevel, "error")

	root := newRootCmd()
	root.SetArgs([]string{"serve", "--transport", "carrier-pigeon"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown transport")
}

func TestConfigFlag(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		root := newRootCmd()
		root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml"), "serve"})
		assert.Error(t, root.Execute())
	})

	t.Run("invalid storage driver", func(t *testing.T) {
		t.Setenv(config.EnvStorageDriver, "")
		path := filepath.Join(t.TempDir(), "gnews.yaml")
		require.NoError(t, os.WriteFile(path, []byte("storage:\n  driver: redis\n"), 0o600))

		root := newRootCmd()
		root.SetArgs([]string{"--config", path, "docs"})
		err := root.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown storage driver")
	})
}

func TestServeCmd_Stdio(t *testing.T) {
	var gotKey atomic.Value
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey.Store(r.URL.Query().Get("apikey"))
		_, _ = w.Write([]byte(`{"totalArticles":7,"articles":[{"title":"from stdio"}]}`))
	}))
	defer upstream.Close()

	t.Setenv(config.EnvAPIKey, "cli-key")
	t.Setenv(config.EnvBaseURL, upstream.URL)
	t.Setenv(config.EnvLogLevel, "error")

	in := strings.NewReader(strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","capabilities":{},"clientInfo":{"name":"cli-test","version":"0"}}}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"get_top_headlines","arguments":{"category":"science"}}}`,
	}, "\n") + "\n")
	var out bytes.Buffer

	root := newRootCmd()
	root.SetIn(in)
	root.SetOut(&out)
	root.SetArgs([]string{"serve", "--transport", "stdio"})
	require.NoError(t, root.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, out.String(), `"gnews-server"`)
	assert.Contains(t, out.String(), `from stdio`)
	assert.Contains(t, out.String(), `science`)
	assert.Equal(t, "cli-key", gotKey.Load())
}

func sqliteEnv(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workspace.db")
	t.Setenv(config.EnvStorageDriver, config.StorageSQLite)
	t.Setenv(config.EnvStoragePath, path)
	t.Setenv(config.EnvLogLevel, "error")
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestDocsAddCmd(t *testing.T) {
	path := sqliteEnv(t)

	out, err := run(t, "docs", "add", "--title", "Runbook", "--body", "Restart with `make restart`.")
	require.NoError(t, err)
	assert.Contains(t, out, `"Runbook" stored`)

	store, err := storage.NewSQLiteStorage(path, "")
	require.NoError(t, err)
	defer store.Close()

	doc, err := store.GetDocumentation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Runbook", doc.Title)
	assert.Equal(t, "Restart with `make restart`.", doc.Body)
}

func TestDocsAddCmd_RequiresSQLite(t *testing.T) {
	t.Setenv(config.EnvStorageDriver, config.StorageMock)
	t.Setenv(config.EnvLogLevel, "error")

	_, err := run(t, "docs", "add", "--title", "t", "--body", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires the sqlite storage driver")
}

func TestEmailsCmds(t *testing.T) {
	path := sqliteEnv(t)

	store, err := storage.NewSQLiteStorage(path, "")
	require.NoError(t, err)
	email := &storage.Email{Recipient: "Ops <ops@example.com>", Subject: "Deploy", Body: "Rolled out **v2**."}
	require.NoError(t, store.WriteEmail(context.Background(), email))
	require.NoError(t, store.Close())

	t.Run("list all", func(t *testing.T) {
		out, err := run(t, "emails", "list")
		require.NoError(t, err)
		assert.Contains(t, out, email.ID)
		assert.Contains(t, out, "Total: 2 emails")
	})

	t.Run("list by recipient", func(t *testing.T) {
		out, err := run(t, "emails", "list", "--recipient", "OPS@example.com")
		require.NoError(t, err)
		assert.Contains(t, out, "Subject: Deploy")
		assert.Contains(t, out, "Total: 1 emails")

		out, err = run(t, "emails", "list", "--recipient", "nobody@example.com")
		require.NoError(t, err)
		assert.Contains(t, out, "No emails found")
	})

	t.Run("show", func(t *testing.T) {
		out, err := run(t, "emails", "show", email.ID)
		require.NoError(t, err)
		assert.Contains(t, out, "Subject: Deploy")
		assert.Contains(t, out, "multipart/alternative")
		assert.Contains(t, out, email.MessageID)
	})

	t.Run("show unknown id", func(t *testing.T) {
		_, err := run(t, "emails", "show", "missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

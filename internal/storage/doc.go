// Package storage provides the documentation/email store behind the
// workspace MCP tools.
//
// The tools depend only on the Storage interface, so the backing store can be
// swapped without touching tool registration. Two implementations exist:
//
//   - MockStorage returns fixed literal payloads and discards writes. It is
//     the default and what the workspace servers ship with.
//   - SQLiteStorage persists written emails (with a composed RFC 5322 copy)
//     and serves the most recent documentation and email rows.
//
// # Build Modes
//
// The SQLite driver is selected at build time, as in the rest of this repo:
//
//	CGO_ENABLED=1 go build -tags sqlite_cgo ./...   // github.com/mattn/go-sqlite3
//	CGO_ENABLED=0 go build -tags purego ./...       // modernc.org/sqlite
//
// # Schema
//
// Migrations are versioned with semantic versions and recorded in the
// schema_version table; ApplyMigrations is idempotent:
//
//	documents(id, title, body, source, created_at)
//	emails(id, message_id, sender, recipient, subject, body, raw, created_at)
//
// Version 1.0.0 seeds one documentation row and one email row so a fresh
// database answers reads the same way the mock does.
//
// # Usage
//
//	store, err := storage.NewSQLiteStorage("/var/lib/gnews-mcp/workspace.db", storage.DefaultSender)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	doc, err := store.GetDocumentation(ctx)
//	err = store.WriteEmail(ctx, &storage.Email{Recipient: "a@example.com", Subject: "Hi", Body: "**hello**"})
package storage

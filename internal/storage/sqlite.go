package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SQLiteSource marks entries served by SQLiteStorage.
const SQLiteSource = "sqlite"

// DefaultSender is the From address used when none is configured.
const DefaultSender = "MCP Workspace <workspace@localhost>"

// SQLiteStorage implements Storage on a SQLite database
type SQLiteStorage struct {
	db     *sql.DB
	sender string
	now    func() time.Time
}

// openDatabase opens a SQLite database with appropriate settings
func openDatabase(dbPath string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite benefits from single writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	return db, nil
}

// NewSQLiteStorage opens dbPath and applies migrations. sender is the From
// address for composed emails; empty means DefaultSender.
func NewSQLiteStorage(dbPath, sender string) (*SQLiteStorage, error) {
	db, err := openDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := ApplyMigrations(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	if sender == "" {
		sender = DefaultSender
	}
	return &SQLiteStorage{db: db, sender: sender, now: time.Now}, nil
}

// Close closes the database connection
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// GetDocumentation returns the most recently added documentation row.
func (s *SQLiteStorage) GetDocumentation(ctx context.Context) (*Entry, error) {
	query := `
		SELECT title, body, source
		FROM documents
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`
	var entry Entry
	err := s.db.QueryRowContext(ctx, query).Scan(&entry.Title, &entry.Body, &entry.Source)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("documentation: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get documentation: %w", err)
	}
	return &entry, nil
}

// AddDocumentation stores a documentation entry; it becomes the one served.
func (s *SQLiteStorage) AddDocumentation(ctx context.Context, title, body string) error {
	query := `INSERT INTO documents (title, body, source, created_at) VALUES (?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, query, title, body, SQLiteSource, s.now().UnixNano()); err != nil {
		return fmt.Errorf("failed to add documentation: %w", err)
	}
	return nil
}

// GetEmails returns the most recently written email as an entry.
func (s *SQLiteStorage) GetEmails(ctx context.Context) (*Entry, error) {
	query := `
		SELECT subject, body
		FROM emails
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`
	var entry Entry
	err := s.db.QueryRowContext(ctx, query).Scan(&entry.Title, &entry.Body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("emails: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get emails: %w", err)
	}
	entry.Source = SQLiteSource
	return &entry, nil
}

// WriteEmail composes email as an RFC 5322 message and stores it.
// ID, MessageID and CreatedAt are filled in on success.
func (s *SQLiteStorage) WriteEmail(ctx context.Context, email *Email) error {
	now := s.now()
	raw, messageID, err := ComposeMessage(ComposeOptions{
		From:    s.sender,
		To:      email.Recipient,
		Subject: email.Subject,
		Body:    email.Body,
		Date:    now,
	})
	if err != nil {
		return err
	}

	id := uuid.NewString()
	query := `
		INSERT INTO emails (id, message_id, sender, recipient, subject, body, raw, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	if _, err := s.db.ExecContext(ctx, query,
		id, messageID, s.sender, normalizeAddress(email.Recipient), email.Subject, email.Body, raw, now.UnixNano()); err != nil {
		return fmt.Errorf("failed to write email: %w", err)
	}

	email.ID = id
	email.MessageID = messageID
	email.CreatedAt = now
	return nil
}

// GetEmail loads a written email by id, including its raw message.
func (s *SQLiteStorage) GetEmail(ctx context.Context, id string) (*Email, []byte, error) {
	query := `
		SELECT id, COALESCE(message_id, ''), recipient, subject, body, raw, created_at
		FROM emails
		WHERE id = ?
	`
	var (
		email   Email
		raw     []byte
		created int64
	)
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&email.ID, &email.MessageID, &email.Recipient, &email.Subject, &email.Body, &raw, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get email: %w", err)
	}
	email.CreatedAt = time.Unix(0, created)
	return &email, raw, nil
}

// ListEmails returns stored emails newest first, seed row included. A
// non-empty recipient restricts the list to that address.
func (s *SQLiteStorage) ListEmails(ctx context.Context, recipient string) ([]Email, error) {
	query := `
		SELECT id, COALESCE(message_id, ''), recipient, subject, body, created_at
		FROM emails
	`
	var args []any
	if recipient != "" {
		query += ` WHERE recipient = ?`
		args = append(args, normalizeAddress(recipient))
	}
	query += ` ORDER BY created_at DESC, rowid DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list emails: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var emails []Email
	for rows.Next() {
		var (
			email   Email
			created int64
		)
		if err := rows.Scan(&email.ID, &email.MessageID, &email.Recipient, &email.Subject, &email.Body, &created); err != nil {
			return nil, fmt.Errorf("failed to scan email: %w", err)
		}
		email.CreatedAt = time.Unix(0, created)
		emails = append(emails, email)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list emails: %w", err)
	}
	return emails, nil
}

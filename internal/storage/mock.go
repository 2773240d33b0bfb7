package storage

import (
	"context"
	"log/slog"
)

// MockSource marks entries served by MockStorage.
const MockSource = "mocked_database"

// Mock payloads served regardless of input
const (
	MockTitle             = "How to Use MCP Servers"
	MockDocumentationBody = "This is a mocked documentation entry from the database. MCP servers expose tools and resources for AI agents."
	MockEmailBody         = "This is a mocked email entry from the database. MCP servers expose tools and resources for AI agents."
)

// MockStorage serves fixed payloads and has no durable side effects.
type MockStorage struct {
	logger *slog.Logger
}

// NewMockStorage creates a MockStorage.
func NewMockStorage(logger *slog.Logger) *MockStorage {
	if logger == nil {
		logger = slog.Default()
	}
	return &MockStorage{logger: logger}
}

func (m *MockStorage) GetDocumentation(ctx context.Context) (*Entry, error) {
	return &Entry{Title: MockTitle, Body: MockDocumentationBody, Source: MockSource}, nil
}

func (m *MockStorage) GetEmails(ctx context.Context) (*Entry, error) {
	return &Entry{Title: MockTitle, Body: MockEmailBody, Source: MockSource}, nil
}

// WriteEmail logs the email and drops it.
func (m *MockStorage) WriteEmail(ctx context.Context, email *Email) error {
	m.logger.Debug("mock email discarded", "recipient", email.Recipient, "subject", email.Subject)
	return nil
}

func (m *MockStorage) Close() error { return nil }

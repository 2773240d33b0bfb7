package types

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors for parameter validation
var (
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrUnsupportedCountry  = errors.New("unsupported country")
	ErrUnsupportedCategory = errors.New("unsupported category")
	ErrUnsupportedSortKey  = errors.New("unsupported sortby")
	ErrArticleCountRange   = errors.New("max articles must be between 1 and 100")
	ErrPageRange           = errors.New("page must be 1 or greater")
	ErrEmptyQuery          = errors.New("query cannot be empty")
)

// ValidationError reports a tool argument rejected before any network call.
type ValidationError struct {
	Field     string
	Value     any
	Supported []string // allow-list for enumerated fields
	Err       error
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	switch {
	case len(e.Supported) > 0:
		fmt.Fprintf(&b, "%s '%v'. Supported values: %s", capitalize(e.Err.Error()), e.Value, strings.Join(e.Supported, ", "))
	case e.Value != nil:
		fmt.Fprintf(&b, "%s (got %v)", capitalize(e.Err.Error()), e.Value)
	default:
		b.WriteString(capitalize(e.Err.Error()))
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return e.Err }

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

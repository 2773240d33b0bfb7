package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguageAllowList(t *testing.T) {
	for _, code := range SupportedLanguages() {
		p := SearchParams{Query: "news", Lang: Language(code)}
		assert.NoError(t, p.Validate(), "language %s should be accepted", code)
	}

	for _, code := range []string{"xx", "EN", "english", "e", "pl"} {
		t.Run(code, func(t *testing.T) {
			err := SearchParams{Query: "news", Lang: Language(code)}.Validate()
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, ParamLang, verr.Field)
			assert.ErrorIs(t, err, ErrUnsupportedLanguage)
			assert.Contains(t, err.Error(), "'"+code+"'")
			assert.Contains(t, err.Error(), "en, es")
		})
	}
}

func TestCountryAllowList(t *testing.T) {
	for _, code := range SupportedCountries() {
		p := HeadlinesParams{Country: Country(code)}
		assert.NoError(t, p.Validate(), "country %s should be accepted", code)
	}

	err := HeadlinesParams{Country: "zz"}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedCountry)
	assert.Contains(t, err.Error(), "'zz'")
}

func TestMaxArticlesRange(t *testing.T) {
	tests := []struct {
		value   int
		wantErr bool
	}{
		{0, true},
		{-5, true},
		{1, false},
		{50, false},
		{100, false},
		{101, true},
	}

	for _, tt := range tests {
		err := SearchParams{Query: "q", MaxArticles: Int(tt.value)}.Validate()
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrArticleCountRange, "max=%d", tt.value)
		} else {
			assert.NoError(t, err, "max=%d", tt.value)
		}

		err = HeadlinesParams{MaxArticles: Int(tt.value)}.Validate()
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrArticleCountRange, "max=%d", tt.value)
		} else {
			assert.NoError(t, err, "max=%d", tt.value)
		}
	}
}

func TestPageRange(t *testing.T) {
	assert.NoError(t, SearchParams{Query: "q", Page: Int(1)}.Validate())
	assert.NoError(t, SearchParams{Query: "q", Page: Int(7)}.Validate())
	assert.ErrorIs(t, SearchParams{Query: "q", Page: Int(0)}.Validate(), ErrPageRange)
	assert.ErrorIs(t, HeadlinesParams{Page: Int(-1)}.Validate(), ErrPageRange)
}

func TestSearchRequiresQuery(t *testing.T) {
	err := SearchParams{}.Validate()
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestSortAndCategory(t *testing.T) {
	assert.NoError(t, SearchParams{Query: "q", SortBy: SortRelevance}.Validate())
	assert.ErrorIs(t, SearchParams{Query: "q", SortBy: "date"}.Validate(), ErrUnsupportedSortKey)

	for _, c := range SupportedCategories() {
		assert.NoError(t, HeadlinesParams{Category: Category(c)}.Validate())
	}
	err := HeadlinesParams{Category: "weather"}.Validate()
	assert.ErrorIs(t, err, ErrUnsupportedCategory)
	assert.Contains(t, err.Error(), "'weather'")
}

func TestUsedOmitsUnsuppliedFields(t *testing.T) {
	t.Run("search with query only", func(t *testing.T) {
		used := SearchParams{Query: "golang"}.Used()
		assert.Equal(t, map[string]any{"q": "golang"}, used)
	})

	t.Run("search with every field", func(t *testing.T) {
		p := SearchParams{
			Query:       "golang",
			Lang:        "en",
			Country:     "us",
			MaxArticles: Int(5),
			SearchIn:    "title",
			Nullable:    "image",
			From:        "2025-01-01T00:00:00Z",
			To:          "2025-01-31T00:00:00Z",
			SortBy:      SortRelevance,
			Page:        Int(2),
		}
		assert.Equal(t, map[string]any{
			"q": "golang", "lang": "en", "country": "us", "max": 5, "in": "title",
			"nullable": "image", "from": "2025-01-01T00:00:00Z", "to": "2025-01-31T00:00:00Z",
			"sortby": "relevance", "page": 2,
		}, p.Used())
	})

	t.Run("headlines with nothing supplied", func(t *testing.T) {
		p := HeadlinesParams{}
		assert.Empty(t, p.Used())
		assert.Equal(t, CategoryGeneral, p.EffectiveCategory())
	})

	t.Run("headlines keeps explicit category", func(t *testing.T) {
		p := HeadlinesParams{Category: CategoryScience, Page: Int(1)}
		assert.Equal(t, map[string]any{"category": "science", "page": 1}, p.Used())
		assert.Equal(t, CategoryScience, p.EffectiveCategory())
	})
}

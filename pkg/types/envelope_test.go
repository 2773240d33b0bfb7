package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeJSON(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		env := Envelope{
			Success:       true,
			Query:         "golang",
			TotalArticles: 2,
			Articles: []Article{
				{"title": "One", "url": "https://a.example"},
				{"title": "Two", "url": "https://b.example"},
			},
			ParametersUsed: map[string]any{"q": "golang"},
		}

		data, err := json.Marshal(env)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"success": true,
			"query": "golang",
			"totalArticles": 2,
			"articles": [
				{"title": "One", "url": "https://a.example"},
				{"title": "Two", "url": "https://b.example"}
			],
			"parameters_used": {"q": "golang"}
		}`, string(data))
	})

	t.Run("success with no articles keeps an empty list", func(t *testing.T) {
		data, err := json.Marshal(Envelope{Success: true, Category: CategoryGeneral})
		require.NoError(t, err)
		assert.JSONEq(t, `{"success": true, "category": "general", "totalArticles": 0, "articles": [], "parameters_used": {}}`, string(data))
	})

	t.Run("failure", func(t *testing.T) {
		env := Envelope{
			Error:          "GNews API error: 401",
			Category:       CategoryWorld,
			ParametersUsed: map[string]any{"category": "world"},
		}
		data, err := json.Marshal(env)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, false, decoded["success"])
		assert.Equal(t, "GNews API error: 401", decoded["error"])
		assert.NotContains(t, decoded, "articles")
		assert.NotContains(t, decoded, "totalArticles")
	})
}

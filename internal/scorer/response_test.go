package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/models"
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/store"
)

func fixtureStore() *store.Store {
	return store.New([]models.Record{
		{Source: models.SourceTeams, Title: "Q4 forecast sync notes", Snippet: "Revise the top-line.", Link: "https://teams.microsoft.com/"},
		{Source: models.SourceOutlook, Title: "Re: Q4 forecast spreadsheet", Snippet: "Latest workbook.", Link: "https://outlook.office.com/"},
		{Source: models.SourceOutlook, Title: "Re: Silent install of Mastercam 2027", Snippet: "Command line.", Link: "https://outlook.office.com/"},
	})
}

func TestDecodeResponse(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantKind    Kind
		wantIndices []int
		wantRecords int
	}{
		{
			name:        "index list",
			body:        `{"matches": [2, 0]}`,
			wantKind:    KindByIndex,
			wantIndices: []int{2, 0},
		},
		{
			name:        "empty index list",
			body:        `{"matches": []}`,
			wantKind:    KindByIndex,
			wantIndices: []int{},
		},
		{
			name:        "inline results",
			body:        `{"results": [{"source": "Teams", "title": "t", "snippet": "s", "link": "https://x"}]}`,
			wantKind:    KindInline,
			wantRecords: 1,
		},
		{
			name:        "matches takes precedence over results",
			body:        `{"matches": [1], "results": [{"title": "ignored"}]}`,
			wantKind:    KindByIndex,
			wantIndices: []int{1},
		},
		{
			name:        "non-integer matches fall through to results",
			body:        `{"matches": ["a"], "results": [{"title": "kept"}]}`,
			wantKind:    KindInline,
			wantRecords: 1,
		},
		{
			name:     "null matches",
			body:     `{"matches": null}`,
			wantKind: KindUnrecognized,
		},
		{
			name:     "unknown object",
			body:     `{"hits": [1, 2]}`,
			wantKind: KindUnrecognized,
		},
		{
			name:     "top-level array",
			body:     `[0, 1]`,
			wantKind: KindUnrecognized,
		},
		{
			name:        "inline item with a mistyped field is kept",
			body:        `{"results": [{"source": "Teams", "title": "t", "snippet": 42, "link": "https://x"}, {"title": "second"}]}`,
			wantKind:    KindInline,
			wantRecords: 2,
		},
		{
			name:     "null results",
			body:     `{"results": null}`,
			wantKind: KindUnrecognized,
		},
		{
			name:     "results is not a list",
			body:     `{"results": "nope"}`,
			wantKind: KindUnrecognized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeResponse([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, got.Kind)
			if tt.wantIndices != nil {
				assert.Equal(t, tt.wantIndices, got.Indices)
			}
			assert.Len(t, got.Records, tt.wantRecords)
		})
	}
}

func TestDecodeResponse_InlineWithoutSchemaCheck(t *testing.T) {
	got, err := DecodeResponse([]byte(`{"results": [{"source": "Slack", "title": "t", "snippet": 42, "link": true}, "stray"]}`))
	require.NoError(t, err)

	require.Equal(t, KindInline, got.Kind)
	require.Len(t, got.Records, 1)
	assert.Equal(t, models.Record{Source: "Slack", Title: "t", Snippet: "42", Link: "true"}, got.Records[0])
}

func TestDecodeResponse_MalformedJSON(t *testing.T) {
	_, err := DecodeResponse([]byte(`{"matches": [1`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed scorer response")
}

func TestResponse_Resolve(t *testing.T) {
	s := fixtureStore()

	t.Run("drops out of range indices", func(t *testing.T) {
		resp := Response{Kind: KindByIndex, Indices: []int{1, 7, -1, 0}}
		got := resp.Resolve(s)

		require.Len(t, got, 2)
		assert.Equal(t, "Re: Q4 forecast spreadsheet", got[0].Title)
		assert.Equal(t, "Q4 forecast sync notes", got[1].Title)
	})

	t.Run("inline returned verbatim", func(t *testing.T) {
		inline := []models.Record{{Title: "from scorer"}}
		got := Response{Kind: KindInline, Records: inline}.Resolve(s)
		assert.Equal(t, inline, got)
	})

	t.Run("unrecognized is empty", func(t *testing.T) {
		got := Response{Kind: KindUnrecognized}.Resolve(s)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

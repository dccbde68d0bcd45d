package present

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/models"
)

var testRecords = []models.Record{
	{Source: models.SourceTeams, Title: "Q4 forecast sync notes", Snippet: "We agreed to revise the top-line by 8% and regroup Friday.", Link: "https://teams.microsoft.com/"},
	{Source: models.SourceOutlook, Title: "Re: Q4 forecast spreadsheet", Snippet: "Attached the latest workbook with comments.", Link: "https://outlook.office.com/"},
}

func TestPresent_Results(t *testing.T) {
	doc := NewPresenter([]string{"Q4"}).Present("Q4", testRecords)

	assert.Contains(t, doc.Header, `"Q4"`)
	assert.Empty(t, doc.Notice)
	assert.Empty(t, doc.Suggestions)
	require.Len(t, doc.Blocks, len(testRecords))

	for i, block := range doc.Blocks {
		assert.Equal(t, string(testRecords[i].Source)+": "+testRecords[i].Title, block.Heading)
		assert.Equal(t, testRecords[i].Snippet, block.Body)
		require.NotNil(t, block.Link)
		assert.Equal(t, testRecords[i].Link, block.Link.URL)
	}
}

func TestPresent_HeaderKeepsQueryVerbatim(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{query: "Q4", want: `Results for: "Q4"`},
		{query: `say "hi"`, want: `Results for: "say "hi""`},
		{query: `C:\reports`, want: `Results for: "C:\reports"`},
		{query: "a\tb", want: "Results for: \"a\tb\""},
	}

	for _, tt := range tests {
		doc := NewPresenter(nil).Present(tt.query, nil)
		assert.Equal(t, tt.want, doc.Header)
		assert.Contains(t, RenderMarkdown(doc), tt.want)
	}
}

func TestPresent_Empty(t *testing.T) {
	doc := NewPresenter([]string{"Q4", "sales", "forecast"}).Present("zzz-no-match", nil)

	assert.Equal(t, NoMatchesNotice, doc.Notice)
	assert.Equal(t, []string{"Q4", "sales", "forecast"}, doc.Suggestions)
	assert.Empty(t, doc.Blocks)
	assert.True(t, doc.Empty())
}

func TestRenderCard_Results(t *testing.T) {
	doc := NewPresenter(nil).Present("Q4", testRecords)
	attachment := RenderCard(doc)

	assert.Equal(t, AdaptiveCardContentType, attachment.ContentType)
	assert.Equal(t, "AdaptiveCard", attachment.Content.Type)

	var actionSets []Element
	for _, el := range attachment.Content.Body {
		if el.Type == "ActionSet" {
			actionSets = append(actionSets, el)
		}
	}
	require.Len(t, actionSets, len(testRecords))
	for i, set := range actionSets {
		require.Len(t, set.Actions, 1)
		assert.Equal(t, "Action.OpenUrl", set.Actions[0].Type)
		assert.Equal(t, testRecords[i].Link, set.Actions[0].URL)
	}
}

func TestRenderCard_EmptyHasNoActions(t *testing.T) {
	doc := NewPresenter([]string{"Q4", "sales"}).Present("nothing", nil)
	attachment := RenderCard(doc)

	raw, err := json.Marshal(attachment)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "ActionSet")
	assert.NotContains(t, string(raw), "Action.OpenUrl")
	assert.Contains(t, string(raw), NoMatchesNotice)
	assert.Contains(t, string(raw), "Try searching for: Q4 or sales")
}

func TestRenderCard_SpacerKeepsEmptyText(t *testing.T) {
	attachment := RenderCard(NewPresenter(nil).Present("Q4", testRecords[:1]))

	raw, err := json.Marshal(attachment.Content.Body[len(attachment.Content.Body)-1])
	require.NoError(t, err)
	assert.JSONEq(t, `{"type": "TextBlock", "text": "", "spacing": "Small"}`, string(raw))
}

func TestInputCard(t *testing.T) {
	attachment := InputCard()

	require.Len(t, attachment.Content.Actions, 1)
	assert.Equal(t, "Action.Submit", attachment.Content.Actions[0].Type)
	assert.Equal(t, SearchVerb, attachment.Content.Actions[0].Data["verb"])

	var input *Element
	for i := range attachment.Content.Body {
		if attachment.Content.Body[i].Type == "Input.Text" {
			input = &attachment.Content.Body[i]
		}
	}
	require.NotNil(t, input)
	assert.Equal(t, "q", input.ID)
}

func TestRenderMarkdown(t *testing.T) {
	text := RenderMarkdown(NewPresenter(nil).Present("Q4", testRecords))

	assert.True(t, strings.HasPrefix(text, `🔍 **Search Results for: "Q4"**`))
	assert.Contains(t, text, "**1. Teams: Q4 forecast sync notes**")
	assert.Contains(t, text, "**2. Outlook: Re: Q4 forecast spreadsheet**")
	assert.Contains(t, text, "🔗 [Open in Outlook](https://outlook.office.com/)")
	assert.Less(t, strings.Index(text, "1. Teams"), strings.Index(text, "2. Outlook"))
}

func TestRenderMarkdown_Empty(t *testing.T) {
	text := RenderMarkdown(NewPresenter([]string{"Q4", "sales", "forecast"}).Present("zzz", nil))

	assert.Contains(t, text, "❌ No matches found.")
	assert.Contains(t, text, "Try searching for: **Q4**, **sales**, or **forecast**")
	assert.NotContains(t, text, "🔗")
}

func TestJoinSuggestions(t *testing.T) {
	tests := []struct {
		items []string
		want  string
	}{
		{items: nil, want: ""},
		{items: []string{"a"}, want: "a"},
		{items: []string{"a", "b"}, want: "a or b"},
		{items: []string{"a", "b", "c"}, want: "a, b, or c"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, joinSuggestions(tt.items, "", ""))
	}
}

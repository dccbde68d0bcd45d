package bedrock

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/models"
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/scorer"
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/store"
	"github.com/rs/zerolog"
)

type fakeCompleter struct {
	reply  string
	err    error
	prompt string
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	f.prompt = prompt
	return f.reply, f.err
}

func testStore() *store.Store {
	return store.New([]models.Record{
		{Source: models.SourceTeams, Title: "Q4 forecast sync notes", Snippet: "Revise the top-line.", Link: "https://teams.microsoft.com/"},
		{Source: models.SourceOutlook, Title: "Re: Q4 forecast spreadsheet", Snippet: "Latest workbook.", Link: "https://outlook.office.com/"},
	})
}

func TestScorer_Score(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name       string
		reply      string
		err        error
		wantStatus scorer.Status
		wantTitles []string
	}{
		{
			name:       "plain json",
			reply:      `{"matches": [1]}`,
			wantStatus: scorer.StatusAvailable,
			wantTitles: []string{"Re: Q4 forecast spreadsheet"},
		},
		{
			name:       "fenced json",
			reply:      "```json\n{\"matches\": [1, 0]}\n```",
			wantStatus: scorer.StatusAvailable,
			wantTitles: []string{"Re: Q4 forecast spreadsheet", "Q4 forecast sync notes"},
		},
		{
			name:       "prose reply",
			reply:      "I think the first one.",
			wantStatus: scorer.StatusUnavailable,
		},
		{
			name:       "model error",
			err:        errors.New("ThrottlingException"),
			wantStatus: scorer.StatusUnavailable,
		},
		{
			name:       "unrecognized object",
			reply:      `{"answer": "none"}`,
			wantStatus: scorer.StatusAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completer := &fakeCompleter{reply: tt.reply, err: tt.err}
			s := NewScorer(completer, testStore(), time.Second, &logger)

			result := s.Score(context.Background(), "Q4", testStore().All())

			if result.Status != tt.wantStatus {
				t.Fatalf("Status: %v, want %v", result.Status, tt.wantStatus)
			}
			if len(result.Records) != len(tt.wantTitles) {
				t.Fatalf("got %d records, want %d", len(result.Records), len(tt.wantTitles))
			}
			for i, title := range tt.wantTitles {
				if result.Records[i].Title != title {
					t.Errorf("record %d: %q, want %q", i, result.Records[i].Title, title)
				}
			}
		})
	}
}

func TestScorer_PromptListsItems(t *testing.T) {
	logger := zerolog.Nop()
	completer := &fakeCompleter{reply: `{"matches": []}`}

	NewScorer(completer, testStore(), time.Second, &logger).Score(context.Background(), "forecast", testStore().All())

	for _, want := range []string{"Query: forecast", "[0] (Teams) Q4 forecast sync notes", "[1] (Outlook) Re: Q4 forecast spreadsheet"} {
		if !strings.Contains(completer.prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, completer.prompt)
		}
	}
}

func TestStripMarkdownCodeBlock(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: `{"matches": []}`, want: `{"matches": []}`},
		{in: "```json\n{\"matches\": [2]}\n```", want: `{"matches": [2]}`},
		{in: "```\n{}\n```", want: `{}`},
		{in: "```", want: "```"},
	}

	for _, tt := range tests {
		if got := stripMarkdownCodeBlock(tt.in); got != tt.want {
			t.Errorf("stripMarkdownCodeBlock(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

package bedrock

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/models"
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/scorer"
	"github.com/rs/zerolog"
)

const scorePrompt = `You rank workplace messages for a search box.

Query: {{.Query}}

Items:
{{range $i, $item := .Items}}[{{$i}}] ({{$item.Source}}) {{$item.Title}} - {{$item.Snippet}}
{{end}}
Return only the indices of the items relevant to the query, most relevant first, as JSON:
{"matches": [<int>, ...]}
Return {"matches": []} when nothing is relevant.`

type promptData struct {
	Query string
	Items []models.Record
}

type Completer interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// Scorer asks a Claude model on Bedrock which items match a query. The
// model reply goes through the same decoding as an HTTP scorer reply.
type Scorer struct {
	completer Completer
	lookup    scorer.Lookup
	maxTokens int
	timeout   time.Duration
	prompt    *template.Template
	logger    *zerolog.Logger
}

func NewScorer(completer Completer, lookup scorer.Lookup, timeout time.Duration, logger *zerolog.Logger) *Scorer {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Scorer{
		completer: completer,
		lookup:    lookup,
		maxTokens: 256,
		timeout:   timeout,
		prompt:    template.Must(template.New("score").Parse(scorePrompt)),
		logger:    logger,
	}
}

func (s *Scorer) Score(ctx context.Context, query string, records []models.Record) scorer.Result {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var buf bytes.Buffer
	if err := s.prompt.Execute(&buf, promptData{Query: query, Items: records}); err != nil {
		return scorer.Unavailable(fmt.Sprintf("template execution failed: %v", err))
	}

	content, err := s.completer.Complete(ctx, buf.String(), s.maxTokens)
	if err != nil {
		s.logger.Warn().Err(err).Msg("bedrock scorer unavailable")
		return scorer.Unavailable(err.Error())
	}

	response, err := scorer.DecodeResponse([]byte(stripMarkdownCodeBlock(content)))
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("content", content).
			Msg("failed to deserialize bedrock scorer response")
		return scorer.Unavailable(err.Error())
	}

	resolved := response.Resolve(s.lookup)
	s.logger.Debug().
		Str("kind", response.Kind.String()).
		Int("count", len(resolved)).
		Msg("bedrock scorer responded")

	return scorer.Available(response.Kind, resolved)
}

// stripMarkdownCodeBlock removes a ```json fence if the model added one.
func stripMarkdownCodeBlock(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}

	firstNewline := strings.Index(content, "\n")
	if firstNewline == -1 {
		return content
	}

	closing := strings.LastIndex(content, "```")
	if closing <= firstNewline {
		return content
	}

	return strings.TrimSpace(content[firstNewline+1 : closing])
}

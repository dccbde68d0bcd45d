package search

//go:generate mockgen -destination=mocks/mock_scorer.go -package=mocks . Scorer

import (
	"context"
	"time"

	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/models"
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/scorer"
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/store"
	"github.com/rs/zerolog"
)

// Scorer selects relevant records remotely. Implementations never fail:
// problems are reported as scorer.Unavailable.
type Scorer interface {
	Score(ctx context.Context, query string, records []models.Record) scorer.Result
}

type Outcome struct {
	Query      string
	Records    []models.Record
	Provenance models.Provenance
	Duration   time.Duration
}

type Service struct {
	docs   *store.Store
	scorer Scorer
	logger *zerolog.Logger
}

// NewService wires the orchestrator. A nil scorer means no remote endpoint
// is configured and every query is matched locally.
func NewService(docs *store.Store, scorer Scorer, logger *zerolog.Logger) *Service {
	return &Service{
		docs:   docs,
		scorer: scorer,
		logger: logger,
	}
}

// Search asks the remote scorer first and falls back to the local matcher
// when it is unavailable, returns nothing, or is not configured. Remote
// results are never merged with local ones.
func (s *Service) Search(ctx context.Context, query string) Outcome {
	start := time.Now()
	records := s.docs.All()

	if s.scorer != nil {
		result := s.scorer.Score(ctx, query, records)

		switch result.Status {
		case scorer.StatusAvailable:
			if len(result.Records) > 0 {
				s.logger.Info().
					Str("query", query).
					Str("kind", result.Kind.String()).
					Int("count", len(result.Records)).
					Msg("using remote results")
				return Outcome{
					Query:      query,
					Records:    result.Records,
					Provenance: models.ProvenanceRemote,
					Duration:   time.Since(start),
				}
			}
			s.logger.Info().
				Str("query", query).
				Str("kind", result.Kind.String()).
				Msg("remote scorer returned no results, falling back to local match")
		case scorer.StatusUnavailable:
			s.logger.Warn().
				Str("query", query).
				Str("reason", result.Reason).
				Msg("remote scorer unavailable, falling back to local match")
		}
	}

	matched := Match(query, records)
	s.logger.Info().
		Str("query", query).
		Int("count", len(matched)).
		Msg("using local results")

	return Outcome{
		Query:      query,
		Records:    matched,
		Provenance: models.ProvenanceLocal,
		Duration:   time.Since(start),
	}
}

func (s *Service) Documents() []models.Record {
	return s.docs.All()
}

package search

import (
	"context"

	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/models"
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/scorer"
	"golang.org/x/time/rate"
)

type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

// LimitedScorer caps the rate of remote scoring calls. A call over the
// limit does not wait: it reports Unavailable so the query is matched
// locally instead.
type LimitedScorer struct {
	next    Scorer
	limiter *rate.Limiter
}

func NewLimitedScorer(next Scorer, cfg RateLimitConfig) *LimitedScorer {
	burst := cfg.BurstSize
	if burst <= 0 {
		burst = 1
	}

	return &LimitedScorer{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst),
	}
}

func (l *LimitedScorer) Score(ctx context.Context, query string, records []models.Record) scorer.Result {
	if !l.limiter.Allow() {
		return scorer.Unavailable("scorer rate limit exceeded")
	}
	return l.next.Score(ctx, query, records)
}

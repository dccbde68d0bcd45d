package scorer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/models"
	"github.com/rs/zerolog"
)

const defaultTimeout = 5 * time.Second

// maxResponseBytes caps how much of a scorer reply is read.
const maxResponseBytes = 1 << 20

type ClientConfig struct {
	Endpoint            string
	APIKey              string
	Timeout             time.Duration
	MaxIdleConns        int
	MaxIdleConnsPerHost int
}

type scoreRequest struct {
	Query string          `json:"query"`
	Items []models.Record `json:"items"`
}

// Client calls a remote HTTP scoring endpoint. It makes exactly one attempt
// per call and never returns an error: every failure is Unavailable.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	lookup     Lookup
	logger     *zerolog.Logger
}

func NewClient(cfg ClientConfig, lookup Lookup, logger *zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	maxIdle := cfg.MaxIdleConns
	if maxIdle == 0 {
		maxIdle = 100
	}
	maxIdlePerHost := cfg.MaxIdleConnsPerHost
	if maxIdlePerHost == 0 {
		maxIdlePerHost = 10
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConns = maxIdle
	transport.MaxIdleConnsPerHost = maxIdlePerHost

	return &Client{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		lookup: lookup,
		logger: logger,
	}
}

func (c *Client) Score(ctx context.Context, query string, records []models.Record) Result {
	start := time.Now()

	body, err := c.post(ctx, query, records)
	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("endpoint", c.endpoint).
			Dur("duration", time.Since(start)).
			Msg("remote scorer unavailable")
		return Unavailable(err.Error())
	}

	response, err := DecodeResponse(body)
	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("endpoint", c.endpoint).
			Msg("remote scorer returned malformed JSON")
		return Unavailable(err.Error())
	}

	resolved := response.Resolve(c.lookup)

	c.logger.Debug().
		Str("kind", response.Kind.String()).
		Int("count", len(resolved)).
		Dur("duration", time.Since(start)).
		Msg("remote scorer responded")

	return Available(response.Kind, resolved)
}

func (c *Client) post(ctx context.Context, query string, records []models.Record) ([]byte, error) {
	if records == nil {
		records = []models.Record{}
	}

	payload, err := json.Marshal(scoreRequest{Query: query, Items: records})
	if err != nil {
		return nil, fmt.Errorf("unable to serialize scorer request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("unable to build scorer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scorer request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("scorer returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("unable to read scorer response: %w", err)
	}

	return body, nil
}

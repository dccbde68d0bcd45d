package setup

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/bot"
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/config"
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/feedback"
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/present"
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/redis"
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/scorer"
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/scorer/bedrock"
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/search"
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/store"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	ProviderNone    = "none"
	ProviderHTTP    = "http"
	ProviderBedrock = "bedrock"
)

type Config struct {
	APIPort          string
	ScorerProvider   string
	ScorerEndpoint   string
	ScorerAPIKey     string
	ScorerTimeout    time.Duration
	ScorerRateLimit  float64
	ScorerBurst      int
	AWSRegion        string
	ClaudeModelID    string
	DocumentsPath    string
	RedisAddr        string
	RedisPassword    string
	FeedbackStream   string
	FeedbackGroup    string
	FeedbackConsumer string
	FeedbackMaxLen   int64
	LogLevel         string
	LogFormat        string
	MaxQueryLength   int
}

type Dependencies struct {
	Store      *store.Store
	Service    *search.Service
	Dispatcher *bot.Dispatcher
	Recorder   feedback.Recorder
	Redis      *goredis.Client
	Logger     *zerolog.Logger
}

// Close releases the Redis connection when one was opened.
func (d *Dependencies) Close() error {
	if d.Redis == nil {
		return nil
	}
	return d.Redis.Close()
}

func LoadConfig() *Config {
	hostname, _ := os.Hostname()

	return &Config{
		APIPort:          getEnv("TEXTFINDER_API_PORT", "18090"),
		ScorerProvider:   getEnv("SCORER_PROVIDER", ""),
		ScorerEndpoint:   getEnv("SCORER_ENDPOINT", ""),
		ScorerAPIKey:     getEnv("SCORER_API_KEY", ""),
		ScorerTimeout:    getEnvDuration("SCORER_TIMEOUT", 5*time.Second),
		ScorerRateLimit:  getEnvFloat("SCORER_RATE_LIMIT", 0),
		ScorerBurst:      getEnvInt("SCORER_BURST", 5),
		AWSRegion:        getEnv("AWS_REGION", "us-east-1"),
		ClaudeModelID:    getEnv("CLAUDE_MODEL_ID", ""),
		DocumentsPath:    getEnv("DOCUMENTS_PATH", ""),
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		FeedbackStream:   getEnv("FEEDBACK_STREAM", "textfinder-feedback"),
		FeedbackGroup:    getEnv("FEEDBACK_GROUP", "textfinder-feedback-group"),
		FeedbackConsumer: getEnv("FEEDBACK_CONSUMER", hostname),
		FeedbackMaxLen:   int64(getEnvInt("FEEDBACK_MAX_LEN", 10000)),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "console"),
		MaxQueryLength:   getEnvInt("MAX_QUERY_LENGTH", bot.DefaultMaxQueryLen),
	}
}

func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	docs, suggestions, err := loadDocuments(cfg.DocumentsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load documents: %w", err)
	}

	logger.Info().
		Int("documents", docs.Len()).
		Str("path", cfg.DocumentsPath).
		Msg("Document store ready")

	searchScorer, err := createScorer(ctx, cfg, docs, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create scorer: %w", err)
	}
	if searchScorer != nil && cfg.ScorerRateLimit > 0 {
		searchScorer = search.NewLimitedScorer(searchScorer, search.RateLimitConfig{
			RequestsPerSecond: cfg.ScorerRateLimit,
			BurstSize:         cfg.ScorerBurst,
		})
	}

	deps := &Dependencies{
		Store:  docs,
		Logger: logger,
	}

	var recorder feedback.Recorder = feedback.NewLogRecorder(logger)
	if cfg.RedisAddr != "" {
		client, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}, logger)
		if err != nil {
			return nil, err
		}
		deps.Redis = client

		recorder = feedback.MultiRecorder{
			recorder,
			feedback.NewStreamRecorder(client, cfg.FeedbackStream, cfg.FeedbackMaxLen, logger),
		}
	}

	deps.Recorder = recorder
	deps.Service = search.NewService(docs, searchScorer, logger)
	deps.Dispatcher = bot.NewDispatcher(
		deps.Service,
		present.NewPresenter(suggestions),
		recorder,
		cfg.MaxQueryLength,
		logger,
	)

	return deps, nil
}

// WireConsumer builds the feedback stream consumer. It requires REDIS_ADDR.
func WireConsumer(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*feedback.Consumer, *goredis.Client, error) {
	if cfg.RedisAddr == "" {
		return nil, nil, fmt.Errorf("REDIS_ADDR is required for the feedback consumer")
	}

	client, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}, logger)
	if err != nil {
		return nil, nil, err
	}

	consumer := feedback.NewConsumer(
		client,
		cfg.FeedbackStream,
		cfg.FeedbackGroup,
		cfg.FeedbackConsumer,
		feedback.NewLogRecorder(logger),
		logger,
	)

	return consumer, client, nil
}

func loadDocuments(path string) (*store.Store, []string, error) {
	if path == "" {
		return store.Default(), store.DefaultSuggestions, nil
	}

	docsConfig, err := config.LoadDocumentsConfig(path)
	if err != nil {
		return nil, nil, err
	}

	return store.New(docsConfig.Documents), docsConfig.Suggestions, nil
}

// createScorer returns nil when no remote scoring is configured, so the
// orchestrator goes straight to the local matcher.
func createScorer(ctx context.Context, cfg *Config, docs *store.Store, logger *zerolog.Logger) (search.Scorer, error) {
	provider := cfg.ScorerProvider
	if provider == "" && cfg.ScorerEndpoint != "" {
		provider = ProviderHTTP
	}

	switch provider {
	case "", ProviderNone:
		logger.Info().Msg("No remote scorer configured, using local matching only")
		return nil, nil
	case ProviderHTTP:
		if cfg.ScorerEndpoint == "" {
			return nil, fmt.Errorf("SCORER_ENDPOINT is required for provider %q", provider)
		}
		logger.Info().
			Str("endpoint", cfg.ScorerEndpoint).
			Dur("timeout", cfg.ScorerTimeout).
			Msg("Using HTTP scorer")
		return scorer.NewClient(scorer.ClientConfig{
			Endpoint:            cfg.ScorerEndpoint,
			APIKey:              cfg.ScorerAPIKey,
			Timeout:             cfg.ScorerTimeout,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
		}, docs, logger), nil
	case ProviderBedrock:
		client, err := bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
		if err != nil {
			return nil, err
		}
		logger.Info().
			Str("region", cfg.AWSRegion).
			Str("model", cfg.ClaudeModelID).
			Msg("Using Bedrock scorer")
		return bedrock.NewScorer(client, docs, cfg.ScorerTimeout, logger), nil
	default:
		return nil, fmt.Errorf("unknown scorer provider %q", provider)
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		value = defaultValue
	}

	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil || value <= 0 {
		value = defaultValue
	}

	return value
}

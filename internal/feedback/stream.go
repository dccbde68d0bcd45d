package feedback

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const PayloadField = "payload"

// StreamWriter is the part of *redis.Client used to publish feedback.
type StreamWriter interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// StreamRecorder publishes feedback as JSON to a Redis stream.
type StreamRecorder struct {
	client StreamWriter
	stream string
	maxLen int64
	logger *zerolog.Logger
}

func NewStreamRecorder(client StreamWriter, stream string, maxLen int64, logger *zerolog.Logger) *StreamRecorder {
	return &StreamRecorder{
		client: client,
		stream: stream,
		maxLen: maxLen,
		logger: logger,
	}
}

func (r *StreamRecorder) Record(ctx context.Context, fb Feedback) error {
	payload, err := json.Marshal(fb)
	if err != nil {
		return fmt.Errorf("unable to serialize feedback: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: r.stream,
		Values: map[string]any{PayloadField: string(payload)},
	}
	if r.maxLen > 0 {
		args.MaxLen = r.maxLen
		args.Approx = true
	}

	id, err := r.client.XAdd(ctx, args).Result()
	if err != nil {
		return fmt.Errorf("failed to publish feedback to stream %s: %w", r.stream, err)
	}

	r.logger.Debug().Str("stream", r.stream).Str("id", id).Msg("Feedback published")
	return nil
}

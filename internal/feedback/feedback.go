package feedback

//go:generate mockgen -destination=../bot/mocks/mock_recorder.go -package=mocks . Recorder

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// Feedback is a user reaction submitted from a bot reply.
type Feedback struct {
	ID             string         `json:"id"`
	ConversationID string         `json:"conversation_id"`
	UserID         string         `json:"user_id,omitempty"`
	ReplyToID      string         `json:"reply_to_id,omitempty"`
	Reaction       string         `json:"reaction,omitempty"`
	Text           string         `json:"text,omitempty"`
	Value          map[string]any `json:"value,omitempty"`
	ReceivedAt     time.Time      `json:"received_at"`
}

type Recorder interface {
	Record(ctx context.Context, fb Feedback) error
}

type LogRecorder struct {
	logger *zerolog.Logger
}

func NewLogRecorder(logger *zerolog.Logger) *LogRecorder {
	return &LogRecorder{logger: logger}
}

func (r *LogRecorder) Record(ctx context.Context, fb Feedback) error {
	r.logger.Info().
		Str("feedback_id", fb.ID).
		Str("conversation_id", fb.ConversationID).
		Str("user_id", fb.UserID).
		Str("reply_to_id", fb.ReplyToID).
		Str("reaction", fb.Reaction).
		Str("text", fb.Text).
		Interface("value", fb.Value).
		Msg("Feedback received")
	return nil
}

// MultiRecorder hands feedback to every recorder and joins their errors.
type MultiRecorder []Recorder

func (m MultiRecorder) Record(ctx context.Context, fb Feedback) error {
	var errs []error
	for _, r := range m {
		if err := r.Record(ctx, fb); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

package bot

//go:generate mockgen -destination=mocks/mock_searcher.go -package=mocks . Searcher

import (
	"context"
	"fmt"
	"regexp"
	"runtime/debug"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/feedback"
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/middleware"
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/models"
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/present"
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/search"
	"github.com/rs/zerolog"
)

const (
	ApologyText         = "Sorry, there was an error processing your search."
	DefaultMaxQueryLen  = 500
	queryTooLongMessage = "That search is too long. Please use %d characters or fewer."
)

var mentionPattern = regexp.MustCompile(`(?s)<at>.*?</at>`)

type Searcher interface {
	Search(ctx context.Context, query string) search.Outcome
}

// Answer is one query run through search and presentation.
type Answer struct {
	Outcome  search.Outcome
	Document models.DisplayDocument
}

type Dispatcher struct {
	searcher    Searcher
	presenter   *present.Presenter
	recorder    feedback.Recorder
	maxQueryLen int
	logger      *zerolog.Logger
}

func NewDispatcher(searcher Searcher, presenter *present.Presenter, recorder feedback.Recorder, maxQueryLen int, logger *zerolog.Logger) *Dispatcher {
	if maxQueryLen <= 0 {
		maxQueryLen = DefaultMaxQueryLen
	}

	return &Dispatcher{
		searcher:    searcher,
		presenter:   presenter,
		recorder:    recorder,
		maxQueryLen: maxQueryLen,
		logger:      logger,
	}
}

// Answer runs the search pipeline for an already extracted query.
func (d *Dispatcher) Answer(ctx context.Context, query string) (Answer, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) > d.maxQueryLen {
		return Answer{}, middleware.ErrQueryTooLong
	}

	outcome := d.searcher.Search(ctx, query)
	return Answer{
		Outcome:  outcome,
		Document: d.presenter.Present(query, outcome.Records),
	}, nil
}

// Handle dispatches one inbound activity. It never fails: any fault while
// handling is logged and answered with a generic apology.
func (d *Dispatcher) Handle(ctx context.Context, activity Activity) (replies []Reply) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error().
				Interface("panic", r).
				Str("activity_type", activity.Type).
				Str("conversation_id", activity.Conversation.ID).
				Bytes("stack", debug.Stack()).
				Msg("Error in activity handler")
			replies = []Reply{d.textReply(activity, ApologyText)}
		}
	}()

	switch activity.Type {
	case ActivityMessage:
		return d.handleMessage(ctx, activity)
	case ActivityInvoke:
		if activity.Name == invokeSubmitAction && stringValue(activity.Value, "actionName") == feedbackAction {
			return d.handleFeedback(ctx, activity)
		}
	case ActivityConversationUpdate:
		return d.handleConversationUpdate(activity)
	}

	d.logger.Debug().
		Str("activity_type", activity.Type).
		Str("name", activity.Name).
		Msg("Ignoring activity")
	return nil
}

func (d *Dispatcher) handleMessage(ctx context.Context, activity Activity) []Reply {
	if stringValue(activity.Value, "actionName") == feedbackAction {
		return d.handleFeedback(ctx, activity)
	}

	var query string
	if stringValue(activity.Value, "verb") == present.SearchVerb {
		query = stringValue(activity.Value, "q")
	} else {
		query = removeMentions(activity.Text)
		if query == "" && len(activity.Value) > 0 {
			// A card submit for some other action carries no query.
			d.logger.Debug().
				Str("conversation_id", activity.Conversation.ID).
				Str("verb", stringValue(activity.Value, "verb")).
				Msg("Ignoring card submit")
			return nil
		}
	}

	d.logger.Info().
		Str("conversation_id", activity.Conversation.ID).
		Str("query", query).
		Msg("Received message")

	answer, err := d.Answer(ctx, query)
	if err != nil {
		d.logger.Warn().Err(err).Int("max_length", d.maxQueryLen).Msg("Rejected query")
		return []Reply{d.textReply(activity, fmt.Sprintf(queryTooLongMessage, d.maxQueryLen))}
	}

	reply := d.textReply(activity, present.RenderMarkdown(answer.Document))
	reply.TextFormat = "markdown"
	reply.Attachments = []present.Attachment{present.RenderCard(answer.Document)}

	d.logger.Info().
		Str("query", answer.Outcome.Query).
		Str("provenance", string(answer.Outcome.Provenance)).
		Int("count", len(answer.Outcome.Records)).
		Dur("duration", answer.Outcome.Duration).
		Msg("Search complete")

	return []Reply{reply}
}

func (d *Dispatcher) handleFeedback(ctx context.Context, activity Activity) []Reply {
	fb := feedback.Feedback{
		ID:             uuid.New().String(),
		ConversationID: activity.Conversation.ID,
		UserID:         activity.From.ID,
		ReplyToID:      activity.ReplyToID,
		Value:          activity.Value,
		ReceivedAt:     time.Now().UTC(),
	}

	if actionValue, ok := activity.Value["actionValue"].(map[string]any); ok {
		fb.Reaction = stringValue(actionValue, "reaction")
		fb.Text = stringValue(actionValue, "feedback")
	}

	if err := d.recorder.Record(ctx, fb); err != nil {
		d.logger.Warn().Err(err).Str("conversation_id", fb.ConversationID).Msg("Failed to record feedback")
	}

	return nil
}

func (d *Dispatcher) handleConversationUpdate(activity Activity) []Reply {
	var replies []Reply
	for _, member := range activity.MembersAdded {
		if member.ID == activity.Recipient.ID {
			continue
		}

		reply := Reply{
			Type:        ActivityMessage,
			Attachments: []present.Attachment{present.InputCard()},
		}
		replies = append(replies, reply)

		d.logger.Info().
			Str("conversation_id", activity.Conversation.ID).
			Str("member_id", member.ID).
			Msg("Greeting new member")
	}

	return replies
}

func (d *Dispatcher) textReply(activity Activity, text string) Reply {
	return Reply{
		Type:      ActivityMessage,
		Text:      text,
		ReplyToID: activity.ID,
	}
}

// removeMentions strips <at>Bot</at> mention markup and trims the rest.
func removeMentions(text string) string {
	return strings.TrimSpace(mentionPattern.ReplaceAllString(text, ""))
}

// Response flattens the answer into the API and tool result shape.
func (a Answer) Response() models.SearchResponse {
	return models.SearchResponse{
		Query:      a.Outcome.Query,
		Provenance: a.Outcome.Provenance,
		Count:      len(a.Outcome.Records),
		Document:   a.Document,
		Markdown:   present.RenderMarkdown(a.Document),
	}
}

package api

import (
	"errors"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/bot"
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/middleware"
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/models"
	"github.com/rs/zerolog"
)

// DocumentLister exposes the store contents. search.Service satisfies it.
type DocumentLister interface {
	Documents() []models.Record
}

type Handler struct {
	dispatcher *bot.Dispatcher
	documents  DocumentLister
	logger     *zerolog.Logger
}

func NewHandler(dispatcher *bot.Dispatcher, documents DocumentLister, logger *zerolog.Logger) *Handler {
	return &Handler{
		dispatcher: dispatcher,
		documents:  documents,
		logger:     logger,
	}
}

// POST /api/v1/search
// Body: SearchRequest
// Returns: SearchResponse
func (h *Handler) Search(req *restful.Request, resp *restful.Response) {
	var searchRequest models.SearchRequest
	if err := req.ReadEntity(&searchRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	answer, err := h.dispatcher.Answer(req.Request.Context(), searchRequest.Query)
	if err != nil {
		if errors.Is(err, middleware.ErrQueryTooLong) {
			middleware.HandleError(resp, err, http.StatusBadRequest)
			return
		}
		h.logger.Error().Err(err).Msg("Search failed")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	h.logger.Info().
		Str("query", answer.Outcome.Query).
		Str("provenance", string(answer.Outcome.Provenance)).
		Int("count", len(answer.Outcome.Records)).
		Msg("Search complete")

	resp.WriteHeaderAndEntity(http.StatusOK, answer.Response())
}

// POST /api/messages
// Body: bot.Activity
// Returns: MessagesResponse
func (h *Handler) Messages(req *restful.Request, resp *restful.Response) {
	var activity bot.Activity
	if err := req.ReadEntity(&activity); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse activity")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	if activity.Type == "" {
		middleware.HandleError(resp, middleware.ErrEmptyActivity, http.StatusBadRequest)
		return
	}

	replies := h.dispatcher.Handle(req.Request.Context(), activity)
	if replies == nil {
		replies = []bot.Reply{}
	}

	resp.WriteHeaderAndEntity(http.StatusOK, MessagesResponse{Replies: replies})
}

// GET /api/v1/documents
func (h *Handler) Documents(req *restful.Request, resp *restful.Response) {
	docs := h.documents.Documents()
	resp.WriteHeaderAndEntity(http.StatusOK, DocumentsResponse{
		Count:     len(docs),
		Documents: docs,
	})
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}

package mcpadapter

import (
	"context"
	"errors"
	"runtime/debug"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/bot"
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/models"
	"github.com/rs/zerolog"
)

// SearchInput is the MCP tool input schema (matches HTTP API field names).
type SearchInput struct {
	Query string `json:"query" jsonschema:"free text query, e.g. Q4 forecast"`
}

type ListDocumentsInput struct{}

type DocumentsOutput struct {
	Documents []models.Record `json:"documents" jsonschema:"searchable Teams and Outlook items in store order"`
}

// DocumentLister exposes the store contents. search.Service satisfies it.
type DocumentLister interface {
	Documents() []models.Record
}

// NewSearchHandler returns a tool handler that runs the search pipeline.
// A panic while searching is logged and reported as a tool error so the
// stdio server keeps running. Pass the returned function to mcp.AddTool.
func NewSearchHandler(dispatcher *bot.Dispatcher, logger *zerolog.Logger) func(context.Context, *mcp.CallToolRequest, SearchInput) (*mcp.CallToolResult, models.SearchResponse, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (result *mcp.CallToolResult, out models.SearchResponse, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error().
					Interface("panic", r).
					Str("query", input.Query).
					Bytes("stack", debug.Stack()).
					Msg("Error in search tool")
				result, out, err = nil, models.SearchResponse{}, errors.New(bot.ApologyText)
			}
		}()

		answer, err := dispatcher.Answer(ctx, input.Query)
		if err != nil {
			return nil, models.SearchResponse{}, err
		}
		return nil, answer.Response(), nil
	}
}

// NewListDocumentsHandler returns a tool handler that lists the store.
func NewListDocumentsHandler(documents DocumentLister) func(context.Context, *mcp.CallToolRequest, ListDocumentsInput) (*mcp.CallToolResult, DocumentsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListDocumentsInput) (*mcp.CallToolResult, DocumentsOutput, error) {
		return nil, DocumentsOutput{Documents: documents.Documents()}, nil
	}
}

// NewServer registers the TextFinder tools on a fresh MCP server.
func NewServer(dispatcher *bot.Dispatcher, documents DocumentLister, logger *zerolog.Logger) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "textfinder-agent",
			Version: "1.0.0",
		}, nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_documents",
		Description: "Search mock Teams messages and Outlook emails by keyword. Returns the matching items and a Markdown summary.",
	}, NewSearchHandler(dispatcher, logger))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_documents",
		Description: "List every searchable Teams and Outlook item",
	}, NewListDocumentsHandler(documents))

	return server
}

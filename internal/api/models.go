package api

import (
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/bot"
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/models"
)

type HealthResponse struct {
	Status  string `json:"status" description:"Service status"`
	Version string `json:"version" description:"API version"`
}

type MessagesResponse struct {
	Replies []bot.Reply `json:"replies" description:"Activities to send back to the conversation"`
}

type DocumentsResponse struct {
	Count     int             `json:"count" description:"Number of documents in the store"`
	Documents []models.Record `json:"documents" description:"Store contents in order"`
}

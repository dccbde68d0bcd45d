package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/bot"
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/middleware"
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/models"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/search").
			To(handler.Search).
			Doc("Search the mock Teams and Outlook documents").
			Metadata(restfulspec.KeyOpenAPITags, []string{"search"}).
			Reads(models.SearchRequest{}).
			Writes(models.SearchResponse{}).
			Returns(200, "OK", models.SearchResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/documents").
			To(handler.Documents).
			Doc("List the searchable documents").
			Metadata(restfulspec.KeyOpenAPITags, []string{"search"}).
			Writes(DocumentsResponse{}).
			Returns(200, "OK", DocumentsResponse{}))

	container.Add(ws)

	// The messaging platform posts activities outside the versioned API.
	bws := new(restful.WebService)

	bws.
		Path("/api/messages").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	bws.
		Route(bws.POST("").
			To(handler.Messages).
			Doc("Handle a bot activity").
			Metadata(restfulspec.KeyOpenAPITags, []string{"bot"}).
			Reads(bot.Activity{}).
			Writes(MessagesResponse{}).
			Returns(200, "OK", MessagesResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	container.Add(bws)
}

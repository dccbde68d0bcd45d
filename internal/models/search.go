package models

type SearchRequest struct {
	Query string `json:"query" description:"Free text query, matched case-insensitively" jsonschema:"free text query, e.g. Q4 forecast"`
}

type SearchResponse struct {
	Query      string          `json:"query" description:"Trimmed query that was searched"`
	Provenance Provenance      `json:"provenance" description:"remote when the scorer answered, local otherwise"`
	Count      int             `json:"count" description:"Number of matching records"`
	Document   DisplayDocument `json:"document" description:"Presentation-neutral results view"`
	Markdown   string          `json:"markdown" description:"Results rendered as chat Markdown"`
}

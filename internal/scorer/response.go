package scorer

import (
	"encoding/json"
	"fmt"

	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/models"
)

// Kind discriminates the shapes a scoring endpoint may answer with.
type Kind int

const (
	KindUnrecognized Kind = iota
	KindByIndex
	KindInline
)

func (k Kind) String() string {
	switch k {
	case KindByIndex:
		return "by_index"
	case KindInline:
		return "inline"
	default:
		return "unrecognized"
	}
}

// Response is the decoded body of a successful scoring call.
// Indices is set for KindByIndex, Records for KindInline.
type Response struct {
	Kind    Kind
	Indices []int
	Records []models.Record
}

// Lookup resolves a store position into a record.
type Lookup interface {
	Get(i int) (models.Record, bool)
}

// DecodeResponse classifies a response body. A `matches` index list takes
// precedence over an inline `results` list. Bodies that are valid JSON but
// carry neither shape decode as KindUnrecognized; only malformed JSON is an
// error.
func DecodeResponse(body []byte) (Response, error) {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return Response{}, fmt.Errorf("malformed scorer response: %w", err)
	}

	fields, ok := raw.(map[string]any)
	if !ok {
		return Response{Kind: KindUnrecognized}, nil
	}

	if _, ok := fields["matches"]; ok {
		var shaped struct {
			Matches []int `json:"matches"`
		}
		if err := json.Unmarshal(body, &shaped); err == nil && shaped.Matches != nil {
			return Response{Kind: KindByIndex, Indices: shaped.Matches}, nil
		}
	}

	if items, ok := fields["results"].([]any); ok {
		records := make([]models.Record, 0, len(items))
		for _, item := range items {
			if obj, ok := item.(map[string]any); ok {
				records = append(records, inlineRecord(obj))
			}
		}
		return Response{Kind: KindInline, Records: records}, nil
	}

	return Response{Kind: KindUnrecognized}, nil
}

// inlineRecord copies a scorer-supplied item without validating it. Fields
// of an unexpected JSON type are kept in their printed form.
func inlineRecord(obj map[string]any) models.Record {
	return models.Record{
		Source:  models.Source(field(obj, "source")),
		Title:   field(obj, "title"),
		Snippet: field(obj, "snippet"),
		Link:    field(obj, "link"),
	}
}

func field(obj map[string]any, key string) string {
	switch v := obj[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Resolve turns a decoded response into a result set. Indices that the
// lookup cannot resolve are dropped.
func (r Response) Resolve(lookup Lookup) []models.Record {
	switch r.Kind {
	case KindByIndex:
		records := make([]models.Record, 0, len(r.Indices))
		for _, i := range r.Indices {
			if record, ok := lookup.Get(i); ok {
				records = append(records, record)
			}
		}
		return records
	case KindInline:
		return r.Records
	case KindUnrecognized:
		return []models.Record{}
	default:
		return []models.Record{}
	}
}

package present

import (
	"fmt"

	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/models"
)

const NoMatchesNotice = "No matches found."

// Presenter maps a result set into a DisplayDocument. It holds no state
// besides the suggestions offered on an empty result.
type Presenter struct {
	suggestions []string
}

func NewPresenter(suggestions []string) *Presenter {
	return &Presenter{
		suggestions: append([]string(nil), suggestions...),
	}
}

func (p *Presenter) Present(query string, records []models.Record) models.DisplayDocument {
	doc := models.DisplayDocument{
		Header: fmt.Sprintf("Results for: \"%s\"", query),
		Blocks: make([]models.Block, 0, len(records)),
	}

	if len(records) == 0 {
		doc.Notice = NoMatchesNotice
		doc.Suggestions = append([]string(nil), p.suggestions...)
		return doc
	}

	for _, record := range records {
		doc.Blocks = append(doc.Blocks, models.Block{
			Heading: fmt.Sprintf("%s: %s", record.Source, record.Title),
			Body:    record.Snippet,
			Source:  record.Source,
			Link: &models.Action{
				Title: fmt.Sprintf("Open in %s", record.Source),
				URL:   record.Link,
			},
		})
	}

	return doc
}

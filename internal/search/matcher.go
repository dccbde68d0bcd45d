package search

import (
	"strings"

	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/models"
)

// Match keeps the records whose "title snippet" text contains query,
// ignoring case. Input order is preserved and an empty query keeps every
// record.
func Match(query string, records []models.Record) []models.Record {
	needle := strings.ToLower(query)

	matched := make([]models.Record, 0, len(records))
	for _, record := range records {
		haystack := strings.ToLower(record.Title + " " + record.Snippet)
		if strings.Contains(haystack, needle) {
			matched = append(matched, record)
		}
	}

	return matched
}

package store

import "github.com/povarna/generative-ai-agents/textfinder-agent/internal/models"

// DefaultSuggestions are offered when a query matches nothing.
var DefaultSuggestions = []string{"Q4", "sales", "forecast"}

// Default returns the built-in Teams/Outlook mock documents.
func Default() *Store {
	return New([]models.Record{
		{
			Source:  models.SourceTeams,
			Title:   "Q4 forecast sync notes",
			Snippet: "We agreed to revise the top-line by 8% and regroup Friday.",
			Link:    "https://teams.microsoft.com/",
		},
		{
			Source:  models.SourceOutlook,
			Title:   "Re: Q4 forecast spreadsheet",
			Snippet: "Attached the latest workbook with comments.",
			Link:    "https://outlook.office.com/",
		},
		{
			Source:  models.SourceOutlook,
			Title:   "Re: Silent install of Mastercam 2027",
			Snippet: "Run the following command line for silent install.",
			Link:    "https://outlook.office.com/",
		},
		{
			Source:  models.SourceTeams,
			Title:   "Sales standup: pipeline blockers",
			Snippet: "Open items for NorthEast region and discount policy.",
			Link:    "https://teams.microsoft.com/",
		},
		{
			Source:  models.SourceTeams,
			Title:   "Mastercam 2026 Daily is Available",
			Snippet: "Product Version: 28.0.7963.0",
			Link:    "https://teams.microsoft.com/",
		},
	})
}

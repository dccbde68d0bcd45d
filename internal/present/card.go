package present

import (
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/models"
)

const (
	AdaptiveCardContentType = "application/vnd.microsoft.card.adaptive"
	adaptiveCardSchema      = "http://adaptivecards.io/schemas/adaptive-card.json"
	adaptiveCardVersion     = "1.5"

	SearchVerb = "search"
)

type Card struct {
	Type    string       `json:"type"`
	Schema  string       `json:"$schema"`
	Version string       `json:"version"`
	Body    []Element    `json:"body"`
	Actions []CardAction `json:"actions,omitempty"`
}

// Element covers the TextBlock, Input.Text and ActionSet elements the bot
// emits. Unused fields are omitted from the JSON.
type Element struct {
	Type        string       `json:"type"`
	Text        *string      `json:"text,omitempty"`
	Weight      string       `json:"weight,omitempty"`
	Size        string       `json:"size,omitempty"`
	IsSubtle    bool         `json:"isSubtle,omitempty"`
	Wrap        bool         `json:"wrap,omitempty"`
	Spacing     string       `json:"spacing,omitempty"`
	ID          string       `json:"id,omitempty"`
	Placeholder string       `json:"placeholder,omitempty"`
	IsRequired  bool         `json:"isRequired,omitempty"`
	Actions     []CardAction `json:"actions,omitempty"`
}

type CardAction struct {
	Type  string         `json:"type"`
	Title string         `json:"title"`
	URL   string         `json:"url,omitempty"`
	Data  map[string]any `json:"data,omitempty"`
}

type Attachment struct {
	ContentType string `json:"contentType"`
	Content     Card   `json:"content"`
}

func newCard(body []Element, actions ...CardAction) Card {
	return Card{
		Type:    "AdaptiveCard",
		Schema:  adaptiveCardSchema,
		Version: adaptiveCardVersion,
		Body:    body,
		Actions: actions,
	}
}

func textBlock(text string) Element {
	return Element{Type: "TextBlock", Text: &text, Wrap: true}
}

// RenderCard renders a results document as an Adaptive Card attachment with
// one ActionSet per result block.
func RenderCard(doc models.DisplayDocument) Attachment {
	header := textBlock(doc.Header)
	header.Weight = "Bolder"
	header.Size = "Medium"

	body := []Element{header}

	if doc.Empty() {
		notice := textBlock(doc.Notice)
		notice.IsSubtle = true
		body = append(body, notice)

		if len(doc.Suggestions) > 0 {
			suggestions := textBlock("Try searching for: " + joinSuggestions(doc.Suggestions, "", ""))
			suggestions.IsSubtle = true
			body = append(body, suggestions)
		}
	}

	for _, block := range doc.Blocks {
		heading := textBlock("• " + block.Heading)
		heading.Weight = "Bolder"

		snippet := textBlock(block.Body)
		snippet.IsSubtle = true

		body = append(body, heading, snippet)

		if block.Link != nil {
			body = append(body, Element{
				Type: "ActionSet",
				Actions: []CardAction{
					{Type: "Action.OpenUrl", Title: "Open", URL: block.Link.URL},
				},
			})
		}

		spacer := ""
		body = append(body, Element{Type: "TextBlock", Text: &spacer, Spacing: "Small"})
	}

	return Attachment{
		ContentType: AdaptiveCardContentType,
		Content:     newCard(body),
	}
}

// InputCard is the search form sent to new conversation members.
func InputCard() Attachment {
	title := textBlock("Search Teams & Outlook (mocked)")
	title.Weight = "Bolder"
	title.Size = "Medium"

	hint := textBlock("Enter keywords and click Search")
	hint.IsSubtle = true

	body := []Element{
		title,
		hint,
		{Type: "Input.Text", ID: "q", Placeholder: "e.g., Q4 forecast", IsRequired: true},
	}

	return Attachment{
		ContentType: AdaptiveCardContentType,
		Content: newCard(body, CardAction{
			Type:  "Action.Submit",
			Title: "Search",
			Data:  map[string]any{"verb": SearchVerb},
		}),
	}
}

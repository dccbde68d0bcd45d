package present

import (
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/models"
)

// RenderMarkdown renders a results document as the chat text reply.
func RenderMarkdown(doc models.DisplayDocument) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "🔍 **Search %s**\n\n", doc.Header)

	if doc.Empty() {
		fmt.Fprintf(&sb, "❌ %s\n\n", doc.Notice)
		if len(doc.Suggestions) > 0 {
			sb.WriteString("Try searching for: " + joinSuggestions(doc.Suggestions, "**", "**"))
		}
		return strings.TrimRight(sb.String(), "\n")
	}

	for i, block := range doc.Blocks {
		fmt.Fprintf(&sb, "**%d. %s**\n", i+1, block.Heading)
		fmt.Fprintf(&sb, "%s\n", block.Body)
		if block.Link != nil {
			fmt.Fprintf(&sb, "🔗 [%s](%s)\n", block.Link.Title, block.Link.URL)
		}
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

// joinSuggestions formats ["a", "b", "c"] as "a, b, or c".
func joinSuggestions(items []string, open, close string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = open + item + close
	}

	switch len(quoted) {
	case 0:
		return ""
	case 1:
		return quoted[0]
	case 2:
		return quoted[0] + " or " + quoted[1]
	default:
		return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
	}
}

package models

// DisplayDocument is the presentation-neutral description of a results view.
// Renderers turn it into an Adaptive Card, Markdown, or anything else that
// keeps block order and content.
type DisplayDocument struct {
	Header      string   `json:"header"`
	Notice      string   `json:"notice,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
	Blocks      []Block  `json:"blocks"`
}

type Block struct {
	Heading string  `json:"heading"`
	Body    string  `json:"body"`
	Source  Source  `json:"source"`
	Link    *Action `json:"link,omitempty"`
}

type Action struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

func (d DisplayDocument) Empty() bool {
	return len(d.Blocks) == 0
}

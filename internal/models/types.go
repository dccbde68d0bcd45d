package models

type Source string

const (
	SourceTeams   Source = "Teams"
	SourceOutlook Source = "Outlook"
)

func (s Source) Valid() bool {
	return s == SourceTeams || s == SourceOutlook
}

// Record is one searchable mock item. Records are identified by their
// position in the document store.
type Record struct {
	Source  Source `json:"source" yaml:"source" jsonschema:"origin of the item: Teams or Outlook"`
	Title   string `json:"title" yaml:"title" jsonschema:"item title"`
	Snippet string `json:"snippet" yaml:"snippet" jsonschema:"short body excerpt"`
	Link    string `json:"link" yaml:"link" jsonschema:"URL that opens the item"`
}

type Provenance string

const (
	ProvenanceRemote Provenance = "remote"
	ProvenanceLocal  Provenance = "local"
)

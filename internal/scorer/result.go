package scorer

import "github.com/povarna/generative-ai-agents/textfinder-agent/internal/models"

type Status string

const (
	StatusAvailable   Status = "available"
	StatusUnavailable Status = "unavailable"
)

// Result is the outcome of one scoring attempt: either a (possibly empty)
// result set, or Unavailable with the reason it could not be obtained.
type Result struct {
	Status  Status
	Kind    Kind
	Records []models.Record
	Reason  string
}

func Available(kind Kind, records []models.Record) Result {
	return Result{
		Status:  StatusAvailable,
		Kind:    kind,
		Records: records,
	}
}

func Unavailable(reason string) Result {
	return Result{
		Status: StatusUnavailable,
		Reason: reason,
	}
}

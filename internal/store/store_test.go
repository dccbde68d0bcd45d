package store

import (
	"testing"

	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/models"
)

func TestStore_Get(t *testing.T) {
	s := New([]models.Record{
		{Source: models.SourceTeams, Title: "first"},
		{Source: models.SourceOutlook, Title: "second"},
	})

	tests := []struct {
		name      string
		index     int
		wantOK    bool
		wantTitle string
	}{
		{name: "first", index: 0, wantOK: true, wantTitle: "first"},
		{name: "last", index: 1, wantOK: true, wantTitle: "second"},
		{name: "negative", index: -1, wantOK: false},
		{name: "past end", index: 2, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := s.Get(tt.index)
			if ok != tt.wantOK {
				t.Fatalf("ok: %v, want %v", ok, tt.wantOK)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("Title: %q, want %q", got.Title, tt.wantTitle)
			}
		})
	}
}

func TestStore_AllReturnsCopy(t *testing.T) {
	s := New([]models.Record{{Source: models.SourceTeams, Title: "first draft"}})

	all := s.All()
	all[0].Title = "mutated"

	got, _ := s.Get(0)
	if got.Title != "first draft" {
		t.Errorf("store was mutated through All(): got %q", got.Title)
	}
}

func TestStore_NewCopiesInput(t *testing.T) {
	input := []models.Record{{Source: models.SourceTeams, Title: "first draft"}}
	s := New(input)
	input[0].Title = "mutated"

	got, _ := s.Get(0)
	if got.Title != "first draft" {
		t.Errorf("store shares backing array with caller: got %q", got.Title)
	}
}

func TestDefault(t *testing.T) {
	s := Default()
	if s.Len() != 5 {
		t.Fatalf("expected 5 default records, got %d", s.Len())
	}

	for i, r := range s.All() {
		if !r.Source.Valid() {
			t.Errorf("record %d has invalid source %q", i, r.Source)
		}
		if r.Title == "" || r.Link == "" {
			t.Errorf("record %d missing title or link", i)
		}
	}
}

package models

import (
	"encoding/json"
	"testing"
)

func TestRatingValue(t *testing.T) {
	tests := []struct {
		rating Rating
		want   float64
		ok     bool
	}{
		{"3", 3, true},
		{"3 (Neutral)", 3, true},
		{" 4.5 ", 4.5, true},
		{".5", 0.5, true},
		{"-1", -1, true},
		{"x", 0, false},
		{"", 0, false},
		{"NaN", 0, false},
		{"Infinity", 0, false},
	}

	for _, tt := range tests {
		got, ok := tt.rating.Value()
		if ok != tt.ok || got != tt.want {
			t.Errorf("Rating(%q).Value() = %v, %v; want %v, %v", tt.rating, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRatingUnmarshalJSON(t *testing.T) {
	var p Participant
	if err := json.Unmarshal([]byte(`{"id":"a","name":"Alice","rating":4}`), &p); err != nil {
		t.Fatalf("Unmarshal number rating: %v", err)
	}
	if p.Rating != "4" {
		t.Errorf("rating = %q, want %q", p.Rating, "4")
	}

	if err := json.Unmarshal([]byte(`{"id":"a","name":"Alice","rating":"2 (Weak)"}`), &p); err != nil {
		t.Fatalf("Unmarshal string rating: %v", err)
	}
	if p.Rating != "2 (Weak)" {
		t.Errorf("rating = %q, want %q", p.Rating, "2 (Weak)")
	}

	if err := json.Unmarshal([]byte(`{"rating":true}`), &p); err == nil {
		t.Error("expected error for boolean rating")
	}
}

func TestSessionCloneIsDeep(t *testing.T) {
	s := &Session{
		ID:         "s1",
		Roster:     []Participant{{ID: "1", Name: "A", Rating: "3"}},
		Assignment: Assignment{{{ID: "1", Name: "A", Rating: "3"}}},
		History:    Assignment{{{ID: "1", Name: "A", Rating: "3"}}},
	}

	c := s.Clone()
	c.Roster[0].Name = "changed"
	c.Assignment[0][0].Name = "changed"
	c.History[0][0].Name = "changed"

	if s.Roster[0].Name != "A" || s.Assignment[0][0].Name != "A" || s.History[0][0].Name != "A" {
		t.Error("Clone shares memory with the original session")
	}
}

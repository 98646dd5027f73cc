package models

import (
	"encoding/json"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrInvalidTeamCount     = errors.New("team count must be between 1 and 100")
	ErrInvalidRosterSize    = errors.New("roster size must be between 0 and 1000")
	ErrSessionNotFound      = errors.New("session not found")
	ErrParticipantNotFound  = errors.New("participant not found")
	ErrEmptyUpdate          = errors.New("update must set a name or a rating")
	ErrDuplicateParticipant = errors.New("duplicate participant id")
)

// Upper bounds for a single session
const (
	MaxTeamCount  = 100
	MaxRosterSize = 1000
)

// NeutralRating is the default rating on the 1-5 scale
const NeutralRating Rating = "3"

// leadingNumber matches the numeric prefix of a rating such as "3 (Neutral)"
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// Rating is a participant rating as it was entered. Ratings are free text so
// that values like "3 (Neutral)" survive editing; Value extracts the number.
type Rating string

// Value returns the effective numeric rating and whether one could be parsed
func (r Rating) Value() (float64, bool) {
	m := leadingNumber.FindString(strings.TrimSpace(string(r)))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// UnmarshalJSON accepts both numbers and strings
func (r *Rating) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = Rating(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*r = Rating(n.String())
	return nil
}

// Participant represents a rated player on the roster
type Participant struct {
	ID     string `json:"id" yaml:"id,omitempty"`
	Name   string `json:"name" yaml:"name"`
	Rating Rating `json:"rating" yaml:"rating"`
}

// Team is one bucket of an assignment, in placement order
type Team []Participant

// Assignment is the ordered list of teams produced by a balance
type Assignment []Team

// Clone returns a deep copy of the assignment
func (a Assignment) Clone() Assignment {
	if a == nil {
		return nil
	}
	out := make(Assignment, len(a))
	for i, team := range a {
		out[i] = make(Team, len(team))
		copy(out[i], team)
	}
	return out
}

// Size returns the number of participants across all teams
func (a Assignment) Size() int {
	n := 0
	for _, team := range a {
		n += len(team)
	}
	return n
}

// Session holds the roster, the active assignment and the one-slot history
// for a single user session
type Session struct {
	ID              string        `json:"id"`
	Roster          []Participant `json:"roster"`
	TeamCount       int           `json:"teamCount"`
	Assignment      Assignment    `json:"assignment"`
	History         Assignment    `json:"history"`
	RandomizeLocked bool          `json:"randomizeLocked"`
	Message         string        `json:"message"`
	ShowDetails     bool          `json:"showDetails"`
	Version         int64         `json:"version"`
	CreatedAt       int64         `json:"createdAt"`
	UpdatedAt       int64         `json:"updatedAt"`
}

// Clone returns a deep copy of the session
func (s *Session) Clone() *Session {
	out := *s
	if s.Roster != nil {
		out.Roster = make([]Participant, len(s.Roster))
		copy(out.Roster, s.Roster)
	}
	out.Assignment = s.Assignment.Clone()
	out.History = s.History.Clone()
	return &out
}

// TeamStats summarizes one team of an assignment
type TeamStats struct {
	Index         int     `json:"index"`
	Size          int     `json:"size"`
	AverageRating float64 `json:"averageRating"`
	AllNeutral    bool    `json:"allNeutral"`
}

// BalanceSummary aggregates recorded balances over a time window
type BalanceSummary struct {
	Balances uint64 `json:"balances"`
	// MeanSpread is the mean gap between the highest and lowest team
	// average of each balance
	MeanSpread float64 `json:"meanSpread"`
}

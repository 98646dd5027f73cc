// Package session implements the assignment lifecycle of a single session:
// balancing, randomizing, undo, reset and roster edits. Operations mutate the
// *models.Session they are given and never touch any other session.
package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Billy-Davies-2/futsal-team-maker/internal/balancer"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/models"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/roster"
)

const (
	MessageBalanced = "Teams balanced with strong, weak, and neutral players."
	MessageReverted = "Reverted to the previous team assignment."
)

// Controller applies lifecycle operations using a shared balancer
type Controller struct {
	balancer *balancer.Balancer
}

// NewController creates a controller backed by the given balancer
func NewController(b *balancer.Balancer) *Controller {
	return &Controller{balancer: b}
}

// Balance stores the current assignment as history and replaces it with a
// fresh tiered balance. The randomize-lock is left as is.
func (c *Controller) Balance(s *models.Session) error {
	teams, err := c.balancer.Balance(s.Roster, s.TeamCount)
	if err != nil {
		return fmt.Errorf("balance with %d teams: %w", s.TeamCount, err)
	}
	s.History = s.Assignment.Clone()
	s.Assignment = teams
	s.Message = MessageBalanced
	return nil
}

// Randomize shuffles the roster and resets ratings and teams. It does
// nothing and returns false while the randomize-lock is set.
func (c *Controller) Randomize(s *models.Session) bool {
	if s.RandomizeLocked {
		return false
	}
	s.History = s.Assignment.Clone()
	s.Roster = c.balancer.Shuffle(s.Roster)
	Reset(s)
	s.RandomizeLocked = true
	return true
}

// Reset sets every rating back to neutral, clears the assignment and
// releases the randomize-lock. History is kept so Undo still works.
func Reset(s *models.Session) {
	list := make([]models.Participant, len(s.Roster))
	for i, p := range s.Roster {
		p.Rating = models.NeutralRating
		list[i] = p
	}
	s.Roster = list
	invalidate(s)
}

// Undo restores the assignment saved by the last balance or randomize and
// releases the randomize-lock. It returns false when there is no history.
func Undo(s *models.Session) bool {
	if len(s.History) == 0 {
		return false
	}
	s.Assignment = s.History.Clone()
	s.RandomizeLocked = false
	s.Message = MessageReverted
	return true
}

// SetTeamCount changes the number of teams used by the next balance
func SetTeamCount(s *models.Session, n int) error {
	if n < 1 || n > models.MaxTeamCount {
		return models.ErrInvalidTeamCount
	}
	s.TeamCount = n
	return nil
}

// Rename changes the display name of a participant
func Rename(s *models.Session, id, name string) error {
	return edit(s, id, func(p *models.Participant) { p.Name = name })
}

// Rate changes the rating of a participant
func Rate(s *models.Session, id string, rating models.Rating) error {
	return edit(s, id, func(p *models.Participant) { p.Rating = rating })
}

// Resize grows the roster with blank neutral participants or truncates it
// from the tail
func Resize(s *models.Session, n int) error {
	if n < 0 || n > models.MaxRosterSize {
		return models.ErrInvalidRosterSize
	}
	list := make([]models.Participant, 0, n)
	list = append(list, s.Roster[:min(n, len(s.Roster))]...)
	if n > len(list) {
		list = append(list, roster.Blank(n-len(list))...)
	}
	s.Roster = list
	invalidate(s)
	return nil
}

// Import replaces the roster with the participants parsed from text
func Import(s *models.Session, text string) int {
	s.Roster = roster.Parse(text)
	invalidate(s)
	return len(s.Roster)
}

// Replace swaps in a whole roster. Participants without an identity get one.
func Replace(s *models.Session, participants []models.Participant) error {
	seen := make(map[string]struct{}, len(participants))
	out := make([]models.Participant, len(participants))
	for i, p := range participants {
		if p.ID == "" {
			p.ID = uuid.NewString()
		} else if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: %s", models.ErrDuplicateParticipant, p.ID)
		}
		seen[p.ID] = struct{}{}
		out[i] = p
	}
	s.Roster = out
	invalidate(s)
	return nil
}

func edit(s *models.Session, id string, fn func(*models.Participant)) error {
	for i := range s.Roster {
		if s.Roster[i].ID == id {
			list := make([]models.Participant, len(s.Roster))
			copy(list, s.Roster)
			fn(&list[i])
			s.Roster = list
			invalidate(s)
			return nil
		}
	}
	return fmt.Errorf("participant %s: %w", id, models.ErrParticipantNotFound)
}

// invalidate drops an assignment that no longer matches the roster
func invalidate(s *models.Session) {
	s.Assignment = nil
	s.Message = ""
	s.RandomizeLocked = false
}

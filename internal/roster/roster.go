// Package roster converts between free text and participants: it parses
// numbered sign-up lists (as pasted from a chat) and formats assignments for
// the clipboard.
package roster

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/Billy-Davies-2/futsal-team-maker/internal/models"
)

var ordinal = regexp.MustCompile(`^\d+\.\s*`)

// Parse extracts participants from lines shaped like "1. Alice". Other lines
// and entries with an empty name are skipped. Every participant gets a fresh
// identity and the neutral rating.
func Parse(text string) []models.Participant {
	participants := []models.Participant{}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		loc := ordinal.FindStringIndex(line)
		if loc == nil {
			continue
		}
		name := strings.TrimSpace(line[loc[1]:])
		if name == "" {
			continue
		}
		participants = append(participants, models.Participant{
			ID:     uuid.NewString(),
			Name:   name,
			Rating: models.NeutralRating,
		})
	}
	return participants
}

// Blank returns n unnamed participants with the neutral rating
func Blank(n int) []models.Participant {
	participants := make([]models.Participant, n)
	for i := range participants {
		participants[i] = models.Participant{
			ID:     uuid.NewString(),
			Rating: models.NeutralRating,
		}
	}
	return participants
}

// Format renders an assignment as "Team <n>" sections listing member names,
// separated by a blank line
func Format(a models.Assignment) string {
	sections := make([]string, len(a))
	for i, team := range a {
		var b strings.Builder
		fmt.Fprintf(&b, "Team %d\n", i+1)
		for j, p := range team {
			if j > 0 {
				b.WriteString("\n")
			}
			b.WriteString(p.Name)
		}
		sections[i] = b.String()
	}
	return strings.Join(sections, "\n\n")
}

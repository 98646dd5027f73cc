package balancer

import (
	"math"

	"github.com/Billy-Davies-2/futsal-team-maker/internal/models"
)

// AverageRating returns the mean rating of a team. Unparseable ratings add
// nothing to the sum but still count towards the team size.
func AverageRating(team models.Team) float64 {
	if len(team) == 0 {
		return 0
	}
	total := 0.0
	for _, p := range team {
		if v, ok := p.Rating.Value(); ok {
			total += v
		}
	}
	avg := total / float64(len(team))
	if math.IsNaN(avg) || math.IsInf(avg, 0) {
		return 0
	}
	return avg
}

// AllNeutral reports whether every member carries exactly the neutral rating
func AllNeutral(team models.Team) bool {
	neutral, _ := models.NeutralRating.Value()
	for _, p := range team {
		if v, ok := p.Rating.Value(); !ok || v != neutral {
			return false
		}
	}
	return true
}

// Summarize computes per-team statistics for an assignment
func Summarize(a models.Assignment) []models.TeamStats {
	stats := make([]models.TeamStats, len(a))
	for i, team := range a {
		stats[i] = models.TeamStats{
			Index:         i + 1,
			Size:          len(team),
			AverageRating: AverageRating(team),
			AllNeutral:    AllNeutral(team),
		}
	}
	return stats
}

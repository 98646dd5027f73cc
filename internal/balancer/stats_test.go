package balancer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Billy-Davies-2/futsal-team-maker/internal/models"
)

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name string
		team models.Team
		want float64
	}{
		{"empty team", models.Team{}, 0},
		{"nil team", nil, 0},
		{"two three four", models.Team{player("A", "2"), player("B", "3"), player("C", "4")}, 3.0},
		{"unparseable counts in denominator", models.Team{player("A", "4"), player("B", "x")}, 2.0},
		{"all unparseable", models.Team{player("A", "x"), player("B", "")}, 0},
		{"labelled rating", models.Team{player("A", "3 (Neutral)"), player("B", "5")}, 4.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AverageRating(tt.team), 1e-9)
		})
	}
}

func TestAllNeutral(t *testing.T) {
	assert.True(t, AllNeutral(models.Team{player("A", "3"), player("B", "3 (Neutral)")}))
	assert.False(t, AllNeutral(models.Team{player("A", "3"), player("B", "4")}))
	assert.False(t, AllNeutral(models.Team{player("A", "x")}))
	assert.True(t, AllNeutral(models.Team{}))
}

func TestSummarize(t *testing.T) {
	a := models.Assignment{
		{player("A", "5"), player("B", "1")},
		{player("C", "3")},
	}

	stats := Summarize(a)

	assert.Equal(t, []models.TeamStats{
		{Index: 1, Size: 2, AverageRating: 3, AllNeutral: false},
		{Index: 2, Size: 1, AverageRating: 3, AllNeutral: true},
	}, stats)
}

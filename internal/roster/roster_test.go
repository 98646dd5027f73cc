package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Billy-Davies-2/futsal-team-maker/internal/models"
)

func TestParse(t *testing.T) {
	got := Parse("7 Nov\n1. Alice\n2. Bob\nnotanentry\n3.  Carol  ")

	require.Len(t, got, 3)
	assert.Equal(t, "Alice", got[0].Name)
	assert.Equal(t, "Bob", got[1].Name)
	assert.Equal(t, "Carol", got[2].Name)

	ids := map[string]bool{}
	for _, p := range got {
		assert.Equal(t, models.NeutralRating, p.Rating)
		assert.NotEmpty(t, p.ID)
		ids[p.ID] = true
	}
	assert.Len(t, ids, 3, "identities must be unique")
}

func TestParseSkipsMalformedLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty text", "", nil},
		{"no space after dot", "1.Name\n2.Other", []string{"Name", "Other"}},
		{"empty name", "1.\n2.   \n3. Zed", []string{"Zed"}},
		{"leading whitespace is not an ordinal", "  1. Indented\n2. Kept", []string{"Kept"}},
		{"missing dot", "1 Alice\n12. Bob", []string{"Bob"}},
		{"header line", "7 Nov, THURSDAY, SAFRA TAMPINES, 9PM - 11PM. Pitch 4\n1. Ann", []string{"Ann"}},
		{"windows line endings", "1. Ann\r\n2. Ben\r\n", []string{"Ann", "Ben"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.text)
			var gotNames []string
			for _, p := range got {
				gotNames = append(gotNames, p.Name)
			}
			assert.Equal(t, tt.want, gotNames)
		})
	}
}

func TestBlank(t *testing.T) {
	got := Blank(3)
	require.Len(t, got, 3)
	for _, p := range got {
		assert.Empty(t, p.Name)
		assert.Equal(t, models.NeutralRating, p.Rating)
		assert.NotEmpty(t, p.ID)
	}
	assert.Empty(t, Blank(0))
}

func TestFormat(t *testing.T) {
	a := models.Assignment{
		{{Name: "Alice", Rating: "5"}, {Name: "Bob", Rating: "1"}},
		{{Name: "Carol", Rating: "3"}, {Name: "Dave", Rating: "3"}},
	}

	assert.Equal(t, "Team 1\nAlice\nBob\n\nTeam 2\nCarol\nDave", Format(a))
}

func TestFormatEdgeCases(t *testing.T) {
	assert.Equal(t, "", Format(nil))
	assert.Equal(t, "Team 1\n\n\nTeam 2\nSolo", Format(models.Assignment{{}, {{Name: "Solo"}}}))
}

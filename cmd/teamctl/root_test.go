package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Billy-Davies-2/futsal-team-maker/internal/models"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBalanceText(t *testing.T) {
	path := writeFile(t, "roster.txt", "1. Ann\n2. Ben\n3. Cat\n4. Dan\n\nnot a player\n5. Eve")

	out, err := run(t, "balance", "--file", path, "--teams", "2", "--seed", "7")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Team 1\n"))
	assert.Contains(t, out, "\n\nTeam 2\n")
	for _, name := range []string{"Ann", "Ben", "Cat", "Dan", "Eve"} {
		assert.Equal(t, 1, strings.Count(out, name), name)
	}
	assert.NotContains(t, out, "not a player")

	again, err := run(t, "balance", "--file", path, "--teams", "2", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestBalanceYAMLDetails(t *testing.T) {
	path := writeFile(t, "roster.yaml", `
participants:
  - name: Ann
    rating: 5
  - name: Ben
    rating: "1"
  - name: Cat
    rating: 4 (Strong)
  - name: Dan
    rating: 2
`)

	out, err := run(t, "balance", "-f", path, "-t", "2", "--details")
	require.NoError(t, err)

	// one strong and one weak player per team
	assert.Contains(t, out, "Team 1: 2 players, average")
	assert.Contains(t, out, "Team 2: 2 players, average")
	assert.NotContains(t, out, "all neutral")
}

func TestBalanceInvalidTeams(t *testing.T) {
	path := writeFile(t, "roster.txt", "1. Ann")

	_, err := run(t, "balance", "--file", path, "--teams", "0")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidTeamCount)
}

func TestBalanceRequiresFile(t *testing.T) {
	_, err := run(t, "balance")
	require.Error(t, err)

	_, err = run(t, "balance", "--file", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read roster")
}

func TestParse(t *testing.T) {
	path := writeFile(t, "roster.txt", "1. Ann\n2.  Ben \n3.")

	out, err := run(t, "parse", "--file", path)
	require.NoError(t, err)

	var doc rosterFile
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Participants, 2)
	assert.Equal(t, "Ann", doc.Participants[0].Name)
	assert.Equal(t, "Ben", doc.Participants[1].Name)
	for _, p := range doc.Participants {
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, models.NeutralRating, p.Rating)
	}
}

func TestParseYAMLList(t *testing.T) {
	participants, err := parseYAML([]byte(`
- name: Ann
  rating: 4
- name: "  "
- id: fixed
  name: Ben
`))
	require.NoError(t, err)
	require.Len(t, participants, 2)

	assert.Equal(t, models.Rating("4"), participants[0].Rating)
	assert.NotEmpty(t, participants[0].ID)
	assert.Equal(t, "fixed", participants[1].ID)
	assert.Equal(t, models.NeutralRating, participants[1].Rating)
}

func TestParseYAMLInvalid(t *testing.T) {
	_, err := parseYAML([]byte("participants: [unclosed"))
	require.Error(t, err)
}

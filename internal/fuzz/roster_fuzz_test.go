package fuzz

import (
	"math"
	"strings"
	"testing"

	"github.com/Billy-Davies-2/futsal-team-maker/internal/balancer"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/models"
	"github.com/Billy-Davies-2/futsal-team-maker/internal/roster"
)

// FuzzRosterParse checks that every parsed participant is usable
func FuzzRosterParse(f *testing.F) {
	f.Add("1. Ann\n2. Ben")
	f.Add("1.Ann\r\n2.  Ben  \r\n")
	f.Add("Ann\n- Ben\n3) Cat")

	f.Fuzz(func(t *testing.T, text string) {
		participants := roster.Parse(text)

		if len(participants) > strings.Count(text, "\n")+1 {
			t.Fatalf("parsed %d participants from %d lines", len(participants), strings.Count(text, "\n")+1)
		}
		seen := map[string]bool{}
		for _, p := range participants {
			if strings.TrimSpace(p.Name) == "" || p.Name != strings.TrimSpace(p.Name) {
				t.Fatalf("bad name %q", p.Name)
			}
			if p.Rating != models.NeutralRating {
				t.Fatalf("rating %q, want neutral", p.Rating)
			}
			if seen[p.ID] {
				t.Fatalf("duplicate id %s", p.ID)
			}
			seen[p.ID] = true
		}
	})
}

// FuzzRatingValue checks that rating parsing never yields a non-finite value
// and that classification always lands in a known tier
func FuzzRatingValue(f *testing.F) {
	f.Add("3")
	f.Add("4 (Strong)")
	f.Add(" 2.5 ")
	f.Add("1e309")
	f.Add("NaN")
	f.Add("")

	f.Fuzz(func(t *testing.T, raw string) {
		r := models.Rating(raw)
		v, ok := r.Value()
		if !ok && v != 0 {
			t.Fatalf("unparsed rating %q returned %v", raw, v)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("rating %q returned %v", raw, v)
		}

		switch balancer.Classify(models.Participant{Rating: r}) {
		case balancer.TierStrong, balancer.TierWeak, balancer.TierNeutral:
		default:
			t.Fatalf("rating %q has no tier", raw)
		}
	})
}

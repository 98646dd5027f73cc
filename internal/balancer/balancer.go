// Package balancer splits a roster into teams. Strong and weak players are
// spread round-robin first, neutral players are shuffled and dealt after
// them with the same cursor, so every team receives a fair share of each
// tier without the algorithm ever sorting by rating.
package balancer

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Billy-Davies-2/futsal-team-maker/internal/models"
)

// Tier thresholds on the 1-5 rating scale
const (
	StrongThreshold = 4.0
	WeakThreshold   = 2.0
)

// Tier groups participants by rating
type Tier string

const (
	TierStrong  Tier = "strong"
	TierWeak    Tier = "weak"
	TierNeutral Tier = "neutral"
)

// Source is the random source used for shuffling. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Classifier decides the tier of a participant
type Classifier func(models.Participant) Tier

// Classify is the default classifier. Unparseable ratings are neutral.
func Classify(p models.Participant) Tier {
	v, ok := p.Rating.Value()
	switch {
	case !ok:
		return TierNeutral
	case v >= StrongThreshold:
		return TierStrong
	case v <= WeakThreshold:
		return TierWeak
	default:
		return TierNeutral
	}
}

// Balancer builds team assignments. It is safe for concurrent use.
type Balancer struct {
	mu       sync.Mutex
	src      Source
	classify Classifier
}

// Option configures a Balancer
type Option func(*Balancer)

// WithSource sets the random source used for shuffles
func WithSource(src Source) Option {
	return func(b *Balancer) {
		b.src = src
	}
}

// WithSeed seeds a PCG source, making shuffles reproducible
func WithSeed(seed uint64) Option {
	return WithSource(rand.New(rand.NewPCG(seed, seed)))
}

// WithClassifier replaces the default tier classifier
func WithClassifier(c Classifier) Option {
	return func(b *Balancer) {
		b.classify = c
	}
}

// New creates a Balancer seeded from the clock unless a source is given
func New(opts ...Option) *Balancer {
	b := &Balancer{classify: Classify}
	for _, opt := range opts {
		opt(b)
	}
	if b.src == nil {
		now := uint64(time.Now().UnixNano())
		b.src = rand.New(rand.NewPCG(now, now>>1))
	}
	return b
}

// Balance distributes the roster across teamCount teams.
//
// Strong players, then weak players, are dealt round-robin in roster order.
// The neutral tier is shuffled and dealt next, continuing the same cursor.
// Anything the classifier left out is appended last so the result always
// contains every roster entry exactly once.
func (b *Balancer) Balance(roster []models.Participant, teamCount int) (models.Assignment, error) {
	if teamCount < 1 {
		return nil, models.ErrInvalidTeamCount
	}

	teams := make(models.Assignment, teamCount)
	for i := range teams {
		teams[i] = models.Team{}
	}

	var strong, weak, neutral []int
	for i, p := range roster {
		switch b.classify(p) {
		case TierStrong:
			strong = append(strong, i)
		case TierWeak:
			weak = append(weak, i)
		case TierNeutral:
			neutral = append(neutral, i)
		}
	}

	placed := make([]bool, len(roster))
	cursor := 0
	deal := func(idx []int) {
		for _, i := range idx {
			teams[cursor%teamCount] = append(teams[cursor%teamCount], roster[i])
			placed[i] = true
			cursor++
		}
	}

	deal(strong)
	deal(weak)
	deal(b.shuffleIndexes(neutral))

	var remaining []int
	for i := range roster {
		if !placed[i] {
			remaining = append(remaining, i)
		}
	}
	deal(remaining)

	return teams, nil
}

// Shuffle returns a uniformly random permutation of the roster. The input
// slice is left untouched.
func (b *Balancer) Shuffle(roster []models.Participant) []models.Participant {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Shuffle(roster, b.src)
}

func (b *Balancer) shuffleIndexes(idx []int) []int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Shuffle(idx, b.src)
}

// Shuffle performs a Fisher-Yates pass over a copy of items, walking from
// the last index down to 1 and swapping with src.IntN(i+1).
func Shuffle[T any](items []T, src Source) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

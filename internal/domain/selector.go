package domain

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"

	m "covquest.dev/pkg/covquest/internal/model"
)

// RandomSource picks worklist indexes. *rand.Rand satisfies it.
type RandomSource interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// NewRandomSource returns a RandomSource seeded from the runtime generator.
func NewRandomSource() RandomSource {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// ChallengeSelector turns changed files into challenges.
type ChallengeSelector interface {
	// Select draws candidates at random until one has partially or not
	// covered lines. Each candidate is evaluated at most once.
	Select(ctx context.Context, reportRoot m.Path, author string, candidates []m.Path) (m.Challenge, error)
	// SelectN repeats Select on the remaining worklist until n challenges
	// were found or the worklist is exhausted. It only fails when no
	// challenge at all could be produced.
	SelectN(ctx context.Context, reportRoot m.Path, author string, candidates []m.Path, n int) ([]m.Challenge, error)
}

type challengeSelector struct {
	CoverageLookup
	random RandomSource
	now    func() time.Time
}

// NewChallengeSelector creates a ChallengeSelector. A nil random uses
// NewRandomSource.
func NewChallengeSelector(lookup CoverageLookup, random RandomSource) ChallengeSelector {
	if random == nil {
		random = NewRandomSource()
	}

	return &challengeSelector{
		CoverageLookup: lookup,
		random:         random,
		now:            time.Now,
	}
}

func (s *challengeSelector) Select(ctx context.Context, reportRoot m.Path, author string, candidates []m.Path) (m.Challenge, error) {
	challenges, err := s.SelectN(ctx, reportRoot, author, candidates, 1)
	if err != nil {
		return m.Challenge{}, err
	}

	return challenges[0], nil
}

func (s *challengeSelector) SelectN(ctx context.Context, reportRoot m.Path, author string, candidates []m.Path, n int) ([]m.Challenge, error) {
	if n < 1 {
		n = 1
	}

	worklist := slices.Clone(candidates)
	challenges := make([]m.Challenge, 0, n)
	evaluated := 0

	for len(challenges) < n && len(worklist) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		index := s.random.IntN(len(worklist))
		candidate := s.Lookup(ctx, reportRoot, worklist[index])
		worklist = slices.Delete(worklist, index, index+1)
		evaluated++

		if !candidate.Eligible() {
			slog.Debug("candidate rejected",
				"source", candidate.Source,
				"located", candidate.Located,
				"absent", candidate.Report.Absent,
				"remaining", len(worklist))

			continue
		}

		challenges = append(challenges, s.newChallenge(author, candidate))
	}

	if len(challenges) == 0 {
		return nil, fmt.Errorf("%w: %d of %d candidates evaluated", ErrNoEligibleCandidate, evaluated, len(candidates))
	}

	return challenges, nil
}

func (s *challengeSelector) newChallenge(author string, candidate m.Candidate) m.Challenge {
	return m.Challenge{
		ID:         uuid.NewString(),
		Author:     author,
		Package:    candidate.Location.Package,
		Class:      candidate.Location.Class,
		Source:     candidate.Source,
		ReportPath: candidate.Location.Path,
		Coverage:   candidate.Report,
		CreatedAt:  s.now().UTC(),
	}
}

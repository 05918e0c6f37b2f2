package domain

import (
	"context"

	"golang.org/x/sync/errgroup"

	m "covquest.dev/pkg/covquest/internal/model"
)

// DefaultParallel is the worker count used when none is configured.
const DefaultParallel = 4

// Inspector looks up coverage for many sources at once.
type Inspector interface {
	// InspectAll returns one candidate per source, in input order.
	InspectAll(ctx context.Context, reportRoot m.Path, sources []m.Path, parallel int) ([]m.Candidate, error)
}

type inspector struct {
	CoverageLookup
}

// NewInspector creates an Inspector backed by lookup.
func NewInspector(lookup CoverageLookup) Inspector {
	return &inspector{CoverageLookup: lookup}
}

func (i *inspector) InspectAll(ctx context.Context, reportRoot m.Path, sources []m.Path, parallel int) ([]m.Candidate, error) {
	if parallel <= 0 {
		parallel = DefaultParallel
	}

	candidates := make([]m.Candidate, len(sources))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(parallel)

	for index, source := range sources {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			candidates[index] = i.Lookup(groupCtx, reportRoot, source)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return candidates, nil
}

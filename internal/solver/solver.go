// Package solver implements the octothorpe search engine: role
// permutations of a chain set, the six-index config search, and best-area
// selection across whole puzzle batches.
package solver

import (
	"context"
	"runtime"
	"sync"

	"github.com/chainworks/molecules/internal/model"
)

// Options tunes batch solving.
type Options struct {
	// Workers caps how many chain sets are solved concurrently.
	// Values < 1 mean one worker per CPU.
	Workers int
}

// DefaultOptions returns options suitable for batch solving.
func DefaultOptions() Options {
	return Options{Workers: runtime.NumCPU()}
}

// Molecules returns every valid arrangement of the set: the cross product
// of all 24 role assignments with each assignment's valid configs. An empty
// result means the chains cannot be assembled at all. Symmetric assignments
// may yield geometrically identical molecules; all are kept, since only the
// maximum area matters downstream.
func Molecules(set model.ChainSet) []model.Molecule {
	var mols []model.Molecule
	for _, perm := range Permutations(set) {
		for _, cfg := range ValidConfigs(perm) {
			mols = append(mols, model.Molecule{Chains: perm, Config: cfg})
		}
	}
	return mols
}

// BestArea returns the maximum enclosed area over every valid arrangement
// of the set, or 0 when no arrangement exists.
func BestArea(set model.ChainSet) int {
	best := 0
	for _, perm := range Permutations(set) {
		for _, cfg := range ValidConfigs(perm) {
			if area := cfg.Area(); area > best {
				best = area
			}
		}
	}
	return best
}

// MaxAreas solves each chain set and returns one area per set, in input
// order. Sets are distributed over opts.Workers goroutines; each result
// lands at its own index, so completion order never reorders output.
// Cancellation is honored between sets only — a set's search always runs to
// completion once started, and a cancelled call returns ctx's error with no
// partial results.
func MaxAreas(ctx context.Context, sets []model.ChainSet, opts Options) ([]int, error) {
	areas := make([]int, len(sets))
	if len(sets) == 0 {
		return areas, nil
	}

	workers := opts.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > len(sets) {
		workers = len(sets)
	}

	next := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				areas[i] = BestArea(sets[i])
			}
		}()
	}

	var err error
feed:
	for i := range sets {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case next <- i:
		}
	}
	close(next)
	wg.Wait()

	if err != nil {
		return nil, err
	}
	return areas, nil
}

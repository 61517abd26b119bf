package solver

import "github.com/chainworks/molecules/internal/model"

// Permutations returns every role assignment of the four chains: all 24
// orderings, each mapping one input chain to each of the roles A through D.
// No ordering is filtered here; validity is decided entirely by the config
// search on each ordering.
func Permutations(set model.ChainSet) []model.ChainSet {
	out := make([]model.ChainSet, 0, 24)
	for a := 0; a < 4; a++ {
		for b := 0; b < 4; b++ {
			if b == a {
				continue
			}
			for c := 0; c < 4; c++ {
				if c == a || c == b {
					continue
				}
				// The remaining index falls out of the other three.
				d := 6 - a - b - c
				out = append(out, model.ChainSet{set[a], set[b], set[c], set[d]})
			}
		}
	}
	return out
}

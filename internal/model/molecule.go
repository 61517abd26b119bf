// Package model defines the core puzzle data types.
package model

import (
	"errors"
	"fmt"
)

// Chain is one puzzle string, playing one of four roles (A, B, C, D) in a
// cross arrangement. Chains are indexed bytewise; the puzzle alphabet is
// ASCII.
type Chain string

// ChainSet is a group of exactly four chains. The input order carries no
// meaning; order becomes significant only once roles are assigned, and the
// solver tries every assignment.
type ChainSet [4]Chain

// ErrChainCount indicates a caller supplied a group that is not exactly
// four chains.
var ErrChainCount = errors.New("model: a chain set must contain exactly 4 chains")

// NewChainSet builds a ChainSet from raw strings.
func NewChainSet(chains []string) (ChainSet, error) {
	var set ChainSet
	if len(chains) != 4 {
		return set, fmt.Errorf("%w: got %d", ErrChainCount, len(chains))
	}
	for i, c := range chains {
		set[i] = Chain(c)
	}
	return set, nil
}

// Strings returns the set as a plain string slice.
func (s ChainSet) Strings() []string {
	return []string{string(s[0]), string(s[1]), string(s[2]), string(s[3])}
}

// ChainConfig holds the six indices that pin four role-assigned chains into
// a cross: where A crosses B, where B crosses A and C, where C crosses B
// and D, and where D crosses C. Each index points into its own chain.
type ChainConfig struct {
	Ae int `json:"ae"`
	Bs int `json:"bs"`
	Be int `json:"be"`
	Cs int `json:"cs"`
	Ce int `json:"ce"`
	Ds int `json:"ds"`
}

// Width is the horizontal span of the inner rectangle, in cells.
func (c ChainConfig) Width() int { return c.Cs - c.Ce }

// Height is the vertical span of the inner rectangle, in cells.
func (c ChainConfig) Height() int { return c.Be - c.Bs }

// Area counts the grid cells strictly inside the cross's inner rectangle.
// Non-negative for any config produced by the solver, whose range bounds
// guarantee Width >= 3 and Height >= 2.
func (c ChainConfig) Area() int {
	return (c.Width() - 1) * (c.Height() - 1)
}

// Molecule is one fully specified cross arrangement: a role-assigned chain
// set plus the config that pins it together.
type Molecule struct {
	Chains ChainSet    `json:"chains"`
	Config ChainConfig `json:"config"`
}

// Package puzzle reads puzzle input and expected-result text and diffs
// computed areas against expectations.
package puzzle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/chainworks/molecules/internal/model"
)

// Sentinel errors for puzzle parsing.
var (
	// ErrNoTerminator indicates the input has no "Q" end-of-data marker.
	ErrNoTerminator = errors.New(`puzzle: missing "Q" terminator`)
	// ErrRaggedGroups indicates the chain count is not a multiple of 4.
	ErrRaggedGroups = errors.New("puzzle: chains do not form even groups of 4")
)

// ParseInput splits puzzle text into chain sets. The format is
// whitespace-separated chain tokens, four per set, with a "Q" marking end
// of data; anything after the first Q is ignored.
func ParseInput(text string) ([]model.ChainSet, error) {
	q := strings.Index(text, "Q")
	if q == -1 {
		return nil, ErrNoTerminator
	}
	tokens := strings.Fields(text[:q])
	if len(tokens)%4 != 0 {
		return nil, fmt.Errorf("%w: got %d chains", ErrRaggedGroups, len(tokens))
	}

	sets := make([]model.ChainSet, 0, len(tokens)/4)
	for i := 0; i < len(tokens); i += 4 {
		set, err := model.NewChainSet(tokens[i : i+4])
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return sets, nil
}

// ParseExpected parses a whitespace-separated list of expected areas.
func ParseExpected(text string) ([]int, error) {
	fields := strings.Fields(text)
	areas := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("puzzle: expected area %d: %w", i, err)
		}
		areas[i] = n
	}
	return areas, nil
}

// Failure records one chain set whose computed area disagrees with the
// expected value.
type Failure struct {
	Index    int            `json:"index"`
	Expected int            `json:"expected"`
	Got      int            `json:"got"`
	Chains   model.ChainSet `json:"chains"`
}

// Diff pairs each expected area with the computed area and chain set at
// the same index and reports the mismatches. Indices past the shorter of
// the two lists are not compared.
func Diff(sets []model.ChainSet, got, expected []int) []Failure {
	var failures []Failure
	for i, want := range expected {
		if i >= len(got) {
			break
		}
		if got[i] == want {
			continue
		}
		f := Failure{Index: i, Expected: want, Got: got[i]}
		if i < len(sets) {
			f.Chains = sets[i]
		}
		failures = append(failures, f)
	}
	return failures
}

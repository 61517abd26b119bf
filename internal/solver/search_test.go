package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainworks/molecules/internal/model"
	"github.com/chainworks/molecules/internal/solver"
)

// The reference molecule: area 56 at config (10,1,9,10,1,9).
const (
	refA = "AZAAAAAAAAWA"
	refB = "BWBBBBBBBXBB"
	refC = "CYCCCCCCCCXC"
	refD = "DZDDDDDDDYDD"
)

var refConfig = model.ChainConfig{Ae: 10, Bs: 1, Be: 9, Cs: 10, Ce: 1, Ds: 9}

// Synthetic chains engineered so exactly one config is valid for this
// ordering: (4,1,3,4,1,3). Uppercase letters and digits are fillers that
// occur at no checked intersection; lowercase letters are the planted
// intersection characters.
//
//	A[4]=='w'==B[1]  B[3]=='x'==C[4]  C[1]=='y'==D[3]  D[1]=='e'==A[1]
var plantedSet = model.ChainSet{"GeHIwJKL", "MwNxOPQR", "SyTUxVWX", "0e1y2345"}

var plantedConfig = model.ChainConfig{Ae: 4, Bs: 1, Be: 3, Cs: 4, Ce: 1, Ds: 3}

// TestValidConfigs_ReferenceMolecule checks the known config is found for
// the reference ordering and that every accepted config satisfies all four
// intersection equalities and all range bounds.
func TestValidConfigs_ReferenceMolecule(t *testing.T) {
	set := model.ChainSet{refA, refB, refC, refD}
	configs := solver.ValidConfigs(set)

	require.NotEmpty(t, configs)
	assert.Contains(t, configs, refConfig, "the area-56 config must be found")

	for _, cfg := range configs {
		assertWellFormed(t, set, cfg)
	}
}

// TestValidConfigs_PlantedSingleton: the engineered chains admit exactly
// one config.
func TestValidConfigs_PlantedSingleton(t *testing.T) {
	configs := solver.ValidConfigs(plantedSet)
	assert.Equal(t, []model.ChainConfig{plantedConfig}, configs)
}

// TestValidConfigs_EachEqualityRequired breaks one planted intersection at
// a time and expects the config set to collapse to empty.
func TestValidConfigs_EachEqualityRequired(t *testing.T) {
	cases := []struct {
		name  string
		chain int // index into the set
		pos   int // byte to overwrite
	}{
		{"A-B intersection", 1, 1}, // B[1] no longer matches A[4]
		{"B-C intersection", 2, 4}, // C[4] no longer matches B[3]
		{"C-D intersection", 3, 3}, // D[3] no longer matches C[1]
		{"D-A intersection", 0, 1}, // A[1] no longer matches D[1]
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			set := plantedSet
			mutated := []byte(set[tc.chain])
			mutated[tc.pos] = '?'
			set[tc.chain] = model.Chain(mutated)

			assert.Empty(t, solver.ValidConfigs(set),
				"breaking one intersection must invalidate the only config")
		})
	}
}

// TestValidConfigs_ShortChains: chains below the minimum lengths leave the
// loop ranges empty. No configs, no panic.
func TestValidConfigs_ShortChains(t *testing.T) {
	cases := []struct {
		name string
		set  model.ChainSet
	}{
		{"all length 4, same char", model.ChainSet{"aaaa", "aaaa", "aaaa", "aaaa"}},
		{"all length 4, disjoint", model.ChainSet{"abcd", "efgh", "ijkl", "mnop"}},
		{"empty chains", model.ChainSet{"", "", "", ""}},
		{"one chain too short", model.ChainSet{refA, refB, refC, "DD"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Empty(t, solver.ValidConfigs(tc.set))
		})
	}
}

// assertWellFormed re-checks one accepted config against the full
// constraint set.
func assertWellFormed(t *testing.T, set model.ChainSet, cfg model.ChainConfig) {
	t.Helper()
	a, b, c, d := set[0], set[1], set[2], set[3]

	assert.GreaterOrEqual(t, cfg.Ae, 3)
	assert.LessOrEqual(t, cfg.Ae, len(a)-2)
	assert.GreaterOrEqual(t, cfg.Bs, 1)
	assert.LessOrEqual(t, cfg.Bs, len(b)-4)
	assert.GreaterOrEqual(t, cfg.Be, cfg.Bs+2)
	assert.LessOrEqual(t, cfg.Be, len(b)-2)
	assert.GreaterOrEqual(t, cfg.Cs, 3)
	assert.LessOrEqual(t, cfg.Cs, len(c)-2)
	assert.GreaterOrEqual(t, cfg.Ce, 1)
	assert.GreaterOrEqual(t, cfg.Ce, cfg.Cs-cfg.Ae+1)
	assert.LessOrEqual(t, cfg.Ce, cfg.Cs-3)
	assert.GreaterOrEqual(t, cfg.Ds, 1+cfg.Height())
	assert.LessOrEqual(t, cfg.Ds, len(d)-2)

	assert.Equal(t, a[cfg.Ae], b[cfg.Bs], "A/B intersection")
	assert.Equal(t, b[cfg.Be], c[cfg.Cs], "B/C intersection")
	assert.Equal(t, c[cfg.Ce], d[cfg.Ds], "C/D intersection")
	assert.Equal(t, a[cfg.Ae-cfg.Width()], d[cfg.Ds-cfg.Height()], "D/A intersection")

	assert.GreaterOrEqual(t, cfg.Area(), 0, "accepted configs never have negative area")
}

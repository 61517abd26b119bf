package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chainworks/molecules/internal/model"
	"github.com/chainworks/molecules/internal/render"
)

// TestGrid_ReferenceMolecule renders the area-56 reference molecule and
// compares against the known picture.
func TestGrid_ReferenceMolecule(t *testing.T) {
	m := model.Molecule{
		Chains: model.ChainSet{"AZAAAAAAAAWA", "BWBBBBBBBXBB", "CYCCCCCCCCXC", "DZDDDDDDDYDD"},
		Config: model.ChainConfig{Ae: 10, Bs: 1, Be: 9, Cs: 10, Ce: 1, Ds: 9},
	}

	want := strings.Join([]string{
		". D . . . . . . . . B .",
		"A Z A A A A A A A A W A",
		". D . . . . . . . . B .",
		". D . . . . . . . . B .",
		". D . . . . . . . . B .",
		". D . . . . . . . . B .",
		". D . . . . . . . . B .",
		". D . . . . . . . . B .",
		". D . . . . . . . . B .",
		"C Y C C C C C C C C X C",
		". D . . . . . . . . B .",
		". D . . . . . . . . B .",
	}, "\n")

	assert.Equal(t, want, render.Grid(m))
}

// TestGrid_ConflictMarking renders a deliberately inconsistent config and
// expects '*' wherever two chains disagree.
func TestGrid_ConflictMarking(t *testing.T) {
	m := model.Molecule{
		Chains: model.ChainSet{"aaaa", "bbbb", "cccc", "dddd"},
		Config: model.ChainConfig{Ae: 1, Bs: 1, Be: 2, Cs: 1, Ce: 0, Ds: 1},
	}

	want := strings.Join([]string{
		". b . .",
		"* * a a",
		"* * c c",
		"d b . .",
		"d . . .",
	}, "\n")

	assert.Equal(t, want, render.Grid(m))
}

// TestGrid_AgreeingOverlapsKeepChar: matching characters at an
// intersection are written once, not marked.
func TestGrid_AgreeingOverlapsKeepChar(t *testing.T) {
	m := model.Molecule{
		Chains: model.ChainSet{"GeHIwJKL", "MwNxOPQR", "SyTUxVWX", "0e1y2345"},
		Config: model.ChainConfig{Ae: 4, Bs: 1, Be: 3, Cs: 4, Ce: 1, Ds: 3},
	}
	got := render.Grid(m)
	assert.NotContains(t, got, "*", "a valid molecule renders without conflicts")
	assert.Contains(t, got, "G e H I w J K L", "chain A must lie on one row")
}

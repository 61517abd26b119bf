// Package render draws a molecule as an ASCII character grid for
// diagnostics. Cells no chain touches stay '.'; cells written twice with
// disagreeing characters become '*', which only happens for configs that
// did not come from the solver.
package render

import (
	"strings"

	"github.com/chainworks/molecules/internal/model"
)

const (
	empty    = '.'
	conflict = '*'
)

// arm is one chain placed on the grid: origin of its first character plus
// a per-character step.
type arm struct {
	chain  model.Chain
	x, y   int
	dx, dy int
}

// Grid renders the molecule. Coordinates are anchored to chain A: its row
// is y=0 and its first character x=0; the other arms hang off it at the
// offsets the config dictates.
func Grid(m model.Molecule) string {
	cfg := m.Config
	arms := []arm{
		{m.Chains[0], 0, 0, 1, 0},
		{m.Chains[1], cfg.Ae, -cfg.Bs, 0, 1},
		{m.Chains[2], cfg.Ae - cfg.Cs, cfg.Be - cfg.Bs, 1, 0},
		{m.Chains[3], cfg.Ae - cfg.Width(), cfg.Be - cfg.Bs - cfg.Ds, 0, 1},
	}

	minX, minY := 0, 0
	maxX, maxY := 0, 0
	for _, a := range arms {
		if len(a.chain) == 0 {
			continue
		}
		endX := a.x + (len(a.chain)-1)*a.dx
		endY := a.y + (len(a.chain)-1)*a.dy
		minX = min(minX, a.x)
		minY = min(minY, a.y)
		maxX = max(maxX, endX)
		maxY = max(maxY, endY)
	}

	w, h := maxX-minX+1, maxY-minY+1
	grid := make([][]byte, h)
	for i := range grid {
		row := make([]byte, w)
		for j := range row {
			row[j] = empty
		}
		grid[i] = row
	}

	for _, a := range arms {
		x, y := a.x-minX, a.y-minY
		for i := 0; i < len(a.chain); i++ {
			ch := a.chain[i]
			if cur := grid[y][x]; cur == empty || cur == ch {
				grid[y][x] = ch
			} else {
				grid[y][x] = conflict
			}
			x += a.dx
			y += a.dy
		}
	}

	var sb strings.Builder
	for i, row := range grid {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, ch := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(ch)
		}
	}
	return sb.String()
}

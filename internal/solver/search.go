package solver

import "github.com/chainworks/molecules/internal/model"

// ValidConfigs enumerates every config that pins the role-assigned chains
// (A, B, C, D) into a well-formed cross whose four intersections agree on
// their characters. The range bounds keep every index interior enough for
// positive width and height; chains too short for any well-formed cross
// simply leave a loop range empty, so the result is empty rather than an
// error.
//
// Character checks run as early as their loop depth allows: the A/B
// intersection prunes before the four inner loops ever start, and the B/C
// intersection before the two innermost.
func ValidConfigs(set model.ChainSet) []model.ChainConfig {
	a, b, c, d := set[0], set[1], set[2], set[3]

	var configs []model.ChainConfig
	for ae := 3; ae <= len(a)-2; ae++ {
		for bs := 1; bs <= len(b)-4; bs++ {
			if a[ae] != b[bs] {
				continue
			}
			for be := bs + 2; be <= len(b)-2; be++ {
				for cs := 3; cs <= len(c)-2; cs++ {
					if b[be] != c[cs] {
						continue
					}
					ceMin := cs - ae + 1
					if ceMin < 1 {
						ceMin = 1
					}
					for ce := ceMin; ce <= cs-3; ce++ {
						// Where D crosses A is fixed once ce is chosen.
						ad := a[ae-(cs-ce)]
						for ds := 1 + (be - bs); ds <= len(d)-2; ds++ {
							if c[ce] != d[ds] || d[ds-(be-bs)] != ad {
								continue
							}
							configs = append(configs, model.ChainConfig{
								Ae: ae, Bs: bs, Be: be, Cs: cs, Ce: ce, Ds: ds,
							})
						}
					}
				}
			}
		}
	}
	return configs
}

package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chainworks/molecules/internal/logger"
	"github.com/chainworks/molecules/internal/model"
	"github.com/chainworks/molecules/internal/render"
	"github.com/chainworks/molecules/internal/solver"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "inspect [chainA chainB chainC chainD]",
		Short: "Enumerate every valid molecule for one chain set",
		Long: "Print every valid arrangement of four chains: role assignment, config,\n" +
			"area, and a rendered grid. Useful when a computed area looks wrong.",
		Args: cobra.ExactArgs(4),
		Run:  runInspect,
	}

	cmd.Flags().IntP("limit", "l", 0, "Max molecules to print (0 = all)")

	RootCmd.AddCommand(cmd)
}

// moleculeView is a molecule with its derived area, for JSON output.
type moleculeView struct {
	Chains []string          `json:"chains"`
	Config model.ChainConfig `json:"config"`
	Area   int               `json:"area"`
}

func runInspect(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")

	set, err := model.NewChainSet(args)
	if err != nil {
		exitErr("inspect", err)
	}

	mols := solver.Molecules(set)
	best := 0
	for _, m := range mols {
		if a := m.Config.Area(); a > best {
			best = a
		}
	}
	logger.Debug("found %d molecules, best area %d", len(mols), best)
	if limit > 0 && len(mols) > limit {
		mols = mols[:limit]
	}

	if formatFlag == "text" {
		if len(mols) == 0 {
			fmt.Println("no valid molecules")
			return
		}
		for _, m := range mols {
			fmt.Printf("chains: %s\n", strings.Join(m.Chains.Strings(), " "))
			fmt.Printf("config: %+v\narea: %d\n%s\n\n", m.Config, m.Config.Area(), render.Grid(m))
		}
		return
	}

	views := make([]moleculeView, len(mols))
	for i, m := range mols {
		views[i] = moleculeView{Chains: m.Chains.Strings(), Config: m.Config, Area: m.Config.Area()}
	}
	b, _ := json.MarshalIndent(views, "", "  ")
	fmt.Println(string(b))
}

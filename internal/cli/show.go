package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "show [run-id]",
		Short: "Show a saved run with its results",
		Args:  cobra.ExactArgs(1),
		Run:   runShow,
	}

	RootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	run, err := s.GetRun(cmd.Context(), args[0])
	if err != nil {
		exitErr("show", err)
	}

	if formatFlag == "text" {
		fmt.Printf("run %s (%s)\n", run.ID, run.CreatedAt.Format("2006-01-02 15:04:05"))
		for _, r := range run.Results {
			fmt.Printf("%4d  area %-6d %s\n", r.Seq, r.Area, strings.Join(r.Chains, " "))
		}
		return
	}

	b, _ := json.MarshalIndent(run, "", "  ")
	fmt.Println(string(b))
}

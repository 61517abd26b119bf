package cli

import (
	"encoding/json"
	"fmt"

	"github.com/chainworks/molecules/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved runs",
		Long:  "List saved solve runs, newest first. Use show to see a run's results.",
		Run:   runHistory,
	}

	cmd.Flags().IntP("limit", "l", 20, "Max runs")

	RootCmd.AddCommand(cmd)
}

func runHistory(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	runs, err := s.ListRuns(cmd.Context(), store.ListParams{Limit: limit})
	if err != nil {
		exitErr("history", err)
	}

	if formatFlag == "text" {
		for _, r := range runs {
			label := r.Label
			if label == "" {
				label = "-"
			}
			fmt.Printf("%s  %s  %s  %d sets  %s\n",
				r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), label, r.SetCount, r.InputFile)
		}
		return
	}

	if len(runs) == 0 {
		fmt.Println("[]")
		return
	}
	b, _ := json.MarshalIndent(runs, "", "  ")
	fmt.Println(string(b))
}

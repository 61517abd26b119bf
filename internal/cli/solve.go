package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chainworks/molecules/internal/logger"
	"github.com/chainworks/molecules/internal/model"
	"github.com/chainworks/molecules/internal/puzzle"
	"github.com/chainworks/molecules/internal/render"
	"github.com/chainworks/molecules/internal/solver"
	"github.com/chainworks/molecules/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "solve [input.txt]",
		Short: "Solve a puzzle file",
		Long: "Compute the maximum molecule area for every chain set in the input file.\n" +
			"With --expect, diff the computed areas against an expected-results file.",
		Args: cobra.ExactArgs(1),
		Run:  runSolve,
	}

	cmd.Flags().StringP("expect", "e", "", "Expected-areas file to diff against")
	cmd.Flags().Bool("render", false, "Render every molecule of each failed expectation")
	cmd.Flags().Bool("save", false, "Save the run to the database")
	cmd.Flags().String("label", "", "Label for the saved run")
	cmd.Flags().IntP("workers", "w", 0, "Chain sets solved concurrently (default: one per CPU)")

	RootCmd.AddCommand(cmd)
}

func runSolve(cmd *cobra.Command, args []string) {
	expectFile, _ := cmd.Flags().GetString("expect")
	renderFailed, _ := cmd.Flags().GetBool("render")
	save, _ := cmd.Flags().GetBool("save")
	label, _ := cmd.Flags().GetString("label")
	workers, _ := cmd.Flags().GetInt("workers")

	data, err := os.ReadFile(args[0])
	if err != nil {
		exitErr("read input", err)
	}
	sets, err := puzzle.ParseInput(string(data))
	if err != nil {
		exitErr("parse input", err)
	}
	logger.Debug("parsed %d chain sets from %s", len(sets), args[0])

	opts := solver.DefaultOptions()
	if workers > 0 {
		opts.Workers = workers
	}
	start := time.Now()
	areas, err := solver.MaxAreas(cmd.Context(), sets, opts)
	if err != nil {
		exitErr("solve", err)
	}
	logger.Debug("solved %d chain sets in %s", len(sets), time.Since(start))

	printAreas(areas)

	if save {
		s, err := openStore()
		if err != nil {
			exitErr("open store", err)
		}
		defer s.Close()

		run, err := s.SaveRun(cmd.Context(), store.SaveParams{
			Label:     label,
			InputFile: args[0],
			Sets:      sets,
			Areas:     areas,
		})
		if err != nil {
			exitErr("save run", err)
		}
		fmt.Fprintf(os.Stderr, "saved run %s\n", run.ID)
	}

	if expectFile != "" {
		checkExpected(expectFile, sets, areas, renderFailed)
	}
}

// checkExpected diffs computed areas against the expected-results file and
// reports failures to stderr, exiting non-zero when any exist.
func checkExpected(path string, sets []model.ChainSet, areas []int, renderFailed bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		exitErr("read expected", err)
	}
	expected, err := puzzle.ParseExpected(string(data))
	if err != nil {
		exitErr("parse expected", err)
	}

	failures := puzzle.Diff(sets, areas, expected)
	if len(failures) == 0 {
		fmt.Fprintln(os.Stderr, "results matched the expected output")
		return
	}

	for _, f := range failures {
		fmt.Fprintf(os.Stderr, "failed set %d: max area was %d, expected %d\n", f.Index, f.Got, f.Expected)
		fmt.Fprintf(os.Stderr, "chains: %s\n", strings.Join(f.Chains.Strings(), " "))
		if !renderFailed {
			continue
		}
		for _, m := range solver.Molecules(f.Chains) {
			fmt.Fprintf(os.Stderr, "chains: %s\n", strings.Join(m.Chains.Strings(), " "))
			fmt.Fprintf(os.Stderr, "config: %+v\narea: %d\n%s\n\n", m.Config, m.Config.Area(), render.Grid(m))
		}
	}
	os.Exit(1)
}

func printAreas(areas []int) {
	if formatFlag == "text" {
		out := make([]string, len(areas))
		for i, a := range areas {
			out[i] = strconv.Itoa(a)
		}
		fmt.Println(strings.Join(out, " "))
		return
	}
	b, _ := json.Marshal(areas)
	fmt.Println(string(b))
}

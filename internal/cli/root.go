// Package cli implements the molecules CLI commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chainworks/molecules/internal/logger"
	"github.com/chainworks/molecules/internal/store"
	"github.com/spf13/cobra"
)

var (
	dbPath      string
	formatFlag  string
	verboseFlag bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "molecules",
	Short: "Octothorpe chain puzzle solver",
	Long: "Arrange four character chains into a cross and maximize the enclosed area.\n" +
		"Solves whole puzzle files, diffs against expected results, and keeps a\n" +
		"SQLite-backed run history. Single binary.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $MOLECULES_DB or ~/.molecules/runs.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
	RootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose logging to stderr")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv("MOLECULES_DB"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".molecules", "runs.db")
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getDBPath())
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/triagekit/triagetree/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "triagetree",
	Short: "Rule-based priority question classifier",
	Long: "TriageTree predicts answers to nursing priority questions using a\n" +
		"four-tier priority framework: life threats, then safety, then physical\n" +
		"needs, then the nursing process.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TRIAGETREE_DB env var)")
	rootCmd.PersistentFlags().Bool("plain", false, "Disable styled output")

	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(lexiconCmd)
	rootCmd.AddCommand(quickrefCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then TRIAGETREE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

package cmd

import (
	"github.com/abhisek/lexio/internal/catalog"
	"github.com/abhisek/lexio/internal/progress"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lexio",
	Short: "Terminal vocabulary trainer",
	Long:  "Lexio — a terminal app for learning English vocabulary with Chinese translations: browse words, take quizzes, track your progress.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEXIO_DB env var)")
	rootCmd.PersistentFlags().String("words", "", "Path to a custom word list JSON file (default: built-in list)")

	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LEXIO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, progress.EnsureDir(p)
	}
	return progress.DefaultDBPath()
}

// loadCatalog returns the word catalog, honoring the --words override.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	if p, _ := cmd.Flags().GetString("words"); p != "" {
		return catalog.LoadFile(p)
	}
	return catalog.Default()
}

package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abrar/astrolearn/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "astrolearn",
	Short: "Terminal space science tutor",
	Long: "AstroLearn — explore astronomy topics with AI explanations,\n" +
		"save favorites, and quiz yourself on what you learned.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// A local .env can hold API keys during development.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ASTRO_DB env var)")

	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(favoritesCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then ASTRO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

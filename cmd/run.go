package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abrar/astrolearn/internal/app"
	"github.com/abrar/astrolearn/internal/explain"
	"github.com/abrar/astrolearn/internal/favorites"
	"github.com/abrar/astrolearn/internal/llm"
	"github.com/abrar/astrolearn/internal/quiz"
	"github.com/abrar/astrolearn/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	favService := favorites.NewService(st.FavoriteRepo())
	savedCount, _ := favService.Count(ctx)

	opts := app.Options{
		Favorites:  favService,
		Results:    quiz.NewResultStore(),
		SavedCount: savedCount,
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.LLMRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Topic explanations will be unavailable.")
	} else {
		opts.Explain = explain.NewService(provider, explain.DefaultConfig())
	}

	return app.Run(opts)
}

// openServices is the shared setup for the non-TUI subcommands.
func openServices(cmd *cobra.Command) (*store.Store, context.Context, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	return st, cmd.Context(), nil
}

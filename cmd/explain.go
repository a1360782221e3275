package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abrar/astrolearn/internal/explain"
	"github.com/abrar/astrolearn/internal/llm"
)

var explainCmd = &cobra.Command{
	Use:   "explain <topic>",
	Short: "Print an AI explanation of a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := strings.Join(args, " ")

		st, ctx, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(ctx, st.LLMRepo())
		if err != nil {
			return fmt.Errorf("no LLM provider configured: %w", err)
		}

		svc := explain.NewService(provider, explain.DefaultConfig())
		text, err := svc.ExplainTopic(ctx, topic)
		if err != nil {
			return err
		}

		fmt.Println(text)
		return nil
	},
}

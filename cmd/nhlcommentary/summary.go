package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/usecase"
)

func (c *cli) newSummaryCmd() *cobra.Command {
	var (
		useAI bool
		force bool
		date  string
	)

	cmd := &cobra.Command{
		Use:   "summary <game-id>",
		Short: "Print the stats or AI summary of a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID, err := parseGameIDArg(args[0])
			if err != nil {
				return err
			}
			mode := usecase.SummaryModeStats
			if useAI {
				mode = usecase.SummaryModeAI
			}
			result, err := c.container.Commentary.Summary(cmd.Context(), usecase.SummaryRequest{
				GameID:       gameID,
				Mode:         mode,
				ForceRefresh: force,
				Date:         date,
			})
			if err != nil {
				return err
			}
			text := result.Text
			if !strings.HasSuffix(text, "\n") {
				text += "\n"
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().BoolVar(&useAI, "ai", false, "generate the narrative summary with the language model")
	cmd.Flags().BoolVar(&force, "force", false, "rebuild the summary even when a cached copy exists")
	cmd.Flags().StringVar(&date, "date", "", "schedule date (YYYY-MM-DD) to mark in the date index")
	return cmd
}

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/app"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/config"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/platform/logging"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/usecase"
)

// defaultDate is used when the interactive prompt is left empty.
const defaultDate = "2025-04-01"

var errInvalidSelection = errors.New("invalid selection")

// containerFactory builds the wired services. Tests replace it.
type containerFactory func(ctx context.Context) (*app.Container, error)

func defaultContainer(ctx context.Context) (*app.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger := logging.NewConsole(cfg.LogLevel)
	logging.SetDefault(logger)
	return app.New(ctx, cfg, logger)
}

type cli struct {
	build     containerFactory
	container *app.Container
}

func newRootCmd(build containerFactory) *cobra.Command {
	c := &cli{build: build}

	root := &cobra.Command{
		Use:           "nhlcommentary",
		Short:         "NHL game events, summaries and backfill",
		Long:          `Turns NHL play-by-play and game story feeds into canonical event streams and game summaries. Run without a subcommand to pick a game interactively.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			container, err := c.build(cmd.Context())
			if err != nil {
				return err
			}
			c.container = container
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return c.container.Close()
		},
		RunE: c.runInteractive,
	}

	root.AddCommand(
		c.newScheduleCmd(),
		c.newProcessCmd(),
		c.newSummaryCmd(),
		c.newBackfillCmd(),
		c.newServeCmd(),
	)
	return root
}

// runInteractive asks for a date, lists its games and processes the
// chosen one, printing the rule-based summary.
func (c *cli) runInteractive(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	in := bufio.NewReader(cmd.InOrStdin())

	fmt.Fprint(out, "Enter game date (YYYY-MM-DD): ")
	date, err := readLine(in)
	if err != nil {
		return err
	}
	if date == "" {
		date = defaultDate
	}

	games, err := c.container.Schedule.ListGames(ctx, date)
	if err != nil {
		return fmt.Errorf("load schedule: %w", err)
	}
	if len(games) == 0 {
		fmt.Fprintln(out, "No games scheduled for this date.")
		return nil
	}

	fmt.Fprintln(out, "Available games:")
	for i, game := range games {
		fmt.Fprintf(out, "%d. %s at %s (ID: %d)\n", i+1, game.AwayTeam, game.HomeTeam, game.GameID)
	}

	fmt.Fprint(out, "Select a game number: ")
	selection, err := readLine(in)
	if err != nil {
		return err
	}
	idx, err := strconv.Atoi(selection)
	if err != nil || idx < 1 || idx > len(games) {
		fmt.Fprintln(out, "Invalid selection.")
		return errInvalidSelection
	}
	game := games[idx-1]

	fmt.Fprintf(out, "Processing Game ID: %d (%s vs %s)\n", game.GameID, game.HomeTeam, game.AwayTeam)
	ctx = usecase.WithGameDate(ctx, date)
	events, err := c.container.Games.ProcessGame(ctx, game.GameID)
	if err != nil {
		return fmt.Errorf("process game %d: %w", game.GameID, err)
	}
	if len(events) == 0 {
		fmt.Fprintf(out, "No events for game %d\n", game.GameID)
		return nil
	}
	fmt.Fprintf(out, "Saved %d events for game %d\n", len(events), game.GameID)

	summary, err := c.container.Stats.GetOrBuildStatsSummary(ctx, usecase.StatsSummaryInput{GameID: game.GameID, Events: events})
	if err != nil {
		return fmt.Errorf("summarize game %d: %w", game.GameID, err)
	}
	fmt.Fprint(out, summary)
	return nil
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func parseGameIDArg(raw string) (int64, error) {
	gameID, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || gameID <= 0 {
		return 0, fmt.Errorf("game id must be a positive integer, got %q", raw)
	}
	return gameID, nil
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := newRootCmd(defaultContainer).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

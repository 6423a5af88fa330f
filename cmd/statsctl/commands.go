package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nba-stats-service/internal/app/analyst"
	"github.com/preston-bernstein/nba-stats-service/internal/config"
	domainstats "github.com/preston-bernstein/nba-stats-service/internal/domain/stats"
	"github.com/preston-bernstein/nba-stats-service/internal/server"
)

// servicesBuilder wires the application services for one command invocation.
type servicesBuilder func(cfg config.Config, logger *slog.Logger) *server.Services

type cli struct {
	build    servicesBuilder
	logger   *slog.Logger
	out      io.Writer
	provider string
	timeout  time.Duration
}

type seasonsOutput struct {
	PlayerID      int      `json:"playerId"`
	Seasons       []string `json:"seasons"`
	DefaultSeason string   `json:"defaultSeason"`
}

type statsOutput struct {
	PlayerID int                         `json:"playerId"`
	Season   string                      `json:"season"`
	Stats    domainstats.NormalizedStats `json:"stats"`
}

type askOutput struct {
	PlayerID int                         `json:"playerId"`
	Season   string                      `json:"season"`
	Answer   string                      `json:"answer"`
	Stats    domainstats.NormalizedStats `json:"stats"`
}

func newRootCmd(build servicesBuilder, logger *slog.Logger, out io.Writer) *cobra.Command {
	if out == nil {
		out = io.Discard
	}
	c := &cli{build: build, logger: logger, out: out}

	root := &cobra.Command{
		Use:           "statsctl",
		Short:         "Look up NBA players and per-game season stats",
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&c.provider, "provider", "", "Data provider (fixture, nbastats); defaults to PROVIDER")
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", 2*time.Minute, "Overall deadline for the command")

	root.AddCommand(c.searchCmd())
	root.AddCommand(c.seasonsCmd())
	root.AddCommand(c.statsCmd())
	root.AddCommand(c.askCmd())
	return root
}

func (c *cli) searchCmd() *cobra.Command {
	var first, last string
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Resolve a player by first and last name",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, svcs *server.Services) error {
				if err := c.loadRoster(ctx, svcs); err != nil {
					return err
				}
				player, err := svcs.Players.Resolve(first, last)
				if err != nil {
					return err
				}
				return c.print(player)
			})
		},
	}
	cmd.Flags().StringVar(&first, "first", "", "Player first name")
	cmd.Flags().StringVar(&last, "last", "", "Player last name")
	_ = cmd.MarkFlagRequired("first")
	_ = cmd.MarkFlagRequired("last")
	return cmd
}

func (c *cli) seasonsCmd() *cobra.Command {
	var playerID int
	cmd := &cobra.Command{
		Use:   "seasons",
		Short: "List the seasons a player has records for",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, svcs *server.Services) error {
				list, err := svcs.Stats.Seasons(ctx, playerID)
				if err != nil {
					return err
				}
				seasons := list.Seasons
				if seasons == nil {
					seasons = []string{}
				}
				return c.print(seasonsOutput{PlayerID: playerID, Seasons: seasons, DefaultSeason: list.Default})
			})
		},
	}
	cmd.Flags().IntVar(&playerID, "player", 0, "Player id")
	_ = cmd.MarkFlagRequired("player")
	return cmd
}

func (c *cli) statsCmd() *cobra.Command {
	var playerID int
	var season string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show per-game averages for one season",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, svcs *server.Services) error {
				s, err := svcs.Stats.SeasonStats(ctx, playerID, season)
				if err != nil {
					return err
				}
				return c.print(statsOutput{PlayerID: playerID, Season: s.SeasonID, Stats: s})
			})
		},
	}
	cmd.Flags().IntVar(&playerID, "player", 0, "Player id")
	cmd.Flags().StringVar(&season, "season", "", "Season as YYYY-YY; defaults to the preferred season")
	_ = cmd.MarkFlagRequired("player")
	return cmd
}

func (c *cli) askCmd() *cobra.Command {
	var playerID int
	var season, question string
	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Ask a question about a player's season",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, svcs *server.Services) error {
				answer, err := svcs.Analyst.Ask(ctx, analyst.Query{PlayerID: playerID, Season: season, Question: question})
				if err != nil {
					return err
				}
				return c.print(askOutput{PlayerID: playerID, Season: answer.Season, Answer: answer.Answer, Stats: answer.Stats})
			})
		},
	}
	cmd.Flags().IntVar(&playerID, "player", 0, "Player id")
	cmd.Flags().StringVar(&season, "season", "", "Season as YYYY-YY; defaults to the preferred season")
	cmd.Flags().StringVar(&question, "question", "", "Free-text question")
	_ = cmd.MarkFlagRequired("player")
	_ = cmd.MarkFlagRequired("question")
	return cmd
}

func (c *cli) run(cmd *cobra.Command, fn func(ctx context.Context, svcs *server.Services) error) error {
	cfg := config.Load()
	if c.provider != "" {
		cfg.Provider = c.provider
	}

	svcs := c.build(cfg, c.logger)
	defer func() {
		if err := svcs.Close(); err != nil && c.logger != nil {
			c.logger.Warn("provider cleanup failed", "error", err)
		}
	}()

	ctx, cancel := context.WithTimeout(cmd.Context(), c.timeout)
	defer cancel()
	return fn(ctx, svcs)
}

// loadRoster fetches the roster once; a failed fetch falls back to the snapshot inside the poller.
func (c *cli) loadRoster(ctx context.Context, svcs *server.Services) error {
	err := svcs.NewPoller(c.logger, nil, 0).Refresh(ctx)
	if svcs.Players.Ready() {
		return nil
	}
	return fmt.Errorf("load roster: %w", err)
}

func (c *cli) print(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

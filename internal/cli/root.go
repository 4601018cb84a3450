package cli

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iamasit07/connect4-engine/internal/config"
	"github.com/iamasit07/connect4-engine/internal/repository/redis"
	"github.com/iamasit07/connect4-engine/internal/service/game"
)

// app carries what every subcommand needs.
type app struct {
	cfg    *config.Config
	logger zerolog.Logger
	output string
}

// NewRootCmd creates the root command
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	a := &app{cfg: cfg, logger: logger, output: "text"}

	rootCmd := &cobra.Command{
		Use:   "connect4",
		Short: "Connect Four engine",
		Long: `connect4 picks moves for a Connect Four bot.

It can analyse a single position, play an interactive game against the bot
in the terminal, or pit two difficulty tiers against each other.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.cfg.Validate()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", a.output, "Output format: text, json")
	rootCmd.PersistentFlags().IntVar(&cfg.HardDepth, "hard-depth", cfg.HardDepth, "Search depth of the hard tier (env: HARD_DEPTH)")
	rootCmd.PersistentFlags().IntVar(&cfg.ExpertDepth, "expert-depth", cfg.ExpertDepth, "Search depth of the expert tier (env: EXPERT_DEPTH)")

	rootCmd.AddCommand(newAnalyzeCmd(a))
	rootCmd.AddCommand(newPlayCmd(a))
	rootCmd.AddCommand(newArenaCmd(a))

	return rootCmd
}

// Execute runs the root command
func Execute(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	return NewRootCmd(cfg, logger).ExecuteContext(ctx)
}

// decisionCache connects to Redis when REDIS_URL is set. The returned
// close func is always safe to call.
func (a *app) decisionCache(ctx context.Context) (game.DecisionCache, func()) {
	if a.cfg.RedisURL == "" {
		return nil, func() {}
	}
	c := redis.Connect(ctx, a.cfg.RedisURL, a.cfg.DecisionTTL, a.logger)
	if c == nil {
		return nil, func() {}
	}
	return c, func() {
		if err := c.Close(); err != nil {
			a.logger.Warn().Err(err).Msg("closing redis")
		}
	}
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/iamasit07/connect4-engine/internal/service/arena"
	"github.com/iamasit07/connect4-engine/internal/service/bot"
)

func newArenaCmd(a *app) *cobra.Command {
	var (
		first, second string
		games         int
		workers       int
	)

	cmd := &cobra.Command{
		Use:   "arena",
		Short: "Play two difficulty tiers against each other",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := arena.NewRunner(arena.Config{
				First:    bot.Difficulty(first),
				Second:   bot.Difficulty(second),
				Games:    games,
				Workers:  workers,
				Rows:     a.cfg.BoardRows,
				Cols:     a.cfg.BoardColumns,
				Settings: a.cfg.BotSettings(),
			}, a.logger)
			if err != nil {
				return err
			}

			res, err := runner.Run(cmd.Context())
			if err != nil {
				return err
			}
			NewOutput(a.output, cmd.OutOrStdout()).Print(res)
			return nil
		},
	}

	cmd.Flags().StringVar(&first, "first", string(bot.DifficultyHard), "Tier that opens the even-numbered games")
	cmd.Flags().StringVar(&second, "second", string(bot.DifficultyMedium), "Opposing tier")
	cmd.Flags().IntVar(&games, "games", 10, "Number of games")
	cmd.Flags().IntVar(&workers, "workers", 4, "Games played at the same time")
	cmd.Flags().IntVar(&a.cfg.BoardRows, "rows", a.cfg.BoardRows, "Board rows (env: BOARD_ROWS)")
	cmd.Flags().IntVar(&a.cfg.BoardColumns, "cols", a.cfg.BoardColumns, "Board columns (env: BOARD_COLUMNS)")

	return cmd
}

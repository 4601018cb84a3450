package cli

import (
	"github.com/spf13/cobra"

	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/service/bot"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		rows       []string
		player     string
		difficulty string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Pick the bot's move for a position",
		Long: `Pick the bot's move for a position given row by row from the top.
Cells are '.', 'X' (player 1) or 'O' (player 2).`,
		Example: `  connect4 analyze --player 1 --difficulty hard \
    --row ....... --row ....... --row ....... \
    --row ....... --row ...O... --row ..XXO..`,
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := domain.ParseBoard(rows...)
			if err != nil {
				return err
			}
			p, err := domain.ParsePlayer(player)
			if err != nil {
				return err
			}
			d := bot.ParseDifficulty(difficulty)

			decision := bot.NewEngine(a.cfg.BotSettings(), a.logger).Decide(board, p, d)
			NewOutput(a.output, cmd.OutOrStdout()).Print(AnalyzeResult{
				Player:     p.String(),
				Difficulty: d.String(),
				Column:     decision.Column,
				Score:      decision.Score,
				Board:      board.String(),
			})
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&rows, "row", nil, "Board row, top first (repeat for every row)")
	cmd.Flags().StringVar(&player, "player", "1", "Side to move: 1/X or 2/O")
	cmd.Flags().StringVar(&difficulty, "difficulty", a.cfg.BotDifficulty.String(), "easy, medium, tactical, hard or expert")
	_ = cmd.MarkFlagRequired("row")

	return cmd
}

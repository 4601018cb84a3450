package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/service/bot"
	"github.com/iamasit07/connect4-engine/internal/service/game"
)

func newPlayCmd(a *app) *cobra.Command {
	var (
		difficulty string
		botSide    string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play against the bot in the terminal",
		Long: `Play against the bot in the terminal. Enter a column number (1-based)
to drop a disc, or q to quit. Player 1 (X) always moves first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			botPlayer, err := domain.ParsePlayer(botSide)
			if err != nil {
				return err
			}

			cache, closeCache := a.decisionCache(cmd.Context())
			defer closeCache()

			svc := game.NewService(a.cfg.BotSettings(), cache, a.logger)
			session, err := svc.NewSession(a.cfg.BoardRows, a.cfg.BoardColumns, botPlayer, bot.ParseDifficulty(difficulty))
			if err != nil {
				return err
			}
			defer func() { _ = svc.Sessions.RemoveSession(session.GameID) }()

			return playLoop(cmd, NewOutput(a.output, cmd.OutOrStdout()), svc, session)
		},
	}

	cmd.Flags().StringVar(&difficulty, "difficulty", a.cfg.BotDifficulty.String(), "easy, medium, tactical, hard or expert")
	cmd.Flags().StringVar(&botSide, "bot", "2", "Side the bot plays: 1/X or 2/O")
	cmd.Flags().IntVar(&a.cfg.BoardRows, "rows", a.cfg.BoardRows, "Board rows (env: BOARD_ROWS)")
	cmd.Flags().IntVar(&a.cfg.BoardColumns, "cols", a.cfg.BoardColumns, "Board columns (env: BOARD_COLUMNS)")

	return cmd
}

func playLoop(cmd *cobra.Command, o *Output, svc *game.Service, session *game.GameSession) error {
	out := cmd.OutOrStdout()
	in := bufio.NewScanner(cmd.InOrStdin())

	fmt.Fprintf(out, "You are %s, the bot (%s) is %s.\n",
		session.HumanPlayer(), session.BotDifficulty, session.BotPlayer)

	for !session.Game.IsFinished() {
		fmt.Fprint(out, renderBoard(session.Snapshot()))

		if session.BotToMove() {
			res, err := svc.PlayBot(cmd.Context(), session)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Bot plays column %d (score %d)\n", res.Column+1, res.Score)
			continue
		}

		col, quit, err := readColumn(out, in, session.Game.Board.Cols())
		if err != nil {
			return err
		}
		if quit {
			o.PrintMessage("Bye.")
			return nil
		}
		if _, err := svc.PlayHuman(session, col); err != nil {
			fmt.Fprintf(out, "Cannot play there: %v\n", err)
		}
	}

	fmt.Fprint(out, renderBoard(session.Snapshot()))
	switch {
	case session.Game.Status == domain.StatusDraw:
		o.PrintMessage("Draw.")
	case session.Game.Winner == session.BotPlayer:
		o.PrintMessage("The bot wins.")
	default:
		o.PrintMessage("You win!")
	}
	return nil
}

// readColumn prompts until it reads a column number or q. quit is also set on
// end of input.
func readColumn(out io.Writer, in *bufio.Scanner, cols int) (col int, quit bool, err error) {
	for {
		fmt.Fprintf(out, "Your move (1-%d, q to quit): ", cols)
		if !in.Scan() {
			return 0, true, in.Err()
		}
		text := strings.TrimSpace(in.Text())
		if strings.EqualFold(text, "q") {
			return 0, true, nil
		}
		n, convErr := strconv.Atoi(text)
		if convErr != nil || n < 1 || n > cols {
			fmt.Fprintf(out, "Enter a number between 1 and %d.\n", cols)
			continue
		}
		return n - 1, false, nil
	}
}

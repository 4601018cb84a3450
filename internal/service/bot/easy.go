package bot

import (
	"github.com/iamasit07/connect4-engine/internal/domain"
)

// GreedyMove is the easy tier: win if possible, otherwise block an opponent
// three, then an opponent two with room to grow, otherwise take the column
// that builds the longest runs. It never looks past the current move.
func GreedyMove(board *domain.Board, player domain.PlayerID) (int, int) {
	validColumns := board.ValidMoves()
	if len(validColumns) == 0 {
		return -1, 0
	}
	opponent := player.Opponent()

	if col := FindImmediateWin(board, player); col >= 0 {
		return col, SCORE_WIN
	}
	if col := findPlayableGap(board, opponent, 3); col >= 0 {
		return col, SCORE_BLOCK_THREAT
	}
	if col := findPlayableGap(board, opponent, 2); col >= 0 {
		return col, SCORE_BLOCK_TWO
	}

	bestCol, bestScore := validColumns[0], 0
	for _, col := range validColumns {
		var score int
		board.WithMove(col, player, func(row int) {
			score = runScore(board, row, col, player)
		})
		if score > bestScore {
			bestCol, bestScore = col, score
		}
	}
	return bestCol, bestScore
}

// findPlayableGap scans every 4-cell window, top row first, for one holding
// exactly count discs of player and nothing else, and returns the column of
// its first empty cell that can be played right now.
func findPlayableGap(board *domain.Board, player domain.PlayerID, count int) int {
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			for _, dir := range domain.Directions {
				if c := windowGap(board, player, row, col, dir[0], dir[1], count); c >= 0 {
					return c
				}
			}
		}
	}
	return -1
}

func windowGap(board *domain.Board, player domain.PlayerID, row, col, dRow, dCol, count int) int {
	if !board.InBounds(row+dRow*(domain.ToWin-1), col+dCol*(domain.ToWin-1)) {
		return -1
	}
	owned, gap := 0, -1
	for i := 0; i < domain.ToWin; i++ {
		r, c := row+dRow*i, col+dCol*i
		switch board.At(r, c) {
		case player:
			owned++
		case domain.Empty:
			if gap < 0 && board.NextOpenRow(c) == r {
				gap = c
			}
		default:
			return -1
		}
	}
	if owned != count {
		return -1
	}
	return gap
}

// runScore values the disc just played at (row, col) by the runs it sits in.
func runScore(board *domain.Board, row, col int, player domain.PlayerID) int {
	score := 0
	makesThree := false
	for _, dir := range domain.Directions {
		run := 1 +
			domain.CountDiskInDirection(board, row, col, dir[0], dir[1], player) +
			domain.CountDiskInDirection(board, row, col, -dir[0], -dir[1], player)
		switch {
		case run >= domain.ToWin:
			score += GREEDY_RUN_FOUR
		case run == 3:
			score += GREEDY_RUN_THREE
			makesThree = true
		case run == 2:
			score += GREEDY_RUN_TWO
		}
	}
	if makesThree {
		score += GREEDY_THREE_BONUS
	}
	return score
}

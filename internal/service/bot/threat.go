package bot

import (
	"github.com/iamasit07/connect4-engine/internal/domain"
)

var windowScores = [domain.ToWin + 1]int{0, WINDOW_ONE, WINDOW_TWO, WINDOW_THREE, WINDOW_FOUR}

// MoveImpact scores what a disc of player at (row, col) would be worth, looking
// only at the 4-cell windows through that cell. The cell is treated as owned
// by player whatever it holds now, so the board is never modified. A window
// holding any opponent disc is dead and scores nothing.
func MoveImpact(board *domain.Board, row, col int, player domain.PlayerID) int {
	total := 0
	for _, dir := range domain.Directions {
		dRow, dCol := dir[0], dir[1]
		for offset := 0; offset < domain.ToWin; offset++ {
			startRow, startCol := row-dRow*offset, col-dCol*offset
			total += windowImpact(board, player, startRow, startCol, dRow, dCol, row, col)
		}
	}
	return total
}

func windowImpact(board *domain.Board, player domain.PlayerID, startRow, startCol, dRow, dCol, row, col int) int {
	endRow, endCol := startRow+dRow*(domain.ToWin-1), startCol+dCol*(domain.ToWin-1)
	if !board.InBounds(startRow, startCol) || !board.InBounds(endRow, endCol) {
		return 0
	}
	owned := 0
	for i := 0; i < domain.ToWin; i++ {
		r, c := startRow+dRow*i, startCol+dCol*i
		if r == row && c == col {
			owned++
			continue
		}
		switch board.At(r, c) {
		case player:
			owned++
		case domain.Empty:
		default:
			return 0
		}
	}
	return windowScores[owned]
}

// FindBestByThreatDelta ranks each playable column by what the landing cell is
// worth to player plus twice what it would have been worth to the opponent.
// An immediate win, then an immediate block, short-circuits the ranking.
// Ties keep the leftmost column.
func FindBestByThreatDelta(board *domain.Board, player domain.PlayerID) (int, int) {
	if col := FindImmediateWin(board, player); col >= 0 {
		return col, SCORE_WIN
	}
	opponent := player.Opponent()
	if col := FindImmediateWin(board, opponent); col >= 0 {
		return col, SCORE_BLOCK_THREAT
	}

	bestCol, bestScore := -1, 0
	for _, col := range board.ValidMoves() {
		row := board.NextOpenRow(col)
		offense := MoveImpact(board, row, col, player)
		defense := MoveImpact(board, row, col, opponent)
		score := offense + DEFENCE_FACTOR*defense
		if bestCol < 0 || score > bestScore {
			bestCol, bestScore = col, score
		}
	}
	return bestCol, bestScore
}

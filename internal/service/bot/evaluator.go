package bot

import (
	"github.com/iamasit07/connect4-engine/internal/domain"
)

const (
	// static evaluation
	PIECE_WEIGHT        = 10
	CENTER_WEIGHT       = 5
	THREE_IN_ROW_WEIGHT = 50
	TWO_IN_ROW_WEIGHT   = 10

	// terminal and tactical scores shared by every tier
	SCORE_WIN          = 10000
	SCORE_BLOCK_THREAT = 2500
	SCORE_BLOCK_TWO    = 500

	// priority filter connection potential
	POTENTIAL_THREE_WEIGHT = 100
	POTENTIAL_TWO_WEIGHT   = 50

	// threat windows, indexed by how many cells the player owns
	WINDOW_ONE     = 10
	WINDOW_TWO     = 100
	WINDOW_THREE   = 1000
	WINDOW_FOUR    = 10000
	DEFENCE_FACTOR = 2

	// greedy tier
	GREEDY_RUN_FOUR    = 1000
	GREEDY_RUN_THREE   = 100
	GREEDY_RUN_TWO     = 20
	GREEDY_THREE_BONUS = 150
)

// Evaluate scores a position for player without searching. Higher is better
// for player; only player's connections earn the connection bonus.
func Evaluate(board *domain.Board, player domain.PlayerID) int {
	midRow := board.Rows() / 2
	score := evaluateHalf(board, player, 0, midRow)
	score += evaluateHalf(board, player, midRow, board.Rows())

	score += CountConnected(board, player, 3) * THREE_IN_ROW_WEIGHT
	score += CountConnected(board, player, 2) * TWO_IN_ROW_WEIGHT
	return score
}

// evaluateHalf counts discs in rows [startRow, endRow)
func evaluateHalf(board *domain.Board, player domain.PlayerID, startRow, endRow int) int {
	opponent := player.Opponent()
	score := 0
	for row := startRow; row < endRow; row++ {
		for col := 0; col < board.Cols(); col++ {
			switch board.At(row, col) {
			case player:
				score += PIECE_WEIGHT
				if isCenterColumn(col, board.Cols()) {
					score += CENTER_WEIGHT
				}
			case opponent:
				score -= PIECE_WEIGHT
				if isCenterColumn(col, board.Cols()) {
					score -= CENTER_WEIGHT
				}
			}
		}
	}
	return score
}

// CountConnected counts every window of length consecutive cells, in any of
// the four directions, that player fully owns. A run of three therefore holds
// two windows of length two.
func CountConnected(board *domain.Board, player domain.PlayerID, length int) int {
	count := 0
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			if board.At(row, col) != player {
				continue
			}
			for _, dir := range domain.Directions {
				if ownsWindow(board, player, row, col, dir[0], dir[1], length) {
					count++
				}
			}
		}
	}
	return count
}

func ownsWindow(board *domain.Board, player domain.PlayerID, row, col, dRow, dCol, length int) bool {
	if !board.InBounds(row+dRow*(length-1), col+dCol*(length-1)) {
		return false
	}
	for i := 0; i < length; i++ {
		if board.At(row+dRow*i, col+dCol*i) != player {
			return false
		}
	}
	return true
}

// ConnectionPotential is the priority filter's measure of a move: the
// connections player holds after dropping into col. The board is restored.
func ConnectionPotential(board *domain.Board, player domain.PlayerID, col int) int {
	score := 0
	board.WithMove(col, player, func(int) {
		score = CountConnected(board, player, 3)*POTENTIAL_THREE_WEIGHT +
			CountConnected(board, player, 2)*POTENTIAL_TWO_WEIGHT
	})
	return score
}

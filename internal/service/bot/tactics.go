package bot

import (
	"cmp"
	"slices"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

// centerDistance is doubled so that both middle columns of an even-width
// board sit at the same distance. Unlike a cols/2 centre this does not favour
// the right-middle column, so mirrored positions order the same way.
func centerDistance(col, cols int) int {
	d := 2*col - (cols - 1)
	if d < 0 {
		return -d
	}
	return d
}

func isCenterColumn(col, cols int) bool {
	return centerDistance(col, cols) <= 1
}

// OrderedMoves lists playable columns closest to the centre first, leftmost
// first among equals.
func OrderedMoves(board *domain.Board) []int {
	moves := board.ValidMoves()
	cols := board.Cols()
	slices.SortStableFunc(moves, func(a, b int) int {
		return cmp.Compare(centerDistance(a, cols), centerDistance(b, cols))
	})
	return moves
}

// FindImmediateWin returns the leftmost column where player wins at once, or -1.
func FindImmediateWin(board *domain.Board, player domain.PlayerID) int {
	for col := 0; col < board.Cols(); col++ {
		if winsAt(board, player, col) {
			return col
		}
	}
	return -1
}

func winsAt(board *domain.Board, player domain.PlayerID, col int) bool {
	wins := false
	board.WithMove(col, player, func(row int) {
		wins = domain.HasFourThrough(board, row, col, player)
	})
	return wins
}

// IsSafeMove reports whether dropping into col leaves the opponent without an
// immediate win anywhere on the board.
func IsSafeMove(board *domain.Board, player domain.PlayerID, col int) bool {
	safe := true
	board.WithMove(col, player, func(int) {
		safe = FindImmediateWin(board, player.Opponent()) < 0
	})
	return safe
}

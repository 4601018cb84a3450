package domain

// line directions: horizontal, vertical, diagonal \, diagonal /
var Directions = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{-1, 1},
}

// HasFourInRow scans the whole board for four consecutive discs of player.
func HasFourInRow(b *Board, player PlayerID) bool {
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			if b.At(row, col) != player {
				continue
			}
			for _, dir := range Directions {
				if runFrom(b, row, col, dir[0], dir[1], player) {
					return true
				}
			}
		}
	}
	return false
}

func runFrom(b *Board, row, col, dRow, dCol int, player PlayerID) bool {
	endRow, endCol := row+dRow*(ToWin-1), col+dCol*(ToWin-1)
	if !b.InBounds(endRow, endCol) {
		return false
	}
	for i := 1; i < ToWin; i++ {
		if b.At(row+dRow*i, col+dCol*i) != player {
			return false
		}
	}
	return true
}

// HasFourThrough only follows the lines passing through (row, col), which is
// all that can change after a disc lands there.
func HasFourThrough(b *Board, row, col int, player PlayerID) bool {
	if b.At(row, col) != player {
		return false
	}
	for _, dir := range Directions {
		total := 1 + CountDiskInDirection(b, row, col, dir[0], dir[1], player) +
			CountDiskInDirection(b, row, col, -dir[0], -dir[1], player)
		if total >= ToWin {
			return true
		}
	}
	return false
}

// CountDiskInDirection counts consecutive discs of player starting next to
// (row, col), stopping at the board edge or after ToWin-1 steps.
func CountDiskInDirection(b *Board, row, col, dRow, dCol int, player PlayerID) int {
	count := 0
	r, c := row+dRow, col+dCol
	for count < ToWin-1 && b.InBounds(r, c) && b.At(r, c) == player {
		count++
		r += dRow
		c += dCol
	}
	return count
}

// Winner reports which player, if any, has four in a row.
func Winner(b *Board) PlayerID {
	switch {
	case HasFourInRow(b, Player1):
		return Player1
	case HasFourInRow(b, Player2):
		return Player2
	}
	return Empty
}

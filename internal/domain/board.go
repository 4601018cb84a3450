package domain

import (
	"fmt"
	"strings"
)

// Board is the mutable grid shared by the engine during search.
// Row 0 is the top row; discs settle on the highest row index that is empty.
type Board struct {
	rows    int
	cols    int
	cells   []PlayerID // row-major
	heights []int      // next free row per column, -1 when full
	moves   int
}

func NewBoard(rows, cols int) (*Board, error) {
	if rows < MinDimension || rows > MaxDimension || cols < MinDimension || cols > MaxDimension {
		return nil, fmt.Errorf("new board %dx%d: %w", rows, cols, ErrBoardSize)
	}
	b := &Board{
		rows:    rows,
		cols:    cols,
		cells:   make([]PlayerID, rows*cols),
		heights: make([]int, cols),
	}
	b.Reset()
	return b, nil
}

func NewStandardBoard() *Board {
	b, _ := NewBoard(DefaultRows, DefaultColumns)
	return b
}

// Reset empties the board for a new game.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
	for c := range b.heights {
		b.heights[c] = b.rows - 1
	}
	b.moves = 0
}

func (b *Board) Rows() int { return b.rows }

func (b *Board) Cols() int { return b.cols }

func (b *Board) MoveCount() int { return b.moves }

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// At returns the cell at (row, col). Off-board coordinates read as Empty.
func (b *Board) At(row, col int) PlayerID {
	if !b.InBounds(row, col) {
		return Empty
	}
	return b.cells[row*b.cols+col]
}

func (b *Board) IsValidMove(col int) bool {
	if col < 0 || col >= b.cols {
		return false
	}
	return b.cells[col] == Empty
}

// NextOpenRow is the row a disc dropped into col would land on, or -1.
func (b *Board) NextOpenRow(col int) int {
	if col < 0 || col >= b.cols {
		return -1
	}
	return b.heights[col]
}

// ApplyMove drops a disc for player into col and returns the row it landed on.
// A full or out-of-range column returns -1 and leaves the board untouched.
func (b *Board) ApplyMove(col int, player PlayerID) int {
	if !player.IsPlayer() {
		panic(fmt.Errorf("apply move with %d: %w", player, ErrInvalidPlayer))
	}
	if !b.IsValidMove(col) {
		return -1
	}
	row := b.heights[col]
	b.cells[row*b.cols+col] = player
	b.heights[col]--
	b.moves++
	return row
}

// UndoMove removes the top disc of col. Calls must mirror ApplyMove in LIFO
// order; undoing an empty column is a programming error and panics.
func (b *Board) UndoMove(col int) {
	if col < 0 || col >= b.cols || b.heights[col] == b.rows-1 {
		panic(fmt.Errorf("undo column %d: %w", col, ErrUndoEmptyColumn))
	}
	b.heights[col]++
	b.cells[b.heights[col]*b.cols+col] = Empty
	b.moves--
}

// WithMove applies a move, runs fn with the landing row and undoes the move on
// every exit path, panics included. It reports false when the column is not playable.
func (b *Board) WithMove(col int, player PlayerID, fn func(row int)) bool {
	row := b.ApplyMove(col, player)
	if row < 0 {
		return false
	}
	defer b.UndoMove(col)
	fn(row)
	return true
}

func (b *Board) IsFull() bool {
	for c := 0; c < b.cols; c++ {
		if b.cells[c] == Empty {
			return false
		}
	}
	return true
}

// ValidMoves lists playable columns in ascending order.
func (b *Board) ValidMoves() []int {
	moves := make([]int, 0, b.cols)
	for col := 0; col < b.cols; col++ {
		if b.IsValidMove(col) {
			moves = append(moves, col)
		}
	}
	return moves
}

// this creates a deep copy of the board
func (b *Board) Clone() *Board {
	clone := &Board{
		rows:    b.rows,
		cols:    b.cols,
		cells:   make([]PlayerID, len(b.cells)),
		heights: make([]int, len(b.heights)),
		moves:   b.moves,
	}
	copy(clone.cells, b.cells)
	copy(clone.heights, b.heights)
	return clone
}

// Snapshot returns a detached copy of the grid for rendering.
func (b *Board) Snapshot() [][]PlayerID {
	grid := make([][]PlayerID, b.rows)
	for r := range grid {
		grid[r] = make([]PlayerID, b.cols)
		copy(grid[r], b.cells[r*b.cols:(r+1)*b.cols])
	}
	return grid
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			sb.WriteString(b.At(r, c).String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard builds a board from rows listed top to bottom. '.' is empty,
// 'X' or '1' is Player1, 'O' or '2' is Player2.
func ParseBoard(rows ...string) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("parse board: no rows: %w", ErrMalformedPosition)
	}
	b, err := NewBoard(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for r, line := range rows {
		if len(line) != b.cols {
			return nil, fmt.Errorf("parse board: row %d has %d cells, want %d: %w", r, len(line), b.cols, ErrMalformedPosition)
		}
		for c, ch := range line {
			var p PlayerID
			switch ch {
			case '.':
				p = Empty
			case 'X', 'x', '1':
				p = Player1
			case 'O', 'o', '2':
				p = Player2
			default:
				return nil, fmt.Errorf("parse board: unexpected %q at %d,%d: %w", ch, r, c, ErrMalformedPosition)
			}
			b.cells[r*b.cols+c] = p
		}
	}
	for c := 0; c < b.cols; c++ {
		h := b.rows - 1
		for h >= 0 && b.cells[h*b.cols+c] != Empty {
			h--
		}
		for r := h; r >= 0; r-- {
			if b.cells[r*b.cols+c] != Empty {
				return nil, fmt.Errorf("parse board: floating disc at %d,%d: %w", r, c, ErrMalformedPosition)
			}
		}
		b.heights[c] = h
		b.moves += b.rows - 1 - h
	}
	return b, nil
}

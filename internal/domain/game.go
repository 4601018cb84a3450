package domain

import "fmt"

// Game wraps a Board with turn order and result bookkeeping. It is the
// legality-checked API the presentation layer plays through.
type Game struct {
	Board         *Board
	CurrentPlayer PlayerID
	Status        GameStatus
	Winner        PlayerID
	MoveCount     int
	History       []int
}

func NewGame(rows, cols int) (*Game, error) {
	board, err := NewBoard(rows, cols)
	if err != nil {
		return nil, err
	}
	return &Game{
		Board:         board,
		CurrentPlayer: Player1,
		Status:        StatusActive,
		Winner:        Empty,
	}, nil
}

func (g *Game) MakeMove(player PlayerID, column int) (int, error) {
	if g.Status != StatusActive {
		return -1, ErrGameFinished
	}

	if player != g.CurrentPlayer {
		return -1, ErrNotYourTurn
	}

	row := g.Board.ApplyMove(column, player)
	if row < 0 {
		if column >= 0 && column < g.Board.Cols() {
			return -1, fmt.Errorf("column %d: %w", column, ErrColumnFull)
		}
		return -1, fmt.Errorf("column %d: %w", column, ErrInvalidMove)
	}

	g.MoveCount++
	g.History = append(g.History, column)

	if HasFourThrough(g.Board, row, column, player) {
		g.Status = StatusWon
		g.Winner = player
		return row, nil
	}

	if g.Board.IsFull() {
		g.Status = StatusDraw
		return row, nil
	}

	g.CurrentPlayer = player.Opponent()
	return row, nil
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}

package domain

import "fmt"

type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// Opponent returns the other colour. Empty has no opponent and maps to itself.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return Empty
	}
}

func (p PlayerID) IsPlayer() bool {
	return p == Player1 || p == Player2
}

func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "X"
	case Player2:
		return "O"
	default:
		return "."
	}
}

// ParsePlayer accepts "1"/"x" or "2"/"o" (either case).
func ParsePlayer(s string) (PlayerID, error) {
	switch s {
	case "1", "x", "X":
		return Player1, nil
	case "2", "o", "O":
		return Player2, nil
	}
	return Empty, fmt.Errorf("parse player %q: %w", s, ErrInvalidPlayer)
}

const (
	DefaultRows    = 6
	DefaultColumns = 7
	MinDimension   = 4
	MaxDimension   = 10
	ToWin          = 4
)

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// Decision is a chosen column together with how desirable the engine judged it.
type Decision struct {
	Column int `json:"column"`
	Score  int `json:"score"`
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove       Error = "invalid move"
	ErrColumnFull        Error = "column is full"
	ErrBoardSize         Error = "board dimensions out of range"
	ErrInvalidPlayer     Error = "invalid player"
	ErrNotYourTurn       Error = "not your turn"
	ErrGameFinished      Error = "game is already finished"
	ErrMalformedPosition Error = "malformed position"
	ErrUndoEmptyColumn   Error = "undo on a column with no discs"
)

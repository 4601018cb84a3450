package bot

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

// Settings holds the search depths of the two search tiers.
type Settings struct {
	HardDepth   int
	ExpertDepth int
}

func DefaultSettings() Settings {
	return Settings{HardDepth: 5, ExpertDepth: 7}
}

// SearchDepth is the look-ahead used for difficulty, or 0 for the tiers
// that do not search.
func (s Settings) SearchDepth(difficulty Difficulty) int {
	switch difficulty {
	case DifficultyHard:
		return s.HardDepth
	case DifficultyExpert:
		return s.ExpertDepth
	default:
		return 0
	}
}

// Engine chooses moves for the bot. It is not safe for concurrent use; give
// each goroutine its own Engine and board.
type Engine struct {
	settings  Settings
	logger    zerolog.Logger
	lastScore int
}

func NewEngine(settings Settings, logger zerolog.Logger) *Engine {
	return &Engine{settings: settings, logger: logger}
}

// GetBestMove selects the best column for player based on difficulty.
// Returns -1 only when the board has no playable column.
func (e *Engine) GetBestMove(board *domain.Board, player domain.PlayerID, difficulty Difficulty) int {
	return e.Decide(board, player, difficulty).Column
}

// Decide is GetBestMove with the score attached. The board is left as it was.
func (e *Engine) Decide(board *domain.Board, player domain.PlayerID, difficulty Difficulty) domain.Decision {
	if !player.IsPlayer() {
		panic(fmt.Errorf("decide for %d: %w", player, domain.ErrInvalidPlayer))
	}

	var decision domain.Decision
	switch difficulty {
	case DifficultyEasy:
		decision.Column, decision.Score = GreedyMove(board, player)
	case DifficultyTactical:
		decision.Column, decision.Score = FindBestByThreatDelta(board, player)
	case DifficultyHard, DifficultyExpert:
		decision.Column, decision.Score = NewSearcher(board, e.logger).FindBestMove(player, e.settings.SearchDepth(difficulty))
	default:
		result := PriorityFilter(board, player)
		decision.Column, decision.Score = result.Column, result.Score
	}
	if decision.Column < 0 {
		decision.Score = 0
	}

	e.lastScore = decision.Score
	e.logger.Debug().
		Str("difficulty", difficulty.String()).
		Str("player", player.String()).
		Int("column", decision.Column).
		Int("score", decision.Score).
		Msg("bot move selected")
	return decision
}

// LastMoveScore is the score of the move most recently returned.
func (e *Engine) LastMoveScore() int { return e.lastScore }

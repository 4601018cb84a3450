package game

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/service/bot"
)

// DecisionCache stores engine decisions between runs. GetDecision returns
// nil without an error on a miss.
type DecisionCache interface {
	GetDecision(ctx context.Context, key string) (*domain.Decision, error)
	SetDecision(ctx context.Context, key string, decision domain.Decision) error
}

// MoveResult describes a move applied to a session.
type MoveResult struct {
	Player domain.PlayerID   `json:"player"`
	Column int               `json:"column"`
	Row    int               `json:"row"`
	Score  int               `json:"score"`
	Cached bool              `json:"cached"`
	Status domain.GameStatus `json:"status"`
	Winner domain.PlayerID   `json:"winner"`
}

// Service is the entry point for game logic (facade)
type Service struct {
	Sessions *SessionManager
	settings bot.Settings
	cache    DecisionCache
	logger   zerolog.Logger
}

// NewService builds the facade. cache may be nil.
func NewService(settings bot.Settings, cache DecisionCache, logger zerolog.Logger) *Service {
	return &Service{
		Sessions: NewSessionManager(logger),
		settings: settings,
		cache:    cache,
		logger:   logger,
	}
}

func (s *Service) NewSession(rows, cols int, botPlayer domain.PlayerID, difficulty bot.Difficulty) (*GameSession, error) {
	return s.Sessions.CreateSession(rows, cols, botPlayer, difficulty)
}

// PlayHuman drops the human's disc into column.
func (s *Service) PlayHuman(session *GameSession, column int) (MoveResult, error) {
	session.mu.Lock()
	defer session.mu.Unlock()

	player := session.HumanPlayer()
	row, err := session.Game.MakeMove(player, column)
	if err != nil {
		return MoveResult{}, fmt.Errorf("game %s: %w", session.GameID, err)
	}
	session.markFinished()
	return s.result(session, player, column, row, 0, false), nil
}

// PlayBot asks the engine for the bot's move and applies it. A decision cached
// for the same position and tier is reused; cache failures only cost a search.
func (s *Service) PlayBot(ctx context.Context, session *GameSession) (MoveResult, error) {
	if err := ctx.Err(); err != nil {
		return MoveResult{}, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	g := session.Game
	player := session.BotPlayer
	if g.IsFinished() {
		return MoveResult{}, fmt.Errorf("game %s: %w", session.GameID, domain.ErrGameFinished)
	}
	if g.CurrentPlayer != player {
		return MoveResult{}, fmt.Errorf("game %s: %w", session.GameID, domain.ErrNotYourTurn)
	}

	key := DecisionKey(session.BotDifficulty, s.settings.SearchDepth(session.BotDifficulty), player, g.Board)
	decision, cached := s.lookup(ctx, key, g.Board)
	if !cached {
		decision = bot.NewEngine(s.settings, s.logger).Decide(g.Board, player, session.BotDifficulty)
		if decision.Column < 0 {
			return MoveResult{}, fmt.Errorf("game %s: %w", session.GameID, domain.ErrInvalidMove)
		}
		s.store(ctx, key, decision)
	}

	row, err := g.MakeMove(player, decision.Column)
	if err != nil {
		return MoveResult{}, fmt.Errorf("game %s: %w", session.GameID, err)
	}
	session.markFinished()

	s.logger.Info().
		Str("game_id", session.GameID).
		Str("difficulty", session.BotDifficulty.String()).
		Int("column", decision.Column).
		Int("score", decision.Score).
		Bool("cached", cached).
		Msg("bot moved")
	return s.result(session, player, decision.Column, row, decision.Score, cached), nil
}

// DecisionKey names a position for the decision cache. The packed board
// carries every cell, so distinct positions never share a key. Searching
// tiers also carry their depth, since a deeper search may answer differently.
func DecisionKey(difficulty bot.Difficulty, depth int, player domain.PlayerID, board *domain.Board) string {
	if depth > 0 {
		return fmt.Sprintf("decision:%s:d%d:%s:%s", difficulty, depth, player, board.Pack())
	}
	return fmt.Sprintf("decision:%s:%s:%s", difficulty, player, board.Pack())
}

func (s *Service) lookup(ctx context.Context, key string, board *domain.Board) (domain.Decision, bool) {
	if s.cache == nil {
		return domain.Decision{}, false
	}
	d, err := s.cache.GetDecision(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("decision cache read failed")
		return domain.Decision{}, false
	}
	if d == nil || !board.IsValidMove(d.Column) {
		return domain.Decision{}, false
	}
	return *d, true
}

func (s *Service) store(ctx context.Context, key string, decision domain.Decision) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetDecision(ctx, key, decision); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("decision cache write failed")
	}
}

func (s *Service) result(session *GameSession, player domain.PlayerID, column, row, score int, cached bool) MoveResult {
	return MoveResult{
		Player: player,
		Column: column,
		Row:    row,
		Score:  score,
		Cached: cached,
		Status: session.Game.Status,
		Winner: session.Game.Winner,
	}
}

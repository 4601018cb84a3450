package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/service/bot"
	"github.com/iamasit07/connect4-engine/pkg/uid"
)

// GameSession is one human-versus-bot game.
type GameSession struct {
	GameID        string
	Game          *domain.Game
	BotPlayer     domain.PlayerID
	BotDifficulty bot.Difficulty
	CreatedAt     time.Time
	FinishedAt    time.Time
	mu            sync.Mutex
}

// HumanPlayer is the colour the bot plays against.
func (gs *GameSession) HumanPlayer() domain.PlayerID {
	return gs.BotPlayer.Opponent()
}

// BotToMove reports whether the game is running and waiting on the bot.
func (gs *GameSession) BotToMove() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return !gs.Game.IsFinished() && gs.Game.CurrentPlayer == gs.BotPlayer
}

// Board returns a copy of the current grid.
func (gs *GameSession) Board() *domain.Board {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.Game.Board.Clone()
}

// Snapshot returns the grid as rows of discs, top row first.
func (gs *GameSession) Snapshot() [][]domain.PlayerID {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.Game.Board.Snapshot()
}

func (gs *GameSession) markFinished() {
	if gs.Game.IsFinished() && gs.FinishedAt.IsZero() {
		gs.FinishedAt = time.Now()
	}
}

// SessionManager manages active game sessions
type SessionManager struct {
	Session map[string]*GameSession // gameID → GameSession
	mu      sync.RWMutex
	logger  zerolog.Logger
}

func NewSessionManager(logger zerolog.Logger) *SessionManager {
	return &SessionManager{
		Session: make(map[string]*GameSession),
		logger:  logger,
	}
}

// CreateSession starts a game on a rows×cols board. Player1 always moves
// first, so a bot playing Player1 opens the game.
func (sm *SessionManager) CreateSession(rows, cols int, botPlayer domain.PlayerID, difficulty bot.Difficulty) (*GameSession, error) {
	if !botPlayer.IsPlayer() {
		return nil, fmt.Errorf("bot player %d: %w", botPlayer, domain.ErrInvalidPlayer)
	}
	g, err := domain.NewGame(rows, cols)
	if err != nil {
		return nil, err
	}

	session := &GameSession{
		GameID:        uid.GenerateGameID(),
		Game:          g,
		BotPlayer:     botPlayer,
		BotDifficulty: difficulty,
		CreatedAt:     time.Now(),
	}

	sm.mu.Lock()
	sm.Session[session.GameID] = session
	sm.mu.Unlock()

	sm.logger.Info().
		Str("game_id", session.GameID).
		Int("rows", rows).
		Int("cols", cols).
		Str("bot", botPlayer.String()).
		Str("difficulty", difficulty.String()).
		Msg("session created")
	return session, nil
}

func (sm *SessionManager) GetSessionByGameID(gameID string) (*GameSession, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.Session[gameID]
	return session, exists
}

func (sm *SessionManager) RemoveSession(gameID string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.Session[gameID]; !exists {
		return fmt.Errorf("session %s not found", gameID)
	}
	delete(sm.Session, gameID)
	sm.logger.Debug().Str("game_id", gameID).Msg("session removed")
	return nil
}

func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.Session)
}

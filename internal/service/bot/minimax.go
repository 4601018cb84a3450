package bot

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

// Searcher runs minimax with alpha-beta pruning on a board it borrows. Every
// move it plays is undone before the call that played it returns, so the
// board is unchanged once FindBestMove or Search comes back.
type Searcher struct {
	board  *domain.Board
	cache  *TranspositionCache
	nodes  int
	logger zerolog.Logger
}

func NewSearcher(board *domain.Board, logger zerolog.Logger) *Searcher {
	return &Searcher{
		board:  board,
		cache:  NewTranspositionCache(),
		logger: logger,
	}
}

// Search scores the current board from player's point of view. When
// maximizing is true player is the side to move.
func (s *Searcher) Search(player domain.PlayerID, depth, alpha, beta int, maximizing bool) int {
	s.nodes++
	opponent := player.Opponent()

	if domain.HasFourInRow(s.board, player) {
		return SCORE_WIN + depth // Prefer quicker wins
	}
	if domain.HasFourInRow(s.board, opponent) {
		return -SCORE_WIN - depth // Prefer delaying losses
	}
	if depth <= 0 || s.board.IsFull() {
		return Evaluate(s.board, player)
	}

	key := CacheKey{Board: s.board.Pack(), Player: player, Depth: depth, Maximizing: maximizing}
	if score, ok := s.cache.Probe(key, alpha, beta); ok {
		return score
	}

	alphaOrig, betaOrig := alpha, beta
	mover := player
	best := math.MinInt
	if !maximizing {
		mover = opponent
		best = math.MaxInt
	}

	for _, col := range OrderedMoves(s.board) {
		var eval int
		s.board.WithMove(col, mover, func(int) {
			eval = s.Search(player, depth-1, alpha, beta, !maximizing)
		})

		if maximizing {
			best = max(best, eval)
			alpha = max(alpha, eval)
		} else {
			best = min(best, eval)
			beta = min(beta, eval)
		}
		if beta <= alpha {
			break
		}
	}

	s.cache.Store(key, best, alphaOrig, betaOrig)
	return best
}

// FindBestMove picks player's column at the given depth and returns it with
// its score. An immediate win is taken without searching; if the opponent
// threatens to win at once only the blocking column is searched. Otherwise
// every column is searched with a full window and the first best one wins,
// in centre-first order. Returns -1 when no column is playable.
func (s *Searcher) FindBestMove(player domain.PlayerID, depth int) (int, int) {
	if depth < 1 {
		depth = 1
	}
	s.cache.Clear()
	s.nodes = 0

	if col := FindImmediateWin(s.board, player); col >= 0 {
		return col, SCORE_WIN + depth - 1
	}

	moves := OrderedMoves(s.board)
	if len(moves) == 0 {
		return -1, 0
	}
	if col := FindImmediateWin(s.board, player.Opponent()); col >= 0 {
		moves = []int{col}
	}

	bestCol, bestScore := -1, math.MinInt
	for _, col := range moves {
		var score int
		s.board.WithMove(col, player, func(int) {
			score = s.Search(player, depth-1, math.MinInt, math.MaxInt, false)
		})
		if score > bestScore {
			bestCol, bestScore = col, score
		}
	}

	hits, misses := s.cache.Stats()
	s.logger.Debug().
		Int("depth", depth).
		Int("nodes", s.nodes).
		Int("cache_entries", s.cache.Len()).
		Int("cache_hits", hits).
		Int("cache_misses", misses).
		Int("column", bestCol).
		Int("score", bestScore).
		Msg("search finished")

	return bestCol, bestScore
}

// Nodes is the number of positions visited by the last FindBestMove.
func (s *Searcher) Nodes() int { return s.nodes }

package bot

import (
	"math"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

// plainMinimax is the unpruned, uncached reference the searcher must agree with.
func plainMinimax(b *domain.Board, player domain.PlayerID, depth int, maximizing bool) int {
	opponent := player.Opponent()
	if domain.HasFourInRow(b, player) {
		return SCORE_WIN + depth
	}
	if domain.HasFourInRow(b, opponent) {
		return -SCORE_WIN - depth
	}
	if depth <= 0 || b.IsFull() {
		return Evaluate(b, player)
	}

	mover, best := player, math.MinInt
	if !maximizing {
		mover, best = opponent, math.MaxInt
	}
	for _, col := range b.ValidMoves() {
		var eval int
		b.WithMove(col, mover, func(int) {
			eval = plainMinimax(b, player, depth-1, !maximizing)
		})
		if maximizing {
			best = max(best, eval)
		} else {
			best = min(best, eval)
		}
	}
	return best
}

func TestSearchMatchesPlainMinimax(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 40; i++ {
		rows, cols := 4+rng.Intn(3), 4+rng.Intn(4)
		b, player := randomPosition(t, rng, rows, cols, rng.Intn(rows*cols))
		s := NewSearcher(b, zerolog.Nop())

		for depth := 1; depth <= 4; depth++ {
			for _, maximizing := range []bool{true, false} {
				want := plainMinimax(b, player, depth, maximizing)
				s.cache.Clear()
				got := s.Search(player, depth, math.MinInt, math.MaxInt, maximizing)
				require.Equal(t, want, got, "depth %d maximizing %v board:\n%s", depth, maximizing, b)
			}
		}
	}
}

func TestFindBestMoveScoreMatchesPlainMinimax(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for checked := 0; checked < 25; {
		b, player := randomPosition(t, rng, 6, 7, rng.Intn(20))
		if b.IsFull() || FindImmediateWin(b, player.Opponent()) >= 0 {
			continue
		}
		checked++

		const depth = 4
		want := math.MinInt
		for _, col := range b.ValidMoves() {
			b.WithMove(col, player, func(int) {
				want = max(want, plainMinimax(b, player, depth-1, false))
			})
		}

		col, score := NewSearcher(b, zerolog.Nop()).FindBestMove(player, depth)
		require.Equal(t, want, score, "board:\n%s", b)
		require.True(t, b.IsValidMove(col))
	}
}

func TestFindBestMoveRestoresBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 10; i++ {
		b, player := randomPosition(t, rng, 6, 7, rng.Intn(25))
		before, text := b.Pack(), b.String()

		NewSearcher(b, zerolog.Nop()).FindBestMove(player, 5)

		require.Equal(t, before, b.Pack())
		require.Equal(t, text, b.String())
	}
}

func TestFindBestMoveTakesImmediateWin(t *testing.T) {
	b := mustParse(t,
		".......",
		".......",
		".......",
		".......",
		"OOO....",
		"XXX....",
	)
	col, score := NewSearcher(b, zerolog.Nop()).FindBestMove(domain.Player1, 5)
	assert.Equal(t, 3, col)
	assert.Equal(t, SCORE_WIN+4, score)
}

func TestFindBestMoveBlocks(t *testing.T) {
	b := mustParse(t,
		".......",
		".......",
		".......",
		".......",
		".......",
		"XXOOO..",
	)
	s := NewSearcher(b, zerolog.Nop())
	col, _ := s.FindBestMove(domain.Player1, 4)
	assert.Equal(t, 5, col)
	assert.Positive(t, s.Nodes())
	assert.Positive(t, s.cache.Len())
}

func TestFindBestMoveNoMoves(t *testing.T) {
	b := mustParse(t,
		"XOXO",
		"XOXO",
		"OXOX",
		"OXOX",
	)
	require.True(t, b.IsFull())
	col, score := NewSearcher(b, zerolog.Nop()).FindBestMove(domain.Player1, 3)
	assert.Equal(t, -1, col)
	assert.Zero(t, score)
}

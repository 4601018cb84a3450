package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasFourInRowDirections(t *testing.T) {
	cases := map[string][]string{
		"horizontal": {
			".......",
			".......",
			".......",
			".......",
			"OOO....",
			"XXXX...",
		},
		"vertical": {
			".......",
			".......",
			"......X",
			"......X",
			"O.....X",
			"OO....X",
		},
		"diagonal down-right": {
			".......",
			".......",
			"X......",
			"OX.....",
			"OOX....",
			"OOOX..X",
		},
		"diagonal up-right": {
			".......",
			".......",
			"......X",
			".....XO",
			"....XOO",
			"...XOOO",
		},
	}
	for name, rows := range cases {
		t.Run(name, func(t *testing.T) {
			b, err := ParseBoard(rows...)
			require.NoError(t, err)
			assert.True(t, HasFourInRow(b, Player1))
			assert.False(t, HasFourInRow(b, Player2))
			assert.Equal(t, Player1, Winner(b))
		})
	}
}

func TestHasFourInRowDoesNotWrap(t *testing.T) {
	b, err := ParseBoard(
		".......",
		".......",
		".......",
		".......",
		"O.....O",
		"XX...XX",
	)
	require.NoError(t, err)
	assert.False(t, HasFourInRow(b, Player1))
	assert.Equal(t, Empty, Winner(b))
}

func TestHasFourThroughOnlyFromOwnDisc(t *testing.T) {
	b, err := ParseBoard(
		"....",
		"....",
		"O...",
		"XXXX",
	)
	require.NoError(t, err)
	assert.True(t, HasFourThrough(b, 3, 0, Player1))
	assert.True(t, HasFourThrough(b, 3, 3, Player1))
	assert.False(t, HasFourThrough(b, 2, 0, Player1))
	assert.False(t, HasFourThrough(b, 2, 0, Player2))
	assert.False(t, HasFourThrough(b, 0, 3, Player1))
}

func TestHasFourThroughAgreesWithFullScan(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for game := 0; game < 300; game++ {
		b, err := NewBoard(4+rng.Intn(7), 4+rng.Intn(7))
		require.NoError(t, err)
		player := Player1
		for !b.IsFull() {
			moves := b.ValidMoves()
			col := moves[rng.Intn(len(moves))]
			row := b.ApplyMove(col, player)

			through := HasFourThrough(b, row, col, player)
			// no earlier win was possible, so any four on the board must use this disc
			require.Equal(t, HasFourInRow(b, player), through, "board:\n%s", b)
			if through {
				break
			}
			player = player.Opponent()
		}
	}
}

func TestCountDiskInDirectionStopsAtEdge(t *testing.T) {
	b, err := ParseBoard(
		"....",
		"....",
		"....",
		"XXX.",
	)
	require.NoError(t, err)
	assert.Equal(t, 2, CountDiskInDirection(b, 3, 0, 0, 1, Player1))
	assert.Equal(t, 0, CountDiskInDirection(b, 3, 0, 0, -1, Player1))
	assert.Equal(t, 3, CountDiskInDirection(b, 3, 3, 0, -1, Player1))
}

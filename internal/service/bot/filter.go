package bot

import (
	"github.com/iamasit07/connect4-engine/internal/domain"
)

// filterLevel narrows the candidate columns. decisive stops the filter with
// the returned set.
type filterLevel struct {
	name   string
	narrow func(board *domain.Board, player domain.PlayerID, candidates []int) (kept []int, decisive bool)
}

var filterLevels = []filterLevel{
	{name: "critical", narrow: criticalLevel},
	{name: "safety", narrow: safetyLevel},
	{name: "center", narrow: centerLevel},
	{name: "connection", narrow: connectionLevel},
}

// FilterResult is a PriorityFilter decision. Level names the last level that
// narrowed the candidates.
type FilterResult struct {
	Column int
	Score  int
	Level  string
}

// PriorityFilter picks a column by running the candidates through each level
// in turn, stopping once a level is decisive or a single column is left.
// Candidates stay in ascending column order, so the leftmost survivor wins a
// tie after the last level.
func PriorityFilter(board *domain.Board, player domain.PlayerID) FilterResult {
	candidates := board.ValidMoves()
	if len(candidates) == 0 {
		return FilterResult{Column: -1}
	}

	level := "forced"
	for _, lvl := range filterLevels {
		if len(candidates) == 1 {
			break
		}
		kept, decisive := lvl.narrow(board, player, candidates)
		candidates, level = kept, lvl.name
		if decisive {
			break
		}
	}

	col := candidates[0]
	return FilterResult{Column: col, Score: filterScore(board, player, col), Level: level}
}

func filterScore(board *domain.Board, player domain.PlayerID, col int) int {
	if winsAt(board, player, col) {
		return SCORE_WIN
	}
	if winsAt(board, player.Opponent(), col) {
		return SCORE_BLOCK_THREAT
	}
	return ConnectionPotential(board, player, col)
}

func criticalLevel(board *domain.Board, player domain.PlayerID, candidates []int) ([]int, bool) {
	for _, col := range candidates {
		if winsAt(board, player, col) {
			return []int{col}, true
		}
	}
	var blocks []int
	for _, col := range candidates {
		if winsAt(board, player.Opponent(), col) {
			blocks = append(blocks, col)
		}
	}
	if len(blocks) == 0 {
		return candidates, false
	}
	return blocks, false
}

func safetyLevel(board *domain.Board, player domain.PlayerID, candidates []int) ([]int, bool) {
	var safe []int
	for _, col := range candidates {
		if IsSafeMove(board, player, col) {
			safe = append(safe, col)
		}
	}
	if len(safe) == 0 {
		return candidates, false
	}
	return safe, false
}

func centerLevel(board *domain.Board, _ domain.PlayerID, candidates []int) ([]int, bool) {
	best := -1
	var kept []int
	for _, col := range candidates {
		d := centerDistance(col, board.Cols())
		switch {
		case best < 0 || d < best:
			best = d
			kept = []int{col}
		case d == best:
			kept = append(kept, col)
		}
	}
	return kept, false
}

func connectionLevel(board *domain.Board, player domain.PlayerID, candidates []int) ([]int, bool) {
	best := -1
	var kept []int
	for _, col := range candidates {
		score := ConnectionPotential(board, player, col)
		switch {
		case score > best:
			best = score
			kept = []int{col}
		case score == best:
			kept = append(kept, col)
		}
	}
	return kept, false
}

package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/connect4-engine/internal/config"
	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/service/bot"
)

func testConfig() *config.Config {
	return &config.Config{
		BoardRows:     domain.DefaultRows,
		BoardColumns:  domain.DefaultColumns,
		BotDifficulty: bot.DifficultyMedium,
		HardDepth:     3,
		ExpertDepth:   4,
		DecisionTTL:   time.Hour,
		LogLevel:      "info",
	}
}

func run(t *testing.T, cfg *config.Config, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd(cfg, zerolog.Nop())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

var verticalThree = []string{
	"--row", ".......",
	"--row", ".......",
	"--row", ".......",
	"--row", "...X...",
	"--row", "...X...",
	"--row", "OO.X..O",
}

func TestAnalyzeJSON(t *testing.T) {
	args := append([]string{"analyze", "--player", "1", "--difficulty", "hard", "-o", "json"}, verticalThree...)
	out, err := run(t, testConfig(), "", args...)
	require.NoError(t, err)

	var res AnalyzeResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 3, res.Column)
	assert.Equal(t, "hard", res.Difficulty)
	assert.Equal(t, "X", res.Player)
	assert.GreaterOrEqual(t, res.Score, bot.SCORE_WIN)
}

func TestAnalyzeText(t *testing.T) {
	args := append([]string{"analyze", "--difficulty", "easy"}, verticalThree...)
	out, err := run(t, testConfig(), "", args...)
	require.NoError(t, err)
	assert.Contains(t, out, "X (easy): column 3")
}

func TestAnalyzeRejectsBadInput(t *testing.T) {
	_, err := run(t, testConfig(), "", "analyze", "--row", "..Z.", "--row", "....", "--row", "....", "--row", "....")
	assert.ErrorIs(t, err, domain.ErrMalformedPosition)

	args := append([]string{"analyze", "--player", "3"}, verticalThree...)
	_, err = run(t, testConfig(), "", args...)
	assert.ErrorIs(t, err, domain.ErrInvalidPlayer)
}

func TestInvalidConfigIsRejected(t *testing.T) {
	cfg := testConfig()
	args := append([]string{"analyze", "--hard-depth", "0"}, verticalThree...)
	_, err := run(t, cfg, "", args...)
	assert.ErrorContains(t, err, "HARD_DEPTH")
}

func TestPlaySession(t *testing.T) {
	out, err := run(t, testConfig(), "9\n1\nq\n", "play", "--difficulty", "easy", "--bot", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "You are X, the bot (easy) is O.")
	assert.Contains(t, out, "Enter a number between 1 and 7.")
	assert.Contains(t, out, "Bot plays column")
	assert.Contains(t, out, "Bye.")
}

func TestPlayEndsOnEOF(t *testing.T) {
	out, err := run(t, testConfig(), "", "play", "--bot", "1", "--rows", "4", "--cols", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Bot plays column")
	assert.Contains(t, out, "Your move (1-4, q to quit)")
	assert.Contains(t, out, "Bye.")
}

func TestPlayJSONMessages(t *testing.T) {
	out, err := run(t, testConfig(), "q\n", "play", "--difficulty", "easy", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `{"message":"Bye."}`)
}

func TestRenderBoard(t *testing.T) {
	b, err := domain.ParseBoard("....", "....", "....", ".XO.")
	require.NoError(t, err)
	got := renderBoard(b.Snapshot())
	assert.Equal(t, "| . . . . |\n| . . . . |\n| . . . . |\n| . X O . |\n  1 2 3 4\n", got)
}

func TestPlayUsesDecisionCache(t *testing.T) {
	server := miniredis.RunT(t)
	cfg := testConfig()
	cfg.RedisURL = server.Addr()

	_, err := run(t, cfg, "q\n", "play", "--difficulty", "tactical", "--bot", "1")
	require.NoError(t, err)
	assert.Len(t, server.Keys(), 1)
	assert.True(t, strings.HasPrefix(server.Keys()[0], "decision:tactical:X:"))
}

func TestArenaJSON(t *testing.T) {
	out, err := run(t, testConfig(), "", "arena", "--first", "easy", "--second", "medium", "--games", "2", "--workers", "2", "-o", "json")
	require.NoError(t, err)

	var res struct {
		FirstWins  int `json:"first_wins"`
		SecondWins int `json:"second_wins"`
		Draws      int `json:"draws"`
		Games      []struct {
			Starter string `json:"starter"`
		} `json:"games"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 2, res.FirstWins+res.SecondWins+res.Draws)
	require.Len(t, res.Games, 2)
	assert.Equal(t, "easy", res.Games[0].Starter)
	assert.Equal(t, "medium", res.Games[1].Starter)
}

func TestArenaText(t *testing.T) {
	out, err := run(t, testConfig(), "", "arena", "--first", "easy", "--second", "easy", "--games", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "first wins:")
	assert.Contains(t, out, "draws:")
}

func TestArenaRejectsUnknownTier(t *testing.T) {
	_, err := run(t, testConfig(), "", "arena", "--first", "grandmaster")
	assert.ErrorContains(t, err, "unknown difficulty")
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/service/arena"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case AnalyzeResult:
		o.printAnalyzeResult(v)
	case *arena.Result:
		o.printArenaResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// AnalyzeResult is what analyze reports for a position.
type AnalyzeResult struct {
	Player     string `json:"player"`
	Difficulty string `json:"difficulty"`
	Column     int    `json:"column"`
	Score      int    `json:"score"`
	Board      string `json:"board"`
}

func (o *Output) printAnalyzeResult(r AnalyzeResult) {
	fmt.Fprint(o.w, r.Board)
	if r.Column < 0 {
		fmt.Fprintf(o.w, "%s (%s): no legal move\n", r.Player, r.Difficulty)
		return
	}
	fmt.Fprintf(o.w, "%s (%s): column %d, score %d\n", r.Player, r.Difficulty, r.Column, r.Score)
}

func (o *Output) printArenaResult(r *arena.Result) {
	fmt.Fprintf(o.w, "run %s: %d games in %s\n", r.RunID, len(r.Games), r.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(o.w, "  first wins:  %d\n", r.FirstWins)
	fmt.Fprintf(o.w, "  second wins: %d\n", r.SecondWins)
	fmt.Fprintf(o.w, "  draws:       %d\n", r.Draws)
}

// renderBoard draws the grid with 1-based column numbers underneath.
func renderBoard(grid [][]domain.PlayerID) string {
	if len(grid) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, row := range grid {
		sb.WriteString("|")
		for _, cell := range row {
			sb.WriteString(" " + cell.String())
		}
		sb.WriteString(" |\n")
	}
	sb.WriteString(" ")
	for col := 1; col <= len(grid[0]); col++ {
		fmt.Fprintf(&sb, "%2d", col%10)
	}
	sb.WriteString("\n")
	return sb.String()
}

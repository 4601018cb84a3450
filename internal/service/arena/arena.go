package arena

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/service/bot"
	"github.com/iamasit07/connect4-engine/pkg/uid"
)

// Config describes a match between two tiers.
type Config struct {
	First    bot.Difficulty
	Second   bot.Difficulty
	Games    int
	Workers  int
	Rows     int
	Cols     int
	Settings bot.Settings
}

func (c Config) validate() error {
	for _, d := range []bot.Difficulty{c.First, c.Second} {
		if !slices.Contains(bot.Difficulties(), d) {
			return fmt.Errorf("unknown difficulty %q", d)
		}
	}
	if c.Games < 1 {
		return errors.New("games must be at least 1")
	}
	if c.Workers < 1 {
		return errors.New("workers must be at least 1")
	}
	if c.Rows < domain.MinDimension || c.Rows > domain.MaxDimension ||
		c.Cols < domain.MinDimension || c.Cols > domain.MaxDimension {
		return fmt.Errorf("%dx%d: %w", c.Rows, c.Cols, domain.ErrBoardSize)
	}
	return nil
}

type Outcome string

const (
	OutcomeFirst  Outcome = "first"
	OutcomeSecond Outcome = "second"
	OutcomeDraw   Outcome = "draw"
)

// GameRecord is one arena game. Starter is the tier that moved first.
type GameRecord struct {
	Index   int            `json:"index"`
	Starter bot.Difficulty `json:"starter"`
	Outcome Outcome        `json:"outcome"`
	Moves   []int          `json:"moves"`
}

type Result struct {
	RunID      string        `json:"run_id"`
	FirstWins  int           `json:"first_wins"`
	SecondWins int           `json:"second_wins"`
	Draws      int           `json:"draws"`
	Games      []GameRecord  `json:"games"`
	Elapsed    time.Duration `json:"elapsed"`
}

type Runner struct {
	cfg    Config
	logger zerolog.Logger
}

func NewRunner(cfg Config, logger zerolog.Logger) (*Runner, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Runner{cfg: cfg, logger: logger}, nil
}

// Run plays every game, at most Workers at a time. The two tiers take turns
// moving first: even-numbered games are opened by First. Each game has its
// own board and engines, so workers share nothing mutable.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	runID := uid.GenerateRunID()
	logger := r.logger.With().Str("run_id", runID).Logger()
	start := time.Now()

	records := make([]GameRecord, r.cfg.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for i := range records {
		i := i
		g.Go(func() error {
			rec, err := r.playGame(ctx, i)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			records[i] = rec
			logger.Debug().
				Int("game", i).
				Str("starter", rec.Starter.String()).
				Str("outcome", string(rec.Outcome)).
				Int("moves", len(rec.Moves)).
				Msg("arena game finished")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{RunID: runID, Games: records, Elapsed: time.Since(start)}
	for _, rec := range records {
		switch rec.Outcome {
		case OutcomeFirst:
			res.FirstWins++
		case OutcomeSecond:
			res.SecondWins++
		default:
			res.Draws++
		}
	}

	logger.Info().
		Str("first", r.cfg.First.String()).
		Str("second", r.cfg.Second.String()).
		Int("first_wins", res.FirstWins).
		Int("second_wins", res.SecondWins).
		Int("draws", res.Draws).
		Dur("elapsed", res.Elapsed).
		Msg("arena finished")
	return res, nil
}

func (r *Runner) playGame(ctx context.Context, index int) (GameRecord, error) {
	g, err := domain.NewGame(r.cfg.Rows, r.cfg.Cols)
	if err != nil {
		return GameRecord{}, err
	}

	firstSeat := domain.Player1
	if index%2 == 1 {
		firstSeat = domain.Player2
	}
	tiers := map[domain.PlayerID]bot.Difficulty{
		firstSeat:            r.cfg.First,
		firstSeat.Opponent(): r.cfg.Second,
	}
	engines := map[domain.PlayerID]*bot.Engine{
		domain.Player1: bot.NewEngine(r.cfg.Settings, r.logger),
		domain.Player2: bot.NewEngine(r.cfg.Settings, r.logger),
	}

	rec := GameRecord{Index: index, Starter: tiers[domain.Player1], Outcome: OutcomeDraw}
	for !g.IsFinished() {
		if err := ctx.Err(); err != nil {
			return GameRecord{}, err
		}
		player := g.CurrentPlayer
		col := engines[player].GetBestMove(g.Board, player, tiers[player])
		if _, err := g.MakeMove(player, col); err != nil {
			return GameRecord{}, err
		}
		rec.Moves = append(rec.Moves, col)
	}
	if g.Status == domain.StatusWon {
		rec.Outcome = OutcomeSecond
		if g.Winner == firstSeat {
			rec.Outcome = OutcomeFirst
		}
	}
	return rec, nil
}

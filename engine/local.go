package engine

import (
	"time"

	"splendor/experiments/metrics"
	"splendor/game"

	"github.com/rs/zerolog/log"
)

type LocalEngine struct {
	Game *game.Game

	gameOptions []game.Option
	collector   metrics.Collector
	withMetrics bool
	logMoves    bool
}

type Option func(e *LocalEngine)

// WithMetrics times every move and returns the per-move metrics from Run.
func WithMetrics() Option {
	return func(e *LocalEngine) {
		e.collector = metrics.NewCollector()
		e.withMetrics = true
	}
}

// WithMoveLog writes the game's audit log once it is over.
func WithMoveLog() Option {
	return func(e *LocalEngine) {
		e.logMoves = true
	}
}

// WithGameOptions is passed through to game.NewGame.
func WithGameOptions(options ...game.Option) Option {
	return func(e *LocalEngine) {
		e.gameOptions = append(e.gameOptions, options...)
	}
}

// Local seats one player per agent in a new in-process game.
func Local(agents []game.Agent, options ...Option) (*LocalEngine, error) {
	e := &LocalEngine{collector: metrics.NewDummyCollector()}
	for _, option := range options {
		option(e)
	}

	g, err := game.NewGame(agents, e.gameOptions...)
	if err != nil {
		return nil, err
	}
	e.Game = g
	return e, nil
}

func (e *LocalEngine) Reset() {
	e.Game.Reset()
}

// Run executes the entire turn loop until the game is over or capped. A
// rejected decision stops the loop and is returned with the metrics so far.
func (e *LocalEngine) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	g := e.Game
	gameMetric := metrics.GameMetric{
		GameID:         g.ID.String(),
		StartingPlayer: g.CurrentPlayer().ID,
		WinningAgent:   game.NoWinner,
		StartTime:      time.Now(),
	}

	log.Info().Str("game", gameMetric.GameID).Msgf("player %d is starting", gameMetric.StartingPlayer)

	var moveMetrics []metrics.MoveMetric
	for !g.Done() {
		p := g.CurrentPlayer()
		if e.withMetrics {
			e.collector.Start(g.Move(), p.ID, game.GenerateMoves(g.Board(), p).Len())
		}

		if err := g.PlayTurn(); err != nil {
			return g.Outcome(), gameMetric, moveMetrics, err
		}

		if e.withMetrics {
			history := g.History()
			decision := history[len(history)-1].Decision
			moveMetrics = append(moveMetrics, e.collector.Complete(decision.Label.String(), p.Points()))
		}
	}

	outcome := g.Outcome()
	gameMetric.Winner = outcome.Winner
	gameMetric.Score = outcome.Score
	gameMetric.TotalMoves = outcome.Moves
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	if g.IsOver() {
		log.Info().Str("game", gameMetric.GameID).Msgf("game over after %d moves, winner: %d with %d points", outcome.Moves, outcome.Winner, outcome.Score)
	} else {
		log.Info().Str("game", gameMetric.GameID).Msgf("stopped after %d moves (turn cap), leader: %d", outcome.Moves, outcome.Winner)
	}
	if e.logMoves {
		g.LogMoves()
	}

	return outcome, gameMetric, moveMetrics, nil
}

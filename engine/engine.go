package engine

import (
	"splendor/experiments/metrics"
	"splendor/game"
)

type Engine interface {
	// Run plays the game till it is over or the turn cap is reached
	Run() (outcome game.Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
	// Reset deals a fresh game for the same seats
	Reset()
}

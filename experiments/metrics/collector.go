package metrics

import (
	"time"
)

// AgentConfig identifies one strategy taking part in an experiment.
type AgentConfig struct {
	ID       int
	Strategy string
}

type MoveMetric struct {
	Step     int
	Player   int // Player ID
	Label    string
	Options  int // size of the legal-move menu
	Points   int // after the move
	Duration time.Duration
}

type GameMetric struct {
	GameID         string
	StartingPlayer int // Player ID
	Winner         int // Player ID, -1 on a tie
	WinningAgent   int // AgentConfig.ID, -1 on a tie
	Score          int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector times one move at a time. Start and Complete are called in
// pairs from the turn loop.
type Collector interface {
	Start(step, player, options int)
	Complete(label string, points int) MoveMetric
}

type collector struct {
	step      int
	player    int
	options   int
	startTime time.Time
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(step, player, options int) {
	m.startTime = time.Now()
	m.step = step
	m.player = player
	m.options = options
}

func (m *collector) Complete(label string, points int) MoveMetric {
	return MoveMetric{
		Step:     m.step,
		Player:   m.player,
		Label:    label,
		Options:  m.options,
		Points:   points,
		Duration: time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(step, player, options int)              {}
func (m *dummyCollector) Complete(label string, points int) MoveMetric { return MoveMetric{} }

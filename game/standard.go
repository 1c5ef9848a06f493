package game

import "splendor/meta"

type StandardRules struct {
	Score int
	Turns int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		Score: meta.WINNING_SCORE,
		Turns: meta.MAX_TURNS,
	}
}

func (sr *StandardRules) WinningScore() int {
	return sr.Score
}

func (sr *StandardRules) MaxTurns() int {
	return sr.Turns
}

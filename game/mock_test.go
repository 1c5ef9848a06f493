package game

import (
	"fmt"

	"splendor/card"
	"splendor/chips"

	"golang.org/x/exp/rand"
)

type mockAgent struct {
	name   string
	move   func(moves Moves) Decision
	noble  func(options []NobleOption) int
	nobles [][]NobleOption
}

func (m *mockAgent) Name() string {
	return m.name
}

func (m *mockAgent) MakeMove(_ Board, _ []*Player, _ int, moves Moves) Decision {
	if m.move != nil {
		return m.move(moves)
	}
	return moves.Decisions()[0]
}

func (m *mockAgent) TakeNoble(options []NobleOption) int {
	m.nobles = append(m.nobles, options)
	if m.noble != nil {
		return m.noble(options)
	}
	return options[0].Index
}

// takeFirst only ever takes chips, so it never scores.
func takeFirst(moves Moves) Decision {
	return Take(moves.TakeChips[0])
}

type randomAgent struct {
	rng *rand.Rand
}

func (r randomAgent) Name() string { return "random" }

func (r randomAgent) MakeMove(_ Board, _ []*Player, _ int, moves Moves) Decision {
	decisions := moves.Decisions()
	// favour purchases so that games actually progress
	if len(moves.Purchase) > 0 && r.rng.Intn(2) == 0 {
		return Purchase(moves.Purchase[r.rng.Intn(len(moves.Purchase))])
	}
	return decisions[r.rng.Intn(len(decisions))]
}

func (r randomAgent) TakeNoble(options []NobleOption) int {
	return options[r.rng.Intn(len(options))].Index
}

func mockAgents(n int) []Agent {
	agents := make([]Agent, n)
	for i := range agents {
		agents[i] = &mockAgent{name: fmt.Sprintf("mock%d", i)}
	}
	return agents
}

func newTestGame(n int, seed uint64) *Game {
	g, err := NewGame(mockAgents(n), WithSeed(seed))
	if err != nil {
		panic(err)
	}
	return g
}

func exposedCard(id int, color chips.Color, points int, cost chips.Chips) *card.Card {
	c := card.New(id, 1, color, points, cost)
	c.Reveal()
	return c
}

func chipTotals(g *Game) [chips.NumColors + 1]int {
	totals := g.Board().Chips().Counts()
	for _, p := range g.Players() {
		for color, n := range p.Chips().Counts() {
			totals[color] += n
		}
	}
	return totals
}

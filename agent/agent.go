package agent

import (
	"errors"
	"fmt"
	"time"

	"splendor/card"
	"splendor/chips"
	"splendor/game"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

const (
	RandomStrategy = "random"
	GreedyStrategy = "greedy"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategies lists the names accepted by New.
func Strategies() []string {
	return []string{RandomStrategy, GreedyStrategy}
}

// New builds the named strategy. A nil rng is seeded from the clock.
func New(strategy string, rng *rand.Rand) (game.Agent, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	switch strategy {
	case RandomStrategy:
		return NewRandom(rng), nil
	case GreedyStrategy:
		return NewGreedy(), nil
	default:
		return nil, fmt.Errorf("%w %q, want one of %v", ErrUnknownStrategy, strategy, Strategies())
	}
}

// Random picks uniformly among every legal decision.
type Random struct {
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (r *Random) Name() string {
	return RandomStrategy
}

func (r *Random) MakeMove(_ game.Board, _ []*game.Player, _ int, moves game.Moves) game.Decision {
	decisions := moves.Decisions()
	return decisions[r.rng.Intn(len(decisions))]
}

func (r *Random) TakeNoble(options []game.NobleOption) int {
	return options[r.rng.Intn(len(options))].Index
}

// Greedy buys the most valuable card it can afford. Otherwise it works
// towards the card closest to affordable, taking the chips that card still
// needs, and reserves a card when no take makes progress.
type Greedy struct{}

func NewGreedy() *Greedy {
	return &Greedy{}
}

func (g *Greedy) Name() string {
	return GreedyStrategy
}

func (g *Greedy) MakeMove(b game.Board, players []*game.Player, current int, moves game.Moves) game.Decision {
	if len(moves.Purchase) > 0 {
		return game.Purchase(slices.MaxFunc(moves.Purchase, func(x, y game.PurchaseOption) int {
			if x.Slot.Card.Points != y.Slot.Card.Points {
				return x.Slot.Card.Points - y.Slot.Card.Points
			}
			return y.Slot.Card.Cost.Total() - x.Slot.Card.Cost.Total()
		}))
	}

	p := players[current]
	needed := need(target(b, p), p)
	best := slices.MaxFunc(moves.TakeChips, func(x, y chips.Exchange) int {
		return score(x, needed) - score(y, needed)
	})
	if score(best, needed) > 0 || len(moves.Reserve.Exposed) == 0 {
		return game.Take(best)
	}

	return game.ReserveExposed(slices.MaxFunc(moves.Reserve.Exposed, func(x, y game.ReserveOption) int {
		if x.Slot.Card.Points != y.Slot.Card.Points {
			return x.Slot.Card.Points - y.Slot.Card.Points
		}
		return x.Exchange.Take.Gold() - y.Exchange.Take.Gold()
	}))
}

func (g *Greedy) TakeNoble(options []game.NobleOption) int {
	return options[0].Index
}

// target is the card on the board or in reserve with the smallest shortfall,
// preferring more points. It is nil when there is nothing left to buy.
func target(b game.Board, p *game.Player) *card.Card {
	candidates := append([]*card.Card(nil), p.ReservedCards()...)
	for _, slot := range b.ExposedCards() {
		candidates = append(candidates, slot.Card)
	}
	if len(candidates) == 0 {
		return nil
	}
	power := p.ChipsAndCards()
	return slices.MinFunc(candidates, func(x, y *card.Card) int {
		if sx, sy := x.Shortfall(power), y.Shortfall(power); sx != sy {
			return sx - sy
		}
		return y.Points - x.Points
	})
}

// need is the number of chips per color p still lacks for c.
func need(c *card.Card, p *game.Player) [chips.NumColors]int {
	var out [chips.NumColors]int
	if c == nil {
		return out
	}
	power := p.ChipsAndCards()
	for _, color := range chips.Colors() {
		out[color] = max(0, c.Cost.Get(color)-power.Get(color))
	}
	return out
}

// score weighs chips towards the target card twice as much as raw chip gain.
func score(ex chips.Exchange, needed [chips.NumColors]int) int {
	useful := 0
	for _, color := range chips.Colors() {
		useful += min(ex.Take.Get(color), needed[color])
	}
	return 2*useful + ex.Take.Total() - ex.GiveBack.Total()
}

// Scripted replays a fixed sequence of indices into the decision list,
// wrapping around both the script and the list. It makes replays and
// regression games reproducible without a random source.
type Scripted struct {
	picks []int
	next  int
}

func NewScripted(picks ...int) *Scripted {
	if len(picks) == 0 {
		picks = []int{0}
	}
	return &Scripted{picks: picks}
}

func (s *Scripted) Name() string {
	return "scripted"
}

func (s *Scripted) MakeMove(_ game.Board, _ []*game.Player, _ int, moves game.Moves) game.Decision {
	decisions := moves.Decisions()
	pick := s.picks[s.next%len(s.picks)]
	s.next++
	return decisions[pick%len(decisions)]
}

func (s *Scripted) TakeNoble(options []game.NobleOption) int {
	return options[len(options)-1].Index
}

package game

import "golang.org/x/exp/slices"

// NoWinner is reported when the top two players tie on points and cards.
const NoWinner = -1

type Outcome struct {
	Winner int
	Score  int
	Moves  int
}

// Ranking orders players by points, then by purchased cards, both descending.
// Seat order is left untouched.
func (g *Game) Ranking() []*Player {
	ranked := slices.Clone(g.players)
	slices.SortStableFunc(ranked, func(a, b *Player) int {
		if a.Points() != b.Points() {
			return b.Points() - a.Points()
		}
		return len(b.PurchasedCards()) - len(a.PurchasedCards())
	})
	return ranked
}

// Winner returns the id of the best ranked player, or NoWinner on a tie.
func (g *Game) Winner() int {
	ranked := g.Ranking()
	first, second := ranked[0], ranked[1]
	if first.Points() == second.Points() && len(first.PurchasedCards()) == len(second.PurchasedCards()) {
		return NoWinner
	}
	return first.ID
}

func (g *Game) Outcome() Outcome {
	return Outcome{
		Winner: g.Winner(),
		Score:  g.TopScore(),
		Moves:  g.move,
	}
}

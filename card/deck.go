package card

import "splendor/chips"

// Tiers is the number of development card decks.
const Tiers = 3

// pattern describes one card relative to its own color: cost[k] is the price
// in the color k steps after it in field order, so cost[0] is its own color.
type pattern struct {
	points int
	cost   [chips.NumColors]int
}

// Every color gets the same shapes, which keeps the set balanced across colors.
var patterns = [Tiers][]pattern{
	{
		{0, [5]int{0, 1, 1, 1, 1}},
		{0, [5]int{0, 1, 2, 1, 1}},
		{0, [5]int{0, 2, 2, 0, 1}},
		{0, [5]int{1, 0, 0, 1, 3}},
		{0, [5]int{0, 0, 0, 2, 1}},
		{0, [5]int{0, 2, 0, 2, 0}},
		{0, [5]int{0, 0, 0, 3, 0}},
		{1, [5]int{0, 0, 4, 0, 0}},
	},
	{
		{1, [5]int{0, 3, 2, 2, 0}},
		{1, [5]int{2, 3, 0, 3, 0}},
		{2, [5]int{0, 0, 1, 4, 2}},
		{2, [5]int{0, 0, 0, 5, 3}},
		{2, [5]int{0, 5, 0, 0, 0}},
		{3, [5]int{6, 0, 0, 0, 0}},
	},
	{
		{3, [5]int{0, 3, 3, 5, 3}},
		{4, [5]int{0, 0, 0, 0, 7}},
		{4, [5]int{3, 0, 0, 3, 6}},
		{5, [5]int{3, 0, 0, 0, 7}},
	},
}

// StandardDeck returns a fresh copy of all 90 development cards, grouped by
// tier (index 0 holds tier 1).
func StandardDeck() [Tiers][]*Card {
	var decks [Tiers][]*Card
	id := 0
	for tier, shapes := range patterns {
		for _, color := range chips.Colors() {
			for _, p := range shapes {
				var cost chips.Chips
				for step, n := range p.cost {
					cost = cost.Set(chips.Color((int(color)+step)%chips.NumColors), n)
				}
				decks[tier] = append(decks[tier], New(id, tier+1, color, p.points, cost))
				id++
			}
		}
	}
	return decks
}

// StandardNobles returns the ten noble tiles: five needing four cards in each
// of two adjacent colors and five needing three in each of three.
func StandardNobles() []Noble {
	nobles := make([]Noble, 0, 2*chips.NumColors)
	id := 0
	for start := 0; start < chips.NumColors; start++ {
		var req [chips.NumColors]int
		req[start] = 4
		req[(start+1)%chips.NumColors] = 4
		nobles = append(nobles, Noble{ID: id, Points: NoblePoints, Requirement: req})
		id++
	}
	for start := 0; start < chips.NumColors; start++ {
		var req [chips.NumColors]int
		for k := 0; k < 3; k++ {
			req[(start+k)%chips.NumColors] = 3
		}
		nobles = append(nobles, Noble{ID: id, Points: NoblePoints, Requirement: req})
		id++
	}
	return nobles
}

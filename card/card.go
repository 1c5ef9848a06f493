package card

import (
	"fmt"

	"splendor/chips"
)

// State tracks where a card currently lives.
type State int

const (
	InDeck   State = iota // face down in its tier's deck
	Exposed               // face up on the board, can be bought or reserved
	Reserved              // held in a player's reserve
	Bought                // owned by a player
)

// NoOwner marks a card nobody has reserved or bought.
const NoOwner = -1

// Card is a development card. Its printed attributes never change once drawn;
// only its state and owner move as it travels from board to player.
type Card struct {
	ID     int
	Tier   int // 1, 2 or 3
	Color  chips.Color
	Points int
	Cost   chips.Chips // same field layout as held chips, gold always zero

	state State
	owner int
}

// New returns a card sitting face down in its deck.
func New(id, tier int, color chips.Color, points int, cost chips.Chips) *Card {
	return &Card{ID: id, Tier: tier, Color: color, Points: points, Cost: cost, owner: NoOwner}
}

func (c *Card) State() State {
	return c.state
}

func (c *Card) Owner() int {
	return c.owner
}

func (c *Card) IsReserved() bool {
	return c.state == Reserved
}

// Reveal turns a deck card face up.
func (c *Card) Reveal() {
	if c.state == InDeck {
		c.state = Exposed
	}
}

// Shortfall is the number of gold chips needed on top of the colored part of
// power to pay for the card. Gold stands in for any color, so a card is
// affordable whenever the shortfall does not exceed the gold held; with no
// gold that is exactly every cost field being covered.
func (c *Card) Shortfall(power chips.Chips) int {
	short := 0
	for _, color := range chips.Colors() {
		if need := c.Cost.Get(color) - power.Get(color); need > 0 {
			short += need
		}
	}
	return short
}

// CanBeBought reports whether effective buying power (chips plus card
// discounts, gold in its own field) pays for the card.
func (c *Card) CanBeBought(power chips.Chips) bool {
	return c.Shortfall(power) <= power.Gold()
}

// Buy registers a purchase by playerID. It fails when the card is already
// owned, reserved by someone else, or unaffordable.
func (c *Card) Buy(playerID int, power chips.Chips) bool {
	switch {
	case c.state == Bought:
		return false
	case c.state == Reserved && c.owner != playerID:
		return false
	case !c.CanBeBought(power):
		return false
	}
	c.state = Bought
	c.owner = playerID
	return true
}

// Reserve registers a reservation by playerID for a card still on the board.
func (c *Card) Reserve(playerID int) bool {
	if c.state == Reserved || c.state == Bought {
		return false
	}
	c.state = Reserved
	c.owner = playerID
	return true
}

func (c *Card) String() string {
	return fmt.Sprintf("#%d(t%d %s %dpt %s)", c.ID, c.Tier, c.Color, c.Points, c.Cost)
}

package game

import (
	"splendor/card"
	"splendor/chips"
	"splendor/utils"
)

// Player is one seat's resource ledger. chips holds the chips in hand;
// chipsAndCards is derived from chips and the purchased-card discounts and is
// rebuilt from scratch after every change so the two never drift apart.
type Player struct {
	ID    int
	Name  string
	Agent Agent

	points         int
	purchasedCards []*card.Card
	reservedCards  []*card.Card
	nobles         []card.Noble
	cardChipValues [chips.NumColors]int
	chips          chips.Chips
	chipsAndCards  chips.Chips
}

func NewPlayer(id int, name string, agent Agent) *Player {
	return &Player{ID: id, Name: name, Agent: agent}
}

// Reset empties the ledger for a new game.
func (p *Player) Reset() {
	p.points = 0
	p.purchasedCards = nil
	p.reservedCards = nil
	p.nobles = nil
	p.cardChipValues = [chips.NumColors]int{}
	p.chips = 0
	p.chipsAndCards = 0
}

func (p *Player) Points() int                          { return p.points }
func (p *Player) PurchasedCards() []*card.Card         { return p.purchasedCards }
func (p *Player) ReservedCards() []*card.Card          { return p.reservedCards }
func (p *Player) Nobles() []card.Noble                 { return p.nobles }
func (p *Player) CardChipValues() [chips.NumColors]int { return p.cardChipValues }
func (p *Player) Chips() chips.Chips                   { return p.chips }

// ChipsAndCards is the effective buying power: per color the held chips plus
// the card discount capped at chips.MaxField, and the held gold.
func (p *Player) ChipsAndCards() chips.Chips { return p.chipsAndCards }

// BuyCard pays for a card off the board and takes ownership of it. It
// returns false, changing nothing, when the card refuses the purchase.
// Reserved cards are only bought through ActivateCard.
func (p *Player) BuyCard(c *card.Card) bool {
	if c.IsReserved() {
		return false
	}
	return p.buy(c)
}

func (p *Player) buy(c *card.Card) bool {
	if !c.Buy(p.ID, p.chipsAndCards) {
		return false
	}
	p.payForCard(c)
	p.purchasedCards = append(p.purchasedCards, c)
	p.points += c.Points
	p.cardChipValues[c.Color]++
	p.updateChipsAndCards()
	return true
}

// ReserveCard puts c in reserve and credits goldBonus wildcard chips. It
// fails when the reserve is full or the card cannot be reserved.
func (p *Player) ReserveCard(c *card.Card, goldBonus int) bool {
	if len(p.reservedCards) >= MaxReserved {
		return false
	}
	bonus := chips.Chips(0).Set(chips.Gold, goldBonus)
	if !p.chips.CanAdd(bonus) {
		return false
	}
	if !c.Reserve(p.ID) {
		return false
	}
	p.chips = p.chips.Add(bonus)
	p.updateChipsAndCards()
	p.reservedCards = append(p.reservedCards, c)
	return true
}

// ActivateCard buys a card out of the reserve. The card is matched by
// identity; a card not held in reserve, or one that cannot be paid for, is
// rejected without any change.
func (p *Player) ActivateCard(c *card.Card) bool {
	i := utils.FindIndex(p.reservedCards, c)
	if i < 0 {
		return false
	}
	if !p.buy(c) {
		return false
	}
	p.reservedCards = utils.RemoveAt(p.reservedCards, i)
	return true
}

// AddNoble awards a noble tile and its points.
func (p *Player) AddNoble(n card.Noble) {
	p.nobles = append(p.nobles, n)
	p.points += n.Points
}

// AddChips credits chips taken from the board.
func (p *Player) AddChips(c chips.Chips) {
	p.chips = p.chips.Add(c)
	p.updateChipsAndCards()
}

// RemoveChips debits chips returned to the board.
func (p *Player) RemoveChips(c chips.Chips) {
	p.chips = p.chips.Sub(c)
	p.updateChipsAndCards()
}

// payForCard settles the cost of c color by color: the discount for the
// color applies first, same-color chips cover what remains, and only the
// uncovered rest is charged to gold.
func (p *Player) payForCard(c *card.Card) {
	goldNeeded := 0
	for _, color := range chips.Colors() {
		residual := max(0, c.Cost.Get(color)-p.cardChipValues[color])
		held := p.chips.Get(color)
		spent := min(held, residual)
		p.chips = p.chips.Set(color, held-spent)
		goldNeeded += residual - spent
	}
	p.chips = p.chips.Set(chips.Gold, p.chips.Gold()-goldNeeded)
}

func (p *Player) updateChipsAndCards() {
	power := chips.Chips(0).Set(chips.Gold, p.chips.Gold())
	for _, color := range chips.Colors() {
		power = power.Set(color, min(chips.MaxField, p.cardChipValues[color]+p.chips.Get(color)))
	}
	p.chipsAndCards = power
}

package board

import (
	"fmt"

	"splendor/card"
	"splendor/chips"

	"golang.org/x/exp/rand"
)

const (
	// SlotsPerTier is the number of face-up cards per tier.
	SlotsPerTier = 4
	// Covered is the slot index used for the top card of a deck.
	Covered = -1

	goldSupply = 5
)

// Slot locates a card on the board. Row is the tier index (0 for tier 1) and
// Index the face-up position, or Covered for the top of the deck.
type Slot struct {
	Card  *card.Card
	Row   int
	Index int
}

// Snapshot is a value copy of the board for observers.
type Snapshot struct {
	Chips     chips.Chips
	Exposed   [card.Tiers][]card.Card
	DeckSizes [card.Tiers]int
	Nobles    []card.Noble
}

// Board holds the shared supply: three decks, their face-up rows, the noble
// tiles in play and the communal chip pool.
type Board struct {
	players int
	rng     *rand.Rand

	decks   [card.Tiers][]*card.Card
	exposed [card.Tiers][SlotsPerTier]*card.Card
	nobles  []card.Noble
	chips   chips.Chips
}

// ChipSupply is the number of chips per gem color for a player count.
func ChipSupply(players int) int {
	switch players {
	case 2:
		return 4
	case 3:
		return 5
	default:
		return 7
	}
}

// StartingChips is the full pool for a player count.
func StartingChips(players int) chips.Chips {
	n := ChipSupply(players)
	return chips.Of(n, n, n, n, n, goldSupply)
}

// New builds and deals a board for players using rng for every shuffle.
func New(players int, rng *rand.Rand) *Board {
	if players < 2 || players > 4 {
		panic(fmt.Sprintf("board: unsupported player count %d", players))
	}
	b := &Board{players: players, rng: rng}
	b.Reset()
	return b
}

// Reset reshuffles fresh decks and nobles and refills the chip pool.
func (b *Board) Reset() {
	b.decks = card.StandardDeck()
	for row := range b.decks {
		deck := b.decks[row]
		b.rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
		for i := range b.exposed[row] {
			b.exposed[row][i] = b.draw(row)
		}
	}

	nobles := card.StandardNobles()
	b.rng.Shuffle(len(nobles), func(i, j int) { nobles[i], nobles[j] = nobles[j], nobles[i] })
	b.nobles = nobles[:b.players+1]

	b.chips = StartingChips(b.players)
}

func (b *Board) draw(row int) *card.Card {
	deck := b.decks[row]
	if len(deck) == 0 {
		return nil
	}
	c := deck[len(deck)-1]
	b.decks[row] = deck[:len(deck)-1]
	c.Reveal()
	return c
}

// ExposedCards lists every face-up card, row by row.
func (b *Board) ExposedCards() []Slot {
	slots := make([]Slot, 0, card.Tiers*SlotsPerTier)
	for row := range b.exposed {
		for i, c := range b.exposed[row] {
			if c != nil {
				slots = append(slots, Slot{Card: c, Row: row, Index: i})
			}
		}
	}
	return slots
}

// TopCards lists the top card of every non-empty deck.
func (b *Board) TopCards() []Slot {
	slots := make([]Slot, 0, card.Tiers)
	for row, deck := range b.decks {
		if len(deck) > 0 {
			slots = append(slots, Slot{Card: deck[len(deck)-1], Row: row, Index: Covered})
		}
	}
	return slots
}

// RemoveCard takes a card off the board. A face-up slot is refilled from its
// deck; Covered pops the deck itself.
func (b *Board) RemoveCard(row, index int) {
	if row < 0 || row >= card.Tiers {
		panic(fmt.Sprintf("board: row %d out of range", row))
	}
	if index == Covered {
		deck := b.decks[row]
		if len(deck) == 0 {
			panic(fmt.Sprintf("board: deck %d is empty", row))
		}
		b.decks[row] = deck[:len(deck)-1]
		return
	}
	if b.exposed[row][index] == nil {
		panic(fmt.Sprintf("board: slot %d/%d is empty", row, index))
	}
	b.exposed[row][index] = b.draw(row)
}

func (b *Board) Chips() chips.Chips {
	return b.chips
}

// AddChips returns chips to the pool.
func (b *Board) AddChips(c chips.Chips) {
	b.chips = b.chips.Add(c)
}

// RemoveChips takes chips out of the pool; taking more than the pool holds panics.
func (b *Board) RemoveChips(c chips.Chips) {
	b.chips = b.chips.Sub(c)
}

// Nobles returns the tiles still in play. The slice is shared with the board.
func (b *Board) Nobles() []card.Noble {
	return b.nobles
}

// RemoveNoble takes the tile at index out of play.
func (b *Board) RemoveNoble(index int) card.Noble {
	n := b.nobles[index]
	b.nobles = append(b.nobles[:index:index], b.nobles[index+1:]...)
	return n
}

func (b *Board) Snapshot() Snapshot {
	s := Snapshot{
		Chips:  b.chips,
		Nobles: append([]card.Noble(nil), b.nobles...),
	}
	for row := range b.exposed {
		for _, c := range b.exposed[row] {
			if c != nil {
				s.Exposed[row] = append(s.Exposed[row], *c)
			}
		}
		s.DeckSizes[row] = len(b.decks[row])
	}
	return s
}

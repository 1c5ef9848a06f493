package game

import (
	"splendor/board"
	"splendor/chips"
)

// ReserveOption pairs a reservable card with the chip exchange made alongside.
type ReserveOption struct {
	Slot     board.Slot
	Exchange chips.Exchange
}

// PurchaseOption is an affordable card, either on the board or in reserve
// (Row and Index are then meaningless).
type PurchaseOption struct {
	Slot board.Slot
}

type ReserveOptions struct {
	Exposed []ReserveOption
	Covered []ReserveOption
}

// Moves is the full menu of legal actions for one player.
type Moves struct {
	TakeChips []chips.Exchange
	Reserve   ReserveOptions
	Purchase  []PurchaseOption
}

// GenerateMoves lists the legal actions of p against b. It reads state only.
func GenerateMoves(b Board, p *Player) Moves {
	exposed := b.ExposedCards()
	return Moves{
		TakeChips: chips.TakingOptions(b.Chips(), p.Chips()),
		Reserve:   reserveOptions(exposed, b.TopCards(), b.Chips(), p),
		Purchase:  purchaseOptions(exposed, p),
	}
}

func reserveOptions(exposed, top []board.Slot, boardChips chips.Chips, p *Player) ReserveOptions {
	var options ReserveOptions
	if len(p.ReservedCards()) >= MaxReserved {
		return options
	}
	exchanges := chips.ReserveOptions(boardChips, p.Chips())
	for _, slot := range exposed {
		for _, ex := range exchanges {
			options.Exposed = append(options.Exposed, ReserveOption{Slot: slot, Exchange: ex})
		}
	}
	for _, slot := range top {
		for _, ex := range exchanges {
			options.Covered = append(options.Covered, ReserveOption{Slot: slot, Exchange: ex})
		}
	}
	return options
}

func purchaseOptions(exposed []board.Slot, p *Player) []PurchaseOption {
	var options []PurchaseOption
	for _, slot := range exposed {
		if slot.Card.CanBeBought(p.ChipsAndCards()) {
			options = append(options, PurchaseOption{Slot: slot})
		}
	}
	for _, c := range p.ReservedCards() {
		if c.CanBeBought(p.ChipsAndCards()) {
			options = append(options, PurchaseOption{Slot: board.Slot{Card: c, Row: c.Tier - 1, Index: board.Covered}})
		}
	}
	return options
}

// Decisions flattens the menu into every decision an agent may return.
func (m Moves) Decisions() []Decision {
	out := make([]Decision, 0, len(m.TakeChips)+len(m.Reserve.Exposed)+len(m.Reserve.Covered)+len(m.Purchase))
	for _, opt := range m.Purchase {
		out = append(out, Purchase(opt))
	}
	for _, ex := range m.TakeChips {
		out = append(out, Take(ex))
	}
	for _, opt := range m.Reserve.Exposed {
		out = append(out, ReserveExposed(opt))
	}
	for _, opt := range m.Reserve.Covered {
		out = append(out, ReserveCovered(opt))
	}
	return out
}

// Len is the number of distinct decisions on the menu.
func (m Moves) Len() int {
	return len(m.TakeChips) + len(m.Reserve.Exposed) + len(m.Reserve.Covered) + len(m.Purchase)
}

package game

import (
	"splendor/board"
	"splendor/card"
	"splendor/chips"
)

// Board is the shared supply a game is played against.
type Board interface {
	Reset()
	ExposedCards() []board.Slot
	TopCards() []board.Slot
	RemoveCard(row, index int)
	Chips() chips.Chips
	AddChips(chips.Chips)
	RemoveChips(chips.Chips)
	Nobles() []card.Noble
	RemoveNoble(index int) card.Noble
	Snapshot() board.Snapshot
}

// NobleOption is a qualifying noble and its index among the board's nobles.
type NobleOption struct {
	Index int
	Noble card.Noble
}

// Agent is a pluggable decision strategy. Both methods are called
// synchronously on the game's goroutine and must pick from what they are
// offered.
type Agent interface {
	Name() string
	// MakeMove picks one decision out of moves for players[current].
	MakeMove(b Board, players []*Player, current int, moves Moves) Decision
	// TakeNoble returns the Index of one of options.
	TakeNoble(options []NobleOption) int
}

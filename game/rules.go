package game

// MaxReserved is the most cards a player may hold in reserve.
const MaxReserved = 3

type Rules interface {
	// WinningScore ends the game at the next round boundary once reached.
	WinningScore() int
	// MaxTurns bounds a game against agents that never finish it.
	MaxTurns() int
}

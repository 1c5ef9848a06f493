package game

import (
	"splendor/board"
	"splendor/card"
	"splendor/chips"

	"github.com/rs/zerolog/log"
)

// PlayerStats is a value copy of a player's public ledger.
type PlayerStats struct {
	ID          int
	Name        string
	Points      int
	CardSummary [chips.NumColors]int
	Reserves    []card.Card
	Chips       [chips.NumColors + 1]int
	Nobles      []card.Noble
}

func GatherPlayerStats(p *Player) PlayerStats {
	stats := PlayerStats{
		ID:          p.ID,
		Name:        p.Name,
		Points:      p.Points(),
		CardSummary: p.CardChipValues(),
		Chips:       p.Chips().Counts(),
		Nobles:      append([]card.Noble(nil), p.Nobles()...),
	}
	for _, c := range p.ReservedCards() {
		stats.Reserves = append(stats.Reserves, *c)
	}
	return stats
}

// MoveRecord is one entry of the audit log.
type MoveRecord struct {
	Turn     int
	Player   PlayerStats // before the decision was executed
	Decision Decision
}

// GameState is what one player sees of the game. Moves is the menu of the
// player at the current turn counter.
type GameState struct {
	Turn     int
	Board    board.Snapshot
	Players  []PlayerStats
	Moves    Moves
	IsOver   bool
	PlayerID int
	Winner   int
	DidWin   bool
}

func (g *Game) GameState(playerID int) GameState {
	players := make([]PlayerStats, len(g.players))
	for i, p := range g.players {
		players[i] = GatherPlayerStats(p)
	}
	winner := g.Winner()
	return GameState{
		Turn:     g.move,
		Board:    g.board.Snapshot(),
		Players:  players,
		Moves:    GenerateMoves(g.board, g.CurrentPlayer()),
		IsOver:   g.IsOver(),
		PlayerID: playerID,
		Winner:   winner,
		DidWin:   winner != NoWinner && winner == playerID,
	}
}

// LogMoves writes the audit log at info level.
func (g *Game) LogMoves() {
	for _, record := range g.movesMade {
		log.Info().
			Str("game", g.ID.String()).
			Int("turn", record.Turn).
			Int("player", record.Player.ID).
			Int("points", record.Player.Points).
			Ints("chips", record.Player.Chips[:]).
			Str("decision", record.Decision.String()).
			Msg("move")
	}
}

package game

import (
	"errors"
	"fmt"
	"time"

	"splendor/board"
	"splendor/card"
	"splendor/chips"
	"splendor/meta"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

const (
	MinPlayers = meta.MIN_PLAYERS
	MaxPlayers = meta.MAX_PLAYERS
)

var (
	ErrPlayerCount     = errors.New("unsupported number of agents")
	ErrIllegalDecision = errors.New("illegal decision")
)

type Option func(g *Game)

// WithSeed makes seat order and every board shuffle reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithBoard replaces the standard board.
func WithBoard(b Board) Option {
	return func(g *Game) {
		if b != nil {
			g.board = b
		}
	}
}

func WithRules(r Rules) Option {
	return func(g *Game) {
		if r != nil {
			g.rules = r
		}
	}
}

// WithMaxTurns replaces the turn cap and keeps the winning score. It is
// applied after every other option, so it also overrides WithRules.
func WithMaxTurns(turns int) Option {
	return func(g *Game) {
		g.maxTurns = turns
	}
}

// Game is the turn controller. It owns the seats, the board and the audit
// log; everything runs on the caller's goroutine, one turn at a time.
type Game struct {
	ID uuid.UUID

	players   []*Player
	board     Board
	rules     Rules
	rng       *rand.Rand
	move      int
	movesMade []MoveRecord
	maxTurns  int
}

// NewGame seats one player per agent, in agent order, and deals a first game.
func NewGame(agents []Agent, options ...Option) (*Game, error) {
	if len(agents) < MinPlayers || len(agents) > MaxPlayers {
		return nil, fmt.Errorf("%w: got %d, want %d to %d", ErrPlayerCount, len(agents), MinPlayers, MaxPlayers)
	}

	g := &Game{rules: NewStandardRules()}
	for i, a := range agents {
		g.players = append(g.players, NewPlayer(i, a.Name(), a))
	}
	for _, option := range options {
		option(g)
	}
	if g.maxTurns > 0 {
		g.rules = &StandardRules{Score: g.rules.WinningScore(), Turns: g.maxTurns}
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if g.board == nil {
		g.board = board.New(len(agents), g.rng)
	}

	g.Reset()
	return g, nil
}

// Reset reshuffles the seats, empties every ledger, redeals the board and
// clears the turn counter and history.
func (g *Game) Reset() {
	g.rng.Shuffle(len(g.players), func(i, j int) {
		g.players[i], g.players[j] = g.players[j], g.players[i]
	})
	for _, p := range g.players {
		p.Reset()
	}
	g.board.Reset()
	g.move = 0
	g.movesMade = nil

	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		id = uuid.New()
	}
	g.ID = id

	log.Debug().Str("game", g.ID.String()).Int("players", len(g.players)).Msg("game reset")
}

func (g *Game) Players() []*Player {
	return g.players
}

func (g *Game) Board() Board {
	return g.board
}

func (g *Game) Rules() Rules {
	return g.rules
}

// Move is the number of turns played so far.
func (g *Game) Move() int {
	return g.move
}

// History is the audit log of every decision taken, oldest first.
func (g *Game) History() []MoveRecord {
	return g.movesMade
}

func (g *Game) CurrentPlayer() *Player {
	return g.players[g.move%len(g.players)]
}

// IsOver is only ever true at a round boundary, so every player gets the
// same number of turns.
func (g *Game) IsOver() bool {
	return g.move%len(g.players) == 0 && g.TopScore() >= g.rules.WinningScore()
}

// Done reports whether no further turn will be played, either because the
// game is over or the turn cap is reached.
func (g *Game) Done() bool {
	return g.move >= g.rules.MaxTurns() || g.IsOver()
}

func (g *Game) TopScore() int {
	top := 0
	for _, p := range g.players {
		top = max(top, p.Points())
	}
	return top
}

// PlayTurn asks the current player's agent for a decision, executes it,
// records it and advances the turn counter. A rejected decision is neither
// recorded nor counted.
func (g *Game) PlayTurn() error {
	if err := g.playTurn(); err != nil {
		return err
	}
	g.move++
	return nil
}

// playTurn runs one turn without advancing the counter.
func (g *Game) playTurn() error {
	p := g.CurrentPlayer()
	moves := GenerateMoves(g.board, p)
	decision := p.Agent.MakeMove(g.board, g.players, g.move%len(g.players), moves)
	record := MoveRecord{
		Turn:     g.move,
		Player:   GatherPlayerStats(p),
		Decision: decision,
	}

	log.Debug().Int("turn", g.move).Int("player", p.ID).Str("decision", decision.String()).Msg("executing decision")
	if err := g.ExecuteDecision(decision); err != nil {
		log.Warn().Err(err).Int("turn", g.move).Int("player", p.ID).Msg("decision rejected")
		return fmt.Errorf("turn %d player %d: %w", g.move, p.ID, err)
	}
	g.movesMade = append(g.movesMade, record)
	return nil
}

// PlayUntilPlayerID plays turns until the player with id is about to move,
// the game is over or the turn cap is hit. After each executed turn, and
// before the counter advances, it captures the state seen by id.
func (g *Game) PlayUntilPlayerID(id int) ([]GameState, error) {
	var states []GameState
	for !g.Done() && g.CurrentPlayer().ID != id {
		if err := g.playTurn(); err != nil {
			return states, err
		}
		states = append(states, g.GameState(id))
		g.move++
	}
	return states, nil
}

// ExecuteDecision applies d for the current player. Labels outside the four
// known kinds are a programming error.
func (g *Game) ExecuteDecision(d Decision) error {
	switch d.Label {
	case PurchaseLabel:
		return g.executePurchase(d.Purchase)
	case TakeLabel:
		return g.executeTake(d.Take)
	case ReserveExposedLabel:
		return g.executeReserve(d.Reserve, false)
	case ReserveCoveredLabel:
		return g.executeReserve(d.Reserve, true)
	default:
		panic(fmt.Sprintf("unknown decision label %v", d.Label))
	}
}

func (g *Game) executePurchase(opt PurchaseOption) error {
	p := g.CurrentPlayer()
	c := opt.Slot.Card
	before := p.Chips()

	if c.IsReserved() && c.Owner() == p.ID {
		if !p.ActivateCard(c) {
			return fmt.Errorf("%w: cannot buy reserved card %s", ErrIllegalDecision, c)
		}
	} else {
		if !p.BuyCard(c) {
			return fmt.Errorf("%w: cannot buy card %s", ErrIllegalDecision, c)
		}
		g.board.RemoveCard(opt.Slot.Row, opt.Slot.Index)
	}

	g.board.AddChips(before.Sub(p.Chips()))
	g.checkNobles()
	return nil
}

func (g *Game) executeTake(ex chips.Exchange) error {
	return g.makeChipExchange(ex.Take, ex.GiveBack)
}

// executeReserve moves the card into the current player's reserve and then
// settles the accompanying exchange, which is where the gold chip comes from.
// covered only distinguishes a blind draw in the log.
func (g *Game) executeReserve(opt ReserveOption, covered bool) error {
	p := g.CurrentPlayer()
	c := opt.Slot.Card
	if err := g.checkExchange(opt.Exchange.Take, opt.Exchange.GiveBack); err != nil {
		return err
	}
	if !p.ReserveCard(c, 0) {
		return fmt.Errorf("%w: cannot reserve card %s", ErrIllegalDecision, c)
	}
	g.board.RemoveCard(opt.Slot.Row, opt.Slot.Index)

	log.Debug().Int("player", p.ID).Int("card", c.ID).Bool("covered", covered).Msg("card reserved")
	return g.makeChipExchange(opt.Exchange.Take, opt.Exchange.GiveBack)
}

// makeChipExchange is the only place chips change hands between board and
// player, keeping the two pools exactly complementary.
func (g *Game) makeChipExchange(take, giveBack chips.Chips) error {
	if err := g.checkExchange(take, giveBack); err != nil {
		return err
	}
	p := g.CurrentPlayer()
	p.AddChips(take)
	g.board.RemoveChips(take)
	p.RemoveChips(giveBack)
	g.board.AddChips(giveBack)
	return nil
}

func (g *Game) checkExchange(take, giveBack chips.Chips) error {
	p := g.CurrentPlayer()
	if !g.board.Chips().Covers(take) {
		return fmt.Errorf("%w: board holds %s, cannot take %s", ErrIllegalDecision, g.board.Chips(), take)
	}
	if !p.Chips().CanAdd(take) || !p.Chips().Add(take).Covers(giveBack) {
		return fmt.Errorf("%w: player holds %s, cannot take %s and return %s", ErrIllegalDecision, p.Chips(), take, giveBack)
	}
	return nil
}

// checkNobles awards at most one noble per purchase. When several qualify
// the agent picks which.
func (g *Game) checkNobles() {
	p := g.CurrentPlayer()
	var options []NobleOption
	for i, n := range g.board.Nobles() {
		if card.CanGetNoble(n, p.CardChipValues()) {
			options = append(options, NobleOption{Index: i, Noble: n})
		}
	}
	if len(options) == 0 {
		return
	}

	chosen := p.Agent.TakeNoble(options)
	if !slices.ContainsFunc(options, func(o NobleOption) bool { return o.Index == chosen }) {
		log.Error().Int("player", p.ID).Int("index", chosen).Msg("agent chose a noble it was not offered")
		panic(fmt.Sprintf("noble index %d was not offered to player %d", chosen, p.ID))
	}

	n := g.board.RemoveNoble(chosen)
	p.AddNoble(n)
	log.Info().Int("player", p.ID).Int("noble", n.ID).Int("points", p.Points()).Msg("noble awarded")
}

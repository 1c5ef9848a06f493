package engine

import (
	"testing"

	"splendor/agent"
	"splendor/chips"
	"splendor/game"

	"github.com/stretchr/testify/require"
)

type cheater struct{}

func (cheater) Name() string { return "cheater" }

func (cheater) MakeMove(game.Board, []*game.Player, int, game.Moves) game.Decision {
	return game.Take(chips.Exchange{Take: chips.Of(7, 0, 0, 0, 0, 0)})
}

func (cheater) TakeNoble(options []game.NobleOption) int { return options[0].Index }

func greedyPair() []game.Agent {
	return []game.Agent{agent.NewGreedy(), agent.NewGreedy()}
}

func TestLocal(t *testing.T) {
	t.Run("rejects a single seat", func(t *testing.T) {
		_, err := Local([]game.Agent{agent.NewGreedy()})
		require.ErrorIs(t, err, game.ErrPlayerCount)
	})

	t.Run("plays to the end with metrics", func(t *testing.T) {
		e, err := Local(greedyPair(), WithMetrics(), WithMoveLog(), WithGameOptions(game.WithSeed(3)))
		require.NoError(t, err)
		starting := e.Game.CurrentPlayer().ID

		outcome, gm, moves, err := e.Run()
		require.NoError(t, err)
		require.True(t, e.Game.Done())
		require.Equal(t, e.Game.Outcome(), outcome)
		require.Len(t, moves, outcome.Moves)
		require.Equal(t, outcome.Moves, gm.TotalMoves)
		require.Equal(t, outcome.Winner, gm.Winner)
		require.Equal(t, outcome.Score, gm.Score)
		require.Equal(t, starting, gm.StartingPlayer)
		require.Equal(t, e.Game.ID.String(), gm.GameID)
		require.False(t, gm.EndTime.Before(gm.StartTime))

		for i, m := range moves {
			require.Equal(t, i, m.Step)
			require.Positive(t, m.Options)
			require.NotEmpty(t, m.Label)
		}
	})

	t.Run("no move metrics unless asked", func(t *testing.T) {
		e, err := Local(greedyPair(), WithGameOptions(game.WithSeed(3), game.WithMaxTurns(10)))
		require.NoError(t, err)
		outcome, _, moves, err := e.Run()
		require.NoError(t, err)
		require.Nil(t, moves)
		require.Equal(t, 10, outcome.Moves)
	})

	t.Run("same seed, same game", func(t *testing.T) {
		a, err := Local(greedyPair(), WithGameOptions(game.WithSeed(9)))
		require.NoError(t, err)
		b, err := Local(greedyPair(), WithGameOptions(game.WithSeed(9)))
		require.NoError(t, err)

		oa, _, _, err := a.Run()
		require.NoError(t, err)
		ob, _, _, err := b.Run()
		require.NoError(t, err)
		require.Equal(t, oa, ob)
	})

	t.Run("reset replays with the same seats", func(t *testing.T) {
		e, err := Local(greedyPair(), WithGameOptions(game.WithSeed(4), game.WithMaxTurns(6)))
		require.NoError(t, err)
		_, first, _, err := e.Run()
		require.NoError(t, err)

		e.Reset()
		require.Zero(t, e.Game.Move())
		_, second, _, err := e.Run()
		require.NoError(t, err)
		require.NotEqual(t, first.GameID, second.GameID)
		require.Equal(t, 6, second.TotalMoves)
	})

	t.Run("illegal decision stops the run", func(t *testing.T) {
		e, err := Local([]game.Agent{cheater{}, cheater{}}, WithMetrics(), WithGameOptions(game.WithSeed(1)))
		require.NoError(t, err)
		_, _, moves, err := e.Run()
		require.ErrorIs(t, err, game.ErrIllegalDecision)
		require.Empty(t, moves)
		require.Zero(t, e.Game.Move())
	})
}

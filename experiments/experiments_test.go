package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"splendor/agent"
	"splendor/experiments/metrics"
	"splendor/game"
	"splendor/meta"

	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) meta.Config {
	cfg := meta.Defaults()
	cfg.Games = 3
	cfg.OutputDir = t.TempDir()
	return cfg
}

func TestStrength(t *testing.T) {
	e := Strength([]string{agent.GreedyStrategy, agent.RandomStrategy})
	require.Equal(t, "strength", e.Name)
	require.Equal(t, []metrics.AgentConfig{
		{ID: 0, Strategy: agent.RandomStrategy},
		{ID: 1, Strategy: agent.GreedyStrategy},
		{ID: 2, Strategy: agent.RandomStrategy},
	}, e.Configs)
	require.Len(t, e.MatchUps, 2)
	for _, m := range e.MatchUps {
		require.Equal(t, e.Configs[0], m[0])
	}
}

func TestMirror(t *testing.T) {
	e := Mirror([]string{agent.GreedyStrategy})
	require.Equal(t, [][2]metrics.AgentConfig{{{ID: 1, Strategy: "greedy"}, {ID: 1, Strategy: "greedy"}}}, e.MatchUps)
}

func TestRun(t *testing.T) {
	t.Run("records every game and move", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Players = 3
		e := Strength([]string{agent.GreedyStrategy})

		results, err := Run(e, cfg)
		require.NoError(t, err)
		require.Len(t, results.Games, 3)

		moves := 0
		ids := map[string]bool{}
		for i, g := range results.Games {
			require.Equal(t, i+1, g.ID)
			require.Equal(t, 0, g.Agent1)
			require.Equal(t, 1, g.Agent2)
			require.LessOrEqual(t, g.TotalMoves, meta.MAX_TURNS)
			if g.Winner == game.NoWinner {
				require.Equal(t, game.NoWinner, g.WinningAgent)
			} else {
				require.Equal(t, []int{0, 1}[g.Winner%2], g.WinningAgent)
			}
			ids[g.GameID] = true
			moves += g.TotalMoves
		}
		require.Len(t, ids, 3, "each game gets its own id")
		require.Len(t, results.Moves, moves)

		for _, file := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
			require.FileExists(t, filepath.Join(results.Dir, file))
		}
		rel, err := filepath.Rel(cfg.OutputDir, results.Dir)
		require.NoError(t, err)
		require.Equal(t, "strength", filepath.Dir(rel))
	})

	t.Run("wins add up", func(t *testing.T) {
		cfg := testConfig(t)
		results, err := Run(Mirror([]string{agent.GreedyStrategy, agent.RandomStrategy}), cfg)
		require.NoError(t, err)

		total := 0
		for id, n := range results.Wins() {
			require.Contains(t, []int{1, 2}, id)
			total += n
		}
		ties := 0
		for _, g := range results.Games {
			if g.WinningAgent == game.NoWinner {
				ties++
			}
		}
		require.Equal(t, len(results.Games), total+ties)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		cfg := testConfig(t)
		_, err := Run(Strength([]string{"oracle"}), cfg)
		require.ErrorIs(t, err, agent.ErrUnknownStrategy)

		entries, err := os.ReadDir(cfg.OutputDir)
		require.NoError(t, err)
		require.Empty(t, entries, "nothing is written for a failed run")
	})
}

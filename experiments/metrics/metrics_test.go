package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start(4, 2, 31)
	m := c.Complete("TAKE", 6)
	require.Equal(t, 4, m.Step)
	require.Equal(t, 2, m.Player)
	require.Equal(t, "TAKE", m.Label)
	require.Equal(t, 31, m.Options)
	require.Equal(t, 6, m.Points)
	require.GreaterOrEqual(t, m.Duration, time.Duration(0))

	d := NewDummyCollector()
	d.Start(1, 1, 1)
	require.Equal(t, MoveMetric{}, d.Complete("TAKE", 1))
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "strength")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())
	require.Equal(t, filepath.Join(root, "strength"), filepath.Dir(w.Dir()))

	t.Run("agent configs", func(t *testing.T) {
		require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 0, Strategy: "random"}, {ID: 1, Strategy: "greedy"}}))
		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, [][]string{{"id", "strategy"}, {"0", "random"}, {"1", "greedy"}}, rows)
	})

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		records := []GameRecord{{
			ID:     1,
			Agent1: 0,
			Agent2: 1,
			GameMetric: GameMetric{
				GameID:         "abc",
				StartingPlayer: 1,
				Winner:         -1,
				WinningAgent:   -1,
				Score:          15,
				StartTime:      start,
				EndTime:        start.Add(time.Second),
				Duration:       time.Second,
				TotalMoves:     48,
			},
		}}
		require.NoError(t, w.WriteGameRecords(records))
		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "abc", "0", "1", "1", "-1", "-1", "15", "48", "2024-03-01T12:00:00Z", "2024-03-01T12:00:01Z", "1s"}, rows[1])
	})

	t.Run("move records", func(t *testing.T) {
		records := []MoveRecord{
			{Game: 1, MoveMetric: MoveMetric{Step: 0, Player: 1, Label: "TAKE", Options: 45, Points: 0, Duration: time.Millisecond}},
			{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: 0, Label: "PURCHASE", Options: 12, Points: 1}},
		}
		require.NoError(t, w.WriteMoveRecords(records))
		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Equal(t, []string{"game", "step", "player", "label", "options", "points", "duration"}, rows[0])
		require.Equal(t, []string{"1", "0", "1", "TAKE", "45", "0", "1ms"}, rows[1])
		require.Equal(t, []string{"1", "1", "0", "PURCHASE", "12", "1", "0s"}, rows[2])
	})
}

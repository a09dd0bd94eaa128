package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "unit")
	require.NoError(t, err)

	configs := []AgentConfig{
		{ID: 0, Kind: "minimax", Depth: 9},
		{ID: 1, Kind: "random", Seed: 7},
	}
	games := []GameRecord{
		{ID: "abc123", Agent1: 0, Agent2: 1, Winner: "player1", StartTime: time.Now(), Duration: time.Second, Moves: 7},
	}
	moves := []MoveRecord{
		{Game: "abc123", Step: 1, Player: "player1", Move: "0,0", Nodes: 549945, Cutoffs: 0, Prunes: 16771},
		{Game: "abc123", Step: 2, Player: "player2", Move: "1,1", Nodes: 59704, Cutoffs: 0, Prunes: 3811},
	}

	require.NoError(t, w.WriteAgentConfigs(configs))
	require.NoError(t, w.WriteGameRecords(games))
	require.NoError(t, w.WriteMoveRecords(moves))

	require.Equal(t, [][]string{
		{"id", "kind", "depth", "seed"},
		{"0", "minimax", "9", "0"},
		{"1", "random", "0", "7"},
	}, readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv")))

	gameRows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, gameRows, 2, "header plus one game")
	require.Equal(t, "abc123", gameRows[1][0])
	require.Equal(t, "player1", gameRows[1][3])

	moveRows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, moveRows, 3, "header plus two moves")
	require.Equal(t, "549945", moveRows[1][5])
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

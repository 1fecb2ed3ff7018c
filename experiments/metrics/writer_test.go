package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"othello/searcher"

	"github.com/google/uuid"
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

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "depth")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())
	require.Equal(t, filepath.Join(root, "depth"), filepath.Dir(w.Dir()))

	t.Run("agent configs", func(t *testing.T) {
		err := w.WriteAgentConfigs([]AgentConfig{
			{ID: 1, Kind: "computer", Level: 3, Pruning: true, Workers: 2},
			{ID: 2, Kind: "random"},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, [][]string{
			{"id", "kind", "level", "pruning", "workers"},
			{"1", "computer", "3", "true", "2"},
			{"2", "random", "0", "false", "0"},
		}, rows)
	})

	t.Run("game and move records", func(t *testing.T) {
		id := uuid.New()
		start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{{
			ID:    id,
			White: 1,
			Black: 2,
			GameMetric: GameMetric{
				StartingPlayer: 2,
				Winner:         1,
				WhiteDiscs:     40,
				BlackDiscs:     24,
				StartTime:      start,
				EndTime:        start.Add(time.Second),
				Duration:       time.Second,
				TotalMoves:     60,
				Passes:         1,
			},
		}})
		require.NoError(t, err)

		err = w.WriteMoveRecords([]MoveRecord{{
			Game: id,
			MoveMetric: MoveMetric{
				Step:    1,
				Player:  2,
				Move:    "(3,2)",
				Flipped: 1,
				SearchMetric: searcher.SearchMetric{
					Plies:    3,
					Pruning:  true,
					Nodes:    30,
					Leaves:   20,
					Cutoffs:  4,
					Duration: time.Millisecond,
				},
			},
		}})
		require.NoError(t, err)

		games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, games, 2)
		require.Equal(t, []string{id.String(), "1", "2", "2", "1", "40", "24", "60", "1",
			"2024-05-01T12:00:00Z", "2024-05-01T12:00:01Z", "1s"}, games[1])

		moves := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, moves, 2)
		require.Equal(t, []string{id.String(), "1", "2", "(3,2)", "1", "3", "true", "30", "20", "4", "0", "1ms"}, moves[1])
	})
}

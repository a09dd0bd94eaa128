package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer stores experiment results as CSV files in a per-run directory.
type Writer struct {
	dir string
}

// NewWriter creates baseDir/name/<timestamp>/ and returns a writer rooted
// there.
func NewWriter(baseDir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	dir := filepath.Join(baseDir, name, timestamp)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create results directory: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// Dir returns the directory results are written to.
func (w *Writer) Dir() string {
	return w.dir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.Depth),
			strconv.FormatUint(config.Seed, 10),
		})
	}
	return w.writeFile("agent_configs.csv", []string{"id", "kind", "depth", "seed"}, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.ID,
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.Winner,
			strconv.FormatBool(record.TurnLimit),
			record.StartTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.Moves),
		})
	}
	header := []string{"id", "agent1", "agent2", "winner", "turn_limit", "start_time", "duration", "moves"}
	return w.writeFile("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Game,
			strconv.Itoa(record.Step),
			record.Player,
			record.Move,
			record.Duration.String(),
			strconv.FormatInt(record.Nodes, 10),
			strconv.FormatInt(record.Cutoffs, 10),
			strconv.FormatInt(record.Prunes, 10),
		})
	}
	header := []string{"game", "step", "player", "move", "duration", "nodes", "cutoffs", "prunes"}
	return w.writeFile("move_records.csv", header, rows)
}

func (w *Writer) writeFile(name string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(w.dir, name))
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write %s header: %w", name, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write %s row: %w", name, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

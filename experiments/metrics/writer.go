package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> and writes there.
func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create directory")
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameMetric) error {
	header := []string{"id", "size", "moves", "winner", "reward", "end_reason", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.ID.String(),
			strconv.Itoa(record.Size),
			strconv.Itoa(record.Moves),
			record.Winner.String(),
			strconv.FormatFloat(float64(record.Reward), 'f', -1, 32),
			string(record.EndReason),
			record.StartTime.Format(time.RFC3339Nano),
			record.EndTime.Format(time.RFC3339Nano),
			record.Duration.String(),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteSummary(s Summary) error {
	header := []string{"games", "mean_moves", "std_moves", "black_win_rate", "illegal", "two_passes", "move_cap"}
	row := []string{
		strconv.Itoa(s.Games),
		strconv.FormatFloat(s.MeanMoves, 'f', 4, 64),
		strconv.FormatFloat(s.StdMoves, 'f', 4, 64),
		strconv.FormatFloat(s.BlackWinRate, 'f', 4, 64),
		strconv.Itoa(s.Illegal),
		strconv.Itoa(s.TwoPasses),
		strconv.Itoa(s.MoveCap),
	}
	return w.write("summary.csv", header, [][]string{row})
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", file)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return errors.Wrapf(err, "failed to write %s header", file)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return errors.Wrapf(err, "failed to write %s rows", file)
	}
	return nil
}

package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/jnederlo/linecruncher/internal/genetic"
	"github.com/jnederlo/linecruncher/pkg/logger"
)

// WriteLineups writes the full lineup sheet: one row per lineup with the nine
// player names in slot order followed by total salary and projection.
func WriteLineups(path string, lineups []genetic.Lineup) error {
	header := append(genetic.SlotNames(), "Salary", "Projection")

	rows := make([][]string, 0, len(lineups))
	for _, l := range lineups {
		row := append(l.Names(),
			strconv.Itoa(l.TotalSalary),
			strconv.FormatFloat(l.Projection, 'f', 2, 64))
		rows = append(rows, row)
	}

	if err := writeCSV(path, header, rows); err != nil {
		return err
	}
	logger.WithComponent("export").WithField("path", path).Infof("Wrote %d lineups", len(rows))
	return nil
}

// WriteUploadLineups writes the upload sheet accepted by DraftKings: the same
// rows with the salary and projection columns stripped, and adjacent duplicate
// lineups removed. The input is sorted by projection, so identical lineups
// share a score and sit next to each other.
func WriteUploadLineups(path string, lineups []genetic.Lineup) error {
	rows := make([][]string, 0, len(lineups))
	for _, l := range lineups {
		rows = append(rows, l.Names())
	}
	rows = dedupeAdjacent(rows)

	if err := writeCSV(path, genetic.SlotNames(), rows); err != nil {
		return err
	}
	logger.WithComponent("export").WithField("path", path).Infof("Wrote %d upload lineups", len(rows))
	return nil
}

// dedupeAdjacent drops row i when it is identical to row i+1. The last row is
// always kept.
func dedupeAdjacent(rows [][]string) [][]string {
	out := make([][]string, 0, len(rows))
	for i, row := range rows {
		if i < len(rows)-1 && rowsEqual(row, rows[i+1]) {
			continue
		}
		out = append(out, row)
	}
	return out
}

func rowsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows to %s: %w", path, err)
	}
	writer.Flush()
	return writer.Error()
}

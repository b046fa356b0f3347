package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jnederlo/linecruncher/pkg/logger"
	"github.com/sirupsen/logrus"
)

// DKSalaries column layout. The download prefixes the data with instructional
// rows that are skipped unconditionally.
const (
	headerRows = 8

	colName      = 11
	colPosition  = 14
	colSalary    = 15
	colTeam      = 17
	colAvgPoints = 18

	minColumns = 19
)

// LoadRoster reads a DraftKings DKSalaries export into role-bucketed player
// sequences. Players averaging exactly 0 points are treated as inactive and
// dropped. The caller should apply any further filtering (scratches, injuries)
// by editing the file before loading.
func LoadRoster(path string) (*Pool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster file %s: %w", path, err)
	}
	defer f.Close()

	pool, err := parseRoster(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse roster file %s: %w", path, err)
	}

	logger.WithComponent("roster").WithFields(logrus.Fields{
		"path":            path,
		"position_counts": pool.Counts(),
	}).Info("Roster loaded")

	return pool, nil
}

func parseRoster(r io.Reader) (*Pool, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // instructional rows have fewer fields

	// Skip past the instructions and header in the file
	for i := 0; i < headerRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, fmt.Errorf("roster header truncated at row %d: %w", i+1, err)
		}
	}

	var players []Player
	row := headerRows
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read error at row %d: %w", row+1, err)
		}
		row++

		if len(record) < minColumns {
			return nil, fmt.Errorf("row %d has %d columns, expected at least %d", row, len(record), minColumns)
		}

		salary, err := strconv.Atoi(record[colSalary])
		if err != nil {
			return nil, fmt.Errorf("invalid salary %q at row %d: %w", record[colSalary], row, err)
		}
		avgPoints, err := strconv.ParseFloat(record[colAvgPoints], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid average points %q at row %d: %w", record[colAvgPoints], row, err)
		}

		if record[colPosition] == "" {
			return nil, fmt.Errorf("empty position at row %d", row)
		}

		players = append(players, Player{
			Name:      record[colName],
			Position:  record[colPosition][:1],
			Salary:    salary,
			Team:      record[colTeam],
			AvgPoints: avgPoints,
		})
	}

	// NewPool drops inactive (zero average points) players
	return NewPool(players), nil
}

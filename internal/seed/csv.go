package seed

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Required identity columns. A dataset missing any of these cannot seed users
// at all, so their absence aborts the run.
const (
	columnUserID = "User_ID"
	columnGender = "Sex"
	columnPhone  = "PhoneNumber"
)

type participantTable struct {
	columns map[string]int
	rows    [][]string
}

func parseParticipantTable(source io.Reader) (*participantTable, error) {
	reader := csv.NewReader(source)
	reader.TrimLeadingSpace = true
	// Ragged rows surface as absent cells, not import failures.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for index, name := range header {
		columns[strings.TrimSpace(name)] = index
	}
	for _, required := range []string{columnUserID, columnGender, columnPhone} {
		if _, present := columns[required]; !present {
			return nil, fmt.Errorf("dataset is missing required column %q", required)
		}
	}

	rows := make([][]string, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset row: %w", err)
		}
		rows = append(rows, record)
	}

	return &participantTable{columns: columns, rows: rows}, nil
}

// cell returns the trimmed value of the named column in the given row, and
// whether the column exists and the row is wide enough to hold it.
func (table *participantTable) cell(row []string, column string) (string, bool) {
	index, present := table.columns[column]
	if !present || index >= len(row) {
		return "", false
	}
	return strings.TrimSpace(row[index]), true
}

// firstRowPerUser keeps the first row for each distinct user id, preserving
// dataset order.
func (table *participantTable) firstRowPerUser() [][]string {
	seen := make(map[string]struct{}, len(table.rows))
	unique := make([][]string, 0, len(table.rows))
	for _, row := range table.rows {
		userID, _ := table.cell(row, columnUserID)
		if userID == "" {
			continue
		}
		if _, duplicate := seen[userID]; duplicate {
			continue
		}
		seen[userID] = struct{}{}
		unique = append(unique, row)
	}
	return unique
}

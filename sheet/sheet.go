package sheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// readRows decodes the whole CSV. Rows may be ragged; missing trailing cells
// read as empty strings via cell().
func readRows(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("malformed CSV: %w", err)
	}
	return rows, nil
}

// cell returns column i of row, or "" when the row is too short.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// Range is a half-open interval of body rows merged into one region table.
// Prefix is the @header cell of its first row, emitted verbatim before every
// record of the range.
type Range struct {
	Start, End int
	Prefix     string
}

// splitRanges segments the body rows at every non-empty @header cell. Rows
// before the first delimiter belong to no range and are dropped.
func splitRanges(body [][]string, headerIdx int) []Range {
	var ranges []Range
	for i, row := range body {
		if marker := cell(row, headerIdx); marker != "" {
			if len(ranges) > 0 {
				ranges[len(ranges)-1].End = i
			}
			ranges = append(ranges, Range{Start: i, End: len(body), Prefix: marker})
		}
	}
	return ranges
}
